package api

import (
	"log/slog"
	"time"
)

// Option tunes the Server that hosts the cipher API. Options that receive an
// invalid value panic when they are built, so a misconfigured server fails at
// startup instead of on the first request.
type Option func(*serverConfig)

// WithAddr sets the listen address of the cipher API, for example ":8080"
// or "127.0.0.1:9000". It mirrors HTTP_ADDR.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("api: empty listen address")
	}
	return func(c *serverConfig) { c.addr = addr }
}

// WithReadTimeout bounds how long a client may take to send a request,
// body included. Crack requests carry the whole ciphertext in the body.
func WithReadTimeout(d time.Duration) Option {
	mustPositive("read timeout", d)
	return func(c *serverConfig) { c.readTimeout = d }
}

// WithWriteTimeout bounds the time from the end of the request read to the end
// of the response write. It must cover a cold word list load, which happens on
// the first crack request when the engine was not initialised up front.
func WithWriteTimeout(d time.Duration) Option {
	mustPositive("write timeout", d)
	return func(c *serverConfig) { c.writeTimeout = d }
}

// WithIdleTimeout bounds how long a keep-alive connection waits for the next request.
func WithIdleTimeout(d time.Duration) Option {
	mustPositive("idle timeout", d)
	return func(c *serverConfig) { c.idleTimeout = d }
}

// WithShutdownTimeout sets how long in-flight searches may run after the
// server is asked to stop. Past that, Run returns ErrShutdown.
func WithShutdownTimeout(d time.Duration) Option {
	mustPositive("shutdown timeout", d)
	return func(c *serverConfig) { c.shutdownTimeout = d }
}

// WithLogger sets the logger for listen, shutdown and serve errors.
// A nil logger leaves the server silent.
func WithLogger(l *slog.Logger) Option {
	return func(c *serverConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStartHook adds h to the callbacks Run calls just before it starts
// listening. Hooks run in the order they were added.
func WithStartHook(h func()) Option {
	if h == nil {
		panic("api: nil start hook")
	}
	return func(c *serverConfig) { c.startHooks = append(c.startHooks, h) }
}

func mustPositive(name string, d time.Duration) {
	if d <= 0 {
		panic("api: " + name + " must be positive, got " + d.String())
	}
}
