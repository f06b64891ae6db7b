package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/cipherkit/pkg/caesar"
	"github.com/dmitrymomot/cipherkit/pkg/logger"
)

// DefaultMaxBodyBytes is the request body limit used when none is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

// Cipher is the engine surface the HTTP handlers need. *engine.Engine implements it.
type Cipher interface {
	Encrypt(ctx context.Context, text string, key int) (string, error)
	Decrypt(ctx context.Context, text string, key int) (string, error)
	DecryptWithCrib(ctx context.Context, text, crib string) (caesar.Result, error)
	DecryptEnglish(ctx context.Context, text string, threshold float64) (caesar.Result, error)
	Candidates(ctx context.Context, text string) ([]caesar.Candidate, error)
	DefaultThreshold() float64
	Ready() bool
}

// RouterOption configures the handler built by Router.
type RouterOption func(*handlers)

// WithRouterLogger sets the logger used for access logs and failures.
func WithRouterLogger(l *slog.Logger) RouterOption {
	return func(h *handlers) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMaxBodyBytes limits the size of request bodies.
func WithMaxBodyBytes(n int64) RouterOption {
	return func(h *handlers) {
		if n > 0 {
			h.maxBody = n
		}
	}
}

// Router builds the HTTP API:
//
//	POST /v1/encrypt        {"text", "key"}
//	POST /v1/decrypt        {"text", "key"}
//	POST /v1/crack/crib     {"text", "crib"}
//	POST /v1/crack/english  {"text", "threshold"}
//	POST /v1/candidates     {"text"}
//	GET  /healthz
//	GET  /readyz
func Router(c Cipher, opts ...RouterOption) chi.Router {
	h := &handlers{
		cipher:  c,
		logger:  logger.Discard(),
		maxBody: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(AccessLog(h.logger))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", h.healthz)
	r.Get("/readyz", h.readyz)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/encrypt", h.encrypt)
		r.Post("/decrypt", h.decrypt)
		r.Post("/candidates", h.candidates)
		r.Route("/crack", func(r chi.Router) {
			r.Post("/crib", h.crackCrib)
			r.Post("/english", h.crackEnglish)
		})
	})

	return r
}
