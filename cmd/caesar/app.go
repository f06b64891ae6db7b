package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/cipherkit/pkg/api"
	"github.com/dmitrymomot/cipherkit/pkg/config"
	"github.com/dmitrymomot/cipherkit/pkg/engine"
	"github.com/dmitrymomot/cipherkit/pkg/frequency"
	"github.com/dmitrymomot/cipherkit/pkg/lexicon"
	"github.com/dmitrymomot/cipherkit/pkg/logger"
)

// app holds everything a command needs, built from configuration.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	engine  *engine.Engine
	closers []func()
}

// newApp loads configuration and wires the engine. defaultLevel applies when
// CAESAR_LOG_LEVEL is unset.
func newApp(ctx context.Context, stderr io.Writer, defaultLevel slog.Level) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: newLogger(cfg, stderr, defaultLevel)}

	table := frequency.English()
	if cfg.FrequencyTable != "" {
		table, err = loadTable(ctx, cfg.FrequencyTable)
		if err != nil {
			return nil, err
		}
		a.log.DebugContext(ctx, "frequency table loaded", slog.String("language", table.Language()))
	}

	src, err := a.lexiconSource(ctx)
	if err != nil {
		a.close()
		return nil, err
	}

	a.engine = engine.New(
		engine.WithFrequencyTable(table),
		engine.WithLexiconSource(src),
		engine.WithLogger(a.log),
		engine.WithDefaultThreshold(cfg.DefaultThreshold),
		engine.WithCacheSize(cfg.ValidatorCacheSize),
	)
	return a, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func newLogger(cfg config.Config, w io.Writer, defaultLevel slog.Level) *slog.Logger {
	level := defaultLevel
	if cfg.LogLevel != "" {
		level = logger.ParseLevel(cfg.LogLevel)
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "caesar"),
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithContextExtractors(api.RequestIDExtractor()),
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...)
}

func loadTable(ctx context.Context, path string) (frequency.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return frequency.Table{}, fmt.Errorf("open frequency table: %w", err)
	}
	defer f.Close()
	return frequency.LoadYAML(ctx, f)
}

// lexiconSource builds the configured word list source. Network clients are
// registered in a.closers.
func (a *app) lexiconSource(ctx context.Context) (lexicon.Source, error) {
	cfg := a.cfg
	switch cfg.LexiconSource {
	case config.SourceFile:
		return lexicon.NewFileSource(cfg.LexiconPath), nil
	case config.SourceRedis:
		client, err := lexicon.DialRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		return lexicon.NewRedisSource(client, cfg.Redis.Key), nil
	case config.SourceS3:
		client, err := lexicon.NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return lexicon.NewS3Source(client, cfg.S3.Bucket, cfg.S3.Key), nil
	case config.SourcePostgres:
		pool, err := lexicon.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		return lexicon.NewPostgresSource(pool, cfg.Postgres.Table), nil
	case config.SourceEmbedded, "":
		return lexicon.Embedded(), nil
	default:
		return nil, errors.Join(config.ErrInvalidConfig, fmt.Errorf("unknown lexicon source %q", cfg.LexiconSource))
	}
}

// readText returns flagText when set, otherwise all of stdin without the
// final line break.
func readText(flagText string, set bool, stdin io.Reader) (string, error) {
	if set {
		return flagText, nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
