package engine

import (
	"log/slog"

	"github.com/dmitrymomot/cipherkit/pkg/frequency"
	"github.com/dmitrymomot/cipherkit/pkg/lexicon"
)

// Option configures an Engine.
type Option func(*Engine)

// WithFrequencyTable replaces the built-in English frequency table.
func WithFrequencyTable(t frequency.Table) Option {
	return func(e *Engine) {
		if !t.IsZero() {
			e.table = t
		}
	}
}

// WithLexiconSource sets where the English validator's word list comes from.
// Nil keeps the embedded corpus.
func WithLexiconSource(src lexicon.Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.source = src
		}
	}
}

// WithLogger sets the logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDefaultThreshold sets the threshold newly loaded validators start with
// and the one boundary layers fall back to when a caller gives none.
func WithDefaultThreshold(t float64) Option {
	return func(e *Engine) { e.threshold = t }
}

// WithCacheSize sets how many word list validators stay loaded at once.
func WithCacheSize(n int) Option {
	if n < 1 {
		panic("WithCacheSize: size must be > 0")
	}
	return func(e *Engine) { e.cacheSize = n }
}
