package engine

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/cipherkit/pkg/cache"
	"github.com/dmitrymomot/cipherkit/pkg/caesar"
	"github.com/dmitrymomot/cipherkit/pkg/frequency"
	"github.com/dmitrymomot/cipherkit/pkg/lexicon"
	"github.com/dmitrymomot/cipherkit/pkg/logger"
)

// DefaultCacheSize is the number of word list validators kept when
// WithCacheSize is not used.
const DefaultCacheSize = 4

// wordValidator pairs a cached validator with the lock that makes
// "set threshold, then search" atomic for one caller.
type wordValidator struct {
	mu sync.Mutex
	v  *caesar.WordListValidator
}

// Engine is the shared handle used by the HTTP API and the CLI.
// It is safe for concurrent use.
type Engine struct {
	table     frequency.Table
	source    lexicon.Source
	logger    *slog.Logger
	threshold float64
	cacheSize int

	validators *cache.LRU[string, *wordValidator]
}

// New creates an Engine. Without options it uses the English frequency table
// and the embedded English word list.
func New(opts ...Option) *Engine {
	e := &Engine{
		table:     frequency.English(),
		source:    lexicon.Embedded(),
		logger:    logger.Discard(),
		threshold: caesar.DefaultThreshold,
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(e)
	}

	if math.IsNaN(e.threshold) {
		e.threshold = caesar.DefaultThreshold
	}
	e.threshold = min(max(e.threshold, 0), 1)

	e.validators = cache.NewLRU[string, *wordValidator](e.cacheSize)
	e.validators.SetEvictCallback(func(name string, _ *wordValidator) {
		e.logger.Debug("word list validator evicted", logger.Source(name))
	})
	return e
}

// Table returns the frequency table used for scoring.
func (e *Engine) Table() frequency.Table { return e.table }

// Source returns the default lexicon source.
func (e *Engine) Source() lexicon.Source { return e.source }

// DefaultThreshold returns the threshold used when callers have no preference.
func (e *Engine) DefaultThreshold() float64 { return e.threshold }

// Init loads the validator for the default lexicon source. Calling it at
// startup moves the word list parsing cost out of the first request.
func (e *Engine) Init(ctx context.Context) error {
	_, err := e.validator(ctx, e.source)
	return err
}

// Ready reports whether the default validator is loaded.
func (e *Engine) Ready() bool {
	return e.validators.Contains(e.source.Name())
}

// Encrypt shifts text forward by key.
func (e *Engine) Encrypt(ctx context.Context, text string, key int) (string, error) {
	out, err := caesar.Shift(text, key)
	if err != nil {
		e.logger.DebugContext(ctx, "encrypt rejected", logger.TextLength(len(text)), logger.Error(err))
		return "", err
	}
	return out, nil
}

// Decrypt shifts text back by key.
func (e *Engine) Decrypt(ctx context.Context, text string, key int) (string, error) {
	out, err := caesar.Unshift(text, key)
	if err != nil {
		e.logger.DebugContext(ctx, "decrypt rejected", logger.TextLength(len(text)), logger.Error(err))
		return "", err
	}
	return out, nil
}

// DecryptWithCrib recovers the key of text by looking for crib in each
// candidate plaintext. The match is exact and case-sensitive.
func (e *Engine) DecryptWithCrib(ctx context.Context, text, crib string) (caesar.Result, error) {
	if crib == "" {
		return caesar.Result{}, ErrEmptyCrib
	}

	ctx = logger.WithRunID(ctx, uuid.NewString())
	res, err := caesar.AutoDecryptString(text, e.table, caesar.NewCribValidator(crib))
	e.logResult(ctx, "crib", res, err, logger.TextLength(len(text)))
	return res, err
}

// DecryptEnglish recovers the key of text by requiring that at least
// threshold of its words appear in the default word list. The threshold is
// clamped into [0, 1]; NaN selects the default.
func (e *Engine) DecryptEnglish(ctx context.Context, text string, threshold float64) (caesar.Result, error) {
	return e.DecryptWords(ctx, e.source, text, threshold)
}

// DecryptWords is DecryptEnglish with an explicit word list source. Loaded
// validators are cached by source name.
func (e *Engine) DecryptWords(ctx context.Context, src lexicon.Source, text string, threshold float64) (caesar.Result, error) {
	if err := caesar.ValidateASCII(text); err != nil {
		return caesar.Result{}, err
	}
	if src == nil {
		src = e.source
	}

	ctx = logger.WithRunID(ctx, uuid.NewString())
	wv, err := e.validator(ctx, src)
	if err != nil {
		return caesar.Result{}, err
	}

	wv.mu.Lock()
	applied := wv.v.SetThreshold(threshold)
	res, err := caesar.AutoDecryptString(text, e.table, wv.v)
	wv.mu.Unlock()

	e.logResult(ctx, "english", res, err,
		logger.TextLength(len(text)),
		logger.Threshold(applied),
		logger.Source(src.Name()),
	)
	return res, err
}

// Candidates lists all 26 decryptions of text, closest to the frequency table
// first.
func (e *Engine) Candidates(ctx context.Context, text string) ([]caesar.Candidate, error) {
	out, err := caesar.Candidates(text, e.table)
	if err != nil {
		e.logger.DebugContext(ctx, "candidates rejected", logger.TextLength(len(text)), logger.Error(err))
		return nil, err
	}
	return out, nil
}

func (e *Engine) validator(ctx context.Context, src lexicon.Source) (*wordValidator, error) {
	name := src.Name()
	wv, err := e.validators.GetOrLoad(ctx, name, func(ctx context.Context) (*wordValidator, error) {
		lex, err := src.Load(ctx)
		if err != nil {
			return nil, err
		}
		e.logger.InfoContext(ctx, "word list loaded", logger.Source(name), slog.Int("words", lex.Len()))
		return &wordValidator{
			v: caesar.NewWordListValidator(lex, caesar.WithThreshold(e.threshold)),
		}, nil
	})
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to load word list", logger.Source(name), logger.Error(err))
		return nil, errors.Join(ErrValidatorUnavailable, err)
	}
	return wv, nil
}

func (e *Engine) logResult(ctx context.Context, mode string, res caesar.Result, err error, attrs ...slog.Attr) {
	attrs = append(attrs, logger.Mode(mode))
	switch {
	case err == nil:
		attrs = append(attrs, logger.Key(res.Key), logger.Iterations(res.Iterations))
		e.logger.LogAttrs(ctx, slog.LevelInfo, "key recovered", attrs...)
	case errors.Is(err, caesar.ErrPlaintextInvalid):
		attrs = append(attrs, logger.Iterations(caesar.AlphabetSize))
		e.logger.LogAttrs(ctx, slog.LevelInfo, "no key accepted", attrs...)
	default:
		attrs = append(attrs, logger.Error(err))
		e.logger.LogAttrs(ctx, slog.LevelDebug, "search rejected", attrs...)
	}
}
