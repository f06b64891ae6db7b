package engine_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cipherkit/pkg/caesar"
	"github.com/dmitrymomot/cipherkit/pkg/engine"
	"github.com/dmitrymomot/cipherkit/pkg/lexicon"
)

type countingSource struct {
	name  string
	words []string
	err   error
	loads atomic.Int32
}

func (s *countingSource) Name() string { return s.name }

func (s *countingSource) Load(ctx context.Context) (*lexicon.Lexicon, error) {
	s.loads.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return lexicon.New(s.words...), nil
}

func shift(t *testing.T, text string, key int) string {
	t.Helper()
	out, err := caesar.Shift(text, key)
	require.NoError(t, err)
	return out
}

func TestEngine_EncryptDecrypt(t *testing.T) {
	t.Parallel()
	eng := engine.New()
	ctx := context.Background()

	ct, err := eng.Encrypt(ctx, "Hello, World!", 3)
	require.NoError(t, err)
	assert.Equal(t, "Khoor, Zruog!", ct)

	pt, err := eng.Decrypt(ctx, ct, 3)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", pt)

	_, err = eng.Encrypt(ctx, "café", 1)
	assert.ErrorIs(t, err, caesar.ErrNonASCII)
	_, err = eng.Decrypt(ctx, "naïve", 1)
	assert.ErrorIs(t, err, caesar.ErrNonASCII)
}

func TestEngine_DecryptWithCrib(t *testing.T) {
	t.Parallel()
	eng := engine.New()
	ctx := context.Background()

	t.Run("recovers key", func(t *testing.T) {
		res, err := eng.DecryptWithCrib(ctx, shift(t, "the quick brown fox", 7), "quick")
		require.NoError(t, err)
		assert.Equal(t, 7, res.Key)
		assert.Equal(t, 8, res.Iterations)
		assert.Equal(t, "the quick brown fox", res.Plaintext)
		assert.Equal(t, 1.0, res.Confidence)
	})

	t.Run("empty crib", func(t *testing.T) {
		_, err := eng.DecryptWithCrib(ctx, "abc", "")
		assert.ErrorIs(t, err, engine.ErrEmptyCrib)
	})

	t.Run("crib never appears", func(t *testing.T) {
		_, err := eng.DecryptWithCrib(ctx, shift(t, "the quick brown fox", 7), "QUICK")
		assert.ErrorIs(t, err, caesar.ErrPlaintextInvalid)
	})

	t.Run("non ascii", func(t *testing.T) {
		_, err := eng.DecryptWithCrib(ctx, "über", "ber")
		assert.ErrorIs(t, err, caesar.ErrNonASCII)
	})
}

func TestEngine_DecryptEnglish(t *testing.T) {
	t.Parallel()
	eng := engine.New()
	ctx := context.Background()

	res, err := eng.DecryptEnglish(ctx, shift(t, "Attack at dawn", 3), 0.5)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Key)
	assert.Equal(t, 4, res.Iterations)
	assert.Equal(t, "Attack at dawn", res.Plaintext)
	assert.True(t, eng.Ready())

	_, err = eng.DecryptEnglish(ctx, shift(t, "xqzv jjkq wwpt", 3), 0.5)
	assert.ErrorIs(t, err, caesar.ErrPlaintextInvalid)
}

func TestEngine_DecryptEnglish_EverydayProse(t *testing.T) {
	t.Parallel()
	eng := engine.New()
	ctx := context.Background()

	sentences := []string{
		"The committee postponed the vote because several members were travelling abroad.",
		"Our flight was cancelled, so we spent the night at the airport hotel.",
		"The old lighthouse has guided sailors safely into the harbour for centuries.",
		"Volunteers cleaned up the park and planted dozens of young trees.",
	}
	for _, plain := range sentences {
		t.Run(plain, func(t *testing.T) {
			t.Parallel()
			res, err := eng.DecryptEnglish(ctx, shift(t, plain, 9), caesar.DefaultThreshold)
			require.NoError(t, err)
			assert.Equal(t, 9, res.Key)
			assert.Equal(t, 10, res.Iterations)
			assert.Equal(t, plain, res.Plaintext)
			assert.GreaterOrEqual(t, res.Confidence, caesar.DefaultThreshold)
		})
	}
}

func TestEngine_LazyInitLoadsOnce(t *testing.T) {
	t.Parallel()
	src := &countingSource{name: "test:once", words: []string{"hello", "world"}}
	eng := engine.New(engine.WithLexiconSource(src))
	ctx := context.Background()

	assert.False(t, eng.Ready())
	ct := shift(t, "hello world", 11)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := eng.DecryptEnglish(ctx, ct, 0.5)
			assert.NoError(t, err)
			assert.Equal(t, 11, res.Key)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), src.loads.Load())
	require.NoError(t, eng.Init(ctx))
	assert.Equal(t, int32(1), src.loads.Load())
	assert.True(t, eng.Ready())
}

func TestEngine_InitExplicit(t *testing.T) {
	t.Parallel()
	src := &countingSource{name: "test:init", words: []string{"hello"}}
	eng := engine.New(engine.WithLexiconSource(src))

	require.NoError(t, eng.Init(context.Background()))
	assert.True(t, eng.Ready())

	_, err := eng.DecryptEnglish(context.Background(), "hello", 1)
	require.NoError(t, err)
	assert.Equal(t, int32(1), src.loads.Load())
}

func TestEngine_LoadFailure(t *testing.T) {
	t.Parallel()
	boom := errors.New("store offline")
	src := &countingSource{name: "test:fail", err: boom}
	eng := engine.New(engine.WithLexiconSource(src))

	err := eng.Init(context.Background())
	require.ErrorIs(t, err, engine.ErrValidatorUnavailable)
	require.ErrorIs(t, err, boom)
	assert.False(t, eng.Ready())

	_, err = eng.DecryptEnglish(context.Background(), "abc", 0.5)
	require.ErrorIs(t, err, engine.ErrValidatorUnavailable)
	assert.Equal(t, int32(2), src.loads.Load(), "failed loads are retried")
}

func TestEngine_NonASCIISkipsLoading(t *testing.T) {
	t.Parallel()
	src := &countingSource{name: "test:ascii", words: []string{"hello"}}
	eng := engine.New(engine.WithLexiconSource(src))

	_, err := eng.DecryptEnglish(context.Background(), "héllo", 0.5)
	require.ErrorIs(t, err, caesar.ErrNonASCII)
	assert.Zero(t, src.loads.Load())
}

func TestEngine_ConcurrentThresholds(t *testing.T) {
	t.Parallel()
	src := &countingSource{name: "test:threshold", words: []string{"hello", "world"}}
	eng := engine.New(engine.WithLexiconSource(src))
	ctx := context.Background()

	// Half of the words are known: accepted at 0.5, rejected at 1.0.
	const text = "hello zzz"

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(lenient bool) {
			defer wg.Done()
			if lenient {
				res, err := eng.DecryptEnglish(ctx, text, 0.5)
				assert.NoError(t, err)
				assert.Equal(t, 0, res.Key)
				assert.Equal(t, 0.5, res.Confidence)
				return
			}
			_, err := eng.DecryptEnglish(ctx, text, 1.0)
			assert.ErrorIs(t, err, caesar.ErrPlaintextInvalid)
		}(i%2 == 0)
	}
	wg.Wait()
}

func TestEngine_ThresholdClamped(t *testing.T) {
	t.Parallel()
	src := &countingSource{name: "test:clamp", words: []string{"hello"}}
	eng := engine.New(engine.WithLexiconSource(src), engine.WithDefaultThreshold(7))
	assert.Equal(t, 1.0, eng.DefaultThreshold())

	// Above 1 behaves like 1: every word must be known.
	_, err := eng.DecryptEnglish(context.Background(), "hello there", 3)
	assert.ErrorIs(t, err, caesar.ErrPlaintextInvalid)

	// Below 0 behaves like 0: any text with words passes at key 0.
	res, err := eng.DecryptEnglish(context.Background(), "zzz qqq", -2)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Key)
}

func TestEngine_CacheEviction(t *testing.T) {
	t.Parallel()
	a := &countingSource{name: "test:a", words: []string{"alpha"}}
	b := &countingSource{name: "test:b", words: []string{"bravo"}}
	eng := engine.New(engine.WithLexiconSource(a), engine.WithCacheSize(1))
	ctx := context.Background()

	_, err := eng.DecryptWords(ctx, a, "alpha", 1)
	require.NoError(t, err)
	_, err = eng.DecryptWords(ctx, b, "bravo", 1)
	require.NoError(t, err)
	assert.False(t, eng.Ready())

	_, err = eng.DecryptWords(ctx, a, "alpha", 1)
	require.NoError(t, err)
	assert.Equal(t, int32(2), a.loads.Load())
	assert.Equal(t, int32(1), b.loads.Load())
}

func TestEngine_ReadyKeepsRecency(t *testing.T) {
	t.Parallel()
	a := &countingSource{name: "test:ready-a", words: []string{"alpha"}}
	b := &countingSource{name: "test:ready-b", words: []string{"bravo"}}
	c := &countingSource{name: "test:ready-c", words: []string{"charlie"}}
	eng := engine.New(engine.WithLexiconSource(a), engine.WithCacheSize(2))
	ctx := context.Background()

	for _, src := range []*countingSource{a, b} {
		_, err := eng.DecryptWords(ctx, src, src.words[0], 1)
		require.NoError(t, err)
	}

	// a is the least recently used entry; polling readiness must not change that.
	for range 3 {
		assert.True(t, eng.Ready())
	}

	_, err := eng.DecryptWords(ctx, c, "charlie", 1)
	require.NoError(t, err)
	assert.False(t, eng.Ready(), "a was evicted")

	_, err = eng.DecryptWords(ctx, b, "bravo", 1)
	require.NoError(t, err)
	assert.Equal(t, int32(1), b.loads.Load())
}

func TestEngine_Candidates(t *testing.T) {
	t.Parallel()
	eng := engine.New()

	plain := "it was the best of times it was the worst of times it was the age of wisdom"
	list, err := eng.Candidates(context.Background(), shift(t, plain, 5))
	require.NoError(t, err)
	require.Len(t, list, caesar.AlphabetSize)
	assert.Equal(t, 5, list[0].Key)
	assert.Equal(t, plain, list[0].Plaintext)

	_, err = eng.Candidates(context.Background(), "ñ")
	assert.ErrorIs(t, err, caesar.ErrNonASCII)
}

func TestWithCacheSize_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { engine.WithCacheSize(0) })
}
