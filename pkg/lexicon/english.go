package lexicon

import (
	"bytes"
	"context"
	_ "embed"
	"sync"
	"sync/atomic"
)

//go:embed data/english.txt
var englishCorpus []byte

var (
	englishMu  sync.Mutex
	englishLex atomic.Pointer[Lexicon]
)

// Init builds the built-in English lexicon. Parsing the corpus is the one
// expensive step of the engine, so applications should call Init at startup.
// Calling it more than once is cheap: the corpus is parsed at most once per
// process, unless a previous attempt failed.
func Init(ctx context.Context) error {
	_, err := English(ctx)
	return err
}

// English returns the built-in English lexicon, building it on first use when
// Init has not been called.
func English(ctx context.Context) (*Lexicon, error) {
	if lex := englishLex.Load(); lex != nil {
		return lex, nil
	}

	englishMu.Lock()
	defer englishMu.Unlock()

	if lex := englishLex.Load(); lex != nil {
		return lex, nil
	}

	lex, err := Parse(ctx, bytes.NewReader(englishCorpus))
	if err != nil {
		return nil, err
	}
	englishLex.Store(lex)
	return lex, nil
}

// Initialized reports whether the English lexicon has been built.
func Initialized() bool {
	return englishLex.Load() != nil
}
