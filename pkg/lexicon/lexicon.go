package lexicon

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"golang.org/x/text/cases"
)

// checkEvery is how many lines Parse reads between context checks.
const checkEvery = 4096

// Lexicon is an immutable set of lowercase words with O(1) lookups.
// It is safe for concurrent use.
type Lexicon struct {
	words map[string]struct{}
}

// New builds a lexicon from words. Surrounding whitespace is trimmed, case is
// folded and empty entries are dropped.
func New(words ...string) *Lexicon {
	fold := cases.Fold()
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			set[fold.String(w)] = struct{}{}
		}
	}
	return &Lexicon{words: set}
}

// Parse reads one word per line from r. Blank lines and lines starting with
// '#' are skipped. It returns ErrEmptyLexicon when r holds no words.
func Parse(ctx context.Context, r io.Reader) (*Lexicon, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	fold := cases.Fold()
	set := make(map[string]struct{})

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if line%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, errors.Join(ErrLoadCancelled, err)
			}
		}

		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		set[fold.String(w)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Join(ErrFailedToLoad, err)
	}

	if len(set) == 0 {
		return nil, ErrEmptyLexicon
	}
	return &Lexicon{words: set}, nil
}

// Contains reports whether word is in the lexicon, ignoring case.
func (l *Lexicon) Contains(word string) bool {
	if l == nil {
		return false
	}
	_, ok := l.words[normalize(word)]
	return ok
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

// normalize lowercases ASCII words without allocating a Caser, which is not
// safe to share between goroutines.
func normalize(word string) string {
	for i := 0; i < len(word); i++ {
		if word[i] >= 0x80 {
			return cases.Fold().String(word)
		}
	}
	return strings.ToLower(word)
}
