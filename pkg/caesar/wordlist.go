package caesar

import (
	"math"
	"sync"
)

// DefaultThreshold is the fraction of recognised words a WordListValidator
// requires when no threshold has been configured.
const DefaultThreshold = 0.5

// WordChecker reports whether a word belongs to a vocabulary.
// *lexicon.Lexicon satisfies it.
type WordChecker interface {
	Contains(word string) bool
}

// WordListOption configures a WordListValidator.
type WordListOption func(*WordListValidator)

// WithThreshold sets the initial acceptance threshold. The value is clamped
// the same way SetThreshold clamps it.
func WithThreshold(t float64) WordListOption {
	return func(v *WordListValidator) {
		v.threshold = clampThreshold(t)
	}
}

// WordListValidator accepts candidates in which a large enough share of the
// words are found in a vocabulary.
//
// The threshold is the only mutable state. It is safe to change it while other
// goroutines validate, but a caller that needs a consistent threshold across a
// whole search must serialize those calls itself.
type WordListValidator struct {
	words WordChecker

	mu        sync.RWMutex
	threshold float64
}

// NewWordListValidator builds a validator over words.
func NewWordListValidator(words WordChecker, opts ...WordListOption) *WordListValidator {
	v := &WordListValidator{
		words:     words,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Threshold returns the current acceptance threshold.
func (v *WordListValidator) Threshold() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.threshold
}

// SetThreshold updates the acceptance threshold and returns the value actually
// applied. Values below 0 or above 1 are clamped; NaN resets to DefaultThreshold.
func (v *WordListValidator) SetThreshold(t float64) float64 {
	t = clampThreshold(t)
	v.mu.Lock()
	v.threshold = t
	v.mu.Unlock()
	return t
}

// Validate accepts candidate when the fraction of recognised words is at least
// the threshold. A candidate without any words is always rejected.
func (v *WordListValidator) Validate(candidate string) bool {
	found, total := v.count(candidate)
	if total == 0 {
		return false
	}
	return float64(found)/float64(total) >= v.Threshold()
}

// Score returns the fraction of recognised words, or 0 for a candidate without words.
func (v *WordListValidator) Score(candidate string) float64 {
	found, total := v.count(candidate)
	if total == 0 {
		return 0
	}
	return float64(found) / float64(total)
}

func (v *WordListValidator) count(candidate string) (found, total int) {
	for _, w := range Words(candidate) {
		total++
		if v.words != nil && v.words.Contains(w) {
			found++
		}
	}
	return found, total
}

func clampThreshold(t float64) float64 {
	switch {
	case math.IsNaN(t):
		return DefaultThreshold
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

// Words splits text into words: runs of ASCII letters, optionally joined by
// apostrophes ("don't"). Everything else is a delimiter.
func Words(text string) []string {
	var words []string
	start := -1
	for i := 0; i <= len(text); i++ {
		var c byte
		if i < len(text) {
			c = text[i]
		}
		if isLetter(c) {
			if start < 0 {
				start = i
			}
			continue
		}
		if c == '\'' && start >= 0 && i+1 < len(text) && isLetter(text[i+1]) {
			continue
		}
		if start >= 0 {
			words = append(words, text[start:i])
			start = -1
		}
	}
	return words
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
