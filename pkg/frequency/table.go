package frequency

import (
	"fmt"
	"math"
	"sync"
)

const letters = 26

// sumTolerance is how far the frequencies may drift from 1.0 in total.
const sumTolerance = 0.02

// Table maps each letter a..z to its expected relative frequency in a language.
type Table struct {
	language string
	freqs    [letters]float64
}

// New builds a table from a letter -> frequency map. Keys are case-insensitive
// and every letter a..z must be present.
func New(language string, freqs map[rune]float64) (Table, error) {
	var t Table
	t.language = language

	if len(freqs) != letters {
		return Table{}, fmt.Errorf("%w: expected %d letters, got %d", ErrInvalidTable, letters, len(freqs))
	}

	seen := [letters]bool{}
	sum := 0.0
	for r, f := range freqs {
		idx, ok := letterIndex(r)
		if !ok {
			return Table{}, fmt.Errorf("%w: %q is not a Latin letter", ErrInvalidTable, r)
		}
		if seen[idx] {
			return Table{}, fmt.Errorf("%w: letter %q listed twice", ErrInvalidTable, r)
		}
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return Table{}, fmt.Errorf("%w: frequency of %q must be a non-negative number", ErrInvalidTable, r)
		}
		seen[idx] = true
		t.freqs[idx] = f
		sum += f
	}

	if math.Abs(sum-1) > sumTolerance {
		return Table{}, fmt.Errorf("%w: frequencies sum to %.4f", ErrInvalidTable, sum)
	}

	return t, nil
}

// Language returns the name of the language the table describes.
func (t Table) Language() string {
	return t.language
}

// Frequency returns the expected frequency of letter, case-insensitive.
// Anything that is not a Latin letter has frequency 0.
func (t Table) Frequency(letter byte) float64 {
	idx, ok := letterIndex(rune(letter))
	if !ok {
		return 0
	}
	return t.freqs[idx]
}

// Frequencies returns a copy of the table indexed from 'a' to 'z'.
func (t Table) Frequencies() [letters]float64 {
	return t.freqs
}

// IsZero reports whether t is the zero Table.
func (t Table) IsZero() bool {
	return t.language == "" && t.freqs == [letters]float64{}
}

// ChiSquared measures how far the letter distribution of text is from the
// table. Non-letters are ignored and case does not matter. Lower values mean a
// closer match; a text without letters scores +Inf.
func (t Table) ChiSquared(text string) float64 {
	var counts [letters]int
	total := 0
	for i := 0; i < len(text); i++ {
		if idx, ok := letterIndex(rune(text[i])); ok {
			counts[idx]++
			total++
		}
	}
	if total == 0 {
		return math.Inf(1)
	}

	score := 0.0
	for i, observed := range counts {
		expected := t.freqs[i] * float64(total)
		if expected == 0 {
			continue
		}
		diff := float64(observed) - expected
		score += diff * diff / expected
	}
	return score
}

func letterIndex(r rune) (int, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	}
	return 0, false
}

var (
	englishOnce  sync.Once
	englishTable Table
)

// English returns the built-in English reference table.
func English() Table {
	englishOnce.Do(func() {
		t, err := New("english", englishFrequencies)
		if err != nil {
			panic(fmt.Sprintf("frequency: built-in English table is invalid: %v", err))
		}
		englishTable = t
	})
	return englishTable
}

// Relative letter frequencies of English text.
var englishFrequencies = map[rune]float64{
	'a': 0.08167, 'b': 0.01492, 'c': 0.02782, 'd': 0.04253, 'e': 0.12702,
	'f': 0.02228, 'g': 0.02015, 'h': 0.06094, 'i': 0.06966, 'j': 0.00153,
	'k': 0.00772, 'l': 0.04025, 'm': 0.02406, 'n': 0.06749, 'o': 0.07507,
	'p': 0.01929, 'q': 0.00095, 'r': 0.05987, 's': 0.06327, 't': 0.09056,
	'u': 0.02758, 'v': 0.00978, 'w': 0.02360, 'x': 0.00150, 'y': 0.01974,
	'z': 0.00074,
}
