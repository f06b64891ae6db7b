package caesar

import (
	"sort"

	"github.com/dmitrymomot/cipherkit/pkg/frequency"
)

// Result describes a successful automatic decryption.
type Result struct {
	// Key is the recovered shift: the ciphertext equals Shift(Plaintext, Key).
	Key int `json:"key"`
	// Iterations is how many keys were tried, counting from 1 (Key + 1).
	Iterations int `json:"iterations"`
	// Plaintext is the accepted candidate.
	Plaintext string `json:"plaintext"`
	// ChiSquared is the distance of Plaintext from the frequency table.
	ChiSquared float64 `json:"chi_squared"`
	// Confidence is the validator's score when it implements Scorer, else 1.
	Confidence float64 `json:"confidence"`
}

// AutoDecrypt searches for the key that turns buf into plaintext accepted by v.
//
// Keys 0 through 25 are tried once each, in ascending order, and the first
// accepted candidate wins. On success buf is overwritten with the plaintext.
// On failure buf is left untouched and the error is ErrNonASCII (checked
// before the search begins) or ErrPlaintextInvalid (no key was accepted).
//
// The table does not influence which key wins. It is only used to report the
// chi-squared distance of the winning candidate.
func AutoDecrypt(buf []byte, table frequency.Table, v Validator) (Result, error) {
	if err := validateASCIIBytes(buf); err != nil {
		return Result{}, err
	}

	candidate := make([]byte, len(buf))
	for key := 0; key < AlphabetSize; key++ {
		rotate(candidate, buf, NormalizeKey(-key))
		text := string(candidate)
		if !v.Validate(text) {
			continue
		}

		copy(buf, candidate)
		res := Result{
			Key:        key,
			Iterations: key + 1,
			Plaintext:  text,
			Confidence: 1,
		}
		if !table.IsZero() {
			res.ChiSquared = table.ChiSquared(text)
		}
		if s, ok := v.(Scorer); ok {
			res.Confidence = s.Score(text)
		}
		return res, nil
	}

	return Result{}, ErrPlaintextInvalid
}

// AutoDecryptString is AutoDecrypt for immutable strings.
func AutoDecryptString(text string, table frequency.Table, v Validator) (Result, error) {
	return AutoDecrypt([]byte(text), table, v)
}

// Candidate is one of the 26 possible decryptions of a ciphertext.
type Candidate struct {
	Key        int     `json:"key"`
	Plaintext  string  `json:"plaintext"`
	ChiSquared float64 `json:"chi_squared"`
}

// Candidates returns every decryption of text ranked by chi-squared distance
// from table, closest first. Equal scores keep ascending key order.
func Candidates(text string, table frequency.Table) ([]Candidate, error) {
	if err := ValidateASCII(text); err != nil {
		return nil, err
	}

	src := []byte(text)
	out := make([]Candidate, 0, AlphabetSize)
	buf := make([]byte, len(src))
	for key := 0; key < AlphabetSize; key++ {
		rotate(buf, src, NormalizeKey(-key))
		plain := string(buf)
		out = append(out, Candidate{
			Key:        key,
			Plaintext:  plain,
			ChiSquared: table.ChiSquared(plain),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ChiSquared < out[j].ChiSquared
	})
	return out, nil
}
