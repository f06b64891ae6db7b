package caesar

import "strings"

// Validator judges whether a candidate decryption is plausible plaintext.
type Validator interface {
	// Validate reports whether candidate should be accepted.
	Validate(candidate string) bool
}

// Scorer is implemented by validators that can also express how confident
// they are in a candidate. Scores are in [0, 1].
type Scorer interface {
	Score(candidate string) float64
}

// ValidatorFunc adapts an ordinary function to the Validator interface.
type ValidatorFunc func(candidate string) bool

// Validate calls f(candidate).
func (f ValidatorFunc) Validate(candidate string) bool {
	return f(candidate)
}

// CribValidator accepts candidates containing a known piece of plaintext.
type CribValidator struct {
	crib string
}

// NewCribValidator returns a validator for the given crib.
// Matching is exact and case-sensitive. An empty crib matches every candidate.
func NewCribValidator(crib string) *CribValidator {
	return &CribValidator{crib: crib}
}

// Crib returns the substring the validator looks for.
func (v *CribValidator) Crib() string {
	return v.crib
}

// Validate reports whether candidate contains the crib.
func (v *CribValidator) Validate(candidate string) bool {
	return strings.Contains(candidate, v.crib)
}

// Score is 1 when the crib is present and 0 otherwise.
func (v *CribValidator) Score(candidate string) float64 {
	if v.Validate(candidate) {
		return 1
	}
	return 0
}
