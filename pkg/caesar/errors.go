package caesar

import "errors"

// The engine reports exactly two kinds of failure. Both are recoverable and
// leave the caller's input untouched.
var (
	// ErrNonASCII is returned when the input contains a byte outside 7-bit ASCII.
	// It is detected before any transformation takes place.
	ErrNonASCII = errors.New("input contains non-ASCII characters")

	// ErrPlaintextInvalid is returned when an automatic search tried every key
	// and the validator accepted none of the candidates.
	ErrPlaintextInvalid = errors.New("no candidate plaintext was accepted by the validator")
)
