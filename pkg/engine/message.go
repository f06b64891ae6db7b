package engine

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/cipherkit/pkg/caesar"
)

// Message renders err for people. Unknown errors fall back to err.Error().
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, caesar.ErrNonASCII):
		return "Error: The input text contained non-ASCII characters, which are unsupported."
	case errors.Is(err, caesar.ErrPlaintextInvalid):
		return "Error: The most likely decrypted plaintext did not make sense to the validator you chose. " +
			"Adjust your known plaintext (crib) or word list validation threshold."
	case errors.Is(err, ErrEmptyCrib):
		return "Error: The known plaintext (crib) must not be empty."
	case errors.Is(err, ErrValidatorUnavailable):
		return "Error: The word list could not be loaded."
	default:
		return "Error: " + err.Error()
	}
}

// SuccessMessage renders a successful automatic decryption.
func SuccessMessage(res caesar.Result) string {
	return fmt.Sprintf("Success after %d iterations:\n%s", res.Iterations, res.Plaintext)
}
