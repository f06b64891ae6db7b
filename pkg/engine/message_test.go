package engine_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cipherkit/pkg/caesar"
	"github.com/dmitrymomot/cipherkit/pkg/engine"
)

func TestMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"non ascii", caesar.ErrNonASCII, "Error: The input text contained non-ASCII characters, which are unsupported."},
		{"wrapped non ascii", fmt.Errorf("api: %w", caesar.ErrNonASCII), "Error: The input text contained non-ASCII characters, which are unsupported."},
		{"plaintext invalid", caesar.ErrPlaintextInvalid, "Error: The most likely decrypted plaintext did not make sense to the validator you chose. Adjust your known plaintext (crib) or word list validation threshold."},
		{"empty crib", engine.ErrEmptyCrib, "Error: The known plaintext (crib) must not be empty."},
		{"unavailable", errors.Join(engine.ErrValidatorUnavailable, errors.New("x")), "Error: The word list could not be loaded."},
		{"other", errors.New("disk full"), "Error: disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Message(tt.err))
		})
	}
}

func TestSuccessMessage(t *testing.T) {
	t.Parallel()
	got := engine.SuccessMessage(caesar.Result{Key: 7, Iterations: 8, Plaintext: "the quick brown fox"})
	assert.Equal(t, "Success after 8 iterations:\nthe quick brown fox", got)
}
