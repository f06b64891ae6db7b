package caesar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cipherkit/pkg/caesar"
)

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  int
		want int
	}{
		{0, 0},
		{3, 3},
		{25, 25},
		{26, 0},
		{27, 1},
		{-1, 25},
		{-26, 0},
		{-27, 25},
		{32767, 32767 % 26},
		{-32768, 26 - 32768%26},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want%26, caesar.NormalizeKey(tt.key), "key %d", tt.key)
	}
}

func TestShift(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		key  int
		want string
	}{
		{name: "lowercase", text: "abc", key: 1, want: "bcd"},
		{name: "wraps around", text: "xyz", key: 3, want: "abc"},
		{name: "preserves case", text: "Attack at Dawn", key: 3, want: "Dwwdfn dw Gdzq"},
		{name: "negative key", text: "abc", key: -1, want: "zab"},
		{name: "large key", text: "abc", key: 26*40 + 2, want: "cde"},
		{name: "zero key", text: "Hello", key: 0, want: "Hello"},
		{name: "empty", text: "", key: 5, want: ""},
		{name: "punctuation and digits", text: "a1, b2! c3?", key: 1, want: "b1, c2! d3?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := caesar.Shift(tt.text, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShift_RoundTrip(t *testing.T) {
	t.Parallel()

	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"THE QUICK BROWN FOX",
		"Mixed Case, with punctuation; and 1234 digits.\n\tTabs too!",
		"~`@#$%^&*()_+-=[]{}|\\:\"'<>/",
		"",
	}

	for _, text := range texts {
		for key := -60; key <= 60; key++ {
			ct, err := caesar.Shift(text, key)
			require.NoError(t, err)

			pt, err := caesar.Unshift(ct, key)
			require.NoError(t, err)
			assert.Equal(t, text, pt, "key %d", key)
		}
	}
}

func TestShift_PassesThroughNonLetters(t *testing.T) {
	t.Parallel()

	var all []byte
	for b := 0; b < 0x80; b++ {
		c := byte(b)
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		all = append(all, c)
	}
	text := string(all)

	for key := -30; key <= 30; key++ {
		got, err := caesar.Shift(text, key)
		require.NoError(t, err)
		assert.Equal(t, text, got)

		got, err = caesar.Unshift(text, key)
		require.NoError(t, err)
		assert.Equal(t, text, got)
	}
}

func TestShift_KeyNormalization(t *testing.T) {
	t.Parallel()

	text := "Pack my box with five dozen liquor jugs."
	for key := -40; key <= 40; key++ {
		base, err := caesar.Shift(text, key)
		require.NoError(t, err)

		plus, err := caesar.Shift(text, key+26)
		require.NoError(t, err)
		minus, err := caesar.Shift(text, key-26)
		require.NoError(t, err)

		assert.Equal(t, base, plus)
		assert.Equal(t, base, minus)
	}
}

func TestShift_RejectsNonASCII(t *testing.T) {
	t.Parallel()

	for _, key := range []int{0, 1, 13, -7, 1000} {
		got, err := caesar.Shift("café", key)
		require.ErrorIs(t, err, caesar.ErrNonASCII)
		assert.Equal(t, "café", got)

		_, err = caesar.Unshift("naïve", key)
		require.ErrorIs(t, err, caesar.ErrNonASCII)
	}
}

func TestShiftBytes(t *testing.T) {
	t.Parallel()

	t.Run("transforms in place", func(t *testing.T) {
		buf := []byte("Hello, World")
		require.NoError(t, caesar.ShiftBytes(buf, 13))
		assert.Equal(t, "Uryyb, Jbeyq", string(buf))

		require.NoError(t, caesar.UnshiftBytes(buf, 13))
		assert.Equal(t, "Hello, World", string(buf))
	})

	t.Run("leaves buffer untouched on non-ASCII input", func(t *testing.T) {
		buf := []byte("abc café xyz")
		orig := append([]byte(nil), buf...)

		err := caesar.ShiftBytes(buf, 4)
		require.ErrorIs(t, err, caesar.ErrNonASCII)
		assert.Equal(t, orig, buf)
	})
}

func TestValidateASCII(t *testing.T) {
	t.Parallel()

	assert.NoError(t, caesar.ValidateASCII("plain text 123 \x00\x7f"))
	assert.ErrorIs(t, caesar.ValidateASCII("smörgåsbord"), caesar.ErrNonASCII)
	assert.ErrorIs(t, caesar.ValidateASCII("emoji 🙂"), caesar.ErrNonASCII)
}
