package caesar

// AlphabetSize is the number of letters in the shifted alphabet.
const AlphabetSize = 26

// NormalizeKey maps any integer key onto [0, AlphabetSize).
func NormalizeKey(key int) int {
	return ((key % AlphabetSize) + AlphabetSize) % AlphabetSize
}

// ValidateASCII reports ErrNonASCII if text holds any byte above 0x7F.
func ValidateASCII(text string) error {
	for i := 0; i < len(text); i++ {
		if text[i] >= 0x80 {
			return ErrNonASCII
		}
	}
	return nil
}

func validateASCIIBytes(buf []byte) error {
	for _, b := range buf {
		if b >= 0x80 {
			return ErrNonASCII
		}
	}
	return nil
}

// Shift encrypts text by rotating every Latin letter forward by key positions.
// Letter case is preserved and all other ASCII characters pass through as is.
func Shift(text string, key int) (string, error) {
	buf := []byte(text)
	if err := ShiftBytes(buf, key); err != nil {
		return text, err
	}
	return string(buf), nil
}

// Unshift reverses Shift. Unshift(t, k) is equivalent to Shift(t, -k).
func Unshift(text string, key int) (string, error) {
	return Shift(text, -key)
}

// ShiftBytes rotates buf in place. The whole buffer is checked for non-ASCII
// bytes first, so on error buf is left exactly as it was.
func ShiftBytes(buf []byte, key int) error {
	if err := validateASCIIBytes(buf); err != nil {
		return err
	}
	rotate(buf, buf, NormalizeKey(key))
	return nil
}

// UnshiftBytes reverses ShiftBytes in place.
func UnshiftBytes(buf []byte, key int) error {
	return ShiftBytes(buf, -key)
}

// rotate writes src shifted by a normalized key into dst.
// dst and src may be the same slice; len(dst) must be at least len(src).
func rotate(dst, src []byte, key int) {
	for i, b := range src {
		switch {
		case b >= 'a' && b <= 'z':
			dst[i] = 'a' + (b-'a'+byte(key))%AlphabetSize
		case b >= 'A' && b <= 'Z':
			dst[i] = 'A' + (b-'A'+byte(key))%AlphabetSize
		default:
			dst[i] = b
		}
	}
}
