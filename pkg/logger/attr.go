package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RunID records the id of an automatic decryption run.
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// Key records a cipher key.
func Key(k int) slog.Attr {
	return slog.Int("key", k)
}

// Iterations records how many keys a search tried.
func Iterations(n int) slog.Attr {
	return slog.Int("iterations", n)
}

// Threshold records a word-list acceptance threshold.
func Threshold(t float64) slog.Attr {
	return slog.Float64("threshold", t)
}

// Source records the name of a lexicon source.
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Mode records which automatic decryption strategy ran ("crib" or "english").
func Mode(m string) slog.Attr {
	return slog.String("mode", m)
}

// TextLength records the size of the processed text in bytes. The text itself
// is never logged.
func TextLength(n int) slog.Attr {
	return slog.Int("text_len", n)
}
