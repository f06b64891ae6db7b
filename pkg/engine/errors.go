package engine

import "errors"

var (
	// ErrEmptyCrib is returned when a crib search is requested with an empty crib.
	// An empty crib would accept the first candidate regardless of content.
	ErrEmptyCrib = errors.New("crib must not be empty")

	// ErrValidatorUnavailable is returned when the word list behind the English
	// validator cannot be loaded.
	ErrValidatorUnavailable = errors.New("word list validator unavailable")
)
