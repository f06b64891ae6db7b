package frequency

import "errors"

var (
	// ErrInvalidTable is returned when frequencies do not describe a valid distribution.
	ErrInvalidTable = errors.New("invalid frequency table")

	// ErrFailedToParseYAML is returned when a YAML table cannot be decoded.
	ErrFailedToParseYAML = errors.New("failed to parse YAML frequency table")

	// ErrParsingCancelled is returned when the context is done before parsing starts.
	ErrParsingCancelled = errors.New("frequency table parsing cancelled")
)
