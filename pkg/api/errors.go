package api

import "errors"

var (
	// ErrStart indicates that the server failed to start.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
	// ErrAlreadyRunning is returned by Run when the server is already serving.
	ErrAlreadyRunning = errors.New("server already running")
)

// Error codes returned in the "code" field of error responses.
const (
	CodeBadRequest           = "bad_request"
	CodeRequestTooLarge      = "request_too_large"
	CodeNonASCII             = "non_ascii"
	CodePlaintextInvalid     = "plaintext_invalid"
	CodeEmptyCrib            = "empty_crib"
	CodeValidatorUnavailable = "validator_unavailable"
	CodeNotFound             = "not_found"
	CodeMethodNotAllowed     = "method_not_allowed"
	CodeInternal             = "internal_error"
)
