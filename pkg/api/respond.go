package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/cipherkit/pkg/caesar"
	"github.com/dmitrymomot/cipherkit/pkg/engine"
	"github.com/dmitrymomot/cipherkit/pkg/logger"
)

type envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Data: data})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, envelope{Error: &errorBody{Code: code, Message: message}})
}

// respondEngineError maps engine and cipher errors to HTTP statuses.
func respondEngineError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, caesar.ErrNonASCII):
		respondError(w, http.StatusUnprocessableEntity, CodeNonASCII, engine.Message(err))
	case errors.Is(err, caesar.ErrPlaintextInvalid):
		respondError(w, http.StatusUnprocessableEntity, CodePlaintextInvalid, engine.Message(err))
	case errors.Is(err, engine.ErrEmptyCrib):
		respondError(w, http.StatusBadRequest, CodeEmptyCrib, engine.Message(err))
	case errors.Is(err, engine.ErrValidatorUnavailable):
		log.ErrorContext(r.Context(), "validator unavailable", logger.Error(err))
		respondError(w, http.StatusServiceUnavailable, CodeValidatorUnavailable, engine.Message(err))
	default:
		log.ErrorContext(r.Context(), "request failed", logger.Error(err))
		respondError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}

// decode reads a JSON body into v, rejecting unknown fields and trailing data.
func decode(w http.ResponseWriter, r *http.Request, maxBytes int64, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBytes))
	dec.DisallowUnknownFields()

	err := dec.Decode(v)
	if err == nil && dec.More() {
		err = errors.New("request body must contain a single JSON object")
	}
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondError(w, http.StatusRequestEntityTooLarge, CodeRequestTooLarge, "request body too large")
		return false
	}
	respondError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
	return false
}
