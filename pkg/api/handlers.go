package api

import (
	"context"
	"log/slog"
	"math"
	"net/http"

	"github.com/dmitrymomot/cipherkit/pkg/caesar"
	"github.com/dmitrymomot/cipherkit/pkg/engine"
)

type handlers struct {
	cipher  Cipher
	logger  *slog.Logger
	maxBody int64
}

type shiftFunc func(ctx context.Context, text string, key int) (string, error)

type keyRequest struct {
	Text string `json:"text"`
	Key  *int   `json:"key"`
}

type cribRequest struct {
	Text string `json:"text"`
	Crib string `json:"crib"`
}

type englishRequest struct {
	Text      string   `json:"text"`
	Threshold *float64 `json:"threshold"`
}

type textRequest struct {
	Text string `json:"text"`
}

type textResponse struct {
	Text string `json:"text"`
}

type crackResponse struct {
	Key        int      `json:"key"`
	Iterations int      `json:"iterations"`
	Plaintext  string   `json:"plaintext"`
	ChiSquared *float64 `json:"chi_squared,omitempty"`
	Confidence float64  `json:"confidence"`
	Message    string   `json:"message"`
}

type candidateResponse struct {
	Key        int      `json:"key"`
	Plaintext  string   `json:"plaintext"`
	ChiSquared *float64 `json:"chi_squared,omitempty"`
}

// finite drops scores JSON cannot represent (text without letters scores +Inf).
func finite(f float64) *float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}

func newCrackResponse(res caesar.Result) crackResponse {
	return crackResponse{
		Key:        res.Key,
		Iterations: res.Iterations,
		Plaintext:  res.Plaintext,
		ChiSquared: finite(res.ChiSquared),
		Confidence: res.Confidence,
		Message:    engine.SuccessMessage(res),
	}
}

func (h *handlers) encrypt(w http.ResponseWriter, r *http.Request) {
	h.shift(w, r, h.cipher.Encrypt)
}

func (h *handlers) decrypt(w http.ResponseWriter, r *http.Request) {
	h.shift(w, r, h.cipher.Decrypt)
}

func (h *handlers) shift(w http.ResponseWriter, r *http.Request, fn shiftFunc) {
	var req keyRequest
	if !decode(w, r, h.maxBody, &req) {
		return
	}
	if req.Key == nil {
		respondError(w, http.StatusBadRequest, CodeBadRequest, "key is required")
		return
	}

	out, err := fn(r.Context(), req.Text, *req.Key)
	if err != nil {
		respondEngineError(w, r, h.logger, err)
		return
	}
	respondData(w, http.StatusOK, textResponse{Text: out})
}

func (h *handlers) crackCrib(w http.ResponseWriter, r *http.Request) {
	var req cribRequest
	if !decode(w, r, h.maxBody, &req) {
		return
	}

	res, err := h.cipher.DecryptWithCrib(r.Context(), req.Text, req.Crib)
	if err != nil {
		respondEngineError(w, r, h.logger, err)
		return
	}
	respondData(w, http.StatusOK, newCrackResponse(res))
}

func (h *handlers) crackEnglish(w http.ResponseWriter, r *http.Request) {
	var req englishRequest
	if !decode(w, r, h.maxBody, &req) {
		return
	}

	threshold := h.cipher.DefaultThreshold()
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	res, err := h.cipher.DecryptEnglish(r.Context(), req.Text, threshold)
	if err != nil {
		respondEngineError(w, r, h.logger, err)
		return
	}
	respondData(w, http.StatusOK, newCrackResponse(res))
}

func (h *handlers) candidates(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decode(w, r, h.maxBody, &req) {
		return
	}

	list, err := h.cipher.Candidates(r.Context(), req.Text)
	if err != nil {
		respondEngineError(w, r, h.logger, err)
		return
	}

	out := make([]candidateResponse, len(list))
	for i, c := range list {
		out[i] = candidateResponse{Key: c.Key, Plaintext: c.Plaintext, ChiSquared: finite(c.ChiSquared)}
	}
	respondData(w, http.StatusOK, out)
}

func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readyz reports 503 until the default word list validator is loaded.
func (h *handlers) readyz(w http.ResponseWriter, r *http.Request) {
	if !h.cipher.Ready() {
		respondError(w, http.StatusServiceUnavailable, CodeValidatorUnavailable, "word list not loaded")
		return
	}
	respondData(w, http.StatusOK, map[string]string{"status": "ready"})
}
