package handlers

import (
	"SecretInk/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// fingerprintHeader — запасной источник fingerprint, если в теле его нет.
const fingerprintHeader = "X-Fingerprint"

// maxBodyBytes ограничивает размер JSON-тела запроса.
const maxBodyBytes = 64 << 10

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// statusFor маппит доменные ошибки на HTTP-статусы.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrLocked):
		return http.StatusLocked
	case errors.Is(err, service.ErrExpired):
		return http.StatusGone
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError отдаёт {"error": "..."}; внутренние ошибки логируются и наружу не раскрываются.
func writeError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Errorw(op+": service error", "error", err)
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	logger.Debugw(op+": rejected", "status", status, "error", err)
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func fingerprintFrom(r *http.Request, body string) string {
	if body != "" {
		return body
	}
	return r.Header.Get(fingerprintHeader)
}
