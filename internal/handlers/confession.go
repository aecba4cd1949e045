package handlers

import (
	"SecretInk/internal/model"
	"SecretInk/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ConfessionHandler обрабатывает публикацию и чтение сообщений доски.
type ConfessionHandler struct {
	ConfessionService *service.ConfessionService
	Logger            *zap.SugaredLogger
}

// NewConfessionHandler создаёт хендлер сообщений
func NewConfessionHandler(confessionService *service.ConfessionService, logger *zap.SugaredLogger) *ConfessionHandler {
	return &ConfessionHandler{ConfessionService: confessionService, Logger: logger}
}

type createConfessionRequest struct {
	Content     string  `json:"content"`
	Nickname    *string `json:"nickname,omitempty"`
	Fingerprint string  `json:"fingerprint"`
}

type createConfessionResponse struct {
	ConfessionID string `json:"confession_id"`
}

// ConfessionDTO — сообщение на проводе. Fingerprint наружу не отдаётся.
type ConfessionDTO struct {
	ID        string  `json:"id"`
	BoardID   string  `json:"board_id"`
	Content   string  `json:"content"`
	Nickname  *string `json:"nickname"`
	CreatedAt int64   `json:"created_at"`
	ExpiresAt int64   `json:"expires_at"`
}

func toConfessionDTO(c model.Confession) ConfessionDTO {
	return ConfessionDTO{
		ID:        c.ID,
		BoardID:   c.BoardID,
		Content:   c.Content,
		Nickname:  c.Nickname,
		CreatedAt: c.CreatedAt,
		ExpiresAt: c.ExpiresAt,
	}
}

// Create публикация сообщения на доске
func (h *ConfessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createConfessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.Logger.Warnw("CreateConfession: invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request"})
		return
	}

	id, err := h.ConfessionService.Create(r.Context(), service.CreateConfessionInput{
		BoardID:     chi.URLParam(r, "boardID"),
		Content:     req.Content,
		Nickname:    req.Nickname,
		Fingerprint: fingerprintFrom(r, req.Fingerprint),
	})
	if err != nil {
		writeError(w, h.Logger, "CreateConfession", err)
		return
	}

	writeJSON(w, http.StatusCreated, createConfessionResponse{ConfessionID: id})
}

// List живые сообщения доски, новые первыми
func (h *ConfessionHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ConfessionService.List(r.Context(), chi.URLParam(r, "boardID"))
	if err != nil {
		writeError(w, h.Logger, "ListConfessions", err)
		return
	}

	out := make([]ConfessionDTO, 0, len(items))
	for _, c := range items {
		out = append(out, toConfessionDTO(c))
	}
	writeJSON(w, http.StatusOK, out)
}
