package handlers

import (
	"SecretInk/internal/model"
	"SecretInk/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReactionHandler обрабатывает переключение реакций и счётчики.
type ReactionHandler struct {
	ReactionService *service.ReactionService
	Logger          *zap.SugaredLogger
}

// NewReactionHandler создаёт хендлер реакций
func NewReactionHandler(reactionService *service.ReactionService, logger *zap.SugaredLogger) *ReactionHandler {
	return &ReactionHandler{ReactionService: reactionService, Logger: logger}
}

type toggleReactionRequest struct {
	Type        string `json:"type"`
	Fingerprint string `json:"fingerprint"`
}

type toggleReactionResponse struct {
	Action string `json:"action"`
}

// CountsDTO — счётчики реакций по типам.
type CountsDTO struct {
	Love  int `json:"love"`
	Laugh int `json:"laugh"`
	Shock int `json:"shock"`
	Sad   int `json:"sad"`
}

// Toggle добавить, сменить или снять реакцию
func (h *ReactionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req toggleReactionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.Logger.Warnw("ToggleReaction: invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request"})
		return
	}

	action, err := h.ReactionService.Toggle(
		r.Context(),
		chi.URLParam(r, "confessionID"),
		model.ReactionType(req.Type),
		fingerprintFrom(r, req.Fingerprint),
	)
	if err != nil {
		writeError(w, h.Logger, "ToggleReaction", err)
		return
	}

	writeJSON(w, http.StatusOK, toggleReactionResponse{Action: string(action)})
}

// Counts счётчики реакций сообщения
func (h *ReactionHandler) Counts(w http.ResponseWriter, r *http.Request) {
	c, err := h.ReactionService.GetCounts(r.Context(), chi.URLParam(r, "confessionID"))
	if err != nil {
		writeError(w, h.Logger, "ReactionCounts", err)
		return
	}

	writeJSON(w, http.StatusOK, CountsDTO{Love: c.Love, Laugh: c.Laugh, Shock: c.Shock, Sad: c.Sad})
}
