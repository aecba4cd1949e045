package handlers

import (
	"SecretInk/internal/model"
	"SecretInk/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BoardHandler обрабатывает создание и чтение досок.
type BoardHandler struct {
	BoardService *service.BoardService
	Logger       *zap.SugaredLogger
}

// NewBoardHandler создаёт хендлер досок
func NewBoardHandler(boardService *service.BoardService, logger *zap.SugaredLogger) *BoardHandler {
	return &BoardHandler{BoardService: boardService, Logger: logger}
}

type createBoardRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ExpiresAt   *int64  `json:"expires_at,omitempty"`
	Theme       string  `json:"theme,omitempty"`
}

type createBoardResponse struct {
	BoardID string `json:"board_id"`
	Slug    string `json:"slug"`
}

// BoardDTO — публичное представление доски, без owner token.
type BoardDTO struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedAt   int64   `json:"created_at"`
	ExpiresAt   *int64  `json:"expires_at"`
	IsLocked    bool    `json:"is_locked"`
	Theme       string  `json:"theme"`
}

func toBoardDTO(b model.PublicBoard) BoardDTO {
	return BoardDTO{
		ID:          b.ID,
		Slug:        b.Slug,
		Name:        b.Name,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		ExpiresAt:   b.ExpiresAt,
		IsLocked:    b.IsLocked,
		Theme:       string(b.Theme),
	}
}

// Create создание доски
func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBoardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.Logger.Warnw("CreateBoard: invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request"})
		return
	}

	res, err := h.BoardService.Create(r.Context(), service.CreateBoardInput{
		Name:        req.Name,
		Description: req.Description,
		ExpiresAt:   req.ExpiresAt,
		Theme:       model.Theme(req.Theme),
	})
	if err != nil {
		writeError(w, h.Logger, "CreateBoard", err)
		return
	}

	writeJSON(w, http.StatusCreated, createBoardResponse{BoardID: res.BoardID, Slug: res.Slug})
}

// GetBySlug чтение доски по slug; истёкшая доска — 404
func (h *BoardHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	b, found, err := h.BoardService.GetBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, h.Logger, "GetBoard", err)
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "board not found"})
		return
	}

	writeJSON(w, http.StatusOK, toBoardDTO(b))
}
