package service

import (
	"SecretInk/internal/model"
	"SecretInk/internal/repo"
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"code.cloudfoundry.org/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ConfessionService — создание и выдача анонимных сообщений.
type ConfessionService struct {
	confessions repo.ConfessionRepository
	boards      repo.BoardRepository
	clock       clock.Clock
	logger      *zap.SugaredLogger
}

func NewConfessionService(cr repo.ConfessionRepository, br repo.BoardRepository, clk clock.Clock, logger *zap.SugaredLogger) *ConfessionService {
	return &ConfessionService{confessions: cr, boards: br, clock: clk, logger: logger}
}

// CreateConfessionInput — параметры нового сообщения.
type CreateConfessionInput struct {
	BoardID     string
	Content     string
	Nickname    *string
	Fingerprint string
}

// Create проверяет вход, лимит публикаций и состояние доски, затем сохраняет сообщение.
// Проверки выполняются строго по порядку; при любой ошибке запись не создаётся.
func (s *ConfessionService) Create(ctx context.Context, in CreateConfessionInput) (string, error) {
	n := utf8.RuneCountInString(in.Content)
	if n == 0 {
		return "", fmt.Errorf("%w: content cannot be empty", ErrValidation)
	}
	if n > MaxContentLength {
		return "", fmt.Errorf("%w: content too long (max %d characters)", ErrValidation, MaxContentLength)
	}
	if in.Fingerprint == "" {
		return "", fmt.Errorf("%w: fingerprint is required", ErrValidation)
	}

	now := s.clock.Now()

	// Мягкий лимит: между подсчётом и вставкой есть окно гонки.
	recent, err := s.confessions.CountByFingerprintSince(ctx, in.Fingerprint, now.Add(-RateLimitWindow).UnixMilli())
	if err != nil {
		return "", fmt.Errorf("count recent confessions: %w", err)
	}
	if recent >= RateLimitMaxPosts {
		s.logger.Infow("confession rate limited", "fingerprint", in.Fingerprint, "recent", recent)
		return "", fmt.Errorf("%w: try again in an hour", ErrRateLimited)
	}

	if !validID(in.BoardID) {
		return "", fmt.Errorf("board %w", ErrNotFound)
	}
	board, err := s.boards.GetByID(ctx, in.BoardID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("board %w", ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get board: %w", err)
	}
	if board.IsLocked {
		return "", fmt.Errorf("board %w", ErrLocked)
	}
	if board.ExpiredAt(now) {
		return "", fmt.Errorf("board %w", ErrExpired)
	}

	c := &model.Confession{
		ID:          uuid.NewString(),
		BoardID:     board.ID,
		Content:     in.Content,
		Nickname:    nonEmpty(in.Nickname),
		Fingerprint: in.Fingerprint,
		CreatedAt:   now.UnixMilli(),
		ExpiresAt:   confessionExpiry(now.UnixMilli(), board.ExpiresAt),
	}
	if err := s.confessions.Create(ctx, c); err != nil {
		return "", fmt.Errorf("create confession: %w", err)
	}
	return c.ID, nil
}

// confessionExpiry — не дольше собственного лимита и не дольше доски.
func confessionExpiry(createdAt int64, boardExpiresAt *int64) int64 {
	capped := createdAt + ConfessionLifetime.Milliseconds()
	if boardExpiresAt != nil && *boardExpiresAt < capped {
		return *boardExpiresAt
	}
	return capped
}

// List возвращает неистёкшие сообщения доски, новые первыми.
func (s *ConfessionService) List(ctx context.Context, boardID string) ([]model.Confession, error) {
	if !validID(boardID) {
		return []model.Confession{}, nil
	}
	all, err := s.confessions.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("list confessions: %w", err)
	}
	now := s.clock.Now()
	live := make([]model.Confession, 0, len(all))
	for _, c := range all {
		if c.VisibleAt(now) {
			live = append(live, c)
		}
	}
	return live, nil
}
