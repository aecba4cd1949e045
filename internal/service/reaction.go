package service

import (
	"SecretInk/internal/cache"
	"SecretInk/internal/model"
	"SecretInk/internal/repo"
	"context"
	"errors"
	"fmt"

	"code.cloudfoundry.org/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxToggleAttempts ограничивает перечитывания при конкурентных переключениях.
const maxToggleAttempts = 3

// ReactionService — переключение реакций и подсчёт агрегатов.
type ReactionService struct {
	reactions   repo.ReactionRepository
	confessions repo.ConfessionRepository
	counts      *cache.CountsCache
	clock       clock.Clock
	logger      *zap.SugaredLogger
}

// NewReactionService создаёт сервис; counts может быть nil — тогда счётчики не кэшируются.
func NewReactionService(rr repo.ReactionRepository, cr repo.ConfessionRepository, counts *cache.CountsCache, clk clock.Clock, logger *zap.SugaredLogger) *ReactionService {
	return &ReactionService{reactions: rr, confessions: cr, counts: counts, clock: clk, logger: logger}
}

// Toggle добавляет, меняет или снимает реакцию посетителя на сообщение.
func (s *ReactionService) Toggle(ctx context.Context, confessionID string, t model.ReactionType, fingerprint string) (ToggleAction, error) {
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown reaction type %q", ErrValidation, t)
	}
	if fingerprint == "" {
		return "", fmt.Errorf("%w: fingerprint is required", ErrValidation)
	}

	if !validID(confessionID) {
		return "", fmt.Errorf("confession %w", ErrNotFound)
	}
	c, err := s.confessions.GetByID(ctx, confessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("confession %w", ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get confession: %w", err)
	}
	if c.ExpiredAt(s.clock.Now()) {
		return "", fmt.Errorf("confession %w", ErrExpired)
	}

	for attempt := 0; attempt < maxToggleAttempts; attempt++ {
		action, done, err := s.applyToggle(ctx, confessionID, t, fingerprint)
		if err != nil {
			return "", err
		}
		if done {
			s.invalidate(confessionID)
			return action, nil
		}
		s.logger.Debugw("reaction changed concurrently, retrying",
			"confession_id", confessionID, "fingerprint", fingerprint, "attempt", attempt+1)
	}
	return "", fmt.Errorf("toggle reaction: %w", ErrConflict)
}

// applyToggle читает текущее состояние и выполняет один переход.
// done=false означает, что состояние изменилось между чтением и записью.
func (s *ReactionService) applyToggle(ctx context.Context, confessionID string, t model.ReactionType, fingerprint string) (ToggleAction, bool, error) {
	existing, err := s.reactions.GetByConfessionAndFingerprint(ctx, confessionID, fingerprint)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, fmt.Errorf("get reaction: %w", err)
	}

	var current *model.ReactionType
	if existing != nil {
		current = &existing.Type
	}

	now := s.clock.Now().UnixMilli()
	action := decideToggle(current, t)
	switch action {
	case ActionAdded:
		created, err := s.reactions.CreateIfAbsent(ctx, &model.Reaction{
			ID:           uuid.NewString(),
			ConfessionID: confessionID,
			Fingerprint:  fingerprint,
			Type:         t,
			CreatedAt:    now,
		})
		if err != nil {
			return "", false, fmt.Errorf("create reaction: %w", err)
		}
		return action, created, nil
	case ActionRemoved:
		n, err := s.reactions.Delete(ctx, existing.ID)
		if err != nil {
			return "", false, fmt.Errorf("delete reaction: %w", err)
		}
		// строку уже удалил параллельный запрос
		return action, n > 0, nil
	default:
		err := s.reactions.UpdateType(ctx, existing.ID, t, now)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return action, false, nil
		}
		if err != nil {
			return "", false, fmt.Errorf("update reaction: %w", err)
		}
		return action, true, nil
	}
}

// GetCounts возвращает число реакций каждого типа; отсутствующие типы — нули.
func (s *ReactionService) GetCounts(ctx context.Context, confessionID string) (model.ReactionCounts, error) {
	if !validID(confessionID) {
		return model.ReactionCounts{}, nil
	}
	if s.counts != nil {
		if counts, ok := s.counts.Get(confessionID); ok {
			return counts, nil
		}
	}

	list, err := s.reactions.ListByConfession(ctx, confessionID)
	if err != nil {
		return model.ReactionCounts{}, fmt.Errorf("list reactions: %w", err)
	}
	var counts model.ReactionCounts
	for _, r := range list {
		counts.Add(r.Type)
	}

	if s.counts != nil {
		s.counts.Set(confessionID, counts)
	}
	return counts, nil
}

func (s *ReactionService) invalidate(confessionID string) {
	if s.counts != nil {
		s.counts.Invalidate(confessionID)
	}
}
