package service

import (
	"SecretInk/internal/model"
	"SecretInk/internal/repo"
	"SecretInk/internal/token"
	"context"
	"errors"
	"fmt"
	"strings"

	"code.cloudfoundry.org/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxSlugAttempts = 5

// BoardService инкапсулирует бизнес-логику работы с досками.
type BoardService struct {
	repo   repo.BoardRepository
	clock  clock.Clock
	logger *zap.SugaredLogger
}

func NewBoardService(r repo.BoardRepository, clk clock.Clock, logger *zap.SugaredLogger) *BoardService {
	return &BoardService{repo: r, clock: clk, logger: logger}
}

// CreateBoardInput — параметры создания доски. ExpiresAt в миллисекундах Unix.
type CreateBoardInput struct {
	Name        string
	Description *string
	ExpiresAt   *int64
	Theme       model.Theme
}

// CreateBoardResult — owner token наружу не возвращается.
type CreateBoardResult struct {
	BoardID string
	Slug    string
}

// Create валидирует вход, генерирует slug и owner token и сохраняет доску.
func (s *BoardService) Create(ctx context.Context, in CreateBoardInput) (CreateBoardResult, error) {
	now := s.clock.Now()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return CreateBoardResult{}, fmt.Errorf("%w: board name is required", ErrValidation)
	}

	theme := in.Theme
	if theme == "" {
		theme = model.DefaultTheme
	}
	if !theme.Valid() {
		return CreateBoardResult{}, fmt.Errorf("%w: unknown theme %q", ErrValidation, in.Theme)
	}

	expiresAt := now.Add(DefaultBoardLifetime).UnixMilli()
	if in.ExpiresAt != nil {
		if *in.ExpiresAt < now.Add(MinBoardLifetime).UnixMilli() {
			return CreateBoardResult{}, fmt.Errorf("%w: board expiry must be at least 1 hour from now", ErrValidation)
		}
		if *in.ExpiresAt > now.Add(MaxBoardLifetime).UnixMilli() {
			return CreateBoardResult{}, fmt.Errorf("%w: board expiry cannot exceed 14 days from now", ErrValidation)
		}
		expiresAt = *in.ExpiresAt
	}

	slug, err := s.freeSlug(ctx)
	if err != nil {
		return CreateBoardResult{}, err
	}
	ownerToken, err := token.OwnerToken()
	if err != nil {
		return CreateBoardResult{}, fmt.Errorf("generate owner token: %w", err)
	}

	b := &model.Board{
		ID:          uuid.NewString(),
		Slug:        slug,
		Name:        name,
		Description: nonEmpty(in.Description),
		CreatedAt:   now.UnixMilli(),
		ExpiresAt:   &expiresAt,
		OwnerToken:  ownerToken,
		Theme:       theme,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return CreateBoardResult{}, fmt.Errorf("create board: %w", err)
	}

	s.logger.Infow("board created", "board_id", b.ID, "slug", b.Slug, "expires_at", expiresAt)
	return CreateBoardResult{BoardID: b.ID, Slug: b.Slug}, nil
}

// freeSlug подбирает slug, ещё не занятый другой доской.
func (s *BoardService) freeSlug(ctx context.Context) (string, error) {
	for i := 0; i < maxSlugAttempts; i++ {
		slug, err := token.Slug()
		if err != nil {
			return "", fmt.Errorf("generate slug: %w", err)
		}
		_, err = s.repo.GetBySlug(ctx, slug)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return slug, nil
		}
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		s.logger.Warnw("slug collision, regenerating", "slug", slug)
	}
	return "", fmt.Errorf("no free slug after %d attempts", maxSlugAttempts)
}

// GetBySlug возвращает публичную проекцию живой доски.
// Для отсутствующей и истёкшей доски ok=false без ошибки.
func (s *BoardService) GetBySlug(ctx context.Context, slug string) (model.PublicBoard, bool, error) {
	b, err := s.repo.GetBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PublicBoard{}, false, nil
	}
	if err != nil {
		return model.PublicBoard{}, false, fmt.Errorf("get board: %w", err)
	}
	if b.ExpiredAt(s.clock.Now()) {
		return model.PublicBoard{}, false, nil
	}
	return b.Public(), true, nil
}

// nonEmpty превращает пустую строку в отсутствующее значение.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
