package service

import (
	"SecretInk/internal/cache"
	"SecretInk/internal/model"
	"SecretInk/internal/repo"
	"context"
	"fmt"

	"code.cloudfoundry.org/clock"
	"go.uber.org/zap"
)

// CleanupStats — сколько записей удалил один проход очистки.
type CleanupStats struct {
	Boards      int64
	Confessions int64
	Reactions   int64
}

// CleanupService удаляет истёкшие доски, сообщения и реакции.
type CleanupService struct {
	boards      repo.BoardRepository
	confessions repo.ConfessionRepository
	reactions   repo.ReactionRepository
	counts      *cache.CountsCache
	clock       clock.Clock
	logger      *zap.SugaredLogger
}

func NewCleanupService(
	br repo.BoardRepository,
	cr repo.ConfessionRepository,
	rr repo.ReactionRepository,
	counts *cache.CountsCache,
	clk clock.Clock,
	logger *zap.SugaredLogger,
) *CleanupService {
	return &CleanupService{boards: br, confessions: cr, reactions: rr, counts: counts, clock: clk, logger: logger}
}

// CleanupExpired выполняет два прохода:
//  1. истёкшие доски вместе с их сообщениями и реакциями;
//  2. истёкшие сообщения, оставшиеся после первого прохода, вместе с реакциями.
//
// Общей транзакции нет: каждое удаление фиксируется отдельно, и прерванный
// проход безопасно продолжится при следующем запуске.
func (s *CleanupService) CleanupExpired(ctx context.Context) (CleanupStats, error) {
	var stats CleanupStats
	now := s.clock.Now().UnixMilli()

	boards, err := s.boards.ListExpired(ctx, now)
	if err != nil {
		return stats, fmt.Errorf("list expired boards: %w", err)
	}
	for _, b := range boards {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		confessions, err := s.confessions.ListByBoard(ctx, b.ID)
		if err != nil {
			return stats, fmt.Errorf("list confessions of board %s: %w", b.ID, err)
		}
		for _, c := range confessions {
			if err := s.purgeConfession(ctx, c, &stats); err != nil {
				return stats, err
			}
		}
		n, err := s.boards.Delete(ctx, b.ID)
		if err != nil {
			return stats, fmt.Errorf("delete board %s: %w", b.ID, err)
		}
		stats.Boards += n
	}

	confessions, err := s.confessions.ListExpired(ctx, now)
	if err != nil {
		return stats, fmt.Errorf("list expired confessions: %w", err)
	}
	for _, c := range confessions {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if err := s.purgeConfession(ctx, c, &stats); err != nil {
			return stats, err
		}
	}

	fields := []any{
		"boards", stats.Boards,
		"confessions", stats.Confessions,
		"reactions", stats.Reactions,
	}
	if s.counts != nil {
		fields = append(fields, "counts_cached", s.counts.Len())
	}
	s.logger.Infow("expired records cleaned up", fields...)
	return stats, nil
}

// purgeConfession удаляет реакции сообщения, затем само сообщение.
func (s *CleanupService) purgeConfession(ctx context.Context, c model.Confession, stats *CleanupStats) error {
	n, err := s.reactions.DeleteByConfession(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("delete reactions of confession %s: %w", c.ID, err)
	}
	stats.Reactions += n

	n, err = s.confessions.Delete(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("delete confession %s: %w", c.ID, err)
	}
	stats.Confessions += n

	if s.counts != nil {
		s.counts.Invalidate(c.ID)
	}
	return nil
}
