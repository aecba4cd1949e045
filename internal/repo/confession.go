package repo

import (
	"SecretInk/internal/model"
	"context"

	"gorm.io/gorm"
)

// ConfessionRepository определяет контракт доступа к сообщениям.
type ConfessionRepository interface {
	Create(ctx context.Context, c *model.Confession) error
	GetByID(ctx context.Context, id string) (*model.Confession, error)
	// ListByBoard возвращает все сообщения доски, новые первыми. Истёкшие не отфильтрованы.
	ListByBoard(ctx context.Context, boardID string) ([]model.Confession, error)
	// CountByFingerprintSince считает сообщения с created_at >= since.
	CountByFingerprintSince(ctx context.Context, fingerprint string, since int64) (int64, error)
	ListExpired(ctx context.Context, now int64) ([]model.Confession, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type confessionRepo struct {
	db *gorm.DB
}

// NewConfessionRepository создаёт реализацию репозитория сообщений.
func NewConfessionRepository(db *gorm.DB) ConfessionRepository {
	return &confessionRepo{db: db}
}

func (r *confessionRepo) Create(ctx context.Context, c *model.Confession) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *confessionRepo) GetByID(ctx context.Context, id string) (*model.Confession, error) {
	var c model.Confession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *confessionRepo) ListByBoard(ctx context.Context, boardID string) ([]model.Confession, error) {
	var list []model.Confession
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *confessionRepo) CountByFingerprintSince(ctx context.Context, fingerprint string, since int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Confession{}).
		Where("fingerprint = ? AND created_at >= ?", fingerprint, since).
		Count(&n).Error
	return n, err
}

func (r *confessionRepo) ListExpired(ctx context.Context, now int64) ([]model.Confession, error) {
	var list []model.Confession
	err := r.db.WithContext(ctx).Where("expires_at < ?", now).Find(&list).Error
	return list, err
}

func (r *confessionRepo) Delete(ctx context.Context, id string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Confession{})
	return tx.RowsAffected, tx.Error
}
