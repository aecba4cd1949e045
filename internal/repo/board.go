package repo

import (
	"SecretInk/internal/model"
	"context"

	"gorm.io/gorm"
)

// BoardRepository определяет контракт доступа к доскам.
type BoardRepository interface {
	Create(ctx context.Context, b *model.Board) error
	// GetByID возвращает gorm.ErrRecordNotFound, если доски нет.
	GetByID(ctx context.Context, id string) (*model.Board, error)
	// GetBySlug ищет по уникальному индексу slug, срок жизни не проверяет.
	GetBySlug(ctx context.Context, slug string) (*model.Board, error)
	// ListExpired возвращает доски с expires_at строго меньше now (мс).
	ListExpired(ctx context.Context, now int64) ([]model.Board, error)
	// Delete удаляет доску; отсутствие записи не считается ошибкой.
	Delete(ctx context.Context, id string) (int64, error)
}

type boardRepo struct {
	db *gorm.DB
}

// NewBoardRepository создаёт реализацию репозитория досок.
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepo{db: db}
}

func (r *boardRepo) Create(ctx context.Context, b *model.Board) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *boardRepo) GetByID(ctx context.Context, id string) (*model.Board, error) {
	var b model.Board
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *boardRepo) GetBySlug(ctx context.Context, slug string) (*model.Board, error) {
	var b model.Board
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *boardRepo) ListExpired(ctx context.Context, now int64) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at < ?", now).
		Find(&boards).Error
	return boards, err
}

func (r *boardRepo) Delete(ctx context.Context, id string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Board{})
	return tx.RowsAffected, tx.Error
}
