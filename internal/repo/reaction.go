package repo

import (
	"SecretInk/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReactionRepository определяет контракт доступа к реакциям.
type ReactionRepository interface {
	GetByConfessionAndFingerprint(ctx context.Context, confessionID, fingerprint string) (*model.Reaction, error)
	// CreateIfAbsent пытается вставить реакцию. Если пара (confession_id, fingerprint)
	// уже занята — ничего не делает. created=true, если запись создана этой операцией.
	CreateIfAbsent(ctx context.Context, rc *model.Reaction) (created bool, err error)
	// UpdateType меняет тип и метку времени; gorm.ErrRecordNotFound, если записи уже нет.
	UpdateType(ctx context.Context, id string, t model.ReactionType, at int64) error
	Delete(ctx context.Context, id string) (int64, error)
	ListByConfession(ctx context.Context, confessionID string) ([]model.Reaction, error)
	DeleteByConfession(ctx context.Context, confessionID string) (int64, error)
}

type reactionRepo struct {
	db *gorm.DB
}

// NewReactionRepository создаёт реализацию репозитория реакций.
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepo{db: db}
}

func (r *reactionRepo) GetByConfessionAndFingerprint(ctx context.Context, confessionID, fingerprint string) (*model.Reaction, error) {
	var rc model.Reaction
	err := r.db.WithContext(ctx).
		Where("confession_id = ? AND fingerprint = ?", confessionID, fingerprint).
		First(&rc).Error
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

func (r *reactionRepo) CreateIfAbsent(ctx context.Context, rc *model.Reaction) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "confession_id"}, {Name: "fingerprint"}},
		DoNothing: true,
	}).Create(rc)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *reactionRepo) UpdateType(ctx context.Context, id string, t model.ReactionType, at int64) error {
	tx := r.db.WithContext(ctx).
		Model(&model.Reaction{}).
		Where("id = ?", id).
		Updates(map[string]any{"type": t, "created_at": at})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reactionRepo) Delete(ctx context.Context, id string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Reaction{})
	return tx.RowsAffected, tx.Error
}

func (r *reactionRepo) ListByConfession(ctx context.Context, confessionID string) ([]model.Reaction, error) {
	var list []model.Reaction
	err := r.db.WithContext(ctx).Where("confession_id = ?", confessionID).Find(&list).Error
	return list, err
}

func (r *reactionRepo) DeleteByConfession(ctx context.Context, confessionID string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("confession_id = ?", confessionID).Delete(&model.Reaction{})
	return tx.RowsAffected, tx.Error
}
