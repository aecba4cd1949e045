package repo

import (
	"SecretInk/internal/model"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mkReaction(confessionID, fp string, t model.ReactionType) *model.Reaction {
	return &model.Reaction{
		ID:           uuid.NewString(),
		ConfessionID: confessionID,
		Fingerprint:  fp,
		Type:         t,
		CreatedAt:    1_000,
	}
}

func TestReactionRepository_CreateIfAbsent_UniquePair(t *testing.T) {
	db := newTestDB(t)
	r := NewReactionRepository(db)
	ctx := context.Background()

	created, err := r.CreateIfAbsent(ctx, mkReaction("c1", "fp", model.ReactionLove))
	require.NoError(t, err)
	assert.True(t, created)

	// та же пара — ничего не вставляется
	created, err = r.CreateIfAbsent(ctx, mkReaction("c1", "fp", model.ReactionSad))
	require.NoError(t, err)
	assert.False(t, created)

	// другой fingerprint — вставляется
	created, err = r.CreateIfAbsent(ctx, mkReaction("c1", "fp2", model.ReactionSad))
	require.NoError(t, err)
	assert.True(t, created)

	got, err := r.GetByConfessionAndFingerprint(ctx, "c1", "fp")
	require.NoError(t, err)
	assert.Equal(t, model.ReactionLove, got.Type)

	list, err := r.ListByConfession(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestReactionRepository_UpdateType(t *testing.T) {
	db := newTestDB(t)
	r := NewReactionRepository(db)
	ctx := context.Background()

	rc := mkReaction("c1", "fp", model.ReactionLove)
	_, err := r.CreateIfAbsent(ctx, rc)
	require.NoError(t, err)

	require.NoError(t, r.UpdateType(ctx, rc.ID, model.ReactionShock, 2_000))
	got, err := r.GetByConfessionAndFingerprint(ctx, "c1", "fp")
	require.NoError(t, err)
	assert.Equal(t, model.ReactionShock, got.Type)
	assert.Equal(t, int64(2_000), got.CreatedAt)

	err = r.UpdateType(ctx, "missing", model.ReactionSad, 3_000)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReactionRepository_DeleteAndDeleteByConfession(t *testing.T) {
	db := newTestDB(t)
	r := NewReactionRepository(db)
	ctx := context.Background()

	a := mkReaction("c1", "a", model.ReactionLove)
	b := mkReaction("c1", "b", model.ReactionLaugh)
	c := mkReaction("c2", "a", model.ReactionLaugh)
	for _, rc := range []*model.Reaction{a, b, c} {
		_, err := r.CreateIfAbsent(ctx, rc)
		require.NoError(t, err)
	}

	n, err := r.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = r.DeleteByConfession(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// повторно — ноль строк, без ошибки
	n, err = r.DeleteByConfession(ctx, "c1")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = r.GetByConfessionAndFingerprint(ctx, "c2", "a")
	assert.NoError(t, err)
}
