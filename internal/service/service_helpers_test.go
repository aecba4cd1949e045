package service

import (
	"SecretInk/internal/cache"
	"SecretInk/internal/model"
	"SecretInk/internal/repo"
	"context"
	"path/filepath"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

var testEpoch = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

// testConfessionID — id сообщения для тестов на моках.
const testConfessionID = "6f1c1c9e-3b1e-4c8e-9a55-0c2f1f9f7a01"

// --- моки репозиториев ---

type mockBoardRepo struct{ mock.Mock }

func (m *mockBoardRepo) Create(ctx context.Context, b *model.Board) error {
	return m.Called(ctx, b).Error(0)
}
func (m *mockBoardRepo) GetByID(ctx context.Context, id string) (*model.Board, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Board); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBoardRepo) GetBySlug(ctx context.Context, slug string) (*model.Board, error) {
	args := m.Called(ctx, slug)
	if v, ok := args.Get(0).(*model.Board); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBoardRepo) ListExpired(ctx context.Context, now int64) ([]model.Board, error) {
	args := m.Called(ctx, now)
	if v, ok := args.Get(0).([]model.Board); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBoardRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.BoardRepository = (*mockBoardRepo)(nil)

type mockConfessionRepo struct{ mock.Mock }

func (m *mockConfessionRepo) Create(ctx context.Context, c *model.Confession) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockConfessionRepo) GetByID(ctx context.Context, id string) (*model.Confession, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Confession); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockConfessionRepo) ListByBoard(ctx context.Context, boardID string) ([]model.Confession, error) {
	args := m.Called(ctx, boardID)
	if v, ok := args.Get(0).([]model.Confession); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockConfessionRepo) CountByFingerprintSince(ctx context.Context, fingerprint string, since int64) (int64, error) {
	args := m.Called(ctx, fingerprint, since)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockConfessionRepo) ListExpired(ctx context.Context, now int64) ([]model.Confession, error) {
	args := m.Called(ctx, now)
	if v, ok := args.Get(0).([]model.Confession); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockConfessionRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.ConfessionRepository = (*mockConfessionRepo)(nil)

type mockReactionRepo struct{ mock.Mock }

func (m *mockReactionRepo) GetByConfessionAndFingerprint(ctx context.Context, confessionID, fingerprint string) (*model.Reaction, error) {
	args := m.Called(ctx, confessionID, fingerprint)
	if v, ok := args.Get(0).(*model.Reaction); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockReactionRepo) CreateIfAbsent(ctx context.Context, rc *model.Reaction) (bool, error) {
	args := m.Called(ctx, rc)
	return args.Bool(0), args.Error(1)
}
func (m *mockReactionRepo) UpdateType(ctx context.Context, id string, t model.ReactionType, at int64) error {
	return m.Called(ctx, id, t, at).Error(0)
}
func (m *mockReactionRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockReactionRepo) ListByConfession(ctx context.Context, confessionID string) ([]model.Reaction, error) {
	args := m.Called(ctx, confessionID)
	if v, ok := args.Get(0).([]model.Reaction); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockReactionRepo) DeleteByConfession(ctx context.Context, confessionID string) (int64, error) {
	args := m.Called(ctx, confessionID)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.ReactionRepository = (*mockReactionRepo)(nil)

// --- интеграционное окружение на SQLite ---

type testEnv struct {
	db          *gorm.DB
	clock       *fakeclock.FakeClock
	boardRepo   repo.BoardRepository
	confRepo    repo.ConfessionRepository
	reactRepo   repo.ReactionRepository
	counts      *cache.CountsCache
	boards      *BoardService
	confessions *ConfessionService
	reactions   *ReactionService
	cleanup     *CleanupService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(repo.Models...); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return newEnvWithDB(t, db)
}

// newFileTestEnv открывает файловую БД через repo.InitDB с обычным пулом соединений,
// как на сервере.
func newFileTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := repo.InitDB(filepath.Join(t.TempDir(), "secretink.db"))
	if err != nil {
		t.Fatalf("failed to init db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return newEnvWithDB(t, db)
}

func newEnvWithDB(t *testing.T, db *gorm.DB) *testEnv {
	t.Helper()
	clk := fakeclock.NewFakeClock(testEpoch)
	logger := zap.NewNop().Sugar()
	counts, err := cache.NewCountsCache(64, time.Minute, clk)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	env := &testEnv{
		db:        db,
		clock:     clk,
		boardRepo: repo.NewBoardRepository(db),
		confRepo:  repo.NewConfessionRepository(db),
		reactRepo: repo.NewReactionRepository(db),
		counts:    counts,
	}
	env.boards = NewBoardService(env.boardRepo, clk, logger)
	env.confessions = NewConfessionService(env.confRepo, env.boardRepo, clk, logger)
	env.reactions = NewReactionService(env.reactRepo, env.confRepo, counts, clk, logger)
	env.cleanup = NewCleanupService(env.boardRepo, env.confRepo, env.reactRepo, counts, clk, logger)
	return env
}

// хелперы
func ptrInt64(v int64) *int64 { return &v }
func ptrStr(s string) *string { return &s }

func msAfter(base time.Time, d time.Duration) int64 { return base.Add(d).UnixMilli() }
