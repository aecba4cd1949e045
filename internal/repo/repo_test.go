package repo

import (
	"SecretInk/internal/model"
	"testing"

	"github.com/google/uuid"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует отдельную in-memory SQLite (modernc.org/sqlite) на каждый тест
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// одно соединение — без SQLITE_LOCKED на shared cache
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(Models...); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

func ptrInt64(v int64) *int64 { return &v }

func mkBoard(slug string, expiresAt *int64) *model.Board {
	return &model.Board{
		ID:         uuid.NewString(),
		Slug:       slug,
		Name:       "board " + slug,
		CreatedAt:  1_000,
		ExpiresAt:  expiresAt,
		OwnerToken: "owner-" + slug,
		Theme:      model.DefaultTheme,
	}
}

func mkConfession(boardID, fp string, createdAt, expiresAt int64) *model.Confession {
	return &model.Confession{
		ID:          uuid.NewString(),
		BoardID:     boardID,
		Content:     "hello",
		Fingerprint: fp,
		CreatedAt:   createdAt,
		ExpiresAt:   expiresAt,
	}
}
