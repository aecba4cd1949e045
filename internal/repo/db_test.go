package repo

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "file:secretink.db?"+sqlitePragmas, sqliteDSN("secretink.db"))
	assert.Equal(t, "file:/tmp/x.db?"+sqlitePragmas, sqliteDSN("/tmp/x.db"))
	assert.Equal(t, "file:x.db?mode=rwc&"+sqlitePragmas, sqliteDSN("file:x.db?mode=rwc"))
}

// Каждое соединение пула файловой БД получает WAL и busy_timeout.
func TestInitDB_SQLiteFileConnectionsArePragmaConfigured(t *testing.T) {
	db, err := InitDB(filepath.Join(t.TempDir(), "secretink.db"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	ctx := context.Background()
	// держим два соединения одновременно, чтобы второе было новым
	c1, err := sqlDB.Conn(ctx)
	require.NoError(t, err)
	defer c1.Close()
	c2, err := sqlDB.Conn(ctx)
	require.NoError(t, err)
	defer c2.Close()

	for i, conn := range []*sql.Conn{c1, c2} {
		var mode string
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
		assert.Equal(t, "wal", mode, "conn %d", i)

		var timeout int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
		assert.Equal(t, 5000, timeout, "conn %d", i)
	}
}
