package repo

import (
	"SecretInk/internal/model"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// Models перечисляет все модели, участвующие в миграции, в порядке зависимостей.
var Models = []any{&model.Board{}, &model.Confession{}, &model.Reaction{}}

// InitDB открывает подключение к БД и выполняет миграции.
// DSN вида postgres://... обслуживает Postgres, всё остальное считается путём к файлу SQLite.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialectorFor(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

func dialectorFor(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn)
	}
	// чистый Go-драйвер modernc, регистрируется под именем "sqlite"
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: sqliteDSN(dsn)}
}

// sqlitePragmas применяются драйвером к каждому новому соединению пула:
// WAL не блокирует читателей, busy_timeout заставляет писателей ждать блокировку,
// а immediate-транзакции берут её сразу, без апгрейда read→write.
const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"

// sqliteDSN превращает путь к файлу в file: URI с параметрами соединения.
func sqliteDSN(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqlitePragmas
	}
	return dsn + "?" + sqlitePragmas
}
