package handlers_test

import (
	"SecretInk/internal/cache"
	"SecretInk/internal/config"
	"SecretInk/internal/handlers"
	"SecretInk/internal/repo"
	"SecretInk/internal/service"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

var testEpoch = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

type testServer struct {
	router http.Handler
	db     *gorm.DB
	clock  *fakeclock.FakeClock
}

// newTestServer поднимает роутер поверх настоящих сервисов и in-memory SQLite.
func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(repo.Models...))

	if cfg == nil {
		cfg = &config.Config{RequestsPerMinute: 1000, AllowedOrigins: "*"}
	}
	clk := fakeclock.NewFakeClock(testEpoch)
	logger := zap.NewNop().Sugar()
	counts, err := cache.NewCountsCache(64, time.Minute, clk)
	require.NoError(t, err)

	br := repo.NewBoardRepository(db)
	cr := repo.NewConfessionRepository(db)
	rr := repo.NewReactionRepository(db)

	h := handlers.NewHandler(
		service.NewBoardService(br, clk, logger),
		service.NewConfessionService(cr, br, clk, logger),
		service.NewReactionService(rr, cr, counts, clk, logger),
		logger,
		cfg,
	)
	return &testServer{router: h.Router, db: db, clock: clk}
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&v))
	return v
}

func (s *testServer) createBoard(t *testing.T, body map[string]any) (string, string) {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/api/boards", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	resp := decode[map[string]string](t, rr)
	return resp["board_id"], resp["slug"]
}

func (s *testServer) postConfession(t *testing.T, boardID, content, fp string) string {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/api/boards/"+boardID+"/confessions",
		map[string]any{"content": content, "fingerprint": fp})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[map[string]string](t, rr)["confession_id"]
}
