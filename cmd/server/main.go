package main

import (
	"SecretInk/internal/cache"
	"SecretInk/internal/config"
	"SecretInk/internal/handlers"
	"SecretInk/internal/middleware"
	"SecretInk/internal/repo"
	"SecretInk/internal/scheduler"
	"SecretInk/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.cloudfoundry.org/clock"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.LogJSON {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	clk := clock.NewClock()
	counts, err := cache.NewCountsCache(cfg.CountsCacheSize, cfg.CountsCacheTTL, clk)
	if err != nil {
		sugar.Fatalw("failed to initialize counts cache", "error", err)
	}

	boardRepo := repo.NewBoardRepository(gormDB)
	confessionRepo := repo.NewConfessionRepository(gormDB)
	reactionRepo := repo.NewReactionRepository(gormDB)

	boardService := service.NewBoardService(boardRepo, clk, sugar)
	confessionService := service.NewConfessionService(confessionRepo, boardRepo, clk, sugar)
	reactionService := service.NewReactionService(reactionRepo, confessionRepo, counts, clk, sugar)
	cleanupService := service.NewCleanupService(boardRepo, confessionRepo, reactionRepo, counts, clk, sugar)

	sched := scheduler.New(cfg.SweepSchedule, cleanupService, sugar)
	if err := sched.Start(ctx); err != nil {
		sugar.Fatalw("failed to start scheduler", "schedule", cfg.SweepSchedule, "error", err)
	}

	h := handlers.NewHandler(boardService, confessionService, reactionService, sugar, cfg)

	addr := cfg.BaseURL
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"DatabaseDSN", cfg.DatabaseDSN,
		"SweepSchedule", cfg.SweepSchedule,
		"CountsCacheSize", cfg.CountsCacheSize,
		"CountsCacheTTL", cfg.CountsCacheTTL,
		"RequestsPerMinute", cfg.RequestsPerMinute,
		"AllowedOrigins", cfg.AllowedOrigins,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		sugar.Infow("Shutting down")
	case err := <-errCh:
		if err != nil {
			sugar.Errorw("Server failed", "error", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("HTTP shutdown failed", "error", err)
	}
	if err := sched.Stop(shutdownCtx); err != nil {
		sugar.Errorw("Scheduler stop failed", "error", err)
	}
}
