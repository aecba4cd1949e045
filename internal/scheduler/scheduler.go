// Package scheduler периодически запускает очистку истёкших записей.
package scheduler

import (
	"SecretInk/internal/service"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSchedule — раз в час.
const DefaultSchedule = "@every 1h"

// Cleaner — задача очистки, которую запускает планировщик.
type Cleaner interface {
	CleanupExpired(ctx context.Context) (service.CleanupStats, error)
}

// Scheduler оборачивает cron и не допускает параллельных проходов очистки.
type Scheduler struct {
	cron     *cron.Cron
	cleaner  Cleaner
	schedule string
	logger   *zap.SugaredLogger

	// wg учитывает стартовый проход, запущенный вне расписания cron.
	wg sync.WaitGroup
}

func New(schedule string, cleaner Cleaner, logger *zap.SugaredLogger) *Scheduler {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	cl := cronLogger{logger}
	return &Scheduler{
		cron:     cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		cleaner:  cleaner,
		schedule: schedule,
		logger:   logger,
	}
}

// Start регистрирует задачу, сразу выполняет первый проход в фоне и запускает cron.
// Стартовый проход идёт через ту же цепочку обёрток, что и плановые.
func (s *Scheduler) Start(ctx context.Context) error {
	id, err := s.cron.AddFunc(s.schedule, func() { s.RunOnce(ctx) })
	if err != nil {
		return fmt.Errorf("invalid cleanup schedule %q: %w", s.schedule, err)
	}
	job := s.cron.Entry(id).WrappedJob
	s.cron.Start()
	s.logger.Infow("cleanup scheduler started", "schedule", s.schedule)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		job.Run()
	}()
	return nil
}

// RunOnce выполняет один проход очистки. Ошибки только логируются:
// следующий запуск подберёт оставшиеся записи.
func (s *Scheduler) RunOnce(ctx context.Context) {
	started := time.Now()
	stats, err := s.cleaner.CleanupExpired(ctx)
	if err != nil {
		s.logger.Errorw("cleanup failed", "error", err, "partial", stats)
		return
	}
	s.logger.Debugw("cleanup finished", "duration", time.Since(started))
}

// Stop останавливает cron и ждёт завершения всех проходов, включая стартовый,
// или отмены ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	cronDone := s.cron.Stop()
	done := make(chan struct{})
	go func() {
		<-cronDone.Done()
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger адаптирует zap к интерфейсу cron.Logger.
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}
