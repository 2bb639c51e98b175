package draftexpiry

import (
	"context"
	"time"
)

// DraftRepository интерфейс удаления устаревших черновиков
type DraftRepository interface {
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// runTimeout ограничение одного прохода очистки
const runTimeout = 20 * time.Second

// Worker периодически удаляет черновики, которые не обновлялись дольше ttl
type Worker struct {
	repo     DraftRepository
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	logger   Logger
}

// New создает воркер очистки черновиков
func New(repo DraftRepository, ttl, interval time.Duration, logger Logger) *Worker {
	return &Worker{
		repo:     repo,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run выполняет очистку сразу и затем каждые interval, пока ctx не отменен
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("DraftExpiry: started, ttl=%s, interval=%s", w.ttl, w.interval)

	w.RunOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("DraftExpiry: stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce удаляет черновики, не обновлявшиеся с момента now-ttl
func (w *Worker) RunOnce(ctx context.Context) int64 {
	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	start := w.now()
	removed, err := w.repo.DeleteExpired(runCtx, start.Add(-w.ttl))
	if err != nil {
		w.logger.Error("DraftExpiry: run failed: %v", err)
		return 0
	}

	if removed > 0 {
		w.logger.Info("DraftExpiry: removed %d drafts in %s", removed, time.Since(start))
	}
	return removed
}
