package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers creates the background workers enabled by cfg.
func NewWorkers(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.Workers.CleanupInterval > 0 {
		ws.workers = append(ws.workers, NewCleanupWorker(
			storages.VerificationSessionRepository,
			storages.ExpiredTokenCleaner,
			cfg.App.Verification.SessionTTL,
			cfg.Workers.CleanupInterval,
			logger.Component("cleanup"),
		))
	}

	return ws
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// CleanupWorker periodically deletes expired verification sessions and,
// when the blacklist is kept in SQL, blacklist rows past their expiry.
type CleanupWorker struct {
	sessions store.VerificationSessionRepository
	tokens   store.ExpiredTokenCleaner

	sessionTTL time.Duration
	interval   time.Duration
	now        func() time.Time

	logger *logger.Logger
}

// NewCleanupWorker creates a CleanupWorker. tokens may be nil.
func NewCleanupWorker(sessions store.VerificationSessionRepository, tokens store.ExpiredTokenCleaner,
	sessionTTL, interval time.Duration, logger *logger.Logger) *CleanupWorker {
	return &CleanupWorker{
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
		interval:   interval,
		now:        time.Now,
		logger:     logger,
	}
}

func (w *CleanupWorker) Run(ctx context.Context) {
	go w.loop(ctx)
}

func (w *CleanupWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("cleanup worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("cleanup worker stopped")
			return
		case <-ticker.C:
			w.cleanup(ctx)
		}
	}
}

// cleanup runs one pass. Failures are logged and retried on the next tick.
func (w *CleanupWorker) cleanup(ctx context.Context) {
	now := w.now()

	deleted, err := w.sessions.DeleteExpired(ctx, now.Add(-w.sessionTTL))
	if err != nil {
		w.logger.Err(err).Msg("error deleting expired verification sessions")
	} else if deleted > 0 {
		w.logger.Debug().Int64("deleted", deleted).Msg("expired verification sessions deleted")
	}

	if w.tokens == nil {
		return
	}

	deleted, err = w.tokens.DeleteExpired(ctx, now)
	if err != nil {
		w.logger.Err(err).Msg("error deleting expired blacklist entries")
	} else if deleted > 0 {
		w.logger.Debug().Int64("deleted", deleted).Msg("expired blacklist entries deleted")
	}
}
