package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ExpiredSessionCleaner удаляет сессии с истёкшим токеном
type ExpiredSessionCleaner interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// SessionSweeper периодически чистит истёкшие сессии
type SessionSweeper struct {
	sessions ExpiredSessionCleaner
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

// NewSessionSweeper создаёт фоновую задачу очистки
func NewSessionSweeper(sessions ExpiredSessionCleaner, interval time.Duration, logger *zap.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		now:      time.Now,
	}
}

// Start запускает очистку в фоне
func (s *SessionSweeper) Start(ctx context.Context) {
	s.logger.Info("Starting session sweeper", zap.Duration("interval", s.interval))

	go s.run(ctx)
}

// Stop останавливает очистку; повторный вызов безопасен
func (s *SessionSweeper) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping session sweeper")
		close(s.stopChan)
	})
}

func (s *SessionSweeper) run(ctx context.Context) {
	// Первый проход сразу при старте
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stopChan:
			s.logger.Info("Session sweeper stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Session sweeper cancelled")
			return
		}
	}
}

// sweep один проход очистки
func (s *SessionSweeper) sweep(ctx context.Context) {
	removed, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		s.logger.Error("Failed to delete expired sessions", zap.Error(err))
		return
	}
	if removed > 0 {
		s.logger.Info("Expired sessions removed", zap.Int64("count", removed))
	}
}
