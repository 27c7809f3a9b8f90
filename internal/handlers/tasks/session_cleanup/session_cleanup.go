package session_cleanup

import (
	"context"
	"time"

	"tracker/pkg/logger"
)

type Service interface {
	CleanupExpiredSessions(ctx context.Context) (int, error)
}

type SessionCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewSessionCleanup(log logger.Logger, service Service, interval time.Duration) *SessionCleanup {
	return &SessionCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *SessionCleanup) TTL() time.Duration {
	return s.interval
}

func (s *SessionCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	removed, err := s.service.CleanupExpiredSessions(ctxWithTimeout)

	if removed > 0 {
		s.log.With(
			logger.NewField("expired_sessions", removed),
		).Info("session cleanup")
	}

	return err
}

func (s *SessionCleanup) Info() string {
	return "session cleanup"
}
