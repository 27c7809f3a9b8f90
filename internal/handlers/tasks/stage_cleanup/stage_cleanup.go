package stage_cleanup

import (
	"context"
	"time"

	"tracker/pkg/logger"
)

type Service interface {
	CleanupExpiredStages(ctx context.Context) (int, error)
}

type StageCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewStageCleanup(log logger.Logger, service Service, interval time.Duration) *StageCleanup {
	return &StageCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *StageCleanup) TTL() time.Duration {
	return s.interval
}

func (s *StageCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	removed, err := s.service.CleanupExpiredStages(ctxWithTimeout)

	if removed > 0 {
		s.log.With(
			logger.NewField("expired_stages", removed),
		).Info("stage cleanup")
	}

	return err
}

func (s *StageCleanup) Info() string {
	return "stage cleanup"
}
