package events

import (
	"context"

	"tracker/internal/entities"
	"tracker/pkg/logger"
)

// StatusPublisher - брокер для событий смен статусов.
type StatusPublisher interface {
	PublishStatusChange(ctx context.Context, change entities.DeliveryStatusChange) error
}

type notifierLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
