//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_events_get_test
package delivery_events_get

import (
	"context"

	"tracker/internal/entities"
	"tracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetDeliveryEvents(ctx context.Context, deliveryID int64) ([]entities.DeliveryEvent, error)
}
