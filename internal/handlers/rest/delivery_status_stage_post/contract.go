//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_status_stage_post_test
package delivery_status_stage_post

import (
	"context"

	"tracker/internal/entities"
	"tracker/internal/service/staging"
	"tracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	StageStatusChange(ctx context.Context, deliveryID int64, status entities.DeliveryStatusType) (*staging.Stage, error)
}
