//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_delete_stage_post_test
package delivery_delete_stage_post

import (
	"context"

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
	StageDeliveryDelete(ctx context.Context, deliveryID int64) (*staging.Stage, error)
}
