//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stage_confirm_post_test
package stage_confirm_post

import (
	"context"

	"tracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Confirm(ctx context.Context, stageID, actor string) error
}
