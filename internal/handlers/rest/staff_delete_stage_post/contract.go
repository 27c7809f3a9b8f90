//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=staff_delete_stage_post_test
package staff_delete_stage_post

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
	StageStaffDelete(ctx context.Context, staffID int64) (*staging.Stage, error)
}

// Capabilities решает, можно ли пользователю трогать справочник.
type Capabilities interface {
	Capabilities(email string) entities.Capabilities
}
