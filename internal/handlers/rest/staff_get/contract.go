//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=staff_get_test
package staff_get

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

// Feed отдает последний снапшот справочника сотрудников.
type Feed interface {
	Current(ctx context.Context) ([]entities.Staff, error)
}
