//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_get_test
package deliveries_get

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

// Feed отдает последний снапшот ленты доставок.
type Feed interface {
	Current(ctx context.Context) ([]entities.Delivery, error)
}

// Staff отдает последний снапшот справочника сотрудников. Из него
// строится индекс для расшифровки авторов последних правок.
type Staff interface {
	Current(ctx context.Context) ([]entities.Staff, error)
}
