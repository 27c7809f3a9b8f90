//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_watch_get_test
package deliveries_watch_get

import (
	"context"

	"tracker/internal/entities"
	"tracker/internal/feed"
	"tracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Feed выдает подписку на целиковые снапшоты ленты доставок.
type Feed interface {
	Subscribe(ctx context.Context) (*feed.Subscription[entities.Delivery], error)
}

// Staff отдает последний снапшот справочника сотрудников. Из него
// строится индекс для расшифровки авторов последних правок.
type Staff interface {
	Current(ctx context.Context) ([]entities.Staff, error)
}
