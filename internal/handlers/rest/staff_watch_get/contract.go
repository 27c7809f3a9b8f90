//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=staff_watch_get_test
package staff_watch_get

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

// Feed выдает подписку на целиковые снапшоты справочника сотрудников.
type Feed interface {
	Subscribe(ctx context.Context) (*feed.Subscription[entities.Staff], error)
}
