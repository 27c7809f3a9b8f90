//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=audit_test
package audit

import (
	"context"

	"tracker/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, event entities.DeliveryEvent) (*entities.DeliveryEvent, error)
	GetByDeliveryID(ctx context.Context, deliveryID int64) ([]entities.DeliveryEvent, error)
}
