//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=staging_test
package staging

import (
	"context"

	"tracker/internal/entities"
)

// Deliveries - подтверждаемые операции над доставками.
type Deliveries interface {
	GetDelivery(ctx context.Context, id int64) (*entities.Delivery, error)
	UpdateDeliveryStatus(ctx context.Context, id int64, status entities.DeliveryStatusType, actor string) (*entities.Delivery, error)
	DeleteDelivery(ctx context.Context, id int64) error
}

// StaffDirectory - подтверждаемые операции над справочником сотрудников.
type StaffDirectory interface {
	GetStaffMember(ctx context.Context, id int64) (*entities.Staff, error)
	DeleteStaffMember(ctx context.Context, id int64) error
}
