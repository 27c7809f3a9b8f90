//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=staff_test
package staff

import (
	"context"

	"tracker/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, staffModifyEntity entities.StaffModify) (*entities.Staff, error)
	GetByID(ctx context.Context, id int64) (*entities.Staff, error)
	GetAll(ctx context.Context) ([]entities.Staff, error)
	Update(ctx context.Context, staffModifyEntity entities.StaffModify) (*entities.Staff, error)
	Delete(ctx context.Context, id int64) error
}

// Events - пост-коммитное уведомление ленты справочника сотрудников.
type Events interface {
	StaffChanged(ctx context.Context)
}
