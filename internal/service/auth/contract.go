//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"tracker/internal/entities"
)

type AccountRepository interface {
	GetByEmail(ctx context.Context, email string) (*entities.Account, error)
}
