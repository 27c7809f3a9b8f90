package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"tracker/internal/entities"
	"tracker/internal/service/auth"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

type AccountDB struct {
	ID           int64
	Email        string
	PasswordHash string
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.Account, error) {
	query := `SELECT id, email, password_hash
		FROM accounts
		WHERE email = $1`

	var accountModel AccountDB
	err := r.querier.QueryRow(ctx, query, email).
		Scan(
			&accountModel.ID,
			&accountModel.Email,
			&accountModel.PasswordHash,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}

		return nil, fmt.Errorf("unexpected account repository getbyemail error: %w", err)
	}

	return &entities.Account{
		ID:           accountModel.ID,
		Email:        accountModel.Email,
		PasswordHash: accountModel.PasswordHash,
	}, nil
}
