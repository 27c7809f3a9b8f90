package staff

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"tracker/internal/entities"
	"tracker/internal/repository"
	"tracker/internal/service/staff"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, staffModifyEntity entities.StaffModify) (*entities.Staff, error) {
	staffModifyModel := FromDomainModify(&staffModifyEntity)

	query := `INSERT INTO staff (name, email, phone, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, phone, role`

	var role string
	if staffModifyModel.Role != nil {
		role = *staffModifyModel.Role
	}

	var staffModel StaffDB
	err := r.querier.QueryRow(
		ctx,
		query,
		staffModifyModel.Name,
		staffModifyModel.Email,
		staffModifyModel.Phone,
		role,
	).Scan(
		&staffModel.ID,
		&staffModel.Name,
		&staffModel.Email,
		&staffModel.Phone,
		&staffModel.Role,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, staff.ErrStaffEmailTaken
		}
		return nil, fmt.Errorf("unexpected staff repository create error: %w", err)
	}

	return ToDomain(&staffModel), nil
}

func (r *Repository) Update(ctx context.Context, staffModifyEntity entities.StaffModify) (*entities.Staff, error) {
	staffModifyModel := FromDomainModify(&staffModifyEntity)

	builder := qb.
		Update("staff")

	// опциональные поля
	if staffModifyModel.Name != nil {
		builder = builder.Set("name", staffModifyModel.Name)
	}
	if staffModifyModel.Email != nil {
		builder = builder.Set("email", staffModifyModel.Email)
	}
	if staffModifyModel.Phone != nil {
		builder = builder.Set("phone", staffModifyModel.Phone)
	}
	if staffModifyModel.Role != nil {
		builder = builder.Set("role", staffModifyModel.Role)
	}

	builder = builder.
		Where(sq.Eq{"id": staffModifyModel.ID}).
		Suffix("RETURNING id, name, email, phone, role")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected staff repository update error: %w", err)
	}

	var staffModel StaffDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&staffModel.ID,
			&staffModel.Name,
			&staffModel.Email,
			&staffModel.Phone,
			&staffModel.Role,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, staff.ErrStaffNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, staff.ErrStaffEmailTaken
		}

		return nil, fmt.Errorf("unexpected staff repository update error: %w", err)
	}

	return ToDomain(&staffModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Staff, error) {
	query := `SELECT id, name, email, phone, role
		FROM staff
		WHERE id = $1`

	var staffModel StaffDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&staffModel.ID,
			&staffModel.Name,
			&staffModel.Email,
			&staffModel.Phone,
			&staffModel.Role,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, staff.ErrStaffNotFound
		}

		return nil, fmt.Errorf("unexpected staff repository getbyid error: %w", err)
	}

	return ToDomain(&staffModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Staff, error) {
	query := `
	SELECT id, name, email, phone, role
	FROM staff
	ORDER BY name, id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected staff repository getall error: %w", err)
	}
	defer rows.Close()

	staffModels := make([]StaffDB, 0, 8)
	for rows.Next() {
		var staffModel StaffDB
		err := rows.Scan(
			&staffModel.ID,
			&staffModel.Name,
			&staffModel.Email,
			&staffModel.Phone,
			&staffModel.Role,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected staff repository getall error: %w", err)
		}
		staffModels = append(staffModels, staffModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected staff repository getall error: %w", err)
	}

	return ToDomainList(staffModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM staff WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected staff repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}
