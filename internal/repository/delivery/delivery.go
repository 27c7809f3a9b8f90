package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"tracker/internal/entities"
	"tracker/internal/service/delivery"
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

const deliveryColumns = `id, product_name, customer_name, address, status, branch, notes, product_image, created_at, last_updated_by, updated_at`

func (r *Repository) Create(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyModel := FromDomainModify(&deliveryModifyEntity)

	query := `
		INSERT INTO deliveries (product_name, customer_name, address, status, branch, notes, product_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + deliveryColumns

	var notes string
	if deliveryModifyModel.Notes != nil {
		notes = *deliveryModifyModel.Notes
	}
	var productImage []byte
	if deliveryModifyModel.ProductImage != nil {
		productImage = *deliveryModifyModel.ProductImage
	}

	var deliveryModel DeliveryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		deliveryModifyModel.ProductName,
		deliveryModifyModel.CustomerName,
		deliveryModifyModel.Address,
		deliveryModifyModel.Status,
		deliveryModifyModel.Branch,
		notes,
		productImage,
	).Scan(
		&deliveryModel.ID,
		&deliveryModel.ProductName,
		&deliveryModel.CustomerName,
		&deliveryModel.Address,
		&deliveryModel.Status,
		&deliveryModel.Branch,
		&deliveryModel.Notes,
		&deliveryModel.ProductImage,
		&deliveryModel.CreatedAt,
		&deliveryModel.LastUpdatedBy,
		&deliveryModel.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

func (r *Repository) Update(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyModel := FromDomainModify(&deliveryModifyEntity)

	builder := qb.
		Update("deliveries")

	// опциональные поля
	if deliveryModifyModel.ProductName != nil {
		builder = builder.Set("product_name", deliveryModifyModel.ProductName)
	}
	if deliveryModifyModel.CustomerName != nil {
		builder = builder.Set("customer_name", deliveryModifyModel.CustomerName)
	}
	if deliveryModifyModel.Address != nil {
		builder = builder.Set("address", deliveryModifyModel.Address)
	}
	if deliveryModifyModel.Status != nil {
		builder = builder.Set("status", deliveryModifyModel.Status)
	}
	if deliveryModifyModel.Notes != nil {
		builder = builder.Set("notes", deliveryModifyModel.Notes)
	}
	if deliveryModifyModel.LastUpdatedBy != nil {
		builder = builder.Set("last_updated_by", deliveryModifyModel.LastUpdatedBy)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": deliveryModifyModel.ID}).
		Suffix("RETURNING " + deliveryColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	var deliveryModel DeliveryDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&deliveryModel.ID,
			&deliveryModel.ProductName,
			&deliveryModel.CustomerName,
			&deliveryModel.Address,
			&deliveryModel.Status,
			&deliveryModel.Branch,
			&deliveryModel.Notes,
			&deliveryModel.ProductImage,
			&deliveryModel.CreatedAt,
			&deliveryModel.LastUpdatedBy,
			&deliveryModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}

		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1`

	var deliveryModel DeliveryDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&deliveryModel.ID,
			&deliveryModel.ProductName,
			&deliveryModel.CustomerName,
			&deliveryModel.Address,
			&deliveryModel.Status,
			&deliveryModel.Branch,
			&deliveryModel.Notes,
			&deliveryModel.ProductImage,
			&deliveryModel.CreatedAt,
			&deliveryModel.LastUpdatedBy,
			&deliveryModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}

		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

// GetAll возвращает доставки от новых к старым, как их показывает лента.
func (r *Repository) GetAll(ctx context.Context) ([]entities.Delivery, error) {
	query := `
	SELECT ` + deliveryColumns + `
	FROM deliveries
	ORDER BY created_at DESC, id DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
	}
	defer rows.Close()

	deliveryModels := make([]DeliveryDB, 0, 8)
	for rows.Next() {
		var deliveryModel DeliveryDB
		err := rows.Scan(
			&deliveryModel.ID,
			&deliveryModel.ProductName,
			&deliveryModel.CustomerName,
			&deliveryModel.Address,
			&deliveryModel.Status,
			&deliveryModel.Branch,
			&deliveryModel.Notes,
			&deliveryModel.ProductImage,
			&deliveryModel.CreatedAt,
			&deliveryModel.LastUpdatedBy,
			&deliveryModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
		}
		deliveryModels = append(deliveryModels, deliveryModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
	}

	return ToDomainList(deliveryModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM deliveries WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return delivery.ErrDeliveryNotFound
	}

	return nil
}
