package event

import (
	"context"
	"fmt"
	"time"

	"tracker/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

type DeliveryEventDB struct {
	ID         int64
	DeliveryID int64
	OldStatus  string
	NewStatus  string
	ChangedBy  string
	OccurredAt time.Time
}

func (r *Repository) Create(ctx context.Context, eventEntity entities.DeliveryEvent) (*entities.DeliveryEvent, error) {
	query := `
		INSERT INTO delivery_events (delivery_id, old_status, new_status, changed_by, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, delivery_id, old_status, new_status, changed_by, occurred_at
	`

	var eventModel DeliveryEventDB
	err := r.querier.QueryRow(
		ctx,
		query,
		eventEntity.DeliveryID,
		string(eventEntity.OldStatus),
		string(eventEntity.NewStatus),
		eventEntity.ChangedBy,
		eventEntity.OccurredAt,
	).Scan(
		&eventModel.ID,
		&eventModel.DeliveryID,
		&eventModel.OldStatus,
		&eventModel.NewStatus,
		&eventModel.ChangedBy,
		&eventModel.OccurredAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected event repository create error: %w", err)
	}

	return toDomain(&eventModel), nil
}

// GetByDeliveryID возвращает журнал от свежих событий к старым.
func (r *Repository) GetByDeliveryID(ctx context.Context, deliveryID int64) ([]entities.DeliveryEvent, error) {
	query := `
	SELECT id, delivery_id, old_status, new_status, changed_by, occurred_at
	FROM delivery_events
	WHERE delivery_id = $1
	ORDER BY occurred_at DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("unexpected event repository getbydeliveryid error: %w", err)
	}
	defer rows.Close()

	eventModels := make([]DeliveryEventDB, 0, 8)
	for rows.Next() {
		var eventModel DeliveryEventDB
		err := rows.Scan(
			&eventModel.ID,
			&eventModel.DeliveryID,
			&eventModel.OldStatus,
			&eventModel.NewStatus,
			&eventModel.ChangedBy,
			&eventModel.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected event repository getbydeliveryid error: %w", err)
		}
		eventModels = append(eventModels, eventModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected event repository getbydeliveryid error: %w", err)
	}

	events := make([]entities.DeliveryEvent, 0, len(eventModels))
	for i := range eventModels {
		events = append(events, *toDomain(&eventModels[i]))
	}
	return events, nil
}

func toDomain(e *DeliveryEventDB) *entities.DeliveryEvent {
	if e == nil {
		return nil
	}
	return &entities.DeliveryEvent{
		ID:         e.ID,
		DeliveryID: e.DeliveryID,
		OldStatus:  entities.DeliveryStatusType(e.OldStatus),
		NewStatus:  entities.DeliveryStatusType(e.NewStatus),
		ChangedBy:  e.ChangedBy,
		OccurredAt: e.OccurredAt,
	}
}
