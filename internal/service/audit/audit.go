package audit

import (
	"context"
	"fmt"

	"tracker/internal/entities"
)

// Audit пишет журнал смен статусов. Запись идет из консьюмера брокера,
// поэтому сервис обязан быть идемпотентно-безопасным к повторной
// доставке: дубликат события это две одинаковые строки журнала, а не
// порча данных.
type Audit struct {
	repository Repository
}

func New(repository Repository) *Audit {
	return &Audit{repository: repository}
}

func (s *Audit) RecordStatusChange(ctx context.Context, change entities.DeliveryStatusChange) error {
	if change.DeliveryID <= 0 {
		return ErrInvalidDeliveryID
	}

	event := entities.DeliveryEvent{
		DeliveryID: change.DeliveryID,
		OldStatus:  change.OldStatus,
		NewStatus:  change.NewStatus,
		ChangedBy:  change.ChangedBy,
		OccurredAt: change.OccurredAt,
	}

	if _, err := s.repository.Create(ctx, event); err != nil {
		return fmt.Errorf("record status change: %w", err)
	}

	return nil
}

func (s *Audit) GetDeliveryEvents(ctx context.Context, deliveryID int64) ([]entities.DeliveryEvent, error) {
	if deliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	events, err := s.repository.GetByDeliveryID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery events: %w", err)
	}

	return events, nil
}
