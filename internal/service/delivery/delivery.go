package delivery

import (
	"context"
	"fmt"
	"time"

	"tracker/internal/entities"
)

type Delivery struct {
	repository Repository
	events     Events
	images     ImageNormalizer
	txManager  TxManager
}

func New(
	repository Repository,
	events Events,
	images ImageNormalizer,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		repository: repository,
		events:     events,
		images:     images,
		txManager:  txManager,
	}
}

// CreateDelivery регистрирует новую доставку. Статус всегда New,
// ветка фиксируется при создании, изображение нормализуется до записи.
// Валидация идет до любого I/O.
func (s *Delivery) CreateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if deliveryModify.ProductName == nil ||
		deliveryModify.CustomerName == nil ||
		deliveryModify.Address == nil ||
		deliveryModify.Branch == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidText(*deliveryModify.ProductName) {
		return nil, ErrInvalidProductName
	}
	if !isValidText(*deliveryModify.CustomerName) {
		return nil, ErrInvalidCustomerName
	}
	if !isValidText(*deliveryModify.Address) {
		return nil, ErrInvalidAddress
	}
	if !isValidBranch(*deliveryModify.Branch) {
		return nil, ErrInvalidBranch
	}

	if deliveryModify.ProductImage != nil && len(*deliveryModify.ProductImage) > 0 {
		normalized, err := s.images.Normalize(*deliveryModify.ProductImage)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
		}
		deliveryModify.ProductImage = &normalized
	}

	initialStatus := entities.DefaultDeliveryStatus
	deliveryModify.Status = &initialStatus
	// авторство появляется только с первой мутацией
	deliveryModify.LastUpdatedBy = nil

	created, err := s.repository.Create(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	s.events.DeliveriesChanged(ctx)
	return created, nil
}

// UpdateDeliveryDetails меняет описательные поля доставки. Статус, ветка
// и изображение через этот путь не меняются. Каждая мутация штампуется
// почтой действующего пользователя и серверным временем.
func (s *Delivery) UpdateDeliveryDetails(ctx context.Context, deliveryModify entities.DeliveryModify, actor string) (*entities.Delivery, error) {
	if deliveryModify.ID == nil {
		return nil, ErrInvalidDeliveryID
	}

	if deliveryModify.ProductName == nil &&
		deliveryModify.CustomerName == nil &&
		deliveryModify.Address == nil &&
		deliveryModify.Notes == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if deliveryModify.ProductName != nil && !isValidText(*deliveryModify.ProductName) {
		return nil, ErrInvalidProductName
	}
	if deliveryModify.CustomerName != nil && !isValidText(*deliveryModify.CustomerName) {
		return nil, ErrInvalidCustomerName
	}
	if deliveryModify.Address != nil && !isValidText(*deliveryModify.Address) {
		return nil, ErrInvalidAddress
	}

	deliveryModify.Status = nil
	deliveryModify.Branch = nil
	deliveryModify.ProductImage = nil
	deliveryModify.LastUpdatedBy = &actor

	updated, err := s.repository.Update(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("update delivery details: %w", err)
	}

	s.events.DeliveriesChanged(ctx)
	return updated, nil
}

// UpdateDeliveryStatus переводит доставку в новый статус. Переходы не
// ограничены, но переход в текущий статус отклоняется. Проверка и
// запись идут в одной транзакции.
func (s *Delivery) UpdateDeliveryStatus(ctx context.Context, id int64, status entities.DeliveryStatusType, actor string) (*entities.Delivery, error) {
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Delivery
	var change entities.DeliveryStatusChange

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if current.Status == status {
			return ErrSameStatus
		}

		deliveryModify := entities.DeliveryModify{
			ID:            &id,
			Status:        &status,
			LastUpdatedBy: &actor,
		}

		updated, err = s.repository.Update(ctx, deliveryModify)
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}

		occurredAt := time.Now().UTC()
		if updated.UpdatedAt != nil {
			occurredAt = *updated.UpdatedAt
		}
		change = entities.DeliveryStatusChange{
			DeliveryID: updated.ID,
			OldStatus:  current.Status,
			NewStatus:  updated.Status,
			ChangedBy:  actor,
			OccurredAt: occurredAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.StatusChanged(ctx, change)
	s.events.DeliveriesChanged(ctx)
	return updated, nil
}

func (s *Delivery) DeleteDelivery(ctx context.Context, id int64) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}

	s.events.DeliveriesChanged(ctx)
	return nil
}

func (s *Delivery) GetDelivery(ctx context.Context, id int64) (*entities.Delivery, error) {
	delivery, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}

	return delivery, nil
}

func (s *Delivery) GetDeliveries(ctx context.Context) ([]entities.Delivery, error) {
	deliveries, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get deliveries: %w", err)
	}

	return deliveries, nil
}
