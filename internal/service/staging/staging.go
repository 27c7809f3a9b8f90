package staging

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"tracker/internal/entities"
)

type StageKind string

const (
	KindStatusChange   StageKind = "status_change"
	KindDeliveryDelete StageKind = "delivery_delete"
	KindStaffDelete    StageKind = "staff_delete"
)

// Stage - отложенная мутация, ждущая явного подтверждения.
type Stage struct {
	ID          string
	Kind        StageKind
	Description string
	ExpiresAt   time.Time

	deliveryID int64
	staffID    int64
	newStatus  entities.DeliveryStatusType
}

// Staging держит отложенные мутации в памяти. Деструктивные операции и
// смена статуса проходят в два шага: stage проверяет и описывает
// операцию, confirm исполняет ее ровно один раз. Неподтвержденная
// заявка истекает по TTL, отмена ничего не меняет в хранилище.
type Staging struct {
	deliveries Deliveries
	staff      StaffDirectory
	ttl        time.Duration
	now        func() time.Time

	mu     sync.Mutex
	stages map[string]Stage
}

func New(deliveries Deliveries, staff StaffDirectory, ttl time.Duration) *Staging {
	return &Staging{
		deliveries: deliveries,
		staff:      staff,
		ttl:        ttl,
		now:        time.Now,
		stages:     make(map[string]Stage),
	}
}

// StageStatusChange готовит смену статуса доставки. Переход в текущий
// статус отклоняется уже здесь, чтобы клиент не подтверждал заведомо
// пустую операцию.
func (s *Staging) StageStatusChange(ctx context.Context, deliveryID int64, status entities.DeliveryStatusType) (*Stage, error) {
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	delivery, err := s.deliveries.GetDelivery(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("stage status change: %w", err)
	}

	if delivery.Status == status {
		return nil, ErrSameStatus
	}

	stage := Stage{
		ID:   uuid.NewString(),
		Kind: KindStatusChange,
		Description: fmt.Sprintf("change status of delivery %q from %q to %q",
			delivery.ProductName, delivery.Status, status),
		ExpiresAt:  s.now().Add(s.ttl),
		deliveryID: deliveryID,
		newStatus:  status,
	}

	s.put(stage)
	return &stage, nil
}

func (s *Staging) StageDeliveryDelete(ctx context.Context, deliveryID int64) (*Stage, error) {
	delivery, err := s.deliveries.GetDelivery(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("stage delivery delete: %w", err)
	}

	stage := Stage{
		ID:          uuid.NewString(),
		Kind:        KindDeliveryDelete,
		Description: fmt.Sprintf("delete delivery %q for %q", delivery.ProductName, delivery.CustomerName),
		ExpiresAt:   s.now().Add(s.ttl),
		deliveryID:  deliveryID,
	}

	s.put(stage)
	return &stage, nil
}

func (s *Staging) StageStaffDelete(ctx context.Context, staffID int64) (*Stage, error) {
	staffMember, err := s.staff.GetStaffMember(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("stage staff delete: %w", err)
	}

	stage := Stage{
		ID:          uuid.NewString(),
		Kind:        KindStaffDelete,
		Description: fmt.Sprintf("remove staff member %q", staffMember.Name),
		ExpiresAt:   s.now().Add(s.ttl),
		staffID:     staffID,
	}

	s.put(stage)
	return &stage, nil
}

// Confirm исполняет отложенную мутацию. Заявка одноразовая: она
// изымается до исполнения, поэтому повторный confirm получает
// ErrStageNotFound даже если исполнение провалилось.
func (s *Staging) Confirm(ctx context.Context, stageID, actor string) error {
	stage, ok := s.take(stageID)
	if !ok {
		return ErrStageNotFound
	}

	switch stage.Kind {
	case KindStatusChange:
		_, err := s.deliveries.UpdateDeliveryStatus(ctx, stage.deliveryID, stage.newStatus, actor)
		if err != nil {
			return fmt.Errorf("confirm status change: %w", err)
		}
	case KindDeliveryDelete:
		if err := s.deliveries.DeleteDelivery(ctx, stage.deliveryID); err != nil {
			return fmt.Errorf("confirm delivery delete: %w", err)
		}
	case KindStaffDelete:
		if err := s.staff.DeleteStaffMember(ctx, stage.staffID); err != nil {
			return fmt.Errorf("confirm staff delete: %w", err)
		}
	default:
		return ErrUnknownStaging
	}

	return nil
}

// Cancel снимает заявку. Зафиксированное состояние не трогается.
func (s *Staging) Cancel(_ context.Context, stageID string) error {
	if _, ok := s.take(stageID); !ok {
		return ErrStageNotFound
	}

	return nil
}

// CleanupExpiredStages выкидывает истекшие заявки. Запускается
// периодической фоновой задачей.
func (s *Staging) CleanupExpiredStages(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, stage := range s.stages {
		if !now.Before(stage.ExpiresAt) {
			delete(s.stages, id)
			removed++
		}
	}

	return removed, nil
}

func (s *Staging) put(stage Stage) {
	s.mu.Lock()
	s.stages[stage.ID] = stage
	s.mu.Unlock()
}

// take изымает живую заявку. Истекшая заявка равносильна отсутствующей.
func (s *Staging) take(stageID string) (Stage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stage, ok := s.stages[stageID]
	if !ok {
		return Stage{}, false
	}

	delete(s.stages, stageID)
	if !s.now().Before(stage.ExpiresAt) {
		return Stage{}, false
	}

	return stage, true
}

func isValidStatus(status entities.DeliveryStatusType) bool {
	for _, known := range entities.DeliveryStatuses() {
		if status == known {
			return true
		}
	}

	return false
}
