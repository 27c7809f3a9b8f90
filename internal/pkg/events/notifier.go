package events

import (
	"context"

	"tracker/internal/entities"
	"tracker/internal/feed"
	"tracker/pkg/logger"
)

// Notifier разводит пост-коммитные уведомления сервисов по потребителям:
// лентам снапшотов и брокеру. Сервисы не знают про ленты и Kafka, а
// ошибки уведомлений не откатывают уже зафиксированную мутацию - они
// логируются здесь.
type Notifier struct {
	log        notifierLogger
	deliveries *feed.Hub[entities.Delivery]
	staff      *feed.Hub[entities.Staff]
	publisher  StatusPublisher
}

func NewNotifier(
	log notifierLogger,
	deliveries *feed.Hub[entities.Delivery],
	staff *feed.Hub[entities.Staff],
	publisher StatusPublisher,
) *Notifier {
	return &Notifier{
		log:        log,
		deliveries: deliveries,
		staff:      staff,
		publisher:  publisher,
	}
}

func (n *Notifier) DeliveriesChanged(ctx context.Context) {
	if err := n.deliveries.Invalidate(ctx); err != nil {
		n.log.With(
			logger.NewField("error", err),
		).Error("failed to reload delivery feed")
	}
}

func (n *Notifier) StaffChanged(ctx context.Context) {
	if err := n.staff.Invalidate(ctx); err != nil {
		n.log.With(
			logger.NewField("error", err),
		).Error("failed to reload staff feed")
	}
}

func (n *Notifier) StatusChanged(ctx context.Context, change entities.DeliveryStatusChange) {
	if n.publisher == nil {
		return
	}

	if err := n.publisher.PublishStatusChange(ctx, change); err != nil {
		n.log.With(
			logger.NewField("error", err),
			logger.NewField("delivery_id", change.DeliveryID),
		).Error("failed to publish status change event")
	}
}
