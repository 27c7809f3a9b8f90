package delivery_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"tracker/internal/entities"
	auditservice "tracker/internal/service/audit"
	"tracker/pkg/logger"
)

type Handler struct {
	auditService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, auditService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		auditService:             auditService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт - выходим
				h.log.Info("delivery.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) - выходим
			h.log.Info("delivery.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// statusChangedEvent - формат сообщения в топике, пишется продьюсером
// из internal/pkg/kafka.
type statusChangedEvent struct {
	DeliveryID int64     `json:"delivery_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	ChangedBy  string    `json:"changed_by"`
	OccurredAt time.Time `json:"occurred_at"`
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("delivery.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("delivery", event.DeliveryID),
		logger.NewField("new_status", event.NewStatus),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("delivery.status.changed processing")

	change := entities.DeliveryStatusChange{
		DeliveryID: event.DeliveryID,
		OldStatus:  entities.DeliveryStatusType(event.OldStatus),
		NewStatus:  entities.DeliveryStatusType(event.NewStatus),
		ChangedBy:  event.ChangedBy,
		OccurredAt: event.OccurredAt,
	}

	err = h.auditService.RecordStatusChange(ctx, change)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, auditservice.ErrInvalidDeliveryID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler got event without delivery id")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler failed to record event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("delivery.status.changed: recorded")

	sess.MarkMessage(message, "")
	return false
}
