package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"tracker/internal/entities"
	"tracker/internal/pkg/config"
	"tracker/pkg/logger"
)

// DeliveryStatusChangedEvent - формат сообщения в топике смен статусов.
type DeliveryStatusChangedEvent struct {
	DeliveryID int64     `json:"delivery_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	ChangedBy  string    `json:"changed_by"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Producer публикует события смен статусов. Ключ сообщения - id
// доставки, события одной доставки попадают в одну партицию и
// читаются по порядку.
type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	saramaConfig := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}
	saramaConfig.Version = version
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Return.Successes = true

	brokers := strings.Split(cfg.Brokers, ",")
	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return &Producer{
		log: log.With(
			logger.NewField("brokers", brokers),
			logger.NewField("topic", cfg.Topic),
		),
		producer: producer,
		topic:    cfg.Topic,
	}, nil
}

func (p *Producer) PublishStatusChange(_ context.Context, change entities.DeliveryStatusChange) error {
	event := DeliveryStatusChangedEvent{
		DeliveryID: change.DeliveryID,
		OldStatus:  string(change.OldStatus),
		NewStatus:  string(change.NewStatus),
		ChangedBy:  change.ChangedBy,
		OccurredAt: change.OccurredAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status change event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(change.DeliveryID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("send status change event: %w", err)
	}

	p.log.With(
		logger.NewField("delivery_id", change.DeliveryID),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("Status change event published")

	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
