package events

import (
	"context"
	"encoding/json"
	"time"

	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase/interfaces"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"
)

const (
	WorkOrderCreatedTopic       = "work_order.created"
	WorkOrderStatusChangedTopic = "work_order.status_changed"
)

// KafkaPublisher publishes work-order events as JSON, keyed by work order id.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	logger   *logrus.Logger
	now      func() time.Time
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string, logger *logrus.Logger) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Version = sarama.V2_6_0_0

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}
	return NewKafkaPublisherWithProducer(producer, logger), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, logger *logrus.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, logger: logger, now: time.Now}
}

func (p *KafkaPublisher) PublishWorkOrderCreated(_ context.Context, e entities.WorkOrderCreatedEvent) error {
	e.EventTime = p.now().UTC()
	return p.send(WorkOrderCreatedTopic, e.WorkOrderID, e)
}

func (p *KafkaPublisher) PublishWorkOrderStatusChanged(_ context.Context, e entities.WorkOrderStatusChangedEvent) error {
	e.EventTime = p.now().UTC()
	return p.send(WorkOrderStatusChangedTopic, e.WorkOrderID, e)
}

func (p *KafkaPublisher) send(topic, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.WithError(err).WithField("topic", topic).Error("Failed to send message to Kafka")
		return err
	}

	p.logger.WithFields(logrus.Fields{
		"topic":         topic,
		"partition":     partition,
		"offset":        offset,
		"work_order_id": key,
	}).Info("Event published to Kafka")
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

var _ interfaces.IEventPublisher = NoopPublisher{}

func (NoopPublisher) PublishWorkOrderCreated(context.Context, entities.WorkOrderCreatedEvent) error {
	return nil
}

func (NoopPublisher) PublishWorkOrderStatusChanged(context.Context, entities.WorkOrderStatusChangedEvent) error {
	return nil
}
