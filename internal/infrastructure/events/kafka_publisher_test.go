package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dental_lab/internal/domain/entities"
	"dental_lab/internal/logger"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
)

func TestKafkaPublisher_PublishWorkOrderCreated(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	fixed := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != WorkOrderCreatedTopic {
			t.Fatalf("expected topic %s, got %s", WorkOrderCreatedTopic, msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "w1" {
			t.Fatalf("expected key w1, got %s", key)
		}
		raw, _ := msg.Value.Encode()
		var got entities.WorkOrderCreatedEvent
		if err := json.Unmarshal(raw, &got); err != nil {
			return err
		}
		if got.TotalPrice != 470000 || !got.EventTime.Equal(fixed) {
			t.Fatalf("unexpected payload %+v", got)
		}
		return nil
	})

	p := NewKafkaPublisherWithProducer(producer, logger.Discard())
	p.now = func() time.Time { return fixed }

	err := p.PublishWorkOrderCreated(context.Background(), entities.WorkOrderCreatedEvent{WorkOrderID: "w1", TotalPrice: 470000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestKafkaPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(errors.New("broker down"))

	p := NewKafkaPublisherWithProducer(producer, logger.Discard())
	err := p.PublishWorkOrderStatusChanged(context.Background(), entities.WorkOrderStatusChangedEvent{
		WorkOrderID: "w1",
		From:        entities.WorkOrderStatusPendiente,
		To:          entities.WorkOrderStatusProduccion,
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	_ = p.Close()
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	if err := p.PublishWorkOrderCreated(context.Background(), entities.WorkOrderCreatedEvent{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.PublishWorkOrderStatusChanged(context.Background(), entities.WorkOrderStatusChangedEvent{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
