package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	contactEntity "OssLarare/internal/modules/contact/domain/entity"
	"OssLarare/internal/modules/contact/infrastructure/mq/kafka"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishContactEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, kafka.NewProducerConfig("test"))
	t.Cleanup(func() { _ = producer.Close() })

	evt := contactEntity.ContactEvent{
		Type:       contactEntity.EventContactAdded,
		OwnerId:    "u1",
		ContactId:  "u2",
		OccurredAt: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
	}

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "oss.contact.events" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "u1" {
			return errors.New("message must be keyed by owner id")
		}
		raw, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var got contactEntity.ContactEvent
		if err := json.Unmarshal(raw, &got); err != nil {
			return err
		}
		if got.Type != evt.Type || got.OwnerId != evt.OwnerId || got.ContactId != evt.ContactId || !got.OccurredAt.Equal(evt.OccurredAt) {
			return errors.New("payload mismatch")
		}
		if len(msg.Headers) != 1 || string(msg.Headers[0].Value) != contactEntity.EventContactAdded {
			return errors.New("missing event_type header")
		}
		return nil
	})

	pub := NewContactEventPublisher(kafka.NewPublisherWithProducer(producer), "oss.contact.events")
	require.NoError(t, pub.PublishContactEvent(context.Background(), evt))
}

func TestPublishContactEventFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, kafka.NewProducerConfig("test"))
	t.Cleanup(func() { _ = producer.Close() })
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	pub := NewContactEventPublisher(kafka.NewPublisherWithProducer(producer), "oss.contact.events")
	err := pub.PublishContactEvent(context.Background(), contactEntity.ContactEvent{Type: contactEntity.EventContactRemoved, OwnerId: "u1", ContactId: "u2"})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func TestPublishContactEventCanceledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, kafka.NewProducerConfig("test"))
	t.Cleanup(func() { _ = producer.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pub := NewContactEventPublisher(kafka.NewPublisherWithProducer(producer), "oss.contact.events")
	err := pub.PublishContactEvent(ctx, contactEntity.ContactEvent{OwnerId: "u1"})
	assert.ErrorIs(t, err, context.Canceled)
}
