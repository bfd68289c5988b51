package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
)

type recordingSender struct {
	records []Record
	err     error
}

func (s *recordingSender) Send(_ context.Context, rec Record) (Delivery, error) {
	s.records = append(s.records, rec)
	if s.err != nil {
		return Delivery{}, s.err
	}
	return Delivery{Partition: 0, Offset: int64(len(s.records))}, nil
}

func headerMap(rec Record) map[string]string {
	out := make(map[string]string, len(rec.Headers))
	for _, h := range rec.Headers {
		out[string(h.Key)] = string(h.Value)
	}
	return out
}

func TestTopicPublisher_Publish(t *testing.T) {
	at := time.Date(2025, 3, 4, 13, 0, 0, 0, time.FixedZone("MSK", 3*3600))
	sender := &recordingSender{}
	publisher := NewTopicPublisher(sender, "")
	publisher.now = func() time.Time { return at }

	err := publisher.Publish(context.Background(), domain.OutboxMessage{
		ID:            "evt-1",
		AggregateType: domain.AggregateOrder,
		AggregateID:   "order-123",
		EventType:     domain.EventOrderStatusChanged,
		Payload:       []byte(`{"status":"paid"}`),
	})
	require.NoError(t, err)
	require.Len(t, sender.records, 1)

	rec := sender.records[0]
	assert.Equal(t, TopicOrderEvents, rec.Topic)
	assert.Equal(t, "order-123", rec.Key)
	assert.Equal(t, map[string]string{
		HeaderEventType: domain.EventOrderStatusChanged,
		HeaderEventID:   "evt-1",
		HeaderOrderID:   "order-123",
		HeaderSchema:    "1",
	}, headerMap(rec))

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Value, &envelope))
	assert.Equal(t, EnvelopeVersion, envelope.Version)
	assert.Equal(t, "order-123", envelope.OrderID)
	assert.JSONEq(t, `{"status":"paid"}`, string(envelope.Payload))
	assert.True(t, envelope.PublishedAt.Equal(at))
	assert.Equal(t, time.UTC, envelope.PublishedAt.Location())
}

func TestTopicPublisher_KeyWithoutOrder(t *testing.T) {
	sender := &recordingSender{}
	publisher := NewTopicPublisher(sender, TopicOrderDLQ)
	assert.Equal(t, TopicOrderDLQ, publisher.Topic())

	require.NoError(t, publisher.Publish(context.Background(), domain.OutboxMessage{
		ID:        "evt-9",
		EventType: domain.EventOrderCreated,
	}))

	rec := sender.records[0]
	assert.Equal(t, "evt-9", rec.Key)
	assert.Contains(t, string(rec.Value), `"payload":null`)
}

func TestTopicPublisher_Errors(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		sender := &recordingSender{}
		err := NewTopicPublisher(sender, "").Publish(context.Background(), domain.OutboxMessage{
			ID:      "evt-2",
			Payload: []byte("not json"),
		})
		require.Error(t, err)
		assert.Empty(t, sender.records)
	})

	t.Run("send failure", func(t *testing.T) {
		boom := errors.New("broker down")
		err := NewTopicPublisher(&recordingSender{err: boom}, "").Publish(context.Background(), domain.OutboxMessage{
			ID:          "evt-3",
			AggregateID: "order-3",
			Payload:     []byte(`{}`),
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no sender", func(t *testing.T) {
		err := NewTopicPublisher(nil, "").Publish(context.Background(), domain.OutboxMessage{ID: "evt-4"})
		assert.ErrorIs(t, err, errProducerClosed)
	})
}

func TestTopicPublisher_ThroughSarama(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var envelope Envelope
		if err := json.Unmarshal(value, &envelope); err != nil {
			return err
		}
		if envelope.EventType != domain.EventOrderCancelled {
			return errors.New("unexpected event type " + envelope.EventType)
		}
		return nil
	})

	producer := NewProducerFromSync(sp)
	err := NewTopicPublisher(producer, "").Publish(context.Background(), domain.OutboxMessage{
		ID:          "evt-5",
		AggregateID: "order-5",
		EventType:   domain.EventOrderCancelled,
		Payload:     []byte(`{"status":"cancelled"}`),
	})
	require.NoError(t, err)
	require.NoError(t, producer.Close())
}
