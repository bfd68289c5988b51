package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducerConfig_Idempotent(t *testing.T) {
	cfg := ProducerConfig{Brokers: []string{"localhost:9092"}}.saramaConfig()

	assert.Equal(t, defaultClientID, cfg.ClientID)
	assert.Equal(t, sarama.WaitForAll, cfg.Producer.RequiredAcks)
	assert.True(t, cfg.Producer.Idempotent)
	assert.True(t, cfg.Producer.Return.Successes)
	assert.Equal(t, 1, cfg.Net.MaxOpenRequests)
	assert.Equal(t, 5, cfg.Producer.Retry.Max)
	require.NoError(t, cfg.Validate())
}

func TestProducerConfig_Overrides(t *testing.T) {
	cfg := ProducerConfig{ClientID: "orders-eu", MaxRetries: 9, Timeout: 3 * time.Second}.saramaConfig()

	assert.Equal(t, "orders-eu", cfg.ClientID)
	assert.Equal(t, 9, cfg.Producer.Retry.Max)
	assert.Equal(t, 3*time.Second, cfg.Producer.Timeout)
}

func TestNewProducer_NoBrokers(t *testing.T) {
	producer, err := NewProducer(ProducerConfig{})
	require.Error(t, err)
	assert.Nil(t, producer)
}

func TestProducer_Send(t *testing.T) {
	sent := time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "order-1" || msg.Topic != TopicOrderEvents {
			return errors.New("unexpected key or topic")
		}
		if !msg.Timestamp.Equal(sent) {
			return errors.New("timestamp must come from the producer clock")
		}
		if len(msg.Headers) != 1 || string(msg.Headers[0].Key) != HeaderEventType {
			return errors.New("headers must be passed through")
		}
		return nil
	})

	producer := NewProducerFromSync(sp)
	producer.now = func() time.Time { return sent }

	_, err := producer.Send(context.Background(), Record{
		Topic:   TopicOrderEvents,
		Key:     "order-1",
		Value:   []byte(`{}`),
		Headers: []sarama.RecordHeader{{Key: []byte(HeaderEventType), Value: []byte("order.created")}},
	})
	require.NoError(t, err)
	require.NoError(t, producer.Close())
}

func TestProducer_SendFailure(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	producer := NewProducerFromSync(sp)
	_, err := producer.Send(context.Background(), Record{Topic: TopicOrderEvents, Key: "order-1", Value: []byte(`{}`)})

	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	assert.Contains(t, err.Error(), TopicOrderEvents)
	require.NoError(t, producer.Close())
}

func TestProducer_SendCanceled(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	producer := NewProducerFromSync(sp)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := producer.Send(ctx, Record{Topic: TopicOrderEvents})
	require.ErrorIs(t, err, context.Canceled)
	// без ожиданий: mock упадёт, если что-то было отправлено
	require.NoError(t, producer.Close())
}

func TestProducer_Nil(t *testing.T) {
	var producer *Producer

	_, err := producer.Send(context.Background(), Record{})
	assert.ErrorIs(t, err, errProducerClosed)
	assert.NoError(t, producer.Close())
}
