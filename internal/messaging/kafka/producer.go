// Package kafka публикует события заказов в Kafka через sarama.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

const defaultClientID = "wholesale-orders"

var errProducerClosed = errors.New("kafka producer is not initialized")

// ProducerConfig - параметры подключения к кластеру.
type ProducerConfig struct {
	Brokers    []string
	ClientID   string
	MaxRetries int
	Timeout    time.Duration
}

// saramaConfig возвращает конфигурацию идемпотентного producer'а:
// acks=all и не больше одного запроса в полёте на брокер.
func (c ProducerConfig) saramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = c.ClientID
	if cfg.ClientID == "" {
		cfg.ClientID = defaultClientID
	}
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Producer.Compression = sarama.CompressionSnappy
	cfg.Producer.Retry.Max = 5
	if c.MaxRetries > 0 {
		cfg.Producer.Retry.Max = c.MaxRetries
	}
	if c.Timeout > 0 {
		cfg.Producer.Timeout = c.Timeout
	}
	cfg.Net.MaxOpenRequests = 1
	return cfg
}

// Record - одно сообщение для отправки.
type Record struct {
	Topic   string
	Key     string
	Value   []byte
	Headers []sarama.RecordHeader
}

// Delivery - положение записанного сообщения в топике.
type Delivery struct {
	Partition int32
	Offset    int64
}

// Producer синхронно пишет записи в Kafka.
type Producer struct {
	sync   sarama.SyncProducer
	logger *log.Entry
	now    func() time.Time
}

func NewProducer(cfg ProducerConfig) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}
	sp, err := sarama.NewSyncProducer(cfg.Brokers, cfg.saramaConfig())
	if err != nil {
		return nil, fmt.Errorf("kafka: create producer: %w", err)
	}
	return NewProducerFromSync(sp), nil
}

// NewProducerFromSync оборачивает готовый sarama.SyncProducer, в тестах это mocks.SyncProducer.
func NewProducerFromSync(sp sarama.SyncProducer) *Producer {
	return &Producer{
		sync:   sp,
		logger: log.WithField("component", "kafka"),
		now:    time.Now,
	}
}

// Send отправляет запись и ждёт подтверждения брокера.
// sarama не принимает ctx, поэтому отмена проверяется только до отправки.
func (p *Producer) Send(ctx context.Context, rec Record) (Delivery, error) {
	if p == nil || p.sync == nil {
		return Delivery{}, errProducerClosed
	}
	if err := ctx.Err(); err != nil {
		return Delivery{}, err
	}

	msg := &sarama.ProducerMessage{
		Topic:     rec.Topic,
		Value:     sarama.ByteEncoder(rec.Value),
		Headers:   rec.Headers,
		Timestamp: p.now(),
	}
	if rec.Key != "" {
		msg.Key = sarama.StringEncoder(rec.Key)
	}

	entry := p.logger.WithFields(log.Fields{"topic": rec.Topic, "key": rec.Key})
	partition, offset, err := p.sync.SendMessage(msg)
	if err != nil {
		entry.WithError(err).Warn("kafka send failed")
		return Delivery{}, fmt.Errorf("kafka: send to %s: %w", rec.Topic, err)
	}
	entry.WithFields(log.Fields{"partition": partition, "offset": offset}).Trace("kafka record sent")
	return Delivery{Partition: partition, Offset: offset}, nil
}

func (p *Producer) Close() error {
	if p == nil || p.sync == nil {
		return nil
	}
	if err := p.sync.Close(); err != nil {
		return fmt.Errorf("kafka: close producer: %w", err)
	}
	return nil
}
