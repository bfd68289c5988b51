package kafka

import (
	"context"
	"time"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
)

// Sender - то, что умеет отправить запись; его реализует *Producer.
type Sender interface {
	Send(ctx context.Context, rec Record) (Delivery, error)
}

// TopicPublisher публикует сообщения outbox в один топик.
type TopicPublisher struct {
	sender Sender
	topic  string
	now    func() time.Time
}

// NewTopicPublisher создаёт паблишер; пустой topic означает TopicOrderEvents.
func NewTopicPublisher(sender Sender, topic string) *TopicPublisher {
	if topic == "" {
		topic = TopicOrderEvents
	}
	return &TopicPublisher{sender: sender, topic: topic, now: time.Now}
}

func (p *TopicPublisher) Topic() string { return p.topic }

func (p *TopicPublisher) Publish(ctx context.Context, msg domain.OutboxMessage) error {
	if p == nil || p.sender == nil {
		return errProducerClosed
	}
	rec, err := newEnvelope(msg, p.now()).record(p.topic)
	if err != nil {
		return err
	}
	_, err = p.sender.Send(ctx, rec)
	return err
}

var _ domain.OutboxPublisher = (*TopicPublisher)(nil)
