package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
)

const (
	TopicOrderEvents = "wholesale.order.events"
	TopicOrderDLQ    = "wholesale.order.events.dlq"
)

const (
	HeaderEventType = "x-event-type"
	HeaderEventID   = "x-event-id"
	HeaderOrderID   = "x-order-id"
	HeaderSchema    = "x-schema-version"
)

// EnvelopeVersion меняется при несовместимом изменении формата.
const EnvelopeVersion = 1

// Envelope - то, что лежит в value сообщения о заказе.
type Envelope struct {
	Version     int             `json:"version"`
	EventID     string          `json:"event_id"`
	EventType   string          `json:"event_type"`
	OrderID     string          `json:"order_id"`
	Payload     json.RawMessage `json:"payload"`
	PublishedAt time.Time       `json:"published_at"`
}

func newEnvelope(msg domain.OutboxMessage, at time.Time) Envelope {
	payload := json.RawMessage(msg.Payload)
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	return Envelope{
		Version:     EnvelopeVersion,
		EventID:     msg.ID,
		EventType:   msg.EventType,
		OrderID:     msg.AggregateID,
		Payload:     payload,
		PublishedAt: at.UTC(),
	}
}

// record собирает запись для топика. Ключ - id заказа: события одного
// заказа попадают в одну партицию и читаются по порядку.
func (e Envelope) record(topic string) (Record, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return Record{}, fmt.Errorf("kafka: encode %s event %s: %w", e.EventType, e.EventID, err)
	}
	key := e.OrderID
	if key == "" {
		key = e.EventID
	}
	return Record{
		Topic: topic,
		Key:   key,
		Value: value,
		Headers: []sarama.RecordHeader{
			{Key: []byte(HeaderEventType), Value: []byte(e.EventType)},
			{Key: []byte(HeaderEventID), Value: []byte(e.EventID)},
			{Key: []byte(HeaderOrderID), Value: []byte(e.OrderID)},
			{Key: []byte(HeaderSchema), Value: []byte(fmt.Sprint(e.Version))},
		},
	}, nil
}
