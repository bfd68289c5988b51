package outbox

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
)

// deadLetter - тело сообщения в DLQ.
type deadLetter struct {
	OutboxID       string          `json:"outbox_id"`
	OrderID        string          `json:"order_id"`
	EventType      string          `json:"event_type"`
	Attempts       int             `json:"attempts"`
	Reason         string          `json:"reason"`
	Event          json.RawMessage `json:"event"`
	DeadLetteredAt time.Time       `json:"dead_lettered_at"`
}

// toDeadLetter заворачивает недоставленное событие в сообщение для DLQ.
// Ключ и тип события сохраняются, чтобы консьюмер DLQ мог разложить его по заказам.
func toDeadLetter(msg domain.OutboxMessage, attempts int, cause error, at time.Time) (domain.OutboxMessage, error) {
	event := json.RawMessage(msg.Payload)
	if !json.Valid(event) {
		quoted, err := json.Marshal(string(msg.Payload))
		if err != nil {
			return domain.OutboxMessage{}, err
		}
		event = quoted
	}

	body, err := json.Marshal(deadLetter{
		OutboxID:       msg.ID,
		OrderID:        msg.AggregateID,
		EventType:      msg.EventType,
		Attempts:       attempts,
		Reason:         cause.Error(),
		Event:          event,
		DeadLetteredAt: at.UTC(),
	})
	if err != nil {
		return domain.OutboxMessage{}, fmt.Errorf("encode dead letter %s: %w", msg.ID, err)
	}

	letter := msg
	letter.Payload = body
	return letter, nil
}
