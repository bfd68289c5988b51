package domain

import "time"

// Типы событий, которые сервис заказов кладёт в outbox.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderCancelled     = "order.cancelled"

	AggregateOrder = "order"
)

// OrderEvent - полезная нагрузка событий заказа в outbox.
type OrderEvent struct {
	OrderID        string      `json:"order_id"`
	OrderNumber    string      `json:"order_number"`
	OwnerID        string      `json:"owner_id"`
	Status         OrderStatus `json:"status"`
	PreviousStatus OrderStatus `json:"previous_status,omitempty"`
	Subtotal       float64     `json:"subtotal"`
	ItemCount      int         `json:"item_count"`
	OccurredAt     time.Time   `json:"occurred_at"`
}

// NewOrderEvent собирает событие по текущему состоянию заказа.
func NewOrderEvent(order Order, previous OrderStatus, occurredAt time.Time) OrderEvent {
	return OrderEvent{
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		OwnerID:        order.OwnerID,
		Status:         order.Status,
		PreviousStatus: previous,
		Subtotal:       order.Subtotal,
		ItemCount:      len(order.Items),
		OccurredAt:     occurredAt,
	}
}
