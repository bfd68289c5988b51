package domain

import "time"

// TimelineKind - вид записи в истории заказа.
type TimelineKind string

const (
	TimelineCreated       TimelineKind = "created"
	TimelineStatusChanged TimelineKind = "status_changed"
	TimelineCancelled     TimelineKind = "cancelled"
)

// TimelineEvent - запись истории заказа. Для created From пустой.
type TimelineEvent struct {
	OrderID    string
	Kind       TimelineKind
	From       OrderStatus
	To         OrderStatus
	Note       string
	OccurredAt time.Time
}
