package domain

import (
	"context"
	"time"
)

// OrderRepository описывает требования к хранилищу заказов.
// Все операции чтения и изменения ограничены владельцем: чужой заказ неотличим от отсутствующего.
type OrderRepository interface {
	// Insert сохраняет новый заказ. Возвращает ErrOrderNumberConflict, если номер уже занят.
	Insert(ctx context.Context, order Order) (Order, error)
	// FindByID возвращает заказ владельца или ErrOrderNotFound.
	FindByID(ctx context.Context, id, ownerID string) (Order, error)
	// FindByOrderNumber ищет заказ владельца по номеру (номер уже нормализован вызывающей стороной).
	FindByOrderNumber(ctx context.Context, orderNumber, ownerID string) (Order, error)
	// ListByOwner возвращает заказы владельца, новые первыми.
	ListByOwner(ctx context.Context, ownerID string) ([]Order, error)
	// UpdateStatus меняет статус и обновляет updated_at.
	UpdateStatus(ctx context.Context, id, ownerID string, status OrderStatus, updatedAt time.Time) (Order, error)
	// CountByOrderNumberPrefix считает заказы всех владельцев, номер которых начинается с prefix.
	CountByOrderNumberPrefix(ctx context.Context, prefix string) (int64, error)
	// NextOrderSequence атомарно выдаёт следующий порядковый номер за год.
	NextOrderSequence(ctx context.Context, year int) (int64, error)
}

// TimelineRepository хранит события жизненного цикла заказа.
type TimelineRepository interface {
	Append(ctx context.Context, event TimelineEvent) error
	List(ctx context.Context, orderID string) ([]TimelineEvent, error)
}

// OutboxPublisher публикует события из transactional outbox.
type OutboxPublisher interface {
	// Publish передаёт событие наружу; должен быть идемпотентным.
	Publish(ctx context.Context, event OutboxMessage) error
}

// OutboxRepository позволяет сохранять события для последующей публикации.
type OutboxRepository interface {
	Enqueue(ctx context.Context, msg OutboxMessage) (OutboxMessage, error)
	PullPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	Stats(ctx context.Context) (OutboxStats, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

// OutboxMessage хранит данные для публикуемого события.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

// OutboxStats описывает текущее состояние backlog transactional outbox.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}
