package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
)

// Состояния строки order_outbox.
const (
	outboxPending = "pending"
	outboxSent    = "sent"
	outboxFailed  = "failed"

	defaultPullLimit = 100
)

// OutboxRepository - transactional outbox событий заказов в order_outbox.
// Порядок доставки задаёт seq, а не время постановки.
type OutboxRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewOutboxRepository(store *Store) *OutboxRepository {
	return &OutboxRepository{db: store.DB(), now: time.Now}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.AggregateType == "" {
		msg.AggregateType = domain.AggregateOrder
	}
	if msg.AggregateType != domain.AggregateOrder {
		return domain.OutboxMessage{}, fmt.Errorf("order outbox does not accept %q aggregates", msg.AggregateType)
	}
	if msg.Payload == nil {
		msg.Payload = []byte{}
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO order_outbox (id, order_id, event_type, payload, state, enqueued_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		msg.ID, msg.AggregateID, msg.EventType, msg.Payload, outboxPending, r.now().UTC(),
	)
	switch {
	case isUniqueViolation(err):
		return domain.OutboxMessage{}, fmt.Errorf("order event %s is already in outbox: %w", msg.ID, err)
	case err != nil:
		return domain.OutboxMessage{}, fmt.Errorf("insert order event %s: %w", msg.ID, err)
	}
	return msg, nil
}

// PullPending только читает: строка остаётся pending, пока воркер не вызовет MarkSent или MarkFailed.
func (r *OutboxRepository) PullPending(ctx context.Context, limit int) ([]domain.OutboxMessage, error) {
	if limit <= 0 {
		limit = defaultPullLimit
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, order_id, event_type, payload
		   FROM order_outbox
		  WHERE state = $1
		  ORDER BY seq
		  LIMIT $2`,
		outboxPending, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("select pending order events: %w", err)
	}
	defer rows.Close()

	batch := make([]domain.OutboxMessage, 0, limit)
	for rows.Next() {
		msg := domain.OutboxMessage{AggregateType: domain.AggregateOrder}
		if err := rows.Scan(&msg.ID, &msg.AggregateID, &msg.EventType, &msg.Payload); err != nil {
			return nil, fmt.Errorf("scan order event: %w", err)
		}
		batch = append(batch, msg)
	}
	return batch, rows.Err()
}

func (r *OutboxRepository) Stats(ctx context.Context) (domain.OutboxStats, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var (
		stats  domain.OutboxStats
		oldest sql.NullTime
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*), min(enqueued_at) FROM order_outbox WHERE state = $1`,
		outboxPending,
	).Scan(&stats.PendingCount, &oldest)
	if err != nil {
		return domain.OutboxStats{}, fmt.Errorf("count pending order events: %w", err)
	}
	if oldest.Valid {
		stats.OldestPendingAt = oldest.Time.UTC()
	}
	return stats, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id string) error {
	return r.settle(ctx, id, outboxSent)
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id string) error {
	return r.settle(ctx, id, outboxFailed)
}

// settle переводит pending-строку в конечное состояние. Повторный вызов
// для уже закрытой строки, как и неизвестный id, даёт ErrOutboxPublish.
func (r *OutboxRepository) settle(ctx context.Context, id, state string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE order_outbox SET state = $2, settled_at = $3 WHERE id = $1 AND state = $4`,
		id, state, r.now().UTC(), outboxPending,
	)
	if err != nil {
		return fmt.Errorf("mark order event %s %s: %w", id, state, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("mark order event %s %s: %w", id, state, err)
	} else if n == 0 {
		return fmt.Errorf("order event %s is not pending: %w", id, domain.ErrOutboxPublish)
	}
	return nil
}

var _ domain.OutboxRepository = (*OutboxRepository)(nil)
