package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
)

// TimelineRepository хранит историю заказов в order_timeline.
type TimelineRepository struct {
	db *sql.DB
}

func NewTimelineRepository(store *Store) *TimelineRepository {
	return &TimelineRepository{db: store.DB()}
}

// Append требует заполненный OccurredAt: время события задаёт сервис, а не база.
func (r *TimelineRepository) Append(ctx context.Context, event domain.TimelineEvent) error {
	if event.OccurredAt.IsZero() {
		return fmt.Errorf("timeline event for order %s has no occurred_at", event.OrderID)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO order_timeline (order_id, kind, from_status, to_status, note, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		event.OrderID, string(event.Kind), string(event.From), string(event.To), event.Note, event.OccurredAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert timeline event for order %s: %w", event.OrderID, err)
	}
	return nil
}

func (r *TimelineRepository) List(ctx context.Context, orderID string) ([]domain.TimelineEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, from_status, to_status, note, occurred_at
		   FROM order_timeline
		  WHERE order_id = $1
		  ORDER BY occurred_at, seq`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("select timeline of order %s: %w", orderID, err)
	}
	defer rows.Close()

	events := []domain.TimelineEvent{}
	for rows.Next() {
		event := domain.TimelineEvent{OrderID: orderID}
		var kind, from, to string
		if err := rows.Scan(&kind, &from, &to, &event.Note, &event.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan timeline row: %w", err)
		}
		event.Kind = domain.TimelineKind(kind)
		event.From = domain.OrderStatus(from)
		event.To = domain.OrderStatus(to)
		event.OccurredAt = event.OccurredAt.UTC()
		events = append(events, event)
	}
	return events, rows.Err()
}

var _ domain.TimelineRepository = (*TimelineRepository)(nil)
