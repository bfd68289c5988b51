package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
)

func TestTimelineRepository_Postgres(t *testing.T) {
	store := migratedStore(t)
	ctx := context.Background()
	timeline := NewTimelineRepository(store)

	createdAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	order := sampleOrder("timeline-order", "AJ-2026-0100", "owner-timeline", createdAt)
	_, err := NewOrderRepository(store).Insert(ctx, order)
	require.NoError(t, err)

	t.Run("keeps transitions in time order", func(t *testing.T) {
		paidAt := createdAt.Add(2 * time.Hour)
		// вставляем не по порядку: сортирует база
		require.NoError(t, timeline.Append(ctx, domain.TimelineEvent{
			OrderID: order.ID, Kind: domain.TimelineStatusChanged,
			From: domain.OrderStatusPaymentPending, To: domain.OrderStatusPaid, OccurredAt: paidAt,
		}))
		require.NoError(t, timeline.Append(ctx, domain.TimelineEvent{
			OrderID: order.ID, Kind: domain.TimelineCreated,
			To: domain.OrderStatusPending, Note: "from catalog", OccurredAt: createdAt.In(time.FixedZone("MSK", 3*3600)),
		}))

		events, err := timeline.List(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, events, 2)

		assert.Equal(t, domain.TimelineEvent{
			OrderID: order.ID, Kind: domain.TimelineCreated,
			To: domain.OrderStatusPending, Note: "from catalog", OccurredAt: createdAt,
		}, events[0])
		assert.Equal(t, domain.OrderStatusPaymentPending, events[1].From)
		assert.Equal(t, domain.OrderStatusPaid, events[1].To)
		assert.True(t, events[1].OccurredAt.Equal(paidAt))
	})

	t.Run("equal timestamps keep insert order", func(t *testing.T) {
		at := createdAt.Add(3 * time.Hour)
		require.NoError(t, timeline.Append(ctx, domain.TimelineEvent{
			OrderID: order.ID, Kind: domain.TimelineStatusChanged,
			From: domain.OrderStatusPaid, To: domain.OrderStatusClosed, OccurredAt: at,
		}))
		require.NoError(t, timeline.Append(ctx, domain.TimelineEvent{
			OrderID: order.ID, Kind: domain.TimelineStatusChanged,
			From: domain.OrderStatusClosed, To: domain.OrderStatusInProgress, OccurredAt: at,
		}))

		events, err := timeline.List(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, domain.OrderStatusClosed, events[2].To)
		assert.Equal(t, domain.OrderStatusInProgress, events[3].To)
	})

	t.Run("rejects event without time", func(t *testing.T) {
		err := timeline.Append(ctx, domain.TimelineEvent{OrderID: order.ID, Kind: domain.TimelineCancelled})
		assert.ErrorContains(t, err, "occurred_at")
	})

	t.Run("unknown order", func(t *testing.T) {
		err := timeline.Append(ctx, domain.TimelineEvent{
			OrderID: "missing-order", Kind: domain.TimelineCreated, To: domain.OrderStatusPending, OccurredAt: createdAt,
		})
		assert.Error(t, err, "foreign key must reject orphan events")

		events, err := timeline.List(ctx, "missing-order")
		require.NoError(t, err)
		assert.NotNil(t, events)
		assert.Empty(t, events)
	})
}
