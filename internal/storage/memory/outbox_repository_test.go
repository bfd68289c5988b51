package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/storage/memory"
)

func TestOutboxRepository_EnqueuePullMark(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOutboxRepository()

	first, err := repo.Enqueue(ctx, domain.OutboxMessage{AggregateType: "order", AggregateID: "order-1", EventType: "order.created", Payload: []byte(`{}`)})
	if err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	if first.ID == "" {
		t.Fatalf("expected generated id")
	}
	time.Sleep(time.Millisecond)
	second, err := repo.Enqueue(ctx, domain.OutboxMessage{ID: "fixed-id", AggregateType: "order", AggregateID: "order-2", EventType: "order.cancelled"})
	if err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	if second.ID != "fixed-id" {
		t.Fatalf("expected explicit id to be preserved, got %s", second.ID)
	}

	pending, err := repo.PullPending(ctx, 10)
	if err != nil {
		t.Fatalf("PullPending failed: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != first.ID {
		t.Fatalf("expected oldest first, got %+v", pending)
	}

	limited, _ := repo.PullPending(ctx, 1)
	if len(limited) != 1 {
		t.Fatalf("expected limit to apply, got %d", len(limited))
	}

	if err := repo.MarkSent(ctx, first.ID); err != nil {
		t.Fatalf("MarkSent failed: %v", err)
	}
	if err := repo.MarkFailed(ctx, second.ID); err != nil {
		t.Fatalf("MarkFailed failed: %v", err)
	}
	if left := repo.AllPending(); len(left) != 0 {
		t.Fatalf("expected no pending messages, got %d", len(left))
	}
	if err := repo.MarkSent(ctx, "unknown"); err == nil {
		t.Fatalf("expected error for unknown id")
	}
}

func TestOutboxRepository_Stats(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOutboxRepository()

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.PendingCount != 0 || !stats.OldestPendingAt.IsZero() {
		t.Fatalf("expected empty stats, got %+v", stats)
	}

	if _, err := repo.Enqueue(ctx, domain.OutboxMessage{AggregateID: "order-1", EventType: "order.created"}); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	stats, _ = repo.Stats(ctx)
	if stats.PendingCount != 1 || stats.OldestPendingAt.IsZero() {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
