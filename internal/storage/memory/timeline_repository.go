package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
)

type timelineEntry struct {
	seq   uint64
	event domain.TimelineEvent
}

// TimelineRepository - история заказов в памяти процесса.
type TimelineRepository struct {
	mu      sync.RWMutex
	byOrder map[string][]timelineEntry
	seq     uint64
}

func NewTimelineRepository() *TimelineRepository {
	return &TimelineRepository{byOrder: make(map[string][]timelineEntry)}
}

func (r *TimelineRepository) Append(_ context.Context, event domain.TimelineEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.byOrder[event.OrderID] = append(r.byOrder[event.OrderID], timelineEntry{seq: r.seq, event: event})
	return nil
}

// List отдаёт копию истории по OccurredAt; при равном времени - в порядке записи.
func (r *TimelineRepository) List(_ context.Context, orderID string) ([]domain.TimelineEvent, error) {
	r.mu.RLock()
	entries := slices.Clone(r.byOrder[orderID])
	r.mu.RUnlock()

	slices.SortFunc(entries, func(a, b timelineEntry) int {
		if c := a.event.OccurredAt.Compare(b.event.OccurredAt); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})

	events := make([]domain.TimelineEvent, 0, len(entries))
	for _, entry := range entries {
		events = append(events, entry.event)
	}
	return events, nil
}

var _ domain.TimelineRepository = (*TimelineRepository)(nil)
