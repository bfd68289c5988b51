package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/storage/memory"
)

type countingRepo struct {
	domain.OrderRepository
	findCalls int
}

func (r *countingRepo) FindByID(ctx context.Context, id, ownerID string) (domain.Order, error) {
	r.findCalls++
	return r.OrderRepository.FindByID(ctx, id, ownerID)
}

type failingProvider struct{}

func (failingProvider) Get(context.Context, string) (string, error) {
	return "", errors.New("cache down")
}
func (failingProvider) Set(context.Context, string, string, time.Duration) error {
	return errors.New("cache down")
}
func (failingProvider) Delete(context.Context, string) error { return errors.New("cache down") }
func (failingProvider) Close() error                         { return nil }

func cachedOrder(id, owner string) domain.Order {
	now := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
	return domain.Order{
		ID:              id,
		OrderNumber:     "AJ-2025-0001",
		OrderName:       "Deli order",
		OwnerID:         owner,
		Status:          domain.OrderStatusPaymentPending,
		Items:           []domain.OrderItem{{ProductID: "p-1", Quantity: 3, CustomPrice: 2, LineTotal: 6}},
		Subtotal:        6,
		DeliveryAddress: "5 Harbour Ln",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestCachedOrderRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	inner := &countingRepo{OrderRepository: memory.NewOrderRepository()}
	provider, err := NewMemoryProvider(16)
	require.NoError(t, err)
	repo := NewOrderRepository(inner, provider, time.Minute, nil)

	_, err = repo.Insert(ctx, cachedOrder("order-1", "owner-1"))
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, "order-1", "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "AJ-2025-0001", got.OrderNumber)
	assert.Equal(t, 0, inner.findCalls, "insert should warm the cache")

	require.NoError(t, provider.Delete(ctx, OrderKey("order-1")))
	_, err = repo.FindByID(ctx, "order-1", "owner-1")
	require.NoError(t, err)
	_, err = repo.FindByID(ctx, "order-1", "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.findCalls)
}

func TestCachedOrderRepository_OwnerCheckedOnHit(t *testing.T) {
	ctx := context.Background()
	provider, err := NewMemoryProvider(16)
	require.NoError(t, err)
	repo := NewOrderRepository(memory.NewOrderRepository(), provider, time.Minute, nil)

	_, err = repo.Insert(ctx, cachedOrder("order-1", "owner-1"))
	require.NoError(t, err)

	_, err = repo.FindByID(ctx, "order-1", "owner-2")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestCachedOrderRepository_UpdateStatusRefreshesEntry(t *testing.T) {
	ctx := context.Background()
	provider, err := NewMemoryProvider(16)
	require.NoError(t, err)
	repo := NewOrderRepository(memory.NewOrderRepository(), provider, time.Minute, nil)

	_, err = repo.Insert(ctx, cachedOrder("order-1", "owner-1"))
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, "order-1", "owner-1", domain.OrderStatusClosed, time.Now().UTC())
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, "order-1", "owner-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusClosed, got.Status)

	_, err = repo.UpdateStatus(ctx, "order-1", "owner-2", domain.OrderStatusPaid, time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestCachedOrderRepository_ProviderFailuresFallBack(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(memory.NewOrderRepository(), failingProvider{}, time.Minute, nil)

	_, err := repo.Insert(ctx, cachedOrder("order-1", "owner-1"))
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, "order-1", "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", got.ID)

	_, err = repo.UpdateStatus(ctx, "order-1", "owner-1", domain.OrderStatusPaid, time.Now().UTC())
	require.NoError(t, err)
}

func TestCachedOrderRepository_CorruptedEntryDropped(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewOrderRepository()
	provider, err := NewMemoryProvider(16)
	require.NoError(t, err)
	repo := NewOrderRepository(inner, provider, time.Minute, nil)

	_, err = inner.Insert(ctx, cachedOrder("order-1", "owner-1"))
	require.NoError(t, err)
	require.NoError(t, provider.Set(ctx, OrderKey("order-1"), "{not json", time.Minute))

	got, err := repo.FindByID(ctx, "order-1", "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", got.ID)
}

func TestNewOrderRepository_NilProviderPassthrough(t *testing.T) {
	inner := memory.NewOrderRepository()
	assert.Same(t, inner, NewOrderRepository(inner, nil, 0, nil))
}
