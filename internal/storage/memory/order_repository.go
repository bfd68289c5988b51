package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
)

// orderRepositoryInMemory хранит заказы по ID и поддерживает вторичные индексы
// владелец → заказы и номер → заказ.
type orderRepositoryInMemory struct {
	mu       sync.RWMutex
	orders   map[string]domain.Order
	byOwner  map[string]map[string]struct{}
	byNumber map[string]string
	seqs     map[int]int64
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		orders:   make(map[string]domain.Order),
		byOwner:  make(map[string]map[string]struct{}),
		byNumber: make(map[string]string),
		seqs:     make(map[int]int64),
	}
}

func (r *orderRepositoryInMemory) Insert(_ context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.ID]; exists {
		return domain.Order{}, domain.ErrOrderIDConflict
	}
	// Уникальность номера - единственная реальная защита от коллизий генератора.
	if _, exists := r.byNumber[order.OrderNumber]; exists {
		return domain.Order{}, domain.ErrOrderNumberConflict
	}

	stored := order.Clone()
	r.orders[stored.ID] = stored
	r.byNumber[stored.OrderNumber] = stored.ID
	owned, ok := r.byOwner[stored.OwnerID]
	if !ok {
		owned = make(map[string]struct{})
		r.byOwner[stored.OwnerID] = owned
	}
	owned[stored.ID] = struct{}{}

	return stored.Clone(), nil
}

func (r *orderRepositoryInMemory) FindByID(_ context.Context, id, ownerID string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.ownedLocked(id, ownerID)
}

func (r *orderRepositoryInMemory) FindByOrderNumber(_ context.Context, orderNumber, ownerID string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byNumber[orderNumber]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return r.ownedLocked(id, ownerID)
}

func (r *orderRepositoryInMemory) ListByOwner(_ context.Context, ownerID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := r.byOwner[ownerID]
	result := make([]domain.Order, 0, len(owned))
	for id := range owned {
		result = append(result, r.orders[id].Clone())
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].OrderNumber > result[j].OrderNumber
	})

	return result, nil
}

func (r *orderRepositoryInMemory) UpdateStatus(_ context.Context, id, ownerID string, status domain.OrderStatus, updatedAt time.Time) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, err := r.ownedLocked(id, ownerID)
	if err != nil {
		return domain.Order{}, err
	}
	order.Status = status
	order.UpdatedAt = updatedAt
	r.orders[id] = order

	return order.Clone(), nil
}

func (r *orderRepositoryInMemory) CountByOrderNumberPrefix(_ context.Context, prefix string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.countPrefixLocked(prefix), nil
}

// NextOrderSequence выдаёт следующий номер за год под мьютексом.
// Первый вызов за год стартует от числа уже существующих заказов с этим префиксом.
func (r *orderRepositoryInMemory) NextOrderSequence(_ context.Context, year int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	last, ok := r.seqs[year]
	if !ok {
		last = r.countPrefixLocked(domain.OrderNumberPrefix(year))
	}
	last++
	r.seqs[year] = last
	return last, nil
}

func (r *orderRepositoryInMemory) ownedLocked(id, ownerID string) (domain.Order, error) {
	order, ok := r.orders[id]
	if !ok || order.OwnerID != ownerID {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order.Clone(), nil
}

func (r *orderRepositoryInMemory) countPrefixLocked(prefix string) int64 {
	var count int64
	for number := range r.byNumber {
		if strings.HasPrefix(number, prefix) {
			count++
		}
	}
	return count
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
