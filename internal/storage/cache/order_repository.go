package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
)

const defaultOrderTTL = 5 * time.Minute

// cachedOrderRepository кэширует заказы по ID поверх основного хранилища.
// Ошибки кэша никогда не ломают запрос: при любой из них идём в хранилище.
type cachedOrderRepository struct {
	domain.OrderRepository

	provider Provider
	ttl      time.Duration
	logger   *log.Entry
}

// NewOrderRepository оборачивает repo read-through кэшем. При provider == nil возвращает repo как есть.
func NewOrderRepository(repo domain.OrderRepository, provider Provider, ttl time.Duration, logger *log.Entry) domain.OrderRepository {
	if provider == nil {
		return repo
	}
	if ttl <= 0 {
		ttl = defaultOrderTTL
	}
	if logger == nil {
		logger = log.WithField("component", "order-cache")
	}
	return &cachedOrderRepository{
		OrderRepository: repo,
		provider:        provider,
		ttl:             ttl,
		logger:          logger,
	}
}

func (r *cachedOrderRepository) Insert(ctx context.Context, order domain.Order) (domain.Order, error) {
	stored, err := r.OrderRepository.Insert(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}
	r.store(ctx, stored)
	return stored, nil
}

func (r *cachedOrderRepository) FindByID(ctx context.Context, id, ownerID string) (domain.Order, error) {
	if order, ok := r.load(ctx, id); ok {
		// В кэше лежит заказ любого владельца; чужой заказ неотличим от отсутствующего.
		if order.OwnerID != ownerID {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return order, nil
	}

	order, err := r.OrderRepository.FindByID(ctx, id, ownerID)
	if err != nil {
		return domain.Order{}, err
	}
	r.store(ctx, order)
	return order, nil
}

func (r *cachedOrderRepository) UpdateStatus(ctx context.Context, id, ownerID string, status domain.OrderStatus, updatedAt time.Time) (domain.Order, error) {
	if err := r.provider.Delete(ctx, OrderKey(id)); err != nil {
		r.logger.WithError(err).WithField("order_id", id).Warn("failed to invalidate cached order")
	}

	order, err := r.OrderRepository.UpdateStatus(ctx, id, ownerID, status, updatedAt)
	if err != nil {
		return domain.Order{}, err
	}
	r.store(ctx, order)
	return order, nil
}

func (r *cachedOrderRepository) load(ctx context.Context, id string) (domain.Order, bool) {
	raw, err := r.provider.Get(ctx, OrderKey(id))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.logger.WithError(err).WithField("order_id", id).Warn("order cache read failed")
		}
		return domain.Order{}, false
	}

	var order domain.Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		r.logger.WithError(err).WithField("order_id", id).Warn("drop corrupted cache entry")
		_ = r.provider.Delete(ctx, OrderKey(id))
		return domain.Order{}, false
	}
	return order, true
}

func (r *cachedOrderRepository) store(ctx context.Context, order domain.Order) {
	raw, err := json.Marshal(order)
	if err != nil {
		r.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to encode order for cache")
		return
	}
	if err := r.provider.Set(ctx, OrderKey(order.ID), string(raw), r.ttl); err != nil {
		r.logger.WithError(err).WithField("order_id", order.ID).Warn("order cache write failed")
	}
}

var _ domain.OrderRepository = (*cachedOrderRepository)(nil)
