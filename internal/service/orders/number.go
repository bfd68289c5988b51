package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
)

// Стратегии выдачи номеров заказов.
const (
	NumberStrategyCount    = "count"
	NumberStrategySequence = "sequence"
)

// NumberGenerator выдаёт следующий номер заказа за текущий год.
type NumberGenerator interface {
	Next(ctx context.Context) (string, error)
}

// CountingGenerator считает заказы текущего года и прибавляет единицу.
// Между подсчётом и вставкой нет блокировки: два параллельных Create могут
// получить один номер, и второй упрётся в уникальный индекс хранилища.
type CountingGenerator struct {
	repo domain.OrderRepository
	now  func() time.Time
}

// NewCountingGenerator создаёт генератор count+1.
func NewCountingGenerator(repo domain.OrderRepository, now func() time.Time) *CountingGenerator {
	if now == nil {
		now = time.Now
	}
	return &CountingGenerator{repo: repo, now: now}
}

func (g *CountingGenerator) Next(ctx context.Context) (string, error) {
	year := g.now().Year()
	prefix := domain.OrderNumberPrefix(year)

	count, err := g.repo.CountByOrderNumberPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("count orders with prefix %s: %w", prefix, err)
	}
	return domain.FormatOrderNumber(year, count+1), nil
}

// SequenceGenerator берёт номер из атомарного счётчика года в хранилище.
type SequenceGenerator struct {
	repo domain.OrderRepository
	now  func() time.Time
}

// NewSequenceGenerator создаёт генератор поверх NextOrderSequence.
func NewSequenceGenerator(repo domain.OrderRepository, now func() time.Time) *SequenceGenerator {
	if now == nil {
		now = time.Now
	}
	return &SequenceGenerator{repo: repo, now: now}
}

func (g *SequenceGenerator) Next(ctx context.Context) (string, error) {
	year := g.now().Year()

	seq, err := g.repo.NextOrderSequence(ctx, year)
	if err != nil {
		return "", fmt.Errorf("next order sequence for %d: %w", year, err)
	}
	return domain.FormatOrderNumber(year, seq), nil
}

// NewNumberGenerator выбирает генератор по имени стратегии (пустое имя - count).
func NewNumberGenerator(strategy string, repo domain.OrderRepository, now func() time.Time) (NumberGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case NumberStrategyCount, "":
		return NewCountingGenerator(repo, now), nil
	case NumberStrategySequence:
		return NewSequenceGenerator(repo, now), nil
	default:
		return nil, fmt.Errorf("unknown order number strategy %q", strategy)
	}
}
