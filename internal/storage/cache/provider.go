// Package cache содержит провайдеры кэша и read-through обёртку над хранилищем заказов.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound возвращается провайдером, если ключ отсутствует или истёк.
var ErrNotFound = errors.New("cache key not found")

const (
	ProviderNone   = "none"
	ProviderMemory = "memory"
	ProviderRedis  = "redis"
)

// Provider - минимальный key/value кэш с TTL.
type Provider interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Config описывает выбор провайдера.
type Config struct {
	Provider string
	RedisURL string
	// Size - ёмкость LRU для memory-провайдера.
	Size int
}

// NewProvider создаёт провайдер по конфигурации. Для ProviderNone возвращает nil без ошибки.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderNone, "":
		return nil, nil
	case ProviderMemory:
		return NewMemoryProvider(cfg.Size)
	case ProviderRedis:
		return NewRedisProvider(ctx, cfg.RedisURL)
	default:
		return nil, fmt.Errorf("unsupported cache provider: %s", cfg.Provider)
	}
}

// OrderKey возвращает ключ кэша для заказа.
func OrderKey(orderID string) string {
	return "order:" + orderID
}
