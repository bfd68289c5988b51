package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultMemoryCacheSize = 10_000

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryProvider - LRU-кэш в памяти процесса с ленивым истечением TTL.
type MemoryProvider struct {
	cache *lru.Cache[string, memoryEntry]
	now   func() time.Time
}

// NewMemoryProvider создаёт LRU ёмкостью size (size<=0 - значение по умолчанию).
func NewMemoryProvider(size int) (*MemoryProvider, error) {
	if size <= 0 {
		size = defaultMemoryCacheSize
	}
	c, err := lru.New[string, memoryEntry](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &MemoryProvider{cache: c, now: time.Now}, nil
}

func (m *MemoryProvider) Get(_ context.Context, key string) (string, error) {
	cached, ok := m.cache.Get(key)
	if !ok {
		return "", ErrNotFound
	}
	if !cached.expiresAt.IsZero() && m.now().After(cached.expiresAt) {
		m.cache.Remove(key)
		return "", ErrNotFound
	}
	return cached.value, nil
}

// Set сохраняет значение; ttl<=0 означает хранение до вытеснения.
func (m *MemoryProvider) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.cache.Add(key, entry)
	return nil
}

func (m *MemoryProvider) Delete(_ context.Context, key string) error {
	m.cache.Remove(key)
	return nil
}

// Len возвращает количество записей (включая ещё не вычищенные просроченные).
func (m *MemoryProvider) Len() int {
	return m.cache.Len()
}

func (m *MemoryProvider) Close() error {
	m.cache.Purge()
	return nil
}

var _ Provider = (*MemoryProvider)(nil)
