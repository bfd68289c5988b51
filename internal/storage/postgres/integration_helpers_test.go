package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testDSNEnv - база для интеграционных тестов; без неё тесты пропускаются.
const testDSNEnv = "ORDERS_POSTGRES_TEST_DSN"

// rawStore открывает базу как есть, без миграций.
func rawStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", testDSNEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	store, err := Open(ctx, dsn)
	require.NoError(t, err, "open %s", testDSNEnv)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// migratedStore возвращает базу с актуальной схемой и пустыми таблицами.
func migratedStore(t *testing.T) *Store {
	t.Helper()

	store := rawStore(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, store.EnsureSchema(ctx))
	_, err := store.DB().ExecContext(ctx,
		`TRUNCATE order_outbox, order_timeline, order_items, order_number_sequences, orders RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return store
}
