package postgres

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func migrationFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys["db/"+name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func TestReadMigrations_SortsByVersion(t *testing.T) {
	fsys := migrationFS(map[string]string{
		"0010_items.up.sql":    "CREATE TABLE items (id INT);",
		"0010_items.down.sql":  "DROP TABLE items;",
		"0002_orders.up.sql":   "  CREATE TABLE orders (id INT);\n",
		"0002_orders.down.sql": "DROP TABLE orders;",
	})

	all, err := readMigrations(fsys, "db")
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, "0002_orders", all[0].String())
	assert.Equal(t, "CREATE TABLE orders (id INT);", all[0].up)
	assert.Equal(t, int64(10), all[1].version)
	assert.Equal(t, "DROP TABLE items;", all[1].down)
}

func TestReadMigrations_Invalid(t *testing.T) {
	cases := map[string]struct {
		files   map[string]string
		wantErr string
	}{
		"missing down": {
			files:   map[string]string{"0001_orders.up.sql": "SELECT 1;"},
			wantErr: "needs both up and down",
		},
		"bad name": {
			files:   map[string]string{"orders.sql": "SELECT 1;"},
			wantErr: "unexpected file orders.sql",
		},
		"empty body": {
			files: map[string]string{
				"0001_orders.up.sql":   " \n\t",
				"0001_orders.down.sql": "DROP TABLE orders;",
			},
			wantErr: "is empty",
		},
		"name mismatch": {
			files: map[string]string{
				"0001_orders.up.sql":  "SELECT 1;",
				"0001_other.down.sql": "SELECT 1;",
			},
			wantErr: "version 1 is used by",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := readMigrations(migrationFS(tc.files), "db")
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}

	_, err := readMigrations(fstest.MapFS{"db/.keep": &fstest.MapFile{}}, "db")
	assert.Error(t, err)
}

func TestEmbeddedMigrations(t *testing.T) {
	all, err := readMigrations(migrationFiles, migrationsDir)
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Contains(t, all[0].up, "orders_order_number_uq")
	assert.Contains(t, all[0].up, "order_number_sequences")
	assert.Contains(t, all[1].up, "order_timeline")
	assert.Contains(t, all[1].up, "order_outbox")
	assert.Contains(t, all[1].down, "DROP TABLE IF EXISTS order_outbox")
}

func TestStateOf(t *testing.T) {
	all := []migration{{version: 1}, {version: 2}, {version: 3}}

	assert.Equal(t, MigrationState{Pending: 3}, stateOf(all, nil))
	assert.Equal(t, MigrationState{Version: 3, Applied: 2, Pending: 1}, stateOf(all, []int64{1, 3}))
	assert.Equal(t, MigrationState{Version: 3, Applied: 3}, stateOf(all, []int64{1, 2, 3}))
}
