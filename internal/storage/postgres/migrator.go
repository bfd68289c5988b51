package postgres

import (
	"cmp"
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

//go:embed sql/migrations/*.sql
var migrationFiles embed.FS

const (
	migrationsDir   = "sql/migrations"
	// migrationLockID - ключ pg_advisory_lock, общий для всех инстансов сервиса.
	migrationLockID = int64(0x574f5244)

	schemaMigrationsDDL = `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    BIGINT PRIMARY KEY,
		name       TEXT NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
)

// 0001_orders.up.sql
var migrationFileName = regexp.MustCompile(`^(\d{4})_(\w+)\.(up|down)\.sql$`)

type migration struct {
	version int64
	name    string
	up      string
	down    string
}

func (m migration) String() string { return fmt.Sprintf("%04d_%s", m.version, m.name) }

// MigrationState - положение схемы относительно встроенных миграций.
type MigrationState struct {
	Version int64
	Applied int
	Pending int
}

// MigrateUp применяет steps ещё не применённых миграций; 0 - все.
func (s *Store) MigrateUp(ctx context.Context, steps int) error {
	return s.withMigrationLock(ctx, func(conn *sql.Conn, all []migration, applied []int64) error {
		done := versionSet(applied)
		count := 0
		for _, m := range all {
			if done[m.version] {
				continue
			}
			if steps > 0 && count == steps {
				break
			}
			if err := runMigration(ctx, conn, m, true); err != nil {
				return err
			}
			count++
		}
		return nil
	})
}

// MigrateDown откатывает steps последних миграций; steps<=0 - одну.
func (s *Store) MigrateDown(ctx context.Context, steps int) error {
	if steps <= 0 {
		steps = 1
	}
	return s.withMigrationLock(ctx, func(conn *sql.Conn, all []migration, applied []int64) error {
		known := make(map[int64]migration, len(all))
		for _, m := range all {
			known[m.version] = m
		}
		for i := len(applied) - 1; i >= 0 && steps > 0; i-- {
			m, ok := known[applied[i]]
			if !ok {
				return fmt.Errorf("version %d is applied but has no embedded migration", applied[i])
			}
			if err := runMigration(ctx, conn, m, false); err != nil {
				return err
			}
			steps--
		}
		return nil
	})
}

// EnsureSchema доводит схему до последней версии.
func (s *Store) EnsureSchema(ctx context.Context) error {
	return s.MigrateUp(ctx, 0)
}

func (s *Store) MigrationStatus(ctx context.Context) (MigrationState, error) {
	if s == nil || s.db == nil {
		return MigrationState{}, errStoreNotInitialized
	}
	all, err := readMigrations(migrationFiles, migrationsDir)
	if err != nil {
		return MigrationState{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, schemaMigrationsDDL); err != nil {
		return MigrationState{}, fmt.Errorf("create schema_migrations: %w", err)
	}
	applied, err := appliedVersions(ctx, s.db)
	if err != nil {
		return MigrationState{}, err
	}
	return stateOf(all, applied), nil
}

func stateOf(all []migration, applied []int64) MigrationState {
	state := MigrationState{Applied: len(applied)}
	if len(applied) > 0 {
		state.Version = applied[len(applied)-1]
	}
	done := versionSet(applied)
	for _, m := range all {
		if !done[m.version] {
			state.Pending++
		}
	}
	return state
}

// withMigrationLock держит advisory lock на отдельном соединении, пока выполняется fn.
func (s *Store) withMigrationLock(ctx context.Context, fn func(conn *sql.Conn, all []migration, applied []int64) error) error {
	if s == nil || s.db == nil {
		return errStoreNotInitialized
	}
	all, err := readMigrations(migrationFiles, migrationsDir)
	if err != nil {
		return err
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("migration connection: %w", err)
	}
	defer conn.Close()

	lockCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if _, err := conn.ExecContext(lockCtx, `SELECT pg_advisory_lock($1)`, migrationLockID); err != nil {
		return fmt.Errorf("migration lock: %w", err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.WithoutCancel(ctx), `SELECT pg_advisory_unlock($1)`, migrationLockID)
	}()

	if _, err := conn.ExecContext(ctx, schemaMigrationsDDL); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	applied, err := appliedVersions(ctx, conn)
	if err != nil {
		return err
	}
	return fn(conn, all, applied)
}

// runMigration выполняет скрипт и правку schema_migrations в одной транзакции.
func runMigration(ctx context.Context, conn *sql.Conn, m migration, up bool) (err error) {
	verb, script := "apply", m.up
	record, args := `INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, []any{m.version, m.name}
	if !up {
		verb, script = "revert", m.down
		record, args = `DELETE FROM schema_migrations WHERE version = $1`, []any{m.version}
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s %s: %w", verb, m, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("%s %s: %w", verb, m, err)
	}
	if _, err = tx.ExecContext(ctx, record, args...); err != nil {
		return fmt.Errorf("%s %s: record version: %w", verb, m, err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s %s: commit: %w", verb, m, err)
	}
	return nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// appliedVersions возвращает применённые версии по возрастанию.
func appliedVersions(ctx context.Context, q queryer) ([]int64, error) {
	rows, err := q.QueryContext(ctx, `SELECT version FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer rows.Close()

	var versions []int64
	for rows.Next() {
		var v int64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan schema version: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

func versionSet(versions []int64) map[int64]bool {
	set := make(map[int64]bool, len(versions))
	for _, v := range versions {
		set[v] = true
	}
	return set
}

// readMigrations собирает пары up/down из dir и сортирует их по версии.
func readMigrations(fsys fs.FS, dir string) ([]migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	byVersion := make(map[int64]*migration)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parts := migrationFileName.FindStringSubmatch(entry.Name())
		if parts == nil {
			return nil, fmt.Errorf("unexpected file %s in %s", entry.Name(), dir)
		}
		version, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("version of %s: %w", entry.Name(), err)
		}

		body, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		script := strings.TrimSpace(string(body))
		if script == "" {
			return nil, fmt.Errorf("%s is empty", entry.Name())
		}

		m, ok := byVersion[version]
		if !ok {
			m = &migration{version: version, name: parts[2]}
			byVersion[version] = m
		} else if m.name != parts[2] {
			return nil, fmt.Errorf("version %d is used by %s and %s", version, m.name, parts[2])
		}

		target := &m.up
		if parts[3] == "down" {
			target = &m.down
		}
		if *target != "" {
			return nil, fmt.Errorf("%s is defined twice", entry.Name())
		}
		*target = script
	}
	if len(byVersion) == 0 {
		return nil, errors.New("no migrations embedded")
	}

	all := make([]migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.up == "" || m.down == "" {
			return nil, fmt.Errorf("migration %s needs both up and down scripts", m)
		}
		all = append(all, *m)
	}
	slices.SortFunc(all, func(a, b migration) int { return cmp.Compare(a.version, b.version) })
	return all, nil
}
