// Команда migrate управляет схемой PostgreSQL сервиса заказов.
//
//	migrate -direction=up
//	migrate -direction=down -steps=1
//	migrate -direction=status -dsn=postgres://...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/storage/postgres"
)

const (
	defaultTimeout = 30 * time.Second
	envPostgresDSN = "ORDERS_POSTGRES_DSN"
)

var errUsage = errors.New("usage")

type options struct {
	direction string
	steps     int
	dsn       string
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Getenv, os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, getenv func(string) string, stdout io.Writer) error {
	opts, err := parseOptions(args, getenv)
	if err != nil {
		return err
	}

	store, err := postgres.Open(ctx, opts.dsn, postgres.WithApplicationName("wholesale-orders-migrate"), postgres.WithMaxConns(2))
	if err != nil {
		return err
	}
	defer store.Close()

	switch opts.direction {
	case "up":
		err = store.MigrateUp(ctx, opts.steps)
	case "down":
		err = store.MigrateDown(ctx, opts.steps)
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", opts.direction, err)
	}

	state, err := store.MigrationStatus(ctx)
	if err != nil {
		return fmt.Errorf("migration status: %w", err)
	}
	_, err = fmt.Fprintln(stdout, formatState(opts.direction, state))
	return err
}

// parseOptions разбирает флаги; DSN без флага берётся из ORDERS_POSTGRES_DSN.
func parseOptions(args []string, getenv func(string) string) (options, error) {
	var opts options
	set := flag.NewFlagSet("migrate", flag.ContinueOnError)
	set.StringVar(&opts.direction, "direction", "up", "up|down|status")
	set.IntVar(&opts.steps, "steps", 0, "migrations to apply (0 = all) or roll back (0 = one)")
	set.StringVar(&opts.dsn, "dsn", "", "PostgreSQL DSN, defaults to $"+envPostgresDSN)
	if err := set.Parse(args); err != nil {
		return options{}, err
	}

	opts.direction = strings.ToLower(strings.TrimSpace(opts.direction))
	switch opts.direction {
	case "up", "down", "status":
	default:
		return options{}, fmt.Errorf("%w: unknown direction %q, want up|down|status", errUsage, opts.direction)
	}

	opts.dsn = strings.TrimSpace(opts.dsn)
	if opts.dsn == "" {
		opts.dsn = strings.TrimSpace(getenv(envPostgresDSN))
	}
	if opts.dsn == "" {
		return options{}, fmt.Errorf("%w: -dsn or %s is required", errUsage, envPostgresDSN)
	}
	if opts.steps < 0 {
		return options{}, fmt.Errorf("%w: -steps must not be negative", errUsage)
	}
	return opts, nil
}

func formatState(direction string, state postgres.MigrationState) string {
	prefix := "migrate " + direction + " ok"
	if direction == "status" {
		prefix = "migration status"
	}
	return fmt.Sprintf("%s: version=%d applied=%d pending=%d", prefix, state.Version, state.Applied, state.Pending)
}
