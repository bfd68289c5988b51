// Package postgres хранит заказы, их историю и outbox в PostgreSQL через pgx.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

const (
	connectTimeout = 5 * time.Second
	opTimeout      = 5 * time.Second

	defaultMaxConns        = 20
	defaultApplicationName = "wholesale-orders"
)

var errStoreNotInitialized = errors.New("postgres store is not initialized")

type settings struct {
	maxConns    int
	appName     string
	maxLifetime time.Duration
	maxIdleTime time.Duration
}

// Option настраивает подключение в Open.
type Option func(*settings)

// WithMaxConns ограничивает число открытых соединений; половина из них держится в простое.
func WithMaxConns(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxConns = n
		}
	}
}

// WithApplicationName задаёт application_name, видимый в pg_stat_activity.
func WithApplicationName(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.appName = name
		}
	}
}

type Store struct {
	db *sql.DB
}

// Open разбирает DSN, открывает пул и ждёт ответа от базы.
func Open(ctx context.Context, dsn string, options ...Option) (*Store, error) {
	s := settings{
		maxConns:    defaultMaxConns,
		appName:     defaultApplicationName,
		maxLifetime: 30 * time.Minute,
		maxIdleTime: 5 * time.Minute,
	}
	for _, option := range options {
		option(&s)
	}

	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if _, ok := connCfg.RuntimeParams["application_name"]; !ok {
		connCfg.RuntimeParams["application_name"] = s.appName
	}

	db := stdlib.OpenDB(*connCfg)
	db.SetMaxOpenConns(s.maxConns)
	db.SetMaxIdleConns(max(1, s.maxConns/2))
	db.SetConnMaxLifetime(s.maxLifetime)
	db.SetConnMaxIdleTime(s.maxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) DB() *sql.DB {
	return s.db
}

// Ping используется проверкой готовности.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errStoreNotInitialized
	}
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
