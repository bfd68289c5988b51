package app

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Config описывает настройки запуска сервиса заказов.
// Значения по умолчанию заданы тегами envDefault.
type Config struct {
	GRPCAddr    string `env:"ORDERS_GRPC_ADDR" envDefault:":50051" validate:"required"`
	HTTPAddr    string `env:"ORDERS_HTTP_ADDR" envDefault:":8080"`
	MetricsAddr string `env:"ORDERS_METRICS_ADDR" envDefault:":9090" validate:"required"`

	StorageDriver       string `env:"ORDERS_STORAGE_DRIVER" envDefault:"memory" validate:"oneof=memory postgres"`
	PostgresDSN         string `env:"ORDERS_POSTGRES_DSN" validate:"required_if=StorageDriver postgres"`
	PostgresAutoMigrate bool   `env:"ORDERS_POSTGRES_AUTO_MIGRATE" envDefault:"true"`
	PostgresMaxConns    int    `env:"ORDERS_POSTGRES_MAX_CONNS" envDefault:"20" validate:"gte=0"`
	NumberStrategy      string `env:"ORDERS_NUMBER_STRATEGY" envDefault:"count" validate:"oneof=count sequence"`

	CacheProvider string        `env:"ORDERS_CACHE_PROVIDER" envDefault:"none" validate:"oneof=none memory redis"`
	CacheRedisURL string        `env:"ORDERS_CACHE_REDIS_URL" envDefault:"redis://localhost:6379/0" validate:"required_if=CacheProvider redis"`
	CacheSize     int           `env:"ORDERS_CACHE_SIZE" envDefault:"1024" validate:"gt=0"`
	CacheTTL      time.Duration `env:"ORDERS_CACHE_TTL" envDefault:"5m"`

	// KafkaBrokers - список брокеров через запятую. Пусто - outbox worker не запускается.
	KafkaBrokers       string        `env:"KAFKA_BROKERS"`
	KafkaClientID      string        `env:"KAFKA_CLIENT_ID" envDefault:"wholesale-orders"`
	OutboxTopic        string        `env:"ORDERS_OUTBOX_TOPIC" envDefault:"wholesale.order.events"`
	OutboxDLQTopic     string        `env:"ORDERS_OUTBOX_DLQ_TOPIC" envDefault:"wholesale.order.events.dlq"`
	OutboxPollInterval time.Duration `env:"ORDERS_OUTBOX_POLL_INTERVAL" envDefault:"1s" validate:"gt=0"`
	OutboxBatchSize    int           `env:"ORDERS_OUTBOX_BATCH_SIZE" envDefault:"100" validate:"gt=0"`
	OutboxMaxAttempts  int           `env:"ORDERS_OUTBOX_MAX_ATTEMPTS" envDefault:"3" validate:"gt=0"`
	OutboxRetryDelay   time.Duration `env:"ORDERS_OUTBOX_RETRY_DELAY" envDefault:"200ms" validate:"gte=0"`

	JWTSecret string        `env:"ORDERS_JWT_SECRET" validate:"required"`
	JWTIssuer string        `env:"ORDERS_JWT_ISSUER"`
	JWTTTL    time.Duration `env:"ORDERS_JWT_TTL" envDefault:"2h" validate:"gt=0"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
}

var configValidator = validator.New()

// DefaultConfig возвращает значения по умолчанию без чтения окружения.
// JWTSecret остаётся пустым.
func DefaultConfig() Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("default config: %v", err))
	}
	return cfg
}

// Load читает .env (если есть) и переменные окружения, затем валидирует результат.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return LoadFromEnvironment(nil)
}

// LoadFromEnvironment разбирает конфигурацию из переданной карты.
// nil означает окружение процесса.
func LoadFromEnvironment(environment map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Brokers возвращает список Kafka-брокеров без пустых элементов.
func (c Config) Brokers() []string {
	var brokers []string
	for _, broker := range strings.Split(c.KafkaBrokers, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}
