package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Redis     RedisConfig
	Database  DatabaseConfig
	Kafka     KafkaConfig
	Ledger    LedgerConfig
	Dispatch  DispatchConfig
	Scheduler SchedulerConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// AuthConfig holds the secret shared with the auth collaborator that issues business tokens
type AuthConfig struct {
	JWTSecret string
}

// RedisConfig holds the shared key-value store connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port for clients that take a single address string
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds settings for the optional Postgres transaction log
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// Enabled reports whether a Postgres transaction log is configured
func (c DatabaseConfig) Enabled() bool {
	return c.Host != "" && c.Name != ""
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// KafkaConfig holds Kafka/event streaming configuration. Brokers empty disables Kafka.
type KafkaConfig struct {
	Brokers            []string
	NotificationsTopic string
	EventsTopic        string
	ScansTopic         string
	ConsumerGroup      string
}

// Enabled reports whether any Kafka broker is configured
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// LedgerConfig holds store call limits and analytics compatibility switches
type LedgerConfig struct {
	StoreTimeout       time.Duration
	ReadRetries        int
	RetryBackoff       time.Duration
	ScanSubstringMatch bool
}

// DispatchConfig holds Notification Dispatcher settings
type DispatchConfig struct {
	Concurrency int
	Queue       string // "store" or "kafka"
	// Async hands fan-out to the asynq worker instead of running it in the request
	Async bool
}

// SchedulerConfig holds background sweep settings
type SchedulerConfig struct {
	PromotionInterval time.Duration
}

// RateLimitConfig caps requests per business per minute. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int
}

const (
	DispatchQueueStore = "store"
	DispatchQueueKafka = "kafka"
)

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}
	var err error

	// Server configuration
	if cfg.Server.Port, err = intEnv("SERVER_PORT", "8080"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Redis configuration
	if cfg.Redis.Enabled, err = boolEnv("REDIS_ENABLED", "true"); err != nil {
		return nil, err
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = intEnv("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = intEnv("REDIS_DB", "0"); err != nil {
		return nil, err
	}

	// Database configuration (optional)
	cfg.Database.Host = os.Getenv("DB_HOST")
	cfg.Database.Username = os.Getenv("DB_USERNAME")
	cfg.Database.Password = os.Getenv("DB_PASSWORD")
	cfg.Database.Name = os.Getenv("DB_NAME")

	// Kafka configuration (optional)
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}
	cfg.Kafka.NotificationsTopic = getEnvWithDefault("KAFKA_NOTIFICATIONS_TOPIC", "loyalty-notifications")
	cfg.Kafka.EventsTopic = getEnvWithDefault("KAFKA_EVENTS_TOPIC", "loyalty-events")
	cfg.Kafka.ScansTopic = getEnvWithDefault("KAFKA_SCANS_TOPIC", "loyalty-scans")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "loyalty-scan-consumers")

	// Ledger configuration
	if cfg.Ledger.StoreTimeout, err = durationEnv("STORE_TIMEOUT", "2s"); err != nil {
		return nil, err
	}
	if cfg.Ledger.ReadRetries, err = intEnv("STORE_READ_RETRIES", "3"); err != nil {
		return nil, err
	}
	if cfg.Ledger.RetryBackoff, err = durationEnv("STORE_RETRY_BACKOFF", "50ms"); err != nil {
		return nil, err
	}
	if cfg.Ledger.ScanSubstringMatch, err = boolEnv("SCAN_SUBSTRING_MATCH", "false"); err != nil {
		return nil, err
	}

	// Dispatch configuration
	if cfg.Dispatch.Concurrency, err = intEnv("DISPATCH_CONCURRENCY", "8"); err != nil {
		return nil, err
	}
	cfg.Dispatch.Queue = getEnvWithDefault("DISPATCH_QUEUE", DispatchQueueStore)
	if cfg.Dispatch.Queue != DispatchQueueStore && cfg.Dispatch.Queue != DispatchQueueKafka {
		return nil, fmt.Errorf("DISPATCH_QUEUE must be %q or %q, got %q", DispatchQueueStore, DispatchQueueKafka, cfg.Dispatch.Queue)
	}
	if cfg.Dispatch.Queue == DispatchQueueKafka && !cfg.Kafka.Enabled() {
		return nil, fmt.Errorf("DISPATCH_QUEUE=kafka requires KAFKA_BROKERS: %w", ErrEmptyEnvironmentVariable)
	}

	if cfg.Dispatch.Async, err = boolEnv("DISPATCH_ASYNC", "false"); err != nil {
		return nil, err
	}
	if cfg.Dispatch.Async && !cfg.Redis.Enabled {
		return nil, fmt.Errorf("DISPATCH_ASYNC requires REDIS_ENABLED: %w", ErrEmptyEnvironmentVariable)
	}

	// Scheduler configuration
	if cfg.Scheduler.PromotionInterval, err = durationEnv("PROMOTION_SWEEP_INTERVAL", "1m"); err != nil {
		return nil, err
	}

	// Rate limit configuration
	if cfg.RateLimit.RequestsPerMinute, err = intEnv("RATE_LIMIT_RPM", "600"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func intEnv(key, defaultValue string) (int, error) {
	v, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func boolEnv(key, defaultValue string) (bool, error) {
	v, err := strconv.ParseBool(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func durationEnv(key, defaultValue string) (time.Duration, error) {
	v, err := time.ParseDuration(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}
