//go:build integration

package store

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	"loyalty-server/internal/observability"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// TestDB wraps a Postgres-backed transaction log for integration tests
type TestDB struct {
	db  *sqlx.DB
	Log *TransactionLogDB
}

// SetupTestDB connects to the test Postgres instance and prepares an empty transaction_log table
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	db, err := setupPostgresDB(t)
	if err != nil {
		t.Fatalf("failed to setup test database: %v", err)
	}

	logger := observability.NewLoggerFromZap(zap.NewNop())
	txLog := NewTransactionLogDBFromConn(db, 5*time.Second, logger)
	if err := txLog.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	tdb := &TestDB{db: db, Log: txLog}
	tdb.Truncate(t)
	return tdb
}

// setupPostgresDB uses TEST_DB_* variables, falling back to the local docker-compose defaults
func setupPostgresDB(t *testing.T) (*sqlx.DB, error) {
	t.Helper()

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envOr("TEST_DB_USER", "loyalty_user"),
		envOr("TEST_DB_PASSWORD", "loyalty_password"),
		envOr("TEST_DB_HOST", "localhost"),
		envOr("TEST_DB_PORT", "5432"),
		envOr("TEST_DB_NAME", "loyalty_db"),
	)

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	t.Cleanup(func() {
		db.Close()
	})
	return db, nil
}

// Truncate clears the transaction log while preserving schema
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()
	if _, err := tdb.db.Exec("TRUNCATE TABLE transaction_log"); err != nil {
		t.Fatalf("failed to truncate transaction_log: %v", err)
	}
}

// SetupTestRedis returns a RedisStore on a flushed test database selected by TEST_REDIS_*
func SetupTestRedis(t *testing.T) *RedisStore {
	t.Helper()

	dbIndex, err := strconv.Atoi(envOr("TEST_REDIS_DB", "15"))
	if err != nil {
		t.Fatalf("invalid TEST_REDIS_DB: %v", err)
	}
	client := redis.NewClient(&redis.Options{
		Addr: envOr("TEST_REDIS_ADDR", "localhost:6379"),
		DB:   dbIndex,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("failed to ping redis: %v", err)
	}
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})

	return NewRedisStore(client, 2*time.Second)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
