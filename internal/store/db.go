package store

import (
	"context"
	"fmt"
	"time"

	"loyalty-server/internal/observability"

	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

// TransactionLogDB keeps the global transaction log in Postgres so analytics can outlive the KV store
type TransactionLogDB struct {
	db      *sqlx.DB
	logger  *observability.Logger
	timeout time.Duration
}

var _ TransactionLog = (*TransactionLogDB)(nil)

type transactionLogRow struct {
	ID         int64     `db:"id"`
	OccurredAt time.Time `db:"occurred_at"`
	Action     string    `db:"action"`
	BusinessID string    `db:"business_id"`
	CustomerID string    `db:"customer_id"`
	RewardID   string    `db:"reward_id"`
	CampaignID string    `db:"campaign_id"`
}

func (r transactionLogRow) entry() TransactionLogEntry {
	return TransactionLogEntry{
		Timestamp: r.OccurredAt.UTC(),
		Action:    r.Action,
		Data: TransactionData{
			BusinessID: r.BusinessID,
			CustomerID: r.CustomerID,
			RewardID:   r.RewardID,
			CampaignID: r.CampaignID,
		},
	}
}

// NewTransactionLogDB opens a pgx-backed connection pool
func NewTransactionLogDB(connectionString string, timeout time.Duration, logger *observability.Logger) (*TransactionLogDB, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction log database: %w", err)
	}
	return NewTransactionLogDBFromConn(db, timeout, logger), nil
}

func NewTransactionLogDBFromConn(db *sqlx.DB, timeout time.Duration, logger *observability.Logger) *TransactionLogDB {
	return &TransactionLogDB{db: db, logger: logger, timeout: timeout}
}

// DB returns the underlying database connection
func (s *TransactionLogDB) DB() *sqlx.DB {
	return s.db
}

func (s *TransactionLogDB) Close() error {
	return s.db.Close()
}

func (s *TransactionLogDB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

const sqlCreateTransactionLog = `
CREATE TABLE IF NOT EXISTS transaction_log (
	id          BIGSERIAL PRIMARY KEY,
	occurred_at TIMESTAMPTZ NOT NULL,
	action      TEXT NOT NULL,
	business_id TEXT NOT NULL,
	customer_id TEXT NOT NULL DEFAULT '',
	reward_id   TEXT NOT NULL DEFAULT '',
	campaign_id TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS transaction_log_action_business_idx ON transaction_log (action, business_id, occurred_at);
`

// EnsureSchema creates the transaction_log table when it does not exist
func (s *TransactionLogDB) EnsureSchema(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, sqlCreateTransactionLog); err != nil {
		s.logger.Error(ctx, "failed to create transaction log schema", err)
		return transient("ensure transaction log schema", err)
	}
	return nil
}

const sqlInsertTransaction = `
INSERT INTO transaction_log (occurred_at, action, business_id, customer_id, reward_id, campaign_id)
VALUES (:occurred_at, :action, :business_id, :customer_id, :reward_id, :campaign_id)
`

func (s *TransactionLogDB) AppendTransaction(ctx context.Context, entry TransactionLogEntry) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	row := transactionLogRow{
		OccurredAt: entry.Timestamp.UTC(),
		Action:     entry.Action,
		BusinessID: entry.Data.BusinessID,
		CustomerID: entry.Data.CustomerID,
		RewardID:   entry.Data.RewardID,
		CampaignID: entry.Data.CampaignID,
	}
	if _, err := s.db.NamedExecContext(ctx, sqlInsertTransaction, row); err != nil {
		s.logger.Error(ctx, "failed to insert transaction", err)
		return transient("append transaction", err)
	}
	return nil
}

const sqlListTransactions = `
SELECT id, occurred_at, action, business_id, customer_id, reward_id, campaign_id
FROM transaction_log
WHERE ($1 = '' OR action = $1) AND occurred_at >= $2
ORDER BY id ASC
`

func (s *TransactionLogDB) ListTransactions(ctx context.Context, action string, since time.Time) ([]TransactionLogEntry, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if since.IsZero() {
		since = time.Unix(0, 0)
	}

	var rows []transactionLogRow
	if err := s.db.SelectContext(ctx, &rows, sqlListTransactions, action, since.UTC()); err != nil {
		s.logger.Error(ctx, "failed to list transactions", err)
		return nil, transient("list transactions", err)
	}

	entries := make([]TransactionLogEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.entry())
	}
	return entries, nil
}

// LoggedStore routes transaction log calls to a dedicated TransactionLog while every
// other operation goes to the wrapped Storer
type LoggedStore struct {
	Storer
	log TransactionLog
}

// WithTransactionLog returns base unchanged when log is nil
func WithTransactionLog(base Storer, log TransactionLog) Storer {
	if log == nil {
		return base
	}
	return &LoggedStore{Storer: base, log: log}
}

func (s *LoggedStore) AppendTransaction(ctx context.Context, entry TransactionLogEntry) error {
	return s.log.AppendTransaction(ctx, entry)
}

func (s *LoggedStore) ListTransactions(ctx context.Context, action string, since time.Time) ([]TransactionLogEntry, error) {
	return s.log.ListTransactions(ctx, action, since)
}
