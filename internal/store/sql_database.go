package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/migrations"
)

// DB wraps a *sql.DB together with the squirrel builder configured for its
// placeholder dialect (Dollar for Postgres, Question for SQLite).
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened connection. Used by tests and by the
// connect helpers.
func NewDB(conn *sql.DB, placeholder sq.PlaceholderFormat, log *logger.Logger) *DB {
	return &DB{
		DB:      conn,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger:  log,
	}
}

// Migrate applies the embedded Postgres schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Builder returns the dialect-aware statement builder.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

const (
	execAttempts = 3
	execBackoff  = 50 * time.Millisecond
)

func (db *DB) retryable(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
}

// execWithRetry runs an idempotent statement, retrying failures the error
// classifier marks as transient.
func (db *DB) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var lastErr error
	for attempt := range execAttempts {
		result, err := db.ExecContext(ctx, query, args...)
		if err == nil || !db.retryable(err) {
			return result, err
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(execBackoff * time.Duration(attempt+1)):
		}
	}

	return nil, lastErr
}
