package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
)

// ClientStorages groups the client-side SQLite repositories.
type ClientStorages struct {
	// SessionRepository keeps the server session cookie between runs.
	SessionRepository LocalSessionRepository
	// JournalRepository keeps the open capture for crash close-out.
	JournalRepository LocalJournalRepository

	DB *DB
}

// NewClientStorages opens (creating if needed) the SQLite file named by
// cfg.DSN, creates the local tables and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = migrateLocal(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &ClientStorages{
		SessionRepository: NewLocalSessionRepository(db, logger),
		JournalRepository: NewLocalJournalRepository(db, logger),
		DB:                db,
	}, nil
}

func migrateLocal(ctx context.Context, db *DB) error {
	if _, err := db.ExecContext(ctx, createLocalTables); err != nil {
		return fmt.Errorf("local migration failed: %w", err)
	}

	return nil
}
