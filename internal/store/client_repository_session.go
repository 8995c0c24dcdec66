package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionRepository) SaveSession(ctx context.Context, session models.LocalSession) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, saveLocalSession, session.Cookie, session.Email, session.SavedAt.UTC())
	if err != nil {
		log.Err(err).
			Str("func", "localSessionRepository.SaveSession").
			Msg("failed to execute upsert for local session")
		return fmt.Errorf("failed to save local session: %w", err)
	}

	return nil
}

func (l *localSessionRepository) LoadSession(ctx context.Context) (models.LocalSession, error) {
	log := logger.FromContext(ctx)

	var session models.LocalSession
	err := l.DB.QueryRowContext(ctx, loadLocalSession).Scan(&session.Cookie, &session.Email, &session.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localSessionRepository.LoadSession").
			Msg("failed to scan local session row")
		return models.LocalSession{}, fmt.Errorf("failed to load local session: %w", err)
	}

	return session, nil
}

func (l *localSessionRepository) ClearSession(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, clearLocalSession); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSessionRepository.ClearSession").
			Msg("failed to clear local session")
		return fmt.Errorf("failed to clear local session: %w", err)
	}

	return nil
}
