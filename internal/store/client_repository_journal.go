package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/models"
)

type localJournalRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalJournalRepository(db *DB, logger *logger.Logger) LocalJournalRepository {
	return &localJournalRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localJournalRepository) SaveJournal(ctx context.Context, journal models.CaptureJournal) error {
	log := logger.FromContext(ctx)

	blocks := journal.Blocks
	if blocks == nil {
		blocks = []models.InsightBlock{}
	}
	blocksJSON, err := json.Marshal(blocks)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	var metaJSON sql.NullString
	if journal.Meta != nil {
		data, marshalErr := json.Marshal(journal.Meta)
		if marshalErr != nil {
			return fmt.Errorf("%w: %w", ErrEncodingJSON, marshalErr)
		}
		metaJSON = sql.NullString{String: string(data), Valid: true}
	}

	_, err = l.DB.ExecContext(ctx, saveCaptureJournal,
		journal.ConversationID,
		journal.Transcript,
		journal.Mark,
		journal.Summary,
		string(blocksJSON),
		metaJSON,
		journal.UpdatedAt.UTC(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "localJournalRepository.SaveJournal").
			Int64("conversation_id", journal.ConversationID).
			Msg("failed to execute upsert for capture journal")
		return fmt.Errorf("failed to save capture journal (conversation_id=%d): %w", journal.ConversationID, err)
	}

	return nil
}

func (l *localJournalRepository) LoadJournal(ctx context.Context) (models.CaptureJournal, error) {
	log := logger.FromContext(ctx)

	var (
		journal    models.CaptureJournal
		blocksJSON string
		metaJSON   sql.NullString
	)
	err := l.DB.QueryRowContext(ctx, loadCaptureJournal).Scan(
		&journal.ConversationID,
		&journal.Transcript,
		&journal.Mark,
		&journal.Summary,
		&blocksJSON,
		&metaJSON,
		&journal.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CaptureJournal{}, ErrJournalNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localJournalRepository.LoadJournal").
			Msg("failed to scan capture journal row")
		return models.CaptureJournal{}, fmt.Errorf("failed to load capture journal: %w", err)
	}

	if err = json.Unmarshal([]byte(blocksJSON), &journal.Blocks); err != nil {
		return models.CaptureJournal{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}
	if metaJSON.Valid {
		journal.Meta = new(models.MetaAnalysis)
		if err = json.Unmarshal([]byte(metaJSON.String), journal.Meta); err != nil {
			return models.CaptureJournal{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
		}
	}

	return journal, nil
}

func (l *localJournalRepository) ClearJournal(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, clearCaptureJournal); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localJournalRepository.ClearJournal").
			Msg("failed to clear capture journal")
		return fmt.Errorf("failed to clear capture journal: %w", err)
	}

	return nil
}
