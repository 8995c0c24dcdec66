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

// conversationRepository is the PostgreSQL-backed implementation of
// [ConversationRepository]. Blocks and meta live in JSONB columns; every
// statement filters by user_id so foreign rows are indistinguishable from
// missing ones.
type conversationRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewConversationRepository(db *DB, logger *logger.Logger) ConversationRepository {
	logger.Debug().Msg("creating conversation repository")
	return &conversationRepository{
		db:     db,
		logger: logger,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *conversationRepository) Create(ctx context.Context, userID int64, title string) (models.Conversation, error) {
	log := logger.FromContext(ctx)

	if title == "" {
		title = models.DefaultConversationTitle
	}

	conversation, err := scanConversation(r.db.QueryRowContext(ctx, createConversation, userID, title))
	if err != nil {
		log.Err(err).
			Str("func", "*conversationRepository.Create").
			Int64("user_id", userID).
			Msg("failed to create conversation")
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return conversation, nil
}

func (r *conversationRepository) Get(ctx context.Context, userID, conversationID int64) (models.Conversation, error) {
	log := logger.FromContext(ctx)

	conversation, err := scanConversation(r.db.QueryRowContext(ctx, getConversation, conversationID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Conversation{}, ErrConversationNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*conversationRepository.Get").
			Int64("user_id", userID).
			Int64("conversation_id", conversationID).
			Msg("failed to get conversation")
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return conversation, nil
}

func (r *conversationRepository) Update(ctx context.Context, userID, conversationID int64, patch models.ConversationPatch) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateConversationQuery(r.db.builder, userID, conversationID, patch)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.Update").Msg("failed to create query")
		return err
	}

	result, err := r.db.execWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*conversationRepository.Update").
			Int64("user_id", userID).
			Int64("conversation_id", conversationID).
			Msg("failed to execute conversation update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "*conversationRepository.Update").
			Int64("user_id", userID).
			Int64("conversation_id", conversationID).
			Msg("no rows affected: conversation not found")
		return ErrConversationNotFound
	}

	return nil
}

func (r *conversationRepository) List(ctx context.Context, userID int64, limit int) ([]models.ConversationSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListConversationsQuery(r.db.builder, userID, limit)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*conversationRepository.List").
			Int64("user_id", userID).
			Msg("failed to execute query for listing conversations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	summaries := make([]models.ConversationSummary, 0, limit)
	for rows.Next() {
		var (
			item    models.ConversationSummary
			endedAt sql.NullTime
		)
		if err = rows.Scan(&item.ID, &item.Title, &item.StartedAt, &endedAt, &item.BlockCount); err != nil {
			log.Err(err).
				Str("func", "*conversationRepository.List").
				Int64("user_id", userID).
				Msg("failed to scan conversation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if endedAt.Valid {
			item.EndedAt = &endedAt.Time
		}
		summaries = append(summaries, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*conversationRepository.List").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return summaries, nil
}

func (r *conversationRepository) SetTitleIfDefault(ctx context.Context, userID, conversationID int64, defaultTitle, title string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSetTitleIfDefaultQuery(r.db.builder, userID, conversationID, defaultTitle, title)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.SetTitleIfDefault").Msg("failed to create query")
		return false, err
	}

	result, err := r.db.execWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*conversationRepository.SetTitleIfDefault").
			Int64("user_id", userID).
			Int64("conversation_id", conversationID).
			Msg("failed to rename conversation")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return rowsAffected > 0, nil
}

func scanConversation(row scanner) (models.Conversation, error) {
	var (
		conversation models.Conversation
		blocks, meta []byte
		endedAt      sql.NullTime
	)

	err := row.Scan(
		&conversation.ID,
		&conversation.UserID,
		&conversation.Title,
		&conversation.Transcript,
		&blocks,
		&meta,
		&conversation.StartedAt,
		&endedAt,
	)
	if err != nil {
		return models.Conversation{}, err
	}

	conversation.Blocks = []models.InsightBlock{}
	if len(blocks) > 0 {
		if err = json.Unmarshal(blocks, &conversation.Blocks); err != nil {
			return models.Conversation{}, fmt.Errorf("%w: blocks: %w", ErrEncodingJSON, err)
		}
	}

	if len(meta) > 0 && string(meta) != "null" {
		conversation.Meta = new(models.MetaAnalysis)
		if err = json.Unmarshal(meta, conversation.Meta); err != nil {
			return models.Conversation{}, fmt.Errorf("%w: meta: %w", ErrEncodingJSON, err)
		}
	}

	if endedAt.Valid {
		conversation.EndedAt = &endedAt.Time
	}

	return conversation, nil
}
