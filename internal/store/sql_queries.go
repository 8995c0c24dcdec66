package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-insight-keeper/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, display_name, daily_limit, is_admin)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, email, password_hash, display_name, daily_limit, is_admin, is_active, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, display_name, daily_limit, is_admin, is_active, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, display_name, daily_limit, is_admin, is_active, created_at
    FROM users
    WHERE user_id = $1;`

	createConversation = `INSERT INTO conversations (user_id, title)
    VALUES ($1, $2)
    RETURNING conversation_id, user_id, title, transcript, blocks, meta, started_at, ended_at;`

	getConversation = `SELECT conversation_id, user_id, title, transcript, blocks, meta, started_at, ended_at
    FROM conversations
    WHERE conversation_id = $1 AND user_id = $2;`
)

// usage_daily statements are built with squirrel because the same upsert
// runs on Postgres and on SQLite.
const (
	usageTable          = "usage_daily"
	usageIncrementClash = "ON CONFLICT (user_id, date) DO UPDATE SET count = usage_daily.count + 1 RETURNING count"
)

func buildIncrementUsageQuery(b sq.StatementBuilderType, userID int64, date string) (string, []any, error) {
	query, args, err := b.Insert(usageTable).
		Columns("user_id", "date", "count").
		Values(userID, date, 1).
		Suffix(usageIncrementClash).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetUsageQuery(b sq.StatementBuilderType, userID int64, date string) (string, []any, error) {
	query, args, err := b.Select("count").
		From(usageTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"date": date}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateConversationQuery sets only the fields present in patch.
func buildUpdateConversationQuery(b sq.StatementBuilderType, userID, conversationID int64, patch models.ConversationPatch) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, ErrEmptyConversationPatch
	}

	update := b.Update("conversations")

	if patch.Transcript != nil {
		update = update.Set("transcript", *patch.Transcript)
	}

	if patch.Blocks != nil {
		blocks := *patch.Blocks
		if blocks == nil {
			blocks = []models.InsightBlock{}
		}
		data, err := json.Marshal(blocks)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
		}
		update = update.Set("blocks", string(data))
	}

	if patch.Meta != nil {
		data, err := json.Marshal(patch.Meta)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
		}
		update = update.Set("meta", string(data))
	}

	if patch.Title != nil {
		update = update.Set("title", *patch.Title)
	}

	if patch.EndedAt != nil {
		update = update.Set("ended_at", *patch.EndedAt)
	}

	query, args, err := update.
		Where(sq.Eq{"conversation_id": conversationID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListConversationsQuery(b sq.StatementBuilderType, userID int64, limit int) (string, []any, error) {
	if limit <= 0 || limit > models.ConversationListLimit {
		limit = models.ConversationListLimit
	}

	query, args, err := b.Select(
		"conversation_id",
		"title",
		"started_at",
		"ended_at",
		"COALESCE(jsonb_array_length(blocks), 0) AS block_count",
	).
		From("conversations").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSetTitleIfDefaultQuery renames a conversation only while it still
// carries the default title.
func buildSetTitleIfDefaultQuery(b sq.StatementBuilderType, userID, conversationID int64, defaultTitle, title string) (string, []any, error) {
	query, args, err := b.Update("conversations").
		Set("title", title).
		Where(sq.Eq{"conversation_id": conversationID}).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"title": defaultTitle}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
