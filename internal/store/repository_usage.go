// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-insight-keeper/internal/logger"
)

// usageRepository keeps the daily ledger in the usage_daily table. Increment
// is one upsert statement, so concurrent calls never lose an update.
type usageRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewUsageRepository(db *DB, logger *logger.Logger) UsageRepository {
	logger.Debug().Msg("creating usage repository")
	return &usageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *usageRepository) GetUsage(ctx context.Context, userID int64, date string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUsageQuery(r.db.builder, userID, date)
	if err != nil {
		log.Err(err).Str("func", "*usageRepository.GetUsage").Msg("failed to create query")
		return 0, err
	}

	var count int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "*usageRepository.GetUsage").
			Int64("user_id", userID).
			Str("date", date).
			Msg("failed to read usage")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *usageRepository) Increment(ctx context.Context, userID int64, date string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildIncrementUsageQuery(r.db.builder, userID, date)
	if err != nil {
		log.Err(err).Str("func", "*usageRepository.Increment").Msg("failed to create query")
		return 0, err
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*usageRepository.Increment").
			Int64("user_id", userID).
			Str("date", date).
			Msg("failed to increment usage")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return count, nil
}
