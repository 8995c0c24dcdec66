package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
)

// Storages groups the server repositories together with the connections
// they run on, so the caller can ping and close them.
type Storages struct {
	UserRepository         UserRepository
	UsageRepository        UsageRepository
	ConversationRepository ConversationRepository

	DB    *DB
	Redis *redis.Client
}

// NewStorages connects to Postgres, applies migrations and builds the
// repositories. When cfg.Redis.URL is set the quota ledger runs on Redis.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &Storages{
		UserRepository:         NewUserRepository(db, log),
		UsageRepository:        NewUsageRepository(db, log),
		ConversationRepository: NewConversationRepository(db, log),
		DB:                     db,
	}

	if cfg.Redis.URL != "" {
		client, redisErr := NewRedisClient(ctx, cfg.Redis.URL, log)
		if redisErr != nil {
			_ = db.Close()
			return nil, redisErr
		}
		storages.Redis = client
		storages.UsageRepository = NewRedisUsageRepository(client, log)
	}

	return storages, nil
}

// Ping reports whether the database (and Redis, when used) answer.
func (s *Storages) Ping(ctx context.Context) error {
	if err := s.DB.PingContext(ctx); err != nil {
		return err
	}
	if s.Redis != nil {
		return s.Redis.Ping(ctx).Err()
	}

	return nil
}

// Close releases every connection.
func (s *Storages) Close() error {
	var errs []error
	if s.Redis != nil {
		errs = append(errs, s.Redis.Close())
	}
	if s.DB != nil {
		errs = append(errs, s.DB.Close())
	}

	return errors.Join(errs...)
}
