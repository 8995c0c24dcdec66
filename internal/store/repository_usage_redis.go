package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-insight-keeper/internal/logger"
)

// usageKeyTTL outlives the quota day in any timezone.
const usageKeyTTL = 48 * time.Hour

// redisUsageRepository keeps the daily ledger in Redis counters. INCR is
// atomic and the EXPIRE travels in the same transaction pipeline.
type redisUsageRepository struct {
	client *redis.Client
	logger *logger.Logger
}

func NewRedisUsageRepository(client *redis.Client, logger *logger.Logger) UsageRepository {
	logger.Debug().Msg("creating redis usage repository")
	return &redisUsageRepository{
		client: client,
		logger: logger,
	}
}

// NewRedisClient parses url ("redis://host:port/db") and pings the server.
func NewRedisClient(ctx context.Context, url string, log *logger.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("invalid redis url")
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)
	if err = client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

func usageKey(userID int64, date string) string {
	return "usage:" + strconv.FormatInt(userID, 10) + ":" + date
}

func (r *redisUsageRepository) GetUsage(ctx context.Context, userID int64, date string) (int, error) {
	log := logger.FromContext(ctx)

	raw, err := r.client.Get(ctx, usageKey(userID, date)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*redisUsageRepository.GetUsage").Int64("user_id", userID).Msg("failed to read usage")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

func (r *redisUsageRepository) Increment(ctx context.Context, userID int64, date string) (int, error) {
	log := logger.FromContext(ctx)
	key := usageKey(userID, date)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, usageKeyTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		log.Err(err).Str("func", "*redisUsageRepository.Increment").Int64("user_id", userID).Msg("failed to increment usage")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return int(incr.Val()), nil
}
