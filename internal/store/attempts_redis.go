package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/rexora-cms/internal/config"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/redis/go-redis/v9"
)

const attemptKeyPrefix = "rexora:login_attempts:"

// redisAttemptStorage shares attempt counters between server instances.
// INCR and EXPIRE run in one MULTI/EXEC so a window always gets its TTL.
type redisAttemptStorage struct {
	client redis.Cmdable
}

// NewConnectRedis opens a client for cfg and pings it.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

// NewRedisAttemptStorage returns an [AttemptStorage] backed by client.
func NewRedisAttemptStorage(client redis.Cmdable) AttemptStorage {
	return &redisAttemptStorage{client: client}
}

func (r *redisAttemptStorage) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	fullKey := attemptKeyPrefix + key

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, fullKey)
		// NX keeps the window fixed: only the first hit sets the TTL.
		pipe.ExpireNX(ctx, fullKey, window)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("error counting attempt: %w", err)
	}

	return incr.Val(), nil
}

func (r *redisAttemptStorage) Reset(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, attemptKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("error resetting attempts: %w", err)
	}
	return nil
}
