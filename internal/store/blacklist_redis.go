package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "thingsfree:blacklist:"

// RedisTokenBlacklist keeps retired token ids as redis keys that expire
// together with the token.
type RedisTokenBlacklist struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisClient connects to redis and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

func NewRedisTokenBlacklist(client *redis.Client, logger *logger.Logger) *RedisTokenBlacklist {
	logger.Debug().Msg("creating redis token blacklist")
	return &RedisTokenBlacklist{
		client: client,
		logger: logger,
	}
}

// Add claims jti with SETNX. The key lives until the token would expire.
func (b *RedisTokenBlacklist) Add(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// already expired tokens are rejected by validation
		ttl = time.Second
	}

	ok, err := b.client.SetNX(ctx, blacklistKeyPrefix+jti, expiresAt.Unix(), ttl).Result()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBlacklistUnavailable, err)
	}
	if !ok {
		return ErrTokenBlacklisted
	}

	return nil
}

func (b *RedisTokenBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBlacklistUnavailable, err)
	}

	return n > 0, nil
}
