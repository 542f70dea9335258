package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages aggregates every repository the services depend on.
type Storages struct {
	UserRepository                UserRepository
	VerificationSessionRepository VerificationSessionRepository
	SocialIdentityRepository      SocialIdentityRepository
	FollowingRepository           FollowingRepository
	TokenBlacklist                TokenBlacklist

	// ExpiredTokenCleaner is nil when the blacklist expires entries itself.
	ExpiredTokenCleaner ExpiredTokenCleaner

	db    *DB
	redis *redis.Client
}

// NewStorages connects to the database (and redis when configured), applies
// migrations and constructs the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	storages := &Storages{
		UserRepository:                NewUserRepository(db, log),
		VerificationSessionRepository: NewVerificationSessionRepository(db, log),
		SocialIdentityRepository:      NewSocialIdentityRepository(db, log),
		FollowingRepository:           NewFollowingRepository(db, log),
		db:                            db,
	}

	if cfg.Redis.Address == "" {
		blacklist := NewSQLTokenBlacklist(db, log)
		storages.TokenBlacklist = blacklist
		storages.ExpiredTokenCleaner = blacklist
		return storages, nil
	}

	client, err := NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	storages.redis = client
	storages.TokenBlacklist = NewRedisTokenBlacklist(client, log)

	return storages, nil
}

// Close releases database and redis connections.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}

	return errors.Join(errs...)
}
