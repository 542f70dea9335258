package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/Masterminds/squirrel"
)

// SQLTokenBlacklist stores retired token ids in the "token_blacklist" table.
// The jti primary key makes Add an atomic claim.
type SQLTokenBlacklist struct {
	logger *logger.Logger
	db     *DB
}

func NewSQLTokenBlacklist(db *DB, logger *logger.Logger) *SQLTokenBlacklist {
	logger.Debug().Msg("creating sql token blacklist")
	return &SQLTokenBlacklist{
		db:     db,
		logger: logger,
	}
}

func (b *SQLTokenBlacklist) Add(ctx context.Context, jti string, expiresAt time.Time) error {
	query, args, err := b.db.sq.Insert(tokenBlacklistTable).
		Columns("jti", "expires_at").
		Values(jti, expiresAt.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = b.db.ExecContext(ctx, query, args...); err != nil {
		if _, ok := b.db.errorClassificator.UniqueViolation(err); ok {
			return ErrTokenBlacklisted
		}
		return fmt.Errorf("%w: %w", ErrBlacklistUnavailable, err)
	}

	return nil
}

func (b *SQLTokenBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	query, args, err := b.db.sq.Select("1").
		From(tokenBlacklistTable).
		Where(squirrel.Eq{"jti": jti}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = b.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%w: %w", ErrBlacklistUnavailable, err)
	}

	return true, nil
}

// DeleteExpired removes entries of tokens that expired before now; such
// tokens fail signature validation anyway.
func (b *SQLTokenBlacklist) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := b.db.sq.Delete(tokenBlacklistTable).
		Where(squirrel.Lt{"expires_at": now.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := b.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}
