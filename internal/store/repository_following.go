// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/models"
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type followingRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewFollowingRepository(db *DB, logger *logger.Logger) FollowingRepository {
	logger.Debug().Msg("creating following repository")
	return &followingRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFollowing inserts the (author, follower) edge. A duplicate edge,
// including one inserted concurrently, yields [ErrFollowingAlreadyExists].
func (r *followingRepository) CreateFollowing(ctx context.Context, following models.Following) error {
	if following.CreatedAt.IsZero() {
		following.CreatedAt = now()
	}

	query, args, err := r.db.sq.Insert(followingsTable).
		Columns("author_id", "follower_id", "created_at").
		Values(following.Author, following.Follower, following.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if _, ok := r.db.errorClassificator.UniqueViolation(err); ok {
			return ErrFollowingAlreadyExists
		}

		logger.FromContext(ctx).Err(err).
			Str("func", "*followingRepository.CreateFollowing").
			Str("author_id", following.Author.String()).
			Str("follower_id", following.Follower.String()).
			Msg("error inserting following")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *followingRepository) DeleteFollowing(ctx context.Context, author, follower uuid.UUID) error {
	query, args, err := r.db.sq.Delete(followingsTable).
		Where(squirrel.Eq{"author_id": author, "follower_id": follower}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFollowingNotFound
	}

	return nil
}

// ListFollows returns users joined through followings, newest edge first.
// For [models.Followers] the users are followers of userID; for
// [models.Followings] they are the authors userID follows.
func (r *followingRepository) ListFollows(ctx context.Context, userID uuid.UUID, direction models.FollowDirection, page models.Page) ([]models.User, int, error) {
	log := logger.FromContext(ctx)

	ownColumn, otherColumn := "author_id", "follower_id"
	if direction == models.Followings {
		ownColumn, otherColumn = "follower_id", "author_id"
	}

	countQuery, countArgs, err := r.db.sq.Select("COUNT(*)").
		From(followingsTable).
		Where(squirrel.Eq{ownColumn: userID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*followingRepository.ListFollows").Msg("error counting follows")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	builder := r.db.sq.Select(prefixed("u", userColumns)...).
		From(followingsTable + " f").
		Join(usersTable + " u ON u.id = f." + otherColumn).
		Where(squirrel.Eq{"f." + ownColumn: userID}).
		OrderBy("f.created_at DESC", "f.id DESC")
	if page.Limit > 0 {
		builder = builder.Limit(page.Limit)
	}
	if page.Offset > 0 {
		if page.Limit == 0 {
			// sqlite needs a LIMIT before OFFSET
			builder = builder.Limit(uint64(total))
		}
		builder = builder.Offset(page.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*followingRepository.ListFollows").Msg("error selecting follows")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	size := uint64(total)
	if page.Limit > 0 {
		size = min(size, page.Limit)
	}
	users := make([]models.User, 0, size)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, total, nil
}
