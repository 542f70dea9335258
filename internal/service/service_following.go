package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/store"
	"github.com/MKhiriev/thingsfree/models"
	"github.com/google/uuid"
)

type followingService struct {
	followings store.FollowingRepository
	users      store.UserRepository

	logger *logger.Logger
}

func NewFollowingService(followings store.FollowingRepository, users store.UserRepository, logger *logger.Logger) FollowingService {
	return &followingService{
		followings: followings,
		users:      users,
		logger:     logger,
	}
}

// Follow makes followerID follow authorID. A duplicate edge, including one
// created concurrently, yields ErrFollowingExists.
func (s *followingService) Follow(ctx context.Context, authorID, followerID uuid.UUID) error {
	if authorID == followerID {
		return ErrSelfFollowing
	}

	author, err := s.loadUser(ctx, authorID)
	if err != nil {
		return err
	}
	if !author.IsActive {
		return ErrUserBlocked
	}

	err = s.followings.CreateFollowing(ctx, models.Following{Author: authorID, Follower: followerID})
	switch {
	case errors.Is(err, store.ErrFollowingAlreadyExists):
		return ErrFollowingExists
	case err != nil:
		return fmt.Errorf("%w: %w", ErrFollowingCreation, err)
	}

	logger.FromContext(ctx).Debug().
		Str("author_id", authorID.String()).
		Str("follower_id", followerID.String()).
		Msg("following created")
	return nil
}

func (s *followingService) Unfollow(ctx context.Context, authorID, followerID uuid.UUID) error {
	if authorID == followerID {
		return ErrSelfFollowing
	}

	if _, err := s.loadUser(ctx, authorID); err != nil {
		return err
	}

	err := s.followings.DeleteFollowing(ctx, authorID, followerID)
	switch {
	case errors.Is(err, store.ErrFollowingNotFound):
		return ErrFollowingNotExists
	case err != nil:
		return fmt.Errorf("error deleting following: %w", err)
	}

	return nil
}

// List returns a page of the followers or followings of userID and the
// total size of the list.
func (s *followingService) List(ctx context.Context, userID uuid.UUID, direction models.FollowDirection, page models.Page) ([]models.User, int, error) {
	if _, err := s.loadUser(ctx, userID); err != nil {
		return nil, 0, err
	}

	users, total, err := s.followings.ListFollows(ctx, userID, direction, page)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing follows: %w", err)
	}

	return users, total, nil
}

func (s *followingService) loadUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrProfileMissing
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error loading user: %w", err)
	}

	return user, nil
}
