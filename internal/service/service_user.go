package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/store"
	"github.com/MKhiriev/thingsfree/internal/utils"
	"github.com/MKhiriev/thingsfree/internal/validators"
	"github.com/MKhiriev/thingsfree/models"
	"github.com/google/uuid"
)

// Field messages returned when a unique attribute is taken by the time the
// row is written.
const (
	usernameTakenMessage = "A user with that username already exists."
	phoneTakenMessage    = "A user with that phone number already exists."
)

type userService struct {
	users        store.UserRepository
	verification VerificationService
	hasher       PasswordHasher
	validator    validators.Validator

	logger *logger.Logger
}

func NewUserService(users store.UserRepository, verification VerificationService, hasher PasswordHasher,
	validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		users:        users,
		verification: verification,
		hasher:       hasher,
		validator:    validator,
		logger:       logger,
	}
}

// Signup re-checks the verification triple, validates the registration
// fields and creates the user. The session is consumed together with the
// insert, so replaying the same request fails with ErrInvalidSecurityCode.
func (s *userService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	session, err := s.verification.Verify(ctx, req.VerificationRequest)
	if err != nil {
		return models.User{}, err
	}

	if err = s.validator.Validate(ctx, req, "Username", "Password"); err != nil {
		return models.User{}, err
	}

	taken, err := s.users.UsernameExists(ctx, req.Username)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUserCreation, err)
	}
	if taken {
		return models.User{}, validators.FieldErrors{"username": {usernameTakenMessage}}
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrUserCreation, err)
	}

	user := models.User{
		UserID:       utils.NewID(),
		Username:     req.Username,
		PhoneNumber:  session.PhoneNumber,
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	created, err := s.users.CreateVerifiedUser(ctx, user, session)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		return models.User{}, ErrInvalidSecurityCode
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return models.User{}, validators.FieldErrors{"username": {usernameTakenMessage}}
	case errors.Is(err, store.ErrPhoneAlreadyExists):
		return models.User{}, validators.FieldErrors{"phone_number": {phoneTakenMessage}}
	case err != nil:
		return models.User{}, fmt.Errorf("%w: %w", ErrUserCreation, err)
	}

	log.Info().Str("user_id", created.UserID.String()).Msg("user signed up")
	return created, nil
}

// BindPhoneNumber re-checks the verification triple and sets the number on
// the account userID.
func (s *userService) BindPhoneNumber(ctx context.Context, userID uuid.UUID, req models.VerificationRequest) (models.User, error) {
	session, err := s.verification.Verify(ctx, req)
	if err != nil {
		return models.User{}, err
	}

	updated, err := s.users.BindPhoneNumber(ctx, userID, session)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		return models.User{}, ErrInvalidSecurityCode
	case errors.Is(err, store.ErrPhoneAlreadyExists):
		return models.User{}, ErrPhoneAlreadyUsed
	case err != nil:
		return models.User{}, fmt.Errorf("%w: %w", ErrUserUpdate, err)
	}

	logger.FromContext(ctx).Info().Str("user_id", userID.String()).Msg("phone number bound")
	return updated, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrProfileMissing
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error loading user: %w", err)
	}

	return user, nil
}
