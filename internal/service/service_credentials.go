package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/store"
	"github.com/MKhiriev/thingsfree/models"
)

// dummyPassword is hashed once at construction. Resolve verifies against it
// when no user matches so that both outcomes cost one hash verification.
const dummyPassword = "thingsfree-dummy-password"

type lookup struct {
	field string
	find  func(ctx context.Context, value string) (models.User, error)
}

// credentialResolver implements [CredentialResolver].
type credentialResolver struct {
	users     store.UserRepository
	hasher    PasswordHasher
	region    string
	dummyHash string

	logger *logger.Logger
}

// NewCredentialResolver constructs a [CredentialResolver]. region is used to
// parse phone numbers written without the international prefix.
func NewCredentialResolver(users store.UserRepository, hasher PasswordHasher, region string, logger *logger.Logger) (CredentialResolver, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy hash: %w", err)
	}

	return &credentialResolver{
		users:     users,
		hasher:    hasher,
		region:    region,
		dummyHash: dummyHash,
		logger:    logger,
	}, nil
}

// Resolve looks identifier up as a username, then as an email, then as a
// phone number; the first hit wins. The password is checked before the
// active flag, so a blocked user with a wrong password gets ErrWrongPassword.
func (r *credentialResolver) Resolve(ctx context.Context, identifier, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := r.find(ctx, strings.TrimSpace(identifier))
	if errors.Is(err, ErrUserNotFound) {
		_, _ = r.hasher.Verify(password, r.dummyHash)
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}

	ok, err := r.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID.String()).Msg("error verifying password")
		return models.User{}, ErrWrongPassword
	}
	if !ok {
		return models.User{}, ErrWrongPassword
	}

	if !user.IsActive {
		return models.User{}, ErrUserBlocked
	}

	return user, nil
}

func (r *credentialResolver) find(ctx context.Context, identifier string) (models.User, error) {
	if identifier == "" {
		return models.User{}, ErrUserNotFound
	}

	lookups := []lookup{
		{field: "username", find: r.users.GetUserByUsername},
		{field: "email", find: r.users.GetUserByEmail},
		{field: "phone_number", find: r.findByPhone},
	}

	for _, l := range lookups {
		user, err := l.find(ctx, identifier)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("error looking user up by %s: %w", l.field, err)
		}
	}

	return models.User{}, ErrUserNotFound
}

func (r *credentialResolver) findByPhone(ctx context.Context, identifier string) (models.User, error) {
	phone, err := NormalizePhoneNumber(identifier, r.region)
	if err != nil {
		return models.User{}, store.ErrUserNotFound
	}

	return r.users.GetUserByPhoneNumber(ctx, phone)
}
