package store

import (
	"context"
	"time"

	"github.com/MKhiriev/thingsfree/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns the stored record.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// CreateVerifiedUser consumes the verification session of user's phone
	// number and inserts user in one transaction.
	CreateVerifiedUser(ctx context.Context, user models.User, session models.VerificationSession) (models.User, error)
	// BindPhoneNumber consumes the verification session and sets the phone
	// number of the user in one transaction.
	BindPhoneNumber(ctx context.Context, userID uuid.UUID, session models.VerificationSession) (models.User, error)

	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByPhoneNumber(ctx context.Context, phoneNumber string) (models.User, error)

	UsernameExists(ctx context.Context, username string) (bool, error)
	PhoneNumberExists(ctx context.Context, phoneNumber string) (bool, error)
}

// VerificationSessionRepository persists SMS verification sessions. There is
// at most one session per phone number.
type VerificationSessionRepository interface {
	// UpsertSession stores session, replacing any previous session of the
	// same phone number.
	UpsertSession(ctx context.Context, session models.VerificationSession) error
	GetSession(ctx context.Context, phoneNumber string) (models.VerificationSession, error)
	// DeleteExpired removes sessions created before the given moment.
	DeleteExpired(ctx context.Context, createdBefore time.Time) (int64, error)
}

// SocialIdentityRepository links users to social provider accounts.
type SocialIdentityRepository interface {
	GetIdentity(ctx context.Context, provider, uid string) (models.SocialIdentity, error)
	// CreateUserWithIdentity inserts user and its identity in one
	// transaction.
	CreateUserWithIdentity(ctx context.Context, user models.User, identity models.SocialIdentity) (models.User, error)
	ListProviders(ctx context.Context) ([]models.SocialProvider, error)
}

// FollowingRepository stores the following graph.
type FollowingRepository interface {
	CreateFollowing(ctx context.Context, following models.Following) error
	DeleteFollowing(ctx context.Context, author, follower uuid.UUID) error
	// ListFollows returns a page of users on the requested side of userID's
	// edges and the total size of the list.
	ListFollows(ctx context.Context, userID uuid.UUID, direction models.FollowDirection, page models.Page) ([]models.User, int, error)
}

// TokenBlacklist retires refresh tokens by their jti.
type TokenBlacklist interface {
	// Add claims jti until expiresAt. It returns ErrTokenBlacklisted when
	// jti was already claimed; exactly one of concurrent callers succeeds.
	Add(ctx context.Context, jti string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// ExpiredTokenCleaner removes blacklist entries of tokens that expired
// anyway. Backends with native expiry do not implement it.
type ExpiredTokenCleaner interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
