package service

import (
	"context"

	"github.com/MKhiriev/thingsfree/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PasswordHasher produces and checks encoded password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches encoded. An encoded value of
	// an unknown format is an error.
	Verify(password, encoded string) (bool, error)
}

// VerificationService issues and checks SMS security codes.
type VerificationService interface {
	// NormalizePhoneNumber parses raw and returns it in E.164 form or
	// ErrInvalidPhoneNumber.
	NormalizePhoneNumber(raw string) (string, error)

	// Issue sends a new security code to the phone number and returns the
	// session token that must accompany the code.
	Issue(ctx context.Context, phoneNumber string) (string, error)

	// Verify checks the (phone number, security code, session token)
	// triple without consuming it and returns the matching session.
	Verify(ctx context.Context, req models.VerificationRequest) (models.VerificationSession, error)
}

// UserService manages accounts created or changed through phone
// verification.
type UserService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)
	// BindPhoneNumber attaches a verified phone number to the user userID.
	BindPhoneNumber(ctx context.Context, userID uuid.UUID, req models.VerificationRequest) (models.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (models.User, error)
}

// CredentialResolver authenticates a user by an identifier that may be a
// username, an email or a phone number.
type CredentialResolver interface {
	Resolve(ctx context.Context, identifier, password string) (models.User, error)
}

// TokenService issues and checks JWT access and refresh tokens.
type TokenService interface {
	IssuePair(ctx context.Context, user models.User) (models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
	ParseAccessToken(ctx context.Context, accessToken string) (*models.Claims, error)
}

// SocialService signs users in with access tokens of social providers.
type SocialService interface {
	ConvertToken(ctx context.Context, provider, accessToken string) (models.TokenPair, error)
	ListProviders(ctx context.Context) ([]models.ProviderInfo, error)
}

// FollowingService manages the following graph. The acting user is always
// passed explicitly.
type FollowingService interface {
	Follow(ctx context.Context, authorID, followerID uuid.UUID) error
	Unfollow(ctx context.Context, authorID, followerID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, direction models.FollowDirection, page models.Page) ([]models.User, int, error)
}

// AppInfoService reports the name and version of the running build.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}
