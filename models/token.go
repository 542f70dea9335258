package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types embedded in the "token_type" claim. A refresh token is never
// accepted where an access token is expected and vice versa.
const (
	AccessTokenType  = "access"
	RefreshTokenType = "refresh"
)

// Claims is the claim set of both access and refresh tokens.
//
// RegisteredClaims carries jti, iat, exp and iss. Username is only present in
// access tokens.
type Claims struct {
	TokenType string `json:"token_type"`
	UserID    string `json:"user_id"`
	Username  string `json:"username,omitempty"`

	jwt.RegisteredClaims
}

// GetUserID parses the user_id claim.
func (c *Claims) GetUserID() (uuid.UUID, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error converting user_id claim to uuid: %w", err)
	}

	return userID, nil
}

// TokenPair is the body returned by the token endpoints.
// Refresh is omitted when refresh-token rotation is disabled.
type TokenPair struct {
	Access    string `json:"access"`
	Refresh   string `json:"refresh,omitempty"`
	ExpiresIn int64  `json:"expires_in"`
}
