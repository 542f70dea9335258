// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/store"
	"github.com/MKhiriev/thingsfree/internal/utils"
	"github.com/MKhiriev/thingsfree/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService implements [TokenService] with HS256-signed JWTs.
type tokenService struct {
	users     store.UserRepository
	blacklist store.TokenBlacklist

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	accessLifetime  time.Duration
	refreshLifetime time.Duration

	rotateRefreshTokens    bool
	blacklistAfterRotation bool

	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService]. All state is read-only after
// construction.
func NewTokenService(users store.UserRepository, blacklist store.TokenBlacklist, cfg config.Auth, logger *logger.Logger) TokenService {
	return &tokenService{
		users:                  users,
		blacklist:              blacklist,
		tokenSignKey:           cfg.TokenSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		accessLifetime:         cfg.AccessTokenLifetime,
		refreshLifetime:        cfg.RefreshTokenLifetime,
		rotateRefreshTokens:    cfg.RotateRefreshTokens,
		blacklistAfterRotation: cfg.BlacklistAfterRotation,
		now:                    time.Now,
		logger:                 logger,
	}
}

// IssuePair signs a refresh token and an access token for user. ExpiresIn is
// the access token expiry as a unix timestamp.
func (t *tokenService) IssuePair(ctx context.Context, user models.User) (models.TokenPair, error) {
	now := t.now()

	refresh, _, err := t.sign(models.RefreshTokenType, user, now, t.refreshLifetime)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.UserID.String()).Msg("error signing refresh token")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenGeneration, err)
	}

	access, expiresAt, err := t.sign(models.AccessTokenType, user, now, t.accessLifetime)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.UserID.String()).Msg("error signing access token")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenGeneration, err)
	}

	return models.TokenPair{
		Access:    access,
		Refresh:   refresh,
		ExpiresIn: expiresAt.Unix(),
	}, nil
}

// Refresh exchanges a valid refresh token for new tokens. With rotation on,
// the presented token is retired and a new pair is returned; exactly one of
// concurrent refreshes with the same token succeeds. With rotation off only
// a new access token is returned.
func (t *tokenService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	claims, err := utils.ValidateAndParseJWTToken(refreshToken, t.tokenSignKey, t.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("refresh token rejected")
		return models.TokenPair{}, ErrInvalidRefreshToken
	}
	if claims.TokenType != models.RefreshTokenType || claims.ID == "" {
		return models.TokenPair{}, ErrInvalidRefreshToken
	}

	blacklisted, err := t.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		log.Warn().Err(err).Str("jti", claims.ID).Msg("token blacklist unavailable, skipping check")
	}
	if blacklisted {
		return models.TokenPair{}, ErrInvalidRefreshToken
	}

	user, err := t.loadUser(ctx, claims)
	if err != nil {
		return models.TokenPair{}, err
	}

	if !t.rotateRefreshTokens {
		access, expiresAt, err := t.sign(models.AccessTokenType, user, t.now(), t.accessLifetime)
		if err != nil {
			return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenGeneration, err)
		}
		return models.TokenPair{Access: access, ExpiresIn: expiresAt.Unix()}, nil
	}

	if t.blacklistAfterRotation {
		err = t.blacklist.Add(ctx, claims.ID, claims.ExpiresAt.Time)
		switch {
		case errors.Is(err, store.ErrTokenBlacklisted):
			// a concurrent refresh already used this token
			return models.TokenPair{}, ErrInvalidRefreshToken
		case err != nil:
			log.Warn().Err(err).Str("jti", claims.ID).Msg("token blacklist unavailable, token not retired")
		}
	}

	return t.IssuePair(ctx, user)
}

// ParseAccessToken validates an access token and returns its claims.
func (t *tokenService) ParseAccessToken(ctx context.Context, accessToken string) (*models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(accessToken, t.tokenSignKey, t.tokenIssuer)
	if err != nil {
		return nil, ErrInvalidAccessToken
	}
	if claims.TokenType != models.AccessTokenType {
		return nil, ErrInvalidAccessToken
	}
	if _, err = claims.GetUserID(); err != nil {
		return nil, ErrInvalidAccessToken
	}

	return claims, nil
}

// loadUser reloads the token owner so that blocked or removed accounts
// cannot keep refreshing.
func (t *tokenService) loadUser(ctx context.Context, claims *models.Claims) (models.User, error) {
	userID, err := claims.GetUserID()
	if err != nil {
		return models.User{}, ErrInvalidRefreshToken
	}

	user, err := t.users.GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrInvalidRefreshToken
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error loading token owner: %w", err)
	}

	if !user.IsActive {
		return models.User{}, ErrUserBlocked
	}

	return user, nil
}

func (t *tokenService) sign(tokenType string, user models.User, now time.Time, lifetime time.Duration) (string, time.Time, error) {
	expiresAt := now.Add(lifetime)

	claims := &models.Claims{
		TokenType: tokenType,
		UserID:    user.UserID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        utils.NewToken(),
			Issuer:    t.tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if tokenType == models.AccessTokenType {
		claims.Username = user.Username
	}

	signed, err := utils.GenerateJWTToken(claims, t.tokenSignKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}
