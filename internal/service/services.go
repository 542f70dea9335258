package service

import (
	"fmt"

	"github.com/MKhiriev/thingsfree/internal/adapter"
	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/store"
	"github.com/MKhiriev/thingsfree/internal/validators"
)

type Services struct {
	VerificationService VerificationService
	UserService         UserService
	CredentialResolver  CredentialResolver
	TokenService        TokenService
	SocialService       SocialService
	FollowingService    FollowingService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, adapters *adapter.Adapters, validator validators.Validator,
	cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher := NewPasswordHasher()

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	resolver, err := NewCredentialResolver(storages.UserRepository, hasher, cfg.App.PhoneRegion, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating credential resolver: %w", err)
	}

	verification := NewVerificationService(storages.VerificationSessionRepository, storages.UserRepository,
		adapters.SMSGateway, cfg.App, logger)
	tokens := NewTokenService(storages.UserRepository, storages.TokenBlacklist, cfg.Auth, logger)

	return &Services{
		VerificationService: verification,
		UserService:         NewUserService(storages.UserRepository, verification, hasher, validator, logger),
		CredentialResolver:  resolver,
		TokenService:        tokens,
		SocialService:       NewSocialService(adapters.SocialProviders, storages.SocialIdentityRepository, storages.UserRepository, tokens, logger),
		FollowingService:    NewFollowingService(storages.FollowingRepository, storages.UserRepository, logger),
		AppInfoService:      appInfo,
	}, nil
}
