package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/thingsfree/internal/adapter"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/store"
	"github.com/MKhiriev/thingsfree/internal/utils"
	"github.com/MKhiriev/thingsfree/models"
	"github.com/google/uuid"
)

const (
	maxUsernameLength = 150
	// createAttempts bounds the retries of a social sign-up that collided
	// on the username, the email or a concurrent sign-in.
	createAttempts = 4
)

type socialService struct {
	providers  adapter.SocialProviders
	identities store.SocialIdentityRepository
	users      store.UserRepository
	tokens     TokenService

	logger *logger.Logger
}

func NewSocialService(providers adapter.SocialProviders, identities store.SocialIdentityRepository,
	users store.UserRepository, tokens TokenService, logger *logger.Logger) SocialService {
	return &socialService{
		providers:  providers,
		identities: identities,
		users:      users,
		tokens:     tokens,
		logger:     logger,
	}
}

// ConvertToken exchanges an access token of providerKey for a token pair of
// the linked local user, creating the user on first sign-in.
func (s *socialService) ConvertToken(ctx context.Context, providerKey, accessToken string) (models.TokenPair, error) {
	provider, err := s.providers.Get(providerKey)
	if err != nil {
		return models.TokenPair{}, ErrInvalidSocialProvider
	}

	profile, err := provider.FetchProfile(ctx, accessToken)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrInvalidOAuthToken, err)
	}
	if profile.UID == "" {
		return models.TokenPair{}, ErrInvalidOAuthToken
	}

	user, err := s.resolveUser(ctx, provider.Key(), profile)
	if err != nil {
		return models.TokenPair{}, err
	}

	if !user.IsActive {
		return models.TokenPair{}, ErrUserBlocked
	}

	return s.tokens.IssuePair(ctx, user)
}

// resolveUser returns the user linked to (provider, profile.UID) and links
// a new user when there is none. Losing a concurrent create to another
// request falls back to the user that request linked.
func (s *socialService) resolveUser(ctx context.Context, provider string, profile models.SocialProfile) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.linkedUser(ctx, provider, profile.UID)
	if !errors.Is(err, store.ErrIdentityNotFound) {
		return user, err
	}

	identity := models.SocialIdentity{Provider: provider, UID: profile.UID}
	candidate := models.User{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		IsActive:  true,
	}

	base := usernameBase(provider, profile)
	for attempt := 0; attempt < createAttempts; attempt++ {
		candidate.UserID = utils.NewID()
		username, err := s.freeUsername(ctx, base, attempt)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrUserCreation, err)
		}
		candidate.Username = username

		created, err := s.identities.CreateUserWithIdentity(ctx, candidate, identity)
		switch {
		case err == nil:
			log.Info().
				Str("user_id", created.UserID.String()).
				Str("provider", provider).
				Msg("user created from social profile")
			return created, nil
		case errors.Is(err, store.ErrIdentityAlreadyExists):
			return s.linkedUser(ctx, provider, profile.UID)
		case errors.Is(err, store.ErrEmailAlreadyExists):
			// the address belongs to another account, keep it there
			candidate.Email = ""
		case errors.Is(err, store.ErrUsernameAlreadyExists):
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrUserCreation, err)
		}
	}

	return models.User{}, fmt.Errorf("%w: no free username for %q", ErrUserCreation, base)
}

func (s *socialService) linkedUser(ctx context.Context, provider, uid string) (models.User, error) {
	identity, err := s.identities.GetIdentity(ctx, provider, uid)
	if err != nil {
		if errors.Is(err, store.ErrIdentityNotFound) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrUserCreation, err)
	}

	user, err := s.users.GetUserByID(ctx, identity.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUserCreation, err)
	}

	return user, nil
}

// freeUsername returns base when it is free on the first attempt and base
// with a random suffix otherwise.
func (s *socialService) freeUsername(ctx context.Context, base string, attempt int) (string, error) {
	if attempt == 0 {
		taken, err := s.users.UsernameExists(ctx, base)
		if err != nil {
			return "", err
		}
		if !taken {
			return base, nil
		}
	}

	suffix := "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return truncate(base, maxUsernameLength-len(suffix)) + suffix, nil
}

// ListProviders lists configured providers with their display metadata and
// the URL that starts the authorization code flow.
func (s *socialService) ListProviders(ctx context.Context) ([]models.ProviderInfo, error) {
	meta := make(map[string]models.SocialProvider)

	stored, err := s.identities.ListProviders(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("error loading social providers metadata")
	}
	for _, p := range stored {
		meta[p.Key] = p
	}

	keys := s.providers.Keys()
	infos := make([]models.ProviderInfo, 0, len(keys))
	for _, key := range keys {
		provider, err := s.providers.Get(key)
		if err != nil {
			continue
		}

		infos = append(infos, models.ProviderInfo{
			Name:    key,
			Title:   meta[key].Title,
			Logo:    meta[key].Logo,
			AuthURL: provider.AuthCodeURL(utils.NewToken()),
		})
	}

	return infos, nil
}

// usernameBase derives a username from the profile: the screen name, else
// the joined names, else "<provider>_<uid>".
func usernameBase(provider string, profile models.SocialProfile) string {
	for _, candidate := range []string{
		profile.ScreenName,
		strings.TrimSpace(profile.FirstName + " " + profile.LastName),
	} {
		if name := sanitizeUsername(candidate); name != "" {
			return truncate(name, maxUsernameLength)
		}
	}

	prefix, _, _ := strings.Cut(provider, "-")
	return truncate(sanitizeUsername(prefix+"_"+profile.UID), maxUsernameLength)
}

// sanitizeUsername keeps letters, digits and "_.@+-"; whitespace becomes "_".
func sanitizeUsername(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), strings.ContainsRune("_.@+-", r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		}
	}

	return b.String()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
