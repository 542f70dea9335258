package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/thingsfree/internal/adapter"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/mock"
	"github.com/MKhiriev/thingsfree/internal/store"
	"github.com/MKhiriev/thingsfree/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const vkKey = "vk-oauth2"

type socialSvcMocks struct {
	providers  *mock.MockSocialProviders
	provider   *mock.MockSocialProvider
	identities *mock.MockSocialIdentityRepository
	users      *mock.MockUserRepository
	tokens     *mock.MockTokenService
}

func newTestSocialSvc(t *testing.T, ctrl *gomock.Controller) (SocialService, socialSvcMocks) {
	t.Helper()
	m := socialSvcMocks{
		providers:  mock.NewMockSocialProviders(ctrl),
		provider:   mock.NewMockSocialProvider(ctrl),
		identities: mock.NewMockSocialIdentityRepository(ctrl),
		users:      mock.NewMockUserRepository(ctrl),
		tokens:     mock.NewMockTokenService(ctrl),
	}
	m.provider.EXPECT().Key().Return(vkKey).AnyTimes()

	return NewSocialService(m.providers, m.identities, m.users, m.tokens, logger.Nop()), m
}

func vkProfile() models.SocialProfile {
	return models.SocialProfile{
		UID:        "1001",
		ScreenName: "durov",
		FirstName:  "Pavel",
		LastName:   "Durov",
		Email:      "pavel@example.com",
	}
}

var testPair = models.TokenPair{Access: "access", Refresh: "refresh", ExpiresIn: 1}

// ── ConvertToken ─────────────────────────────────────────────────────────────

func TestSocialService_ConvertToken_ExistingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSocialSvc(t, ctrl)
	ctx := context.Background()
	user := activeUser()

	gomock.InOrder(
		m.providers.EXPECT().Get(vkKey).Return(m.provider, nil),
		m.provider.EXPECT().FetchProfile(ctx, "vk-token").Return(vkProfile(), nil),
		m.identities.EXPECT().GetIdentity(ctx, vkKey, "1001").
			Return(models.SocialIdentity{UserID: user.UserID, Provider: vkKey, UID: "1001"}, nil),
		m.users.EXPECT().GetUserByID(ctx, user.UserID).Return(user, nil),
		m.tokens.EXPECT().IssuePair(ctx, user).Return(testPair, nil),
	)

	pair, err := svc.ConvertToken(ctx, vkKey, "vk-token")
	require.NoError(t, err)
	assert.Equal(t, testPair, pair)
}

func TestSocialService_ConvertToken_CreatesUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSocialSvc(t, ctrl)
	ctx := context.Background()

	m.providers.EXPECT().Get(vkKey).Return(m.provider, nil)
	m.provider.EXPECT().FetchProfile(ctx, "vk-token").Return(vkProfile(), nil)
	m.identities.EXPECT().GetIdentity(ctx, vkKey, "1001").Return(models.SocialIdentity{}, store.ErrIdentityNotFound)
	m.users.EXPECT().UsernameExists(ctx, "durov").Return(false, nil)
	m.identities.EXPECT().CreateUserWithIdentity(ctx, gomock.Any(), models.SocialIdentity{Provider: vkKey, UID: "1001"}).
		DoAndReturn(func(_ context.Context, u models.User, _ models.SocialIdentity) (models.User, error) {
			assert.NotEqual(t, uuid.Nil, u.UserID)
			assert.Equal(t, "durov", u.Username)
			assert.Equal(t, "Pavel", u.FirstName)
			assert.Equal(t, "Durov", u.LastName)
			assert.Equal(t, "pavel@example.com", u.Email)
			assert.Empty(t, u.PasswordHash)
			assert.True(t, u.IsActive)
			return u, nil
		})
	m.tokens.EXPECT().IssuePair(ctx, gomock.Any()).Return(testPair, nil)

	_, err := svc.ConvertToken(ctx, vkKey, "vk-token")
	require.NoError(t, err)
}

func TestSocialService_ConvertToken_UsernameTakenGetsSuffix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSocialSvc(t, ctrl)
	ctx := context.Background()

	var usernames []string

	m.providers.EXPECT().Get(vkKey).Return(m.provider, nil)
	m.provider.EXPECT().FetchProfile(ctx, "vk-token").Return(vkProfile(), nil)
	m.identities.EXPECT().GetIdentity(ctx, vkKey, "1001").Return(models.SocialIdentity{}, store.ErrIdentityNotFound)
	m.users.EXPECT().UsernameExists(ctx, "durov").Return(false, nil)
	// занятое имя между проверкой и вставкой
	m.identities.EXPECT().CreateUserWithIdentity(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User, _ models.SocialIdentity) (models.User, error) {
			usernames = append(usernames, u.Username)
			if len(usernames) == 1 {
				return models.User{}, store.ErrUsernameAlreadyExists
			}
			return u, nil
		}).Times(2)
	m.tokens.EXPECT().IssuePair(ctx, gomock.Any()).Return(testPair, nil)

	_, err := svc.ConvertToken(ctx, vkKey, "vk-token")
	require.NoError(t, err)

	require.Len(t, usernames, 2)
	assert.Equal(t, "durov", usernames[0])
	assert.Regexp(t, `^durov_[0-9a-f]{8}$`, usernames[1])
}

func TestSocialService_ConvertToken_EmailOfAnotherAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSocialSvc(t, ctrl)
	ctx := context.Background()

	var emails []string

	m.providers.EXPECT().Get(vkKey).Return(m.provider, nil)
	m.provider.EXPECT().FetchProfile(ctx, "vk-token").Return(vkProfile(), nil)
	m.identities.EXPECT().GetIdentity(ctx, vkKey, "1001").Return(models.SocialIdentity{}, store.ErrIdentityNotFound)
	m.users.EXPECT().UsernameExists(ctx, "durov").Return(false, nil)
	m.identities.EXPECT().CreateUserWithIdentity(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User, _ models.SocialIdentity) (models.User, error) {
			emails = append(emails, u.Email)
			if u.Email != "" {
				return models.User{}, store.ErrEmailAlreadyExists
			}
			return u, nil
		}).Times(2)
	m.tokens.EXPECT().IssuePair(ctx, gomock.Any()).Return(testPair, nil)

	_, err := svc.ConvertToken(ctx, vkKey, "vk-token")
	require.NoError(t, err)
	assert.Equal(t, []string{"pavel@example.com", ""}, emails)
}

func TestSocialService_ConvertToken_ConcurrentCreateRelooksUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSocialSvc(t, ctrl)
	ctx := context.Background()
	winner := activeUser()

	m.providers.EXPECT().Get(vkKey).Return(m.provider, nil)
	m.provider.EXPECT().FetchProfile(ctx, "vk-token").Return(vkProfile(), nil)
	gomock.InOrder(
		m.identities.EXPECT().GetIdentity(ctx, vkKey, "1001").Return(models.SocialIdentity{}, store.ErrIdentityNotFound),
		m.identities.EXPECT().GetIdentity(ctx, vkKey, "1001").Return(models.SocialIdentity{UserID: winner.UserID}, nil),
	)
	m.users.EXPECT().UsernameExists(ctx, "durov").Return(false, nil)
	m.identities.EXPECT().CreateUserWithIdentity(ctx, gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrIdentityAlreadyExists)
	m.users.EXPECT().GetUserByID(ctx, winner.UserID).Return(winner, nil)
	m.tokens.EXPECT().IssuePair(ctx, winner).Return(testPair, nil)

	_, err := svc.ConvertToken(ctx, vkKey, "vk-token")
	require.NoError(t, err)
}

func TestSocialService_ConvertToken_Failures(t *testing.T) {
	blocked := activeUser()
	blocked.IsActive = false

	tests := []struct {
		name    string
		setup   func(ctx context.Context, m socialSvcMocks)
		wantErr error
	}{
		{
			name: "unknown provider",
			setup: func(_ context.Context, m socialSvcMocks) {
				m.providers.EXPECT().Get(vkKey).Return(nil, adapter.ErrUnknownProvider)
			},
			wantErr: ErrInvalidSocialProvider,
		},
		{
			name: "provider rejects token",
			setup: func(ctx context.Context, m socialSvcMocks) {
				m.providers.EXPECT().Get(vkKey).Return(m.provider, nil)
				m.provider.EXPECT().FetchProfile(ctx, "vk-token").Return(models.SocialProfile{}, adapter.ErrInvalidOAuthToken)
			},
			wantErr: ErrInvalidOAuthToken,
		},
		{
			name: "profile without uid",
			setup: func(ctx context.Context, m socialSvcMocks) {
				m.providers.EXPECT().Get(vkKey).Return(m.provider, nil)
				m.provider.EXPECT().FetchProfile(ctx, "vk-token").Return(models.SocialProfile{ScreenName: "x"}, nil)
			},
			wantErr: ErrInvalidOAuthToken,
		},
		{
			name: "blocked user",
			setup: func(ctx context.Context, m socialSvcMocks) {
				m.providers.EXPECT().Get(vkKey).Return(m.provider, nil)
				m.provider.EXPECT().FetchProfile(ctx, "vk-token").Return(vkProfile(), nil)
				m.identities.EXPECT().GetIdentity(ctx, vkKey, "1001").Return(models.SocialIdentity{UserID: blocked.UserID}, nil)
				m.users.EXPECT().GetUserByID(ctx, blocked.UserID).Return(blocked, nil)
			},
			wantErr: ErrUserBlocked,
		},
		{
			name: "create fails",
			setup: func(ctx context.Context, m socialSvcMocks) {
				m.providers.EXPECT().Get(vkKey).Return(m.provider, nil)
				m.provider.EXPECT().FetchProfile(ctx, "vk-token").Return(vkProfile(), nil)
				m.identities.EXPECT().GetIdentity(ctx, vkKey, "1001").Return(models.SocialIdentity{}, store.ErrIdentityNotFound)
				m.users.EXPECT().UsernameExists(ctx, "durov").Return(false, nil)
				m.identities.EXPECT().CreateUserWithIdentity(ctx, gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrCommitingTransaction)
			},
			wantErr: ErrUserCreation,
		},
		{
			name: "token generation fails",
			setup: func(ctx context.Context, m socialSvcMocks) {
				user := activeUser()
				m.providers.EXPECT().Get(vkKey).Return(m.provider, nil)
				m.provider.EXPECT().FetchProfile(ctx, "vk-token").Return(vkProfile(), nil)
				m.identities.EXPECT().GetIdentity(ctx, vkKey, "1001").Return(models.SocialIdentity{UserID: user.UserID}, nil)
				m.users.EXPECT().GetUserByID(ctx, user.UserID).Return(user, nil)
				m.tokens.EXPECT().IssuePair(ctx, user).Return(models.TokenPair{}, ErrTokenGeneration)
			},
			wantErr: ErrTokenGeneration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestSocialSvc(t, ctrl)
			ctx := context.Background()
			tt.setup(ctx, m)

			_, err := svc.ConvertToken(ctx, vkKey, "vk-token")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── ListProviders ────────────────────────────────────────────────────────────

func TestSocialService_ListProviders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSocialSvc(t, ctrl)
	ctx := context.Background()
	google := mock.NewMockSocialProvider(ctrl)

	m.identities.EXPECT().ListProviders(ctx).Return([]models.SocialProvider{
		{Key: vkKey, Title: "ВКонтакте", Logo: "/static/vk.svg"},
	}, nil)
	m.providers.EXPECT().Keys().Return([]string{vkKey, "google-oauth2"})
	m.providers.EXPECT().Get(vkKey).Return(m.provider, nil)
	m.providers.EXPECT().Get("google-oauth2").Return(google, nil)
	m.provider.EXPECT().AuthCodeURL(gomock.Any()).Return("https://oauth.vk.com/authorize?client_id=1")
	google.EXPECT().AuthCodeURL(gomock.Any()).Return("")

	got, err := svc.ListProviders(ctx)
	require.NoError(t, err)

	assert.Equal(t, []models.ProviderInfo{
		{Name: vkKey, Title: "ВКонтакте", Logo: "/static/vk.svg", AuthURL: "https://oauth.vk.com/authorize?client_id=1"},
		{Name: "google-oauth2"},
	}, got)
}

func TestSocialService_ListProviders_MetadataUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSocialSvc(t, ctrl)
	ctx := context.Background()

	m.identities.EXPECT().ListProviders(ctx).Return(nil, errors.New("connection refused"))
	m.providers.EXPECT().Keys().Return([]string{vkKey})
	m.providers.EXPECT().Get(vkKey).Return(m.provider, nil)
	m.provider.EXPECT().AuthCodeURL(gomock.Any()).Return("")

	got, err := svc.ListProviders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.ProviderInfo{{Name: vkKey}}, got)
}

// ── usernames ────────────────────────────────────────────────────────────────

func TestUsernameBase(t *testing.T) {
	tests := []struct {
		name    string
		profile models.SocialProfile
		want    string
	}{
		{"screen name", models.SocialProfile{UID: "1", ScreenName: "durov"}, "durov"},
		{"names", models.SocialProfile{UID: "1", FirstName: "Иван", LastName: "Петров"}, "Иван_Петров"},
		{"strips symbols", models.SocialProfile{UID: "1", ScreenName: "d!u#r$o%v"}, "durov"},
		{"falls back to uid", models.SocialProfile{UID: "42"}, "vk_42"},
		{"long", models.SocialProfile{UID: "1", ScreenName: strings.Repeat("a", 200)}, strings.Repeat("a", 150)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usernameBase(vkKey, tt.profile))
		})
	}
}
