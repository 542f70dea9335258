package adapter

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

type googleProvider struct {
	oauthProvider

	apiURL  string
	timeout time.Duration
}

// NewGoogleProvider constructs the Google provider. Profiles are read from
// the userinfo endpoint through the Google API client.
func NewGoogleProvider(cfg config.OAuthClient, redirectURL string, timeout time.Duration, log *logger.Logger) SocialProvider {
	return &googleProvider{
		oauthProvider: newOAuthProvider(ProviderGoogle, cfg, endpoints.Google,
			[]string{"openid", "email", "profile"}, cfg.APIURL, redirectURL, timeout, log),
		apiURL:  cfg.APIURL,
		timeout: timeout,
	}
}

func (p *googleProvider) FetchProfile(ctx context.Context, accessToken string) (models.SocialProfile, error) {
	// the bearer transport takes its base client from the context
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: p.timeout})
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if p.apiURL != "" {
		opts = append(opts, option.WithEndpoint(strings.TrimRight(p.apiURL, "/")+"/"))
	}

	svc, err := googleoauth2.NewService(ctx, opts...)
	if err != nil {
		return models.SocialProfile{}, p.invalidToken(err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return models.SocialProfile{}, p.invalidToken(err)
	}
	if info.Id == "" {
		return models.SocialProfile{}, p.invalidToken(errors.New("empty userinfo response"))
	}

	screenName, _, _ := strings.Cut(info.Email, "@")
	return models.SocialProfile{
		UID:        info.Id,
		ScreenName: screenName,
		FirstName:  info.GivenName,
		LastName:   info.FamilyName,
		Email:      info.Email,
	}, nil
}
