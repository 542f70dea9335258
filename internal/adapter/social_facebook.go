package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/utils"
	"github.com/MKhiriev/thingsfree/models"
	"golang.org/x/oauth2/endpoints"
)

const facebookAPIURL = "https://graph.facebook.com/v19.0"

type facebookProvider struct {
	oauthProvider

	clientSecret string
}

type facebookUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// NewFacebookProvider constructs the Facebook provider backed by the Graph
// API "me" node.
func NewFacebookProvider(cfg config.OAuthClient, redirectURL string, timeout time.Duration, log *logger.Logger) SocialProvider {
	return &facebookProvider{
		oauthProvider: newOAuthProvider(ProviderFacebook, cfg, endpoints.Facebook, []string{"email"},
			apiURLOr(cfg, facebookAPIURL), redirectURL, timeout, log),
		clientSecret: cfg.ClientSecret,
	}
}

func (p *facebookProvider) FetchProfile(ctx context.Context, accessToken string) (models.SocialProfile, error) {
	params := map[string]string{
		"fields":       "id,name,first_name,last_name,email",
		"access_token": accessToken,
	}
	if p.clientSecret != "" {
		params["appsecret_proof"] = utils.HashString(accessToken, p.clientSecret)
	}

	var user facebookUser
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&user).
		Get("/me")
	if err != nil {
		return models.SocialProfile{}, p.invalidToken(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SocialProfile{}, p.invalidToken(err)
	}
	if user.ID == "" {
		return models.SocialProfile{}, p.invalidToken(errors.New("empty me response"))
	}

	return models.SocialProfile{
		UID:        user.ID,
		ScreenName: user.Name,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
	}, nil
}
