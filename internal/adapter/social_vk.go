package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/models"
	"golang.org/x/oauth2/endpoints"
)

const (
	vkAPIURL     = "https://api.vk.com"
	vkAPIVersion = "5.131"
)

type vkProvider struct {
	oauthProvider
}

type vkUser struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	ScreenName string `json:"screen_name"`
}

type vkError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_msg"`
}

type vkUsersResponse struct {
	Response []vkUser `json:"response"`
	Error    *vkError `json:"error"`
}

// NewVKProvider constructs the VK provider. Profiles are read with the
// users.get method of the VK API.
func NewVKProvider(cfg config.OAuthClient, redirectURL string, timeout time.Duration, log *logger.Logger) SocialProvider {
	return &vkProvider{
		oauthProvider: newOAuthProvider(ProviderVK, cfg, endpoints.Vk, []string{"email"},
			apiURLOr(cfg, vkAPIURL), redirectURL, timeout, log),
	}
}

func (p *vkProvider) FetchProfile(ctx context.Context, accessToken string) (models.SocialProfile, error) {
	var result vkUsersResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"access_token": accessToken,
			"v":            vkAPIVersion,
			"fields":       "screen_name",
		}).
		SetResult(&result).
		Get("/method/users.get")
	if err != nil {
		return models.SocialProfile{}, p.invalidToken(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SocialProfile{}, p.invalidToken(err)
	}

	// VK reports API errors with status 200
	if result.Error != nil {
		return models.SocialProfile{}, p.invalidToken(fmt.Errorf("vk error %d: %s", result.Error.Code, result.Error.Message))
	}
	if len(result.Response) == 0 || result.Response[0].ID == 0 {
		return models.SocialProfile{}, p.invalidToken(errors.New("empty users.get response"))
	}

	user := result.Response[0]
	return models.SocialProfile{
		UID:        strconv.FormatInt(user.ID, 10),
		ScreenName: user.ScreenName,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
	}, nil
}
