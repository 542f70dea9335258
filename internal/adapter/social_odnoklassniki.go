package adapter

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/models"
	"golang.org/x/oauth2/endpoints"
)

const okAPIURL = "https://api.ok.ru"

type odnoklassnikiProvider struct {
	oauthProvider

	publicKey    string
	clientSecret string
}

type okUser struct {
	UID       string `json:"uid"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Name      string `json:"name"`
	Email     string `json:"email"`

	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_msg"`
}

// NewOdnoklassnikiProvider constructs the Odnoklassniki provider. API calls
// are signed with the application public key and client secret.
func NewOdnoklassnikiProvider(cfg config.OAuthClient, redirectURL string, timeout time.Duration, log *logger.Logger) SocialProvider {
	return &odnoklassnikiProvider{
		oauthProvider: newOAuthProvider(ProviderOdnoklassniki, cfg, endpoints.Odnoklassniki,
			[]string{"VALUABLE_ACCESS", "GET_EMAIL"}, apiURLOr(cfg, okAPIURL), redirectURL, timeout, log),
		publicKey:    cfg.PublicKey,
		clientSecret: cfg.ClientSecret,
	}
}

func (p *odnoklassnikiProvider) FetchProfile(ctx context.Context, accessToken string) (models.SocialProfile, error) {
	params := map[string]string{
		"application_key": p.publicKey,
		"format":          "json",
		"method":          "users.getCurrentUser",
	}
	params["sig"] = okSignature(params, accessToken, p.clientSecret)
	params["access_token"] = accessToken

	var user okUser
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&user).
		Get("/fb.do")
	if err != nil {
		return models.SocialProfile{}, p.invalidToken(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SocialProfile{}, p.invalidToken(err)
	}
	if user.ErrorCode != 0 {
		return models.SocialProfile{}, p.invalidToken(fmt.Errorf("ok error %d: %s", user.ErrorCode, user.ErrorMessage))
	}
	if user.UID == "" {
		return models.SocialProfile{}, p.invalidToken(errors.New("empty users.getCurrentUser response"))
	}

	return models.SocialProfile{
		UID:        user.UID,
		ScreenName: user.Name,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
	}, nil
}

// okSignature computes the request signature:
// md5(sorted "key=value" pairs + md5(access_token + secret)), lowercase hex.
func okSignature(params map[string]string, accessToken, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}

	secretHash := md5.Sum([]byte(accessToken + secret))
	b.WriteString(hex.EncodeToString(secretHash[:]))

	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
