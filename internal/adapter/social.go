package adapter

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/utils"
	"golang.org/x/oauth2"
)

// Provider keys.
const (
	ProviderVK            = "vk-oauth2"
	ProviderOdnoklassniki = "odnoklassniki-oauth2"
	ProviderFacebook      = "facebook"
	ProviderGoogle        = "google-oauth2"
)

// oauthProvider holds what all providers share: the key, the HTTP client for
// API calls and the OAuth2 config used to build authorization URLs.
type oauthProvider struct {
	key    string
	client *utils.HTTPClient
	oauth  *oauth2.Config
	logger *logger.Logger
}

func newOAuthProvider(key string, cfg config.OAuthClient, endpoint oauth2.Endpoint, scopes []string,
	apiURL, redirectURL string, timeout time.Duration, log *logger.Logger) oauthProvider {
	client := utils.NewHTTPClient(timeout)
	client.SetBaseURL(strings.TrimRight(apiURL, "/"))

	return oauthProvider{
		key:    key,
		client: client,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     endpoint,
			Scopes:       scopes,
			RedirectURL:  redirectURL,
		},
		logger: log.Component("social." + key),
	}
}

func (p *oauthProvider) Key() string {
	return p.key
}

func (p *oauthProvider) AuthCodeURL(state string) string {
	if p.oauth.RedirectURL == "" {
		return ""
	}
	return p.oauth.AuthCodeURL(state)
}

// invalidToken wraps err into [ErrInvalidOAuthToken] and logs it.
func (p *oauthProvider) invalidToken(err error) error {
	p.logger.Warn().Err(err).Str("provider", p.key).Msg("provider rejected token")
	return fmt.Errorf("%w: %s: %w", ErrInvalidOAuthToken, p.key, err)
}

// apiURLOr returns the configured API URL or fallback.
func apiURLOr(cfg config.OAuthClient, fallback string) string {
	if cfg.APIURL != "" {
		return cfg.APIURL
	}
	return fallback
}

// Providers is the registry of configured social providers.
type Providers struct {
	providers map[string]SocialProvider
	keys      []string
}

// NewSocialProviders constructs every provider that has client
// credentials. redirectURL is where providers send the user back after
// authorization; when empty, no authorization URLs are produced.
func NewSocialProviders(cfg config.Adapter, redirectURL string, log *logger.Logger) *Providers {
	p := &Providers{providers: make(map[string]SocialProvider, 4)}

	social := cfg.Social
	if social.VK.Enabled() {
		p.register(NewVKProvider(social.VK, redirectURL, cfg.RequestTimeout, log))
	}
	if social.Odnoklassniki.Enabled() {
		p.register(NewOdnoklassnikiProvider(social.Odnoklassniki, redirectURL, cfg.RequestTimeout, log))
	}
	if social.Facebook.Enabled() {
		p.register(NewFacebookProvider(social.Facebook, redirectURL, cfg.RequestTimeout, log))
	}
	if social.Google.Enabled() {
		p.register(NewGoogleProvider(social.Google, redirectURL, cfg.RequestTimeout, log))
	}

	log.Debug().Strs("providers", p.keys).Msg("social providers configured")
	return p
}

func (p *Providers) register(provider SocialProvider) {
	p.providers[provider.Key()] = provider
	p.keys = append(p.keys, provider.Key())
}

func (p *Providers) Get(key string) (SocialProvider, error) {
	provider, ok := p.providers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, key)
	}
	return provider, nil
}

func (p *Providers) Keys() []string {
	return append([]string(nil), p.keys...)
}
