package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonOAuthClient struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	PublicKey    string `json:"public_key"`
	APIURL       string `json:"api_url"`
}

func (c jsonOAuthClient) toOAuthClient() OAuthClient {
	return OAuthClient{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		PublicKey:    c.PublicKey,
		APIURL:       c.APIURL,
	}
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Name         string `json:"name"`
		HashKey      string `json:"hash_key"`
		Version      string `json:"version"`
		LogLevel     string `json:"log_level"`
		PhoneRegion  string `json:"phone_region"`
		Verification struct {
			CodeLength      int      `json:"code_length"`
			SessionTTL      Duration `json:"session_ttl"`
			MessageTemplate string   `json:"message_template"`
		} `json:"verification,omitempty"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey           string   `json:"token_sign_key"`
		TokenIssuer            string   `json:"token_issuer"`
		AccessTokenLifetime    Duration `json:"access_token_lifetime"`
		RefreshTokenLifetime   Duration `json:"refresh_token_lifetime"`
		RotateRefreshTokens    bool     `json:"rotate_refresh_tokens"`
		BlacklistAfterRotation bool     `json:"blacklist_after_rotation"`
		LoginRedirectURL       string   `json:"login_redirect_url"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
		SMS            struct {
			Backend          string `json:"backend"`
			TwilioAccountSID string `json:"twilio_account_sid"`
			TwilioAuthToken  string `json:"twilio_auth_token"`
			TwilioFrom       string `json:"twilio_from"`
			TwilioBaseURL    string `json:"twilio_base_url"`
		} `json:"sms,omitempty"`
		Social struct {
			VK            jsonOAuthClient `json:"vk"`
			Odnoklassniki jsonOAuthClient `json:"odnoklassniki"`
			Facebook      jsonOAuthClient `json:"facebook"`
			Google        jsonOAuthClient `json:"google"`
		} `json:"social,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		CleanupInterval Duration `json:"cleanup_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:        jsonCfg.App.Name,
			HashKey:     jsonCfg.App.HashKey,
			Version:     jsonCfg.App.Version,
			LogLevel:    jsonCfg.App.LogLevel,
			PhoneRegion: jsonCfg.App.PhoneRegion,
			Verification: Verification{
				CodeLength:      jsonCfg.App.Verification.CodeLength,
				SessionTTL:      time.Duration(jsonCfg.App.Verification.SessionTTL),
				MessageTemplate: jsonCfg.App.Verification.MessageTemplate,
			},
		},
		Auth: Auth{
			TokenSignKey:           jsonCfg.Auth.TokenSignKey,
			TokenIssuer:            jsonCfg.Auth.TokenIssuer,
			AccessTokenLifetime:    time.Duration(jsonCfg.Auth.AccessTokenLifetime),
			RefreshTokenLifetime:   time.Duration(jsonCfg.Auth.RefreshTokenLifetime),
			RotateRefreshTokens:    jsonCfg.Auth.RotateRefreshTokens,
			BlacklistAfterRotation: jsonCfg.Auth.BlacklistAfterRotation,
			LoginRedirectURL:       jsonCfg.Auth.LoginRedirectURL,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			SMS: SMS{
				Backend:          jsonCfg.Adapter.SMS.Backend,
				TwilioAccountSID: jsonCfg.Adapter.SMS.TwilioAccountSID,
				TwilioAuthToken:  jsonCfg.Adapter.SMS.TwilioAuthToken,
				TwilioFrom:       jsonCfg.Adapter.SMS.TwilioFrom,
				TwilioBaseURL:    jsonCfg.Adapter.SMS.TwilioBaseURL,
			},
			Social: Social{
				VK:            jsonCfg.Adapter.Social.VK.toOAuthClient(),
				Odnoklassniki: jsonCfg.Adapter.Social.Odnoklassniki.toOAuthClient(),
				Facebook:      jsonCfg.Adapter.Social.Facebook.toOAuthClient(),
				Google:        jsonCfg.Adapter.Social.Google.toOAuthClient(),
			},
		},
		Workers: Workers{
			CleanupInterval: time.Duration(jsonCfg.Workers.CleanupInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
