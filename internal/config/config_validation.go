// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.HashKey == "" {
		return fmt.Errorf("%w: empty hash key", ErrInvalidAppConfigs)
	}
	if cfg.App.Verification.CodeLength < 4 || cfg.App.Verification.CodeLength > 10 {
		return fmt.Errorf("%w: security code length must be within [4, 10]", ErrInvalidAppConfigs)
	}
	if cfg.App.Verification.SessionTTL <= 0 {
		return fmt.Errorf("%w: non-positive verification session ttl", ErrInvalidAppConfigs)
	}
	if !strings.Contains(cfg.App.Verification.MessageTemplate, "{security_code}") {
		return fmt.Errorf("%w: message template must contain {security_code}", ErrInvalidAppConfigs)
	}

	if cfg.Auth.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.AccessTokenLifetime <= 0 || cfg.Auth.RefreshTokenLifetime <= 0 {
		return fmt.Errorf("%w: non-positive token lifetime", ErrInvalidAuthConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database dsn", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	switch cfg.Adapter.SMS.Backend {
	case SMSBackendConsole:
	case SMSBackendTwilio:
		sms := cfg.Adapter.SMS
		if sms.TwilioAccountSID == "" || sms.TwilioAuthToken == "" || sms.TwilioFrom == "" {
			return fmt.Errorf("%w: twilio credentials are required", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown sms backend %q", ErrInvalidAdapterConfigs, cfg.Adapter.SMS.Backend)
	}

	return nil
}
