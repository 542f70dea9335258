// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of the service: SMS
// gateways that deliver security codes and OAuth providers that resolve a
// provider access token into the profile of its owner.
//
// Implementations talk HTTP through resty and translate transport failures
// into the sentinel errors of errors.go, so that the service layer can use
// [errors.Is] regardless of the concrete backend.
package adapter

import (
	"context"

	"github.com/MKhiriev/thingsfree/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SMSGateway delivers text messages to phone numbers.
type SMSGateway interface {
	// Send delivers body to phoneNumber (E.164). It blocks until the
	// gateway accepted or rejected the message, or ctx is done. Any failure
	// is reported as a wrapped [ErrSMSSendFailed].
	Send(ctx context.Context, phoneNumber, body string) error
}

// SocialProvider resolves access tokens issued by one OAuth provider.
type SocialProvider interface {
	// Key returns the provider key, e.g. "vk-oauth2".
	Key() string

	// FetchProfile asks the provider who owns accessToken. A rejected,
	// expired or unreadable token, as well as a provider that cannot be
	// reached in time, yields a wrapped [ErrInvalidOAuthToken].
	FetchProfile(ctx context.Context, accessToken string) (models.SocialProfile, error)

	// AuthCodeURL returns the provider URL that starts the authorization
	// code flow. It is empty when no redirect URL is configured.
	AuthCodeURL(state string) string
}

// SocialProviders looks up configured providers by key.
type SocialProviders interface {
	// Get returns the provider registered under key or [ErrUnknownProvider].
	Get(key string) (SocialProvider, error)
	// Keys lists the configured provider keys in registration order.
	Keys() []string
}
