package models

import (
	"time"

	"github.com/google/uuid"
)

// SocialIdentity links a local user to an account of a social provider.
// The pair (Provider, UID) is unique.
type SocialIdentity struct {
	ID        int64
	UserID    uuid.UUID
	Provider  string
	UID       string
	CreatedAt time.Time
}

// SocialProfile is the normalized set of attributes returned by a provider
// profile endpoint.
type SocialProfile struct {
	UID        string
	ScreenName string
	FirstName  string
	LastName   string
	Email      string
}

// SocialProvider is the display metadata of a provider stored in the
// social_providers table.
type SocialProvider struct {
	Key   string
	Title string
	Logo  string
}

// ProviderInfo is one entry of the social providers listing.
type ProviderInfo struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Logo    string `json:"logo"`
	AuthURL string `json:"auth_url"`
}
