package models

import "time"

// VerificationSession binds an issued security code to a phone number and an
// opaque session token. Only one session per phone number exists at a time:
// issuing a new code replaces the previous session.
type VerificationSession struct {
	// PhoneNumber is the E.164 phone number the code was sent to.
	PhoneNumber string

	// CodeHash is the keyed hash of the security code. The plain code is
	// only ever present in the SMS message.
	CodeHash string

	// SessionToken is returned to the client and must accompany the code.
	// It is generated independently of the code.
	SessionToken string

	// CreatedAt is used to compute expiry.
	CreatedAt time.Time
}

// IsExpired reports whether the session is older than ttl at moment now.
func (s VerificationSession) IsExpired(now time.Time, ttl time.Duration) bool {
	return !now.Before(s.CreatedAt.Add(ttl))
}
