package utils

import "github.com/google/uuid"

// NewToken returns a random (v4) uuid string. Used for session tokens and
// token ids, which must not be guessable from one another.
func NewToken() string {
	return uuid.NewString()
}

// NewID returns a time-ordered (v7) uuid for new rows.
func NewID() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
