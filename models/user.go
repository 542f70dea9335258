// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
// Credential-related fields are never serialized.
type User struct {
	// UserID is the unique identifier of the user.
	UserID uuid.UUID `json:"id"`

	// Username is the unique login name of the user.
	Username string `json:"username"`

	// FirstName and LastName are display attributes. Social sign-in fills
	// them from the provider profile.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Email is optional. When present it is unique across users and can be
	// used as a login identifier.
	Email string `json:"email"`

	// PhoneNumber is stored in E.164 form. When present it is unique across
	// users and can be used as a login identifier.
	PhoneNumber string `json:"phone_number"`

	// PasswordHash stores the encoded password hash (argon2id or legacy bcrypt).
	// It is empty for accounts created through social sign-in.
	PasswordHash string `json:"-"`

	// Avatar is a link to the user's photo.
	Avatar string `json:"avatar"`

	// IsActive is false for accounts blocked by moderation. Blocked users
	// must never obtain a token.
	IsActive bool `json:"-"`

	// IsStaff marks moderators.
	IsStaff bool `json:"-"`

	// DateJoined is the timestamp when the account was created.
	DateJoined time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserProfile is the public representation of a user.
type UserProfile struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Avatar      string    `json:"avatar"`
}

// ShortUserProfile is the representation used in follower/following lists.
type ShortUserProfile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Avatar    string    `json:"avatar"`
}

// Profile returns the public profile of u.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:          u.UserID,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Avatar:      u.Avatar,
	}
}

// Short returns the short profile of u.
func (u User) Short() ShortUserProfile {
	return ShortUserProfile{
		ID:        u.UserID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Avatar:    u.Avatar,
	}
}
