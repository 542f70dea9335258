package service

import "errors"

// Phone verification.
var (
	ErrInvalidPhoneNumber  = errors.New("phone number is not correct")
	ErrPhoneAlreadyUsed    = errors.New("a user with that phone already exists")
	ErrSMSSendingFailed    = errors.New("error in sending verification code")
	ErrInvalidSecurityCode = errors.New("security code is not valid")
)

// Accounts.
var (
	ErrUserCreation   = errors.New("error creating user")
	ErrUserUpdate     = errors.New("error updating user")
	ErrUserNotFound   = errors.New("user not found")
	ErrWrongPassword  = errors.New("wrong password")
	ErrUserBlocked    = errors.New("user is blocked")
	ErrProfileMissing = errors.New("no user with that id")
)

// Tokens.
var (
	ErrTokenGeneration     = errors.New("error generating token")
	ErrInvalidRefreshToken = errors.New("token is invalid or expired")
	ErrInvalidAccessToken  = errors.New("access token is invalid or expired")
)

// Social sign-in.
var (
	ErrInvalidSocialProvider = errors.New("unknown social provider")
	ErrInvalidOAuthToken     = errors.New("invalid oauth token")
)

// Following.
var (
	ErrFollowingExists    = errors.New("following already exists")
	ErrFollowingNotExists = errors.New("following does not exist")
	ErrSelfFollowing      = errors.New("cannot follow yourself")
	ErrFollowingCreation  = errors.New("error creating following")
)

var (
	ErrUnknownPasswordHash   = errors.New("unknown password hash format")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
