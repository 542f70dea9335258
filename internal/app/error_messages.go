// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages written into the
// {"message": ...} body of API responses.
//
// Clients match on the numeric status, not on these strings, but the wording
// is part of the public contract and must stay stable.
package app

// Error messages.
const (
	MsgUnknownError = "Unknown error."

	MsgMalformedJSON              = "JSON parse error."
	MsgNotAuthenticated           = "Authentication credentials were not provided."
	MsgInvalidAuthorizationHeader = "Authorization header must contain two space-delimited values."
	MsgTokenNotValid              = "Given token not valid for any token type."
	MsgNotFound                   = "Not found."
	MsgMethodNotAllowed           = "Method not allowed."
	MsgInvalidPhoneNumber         = "Phone number is not correct"
	MsgPhoneAlreadyUsed           = "A user with that phone already exists."
	MsgSMSSendingFailed           = "Error in sending verification code"
	MsgInvalidSecurityCode        = "Security code is not valid."
	MsgUserCreationError          = "Error in user creation."
	MsgUserUpdateError            = "Error in user update."
	MsgUserNotFound               = "User not found."
	MsgWrongPassword              = "Wrong password."
	MsgUserBlocked                = "The user is blocked."
	MsgTokenGenerationError       = "Error in token generation."
	MsgInvalidRefreshToken        = "Invalid refresh-token."
	MsgInvalidSocialProvider      = "Provider is not found."
	MsgInvalidOAuthToken          = "Invalid token."
	MsgFollowingExists            = "You are already following this user."
	MsgFollowingNotExists         = "You are not following this user."
	MsgSelfFollowing              = "You cannot follow yourself."
	MsgFollowingCreationError     = "Error in following creation."
)

// Success messages.
const (
	MsgSecurityCodeValid = "Security code is valid."
	MsgUserCreated       = "The user has been created."
	MsgUserUpdated       = "The user has been updated."
	MsgFollowingCreated  = "Following has been created."
	MsgFollowingRemoved  = "Following has been removed."
)
