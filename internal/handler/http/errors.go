// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors produced by the transport layer itself. Callers can match against
// them with [errors.Is].
var (
	// ErrMalformedJSON is returned when a request body is not valid JSON.
	ErrMalformedJSON = errors.New("malformed JSON body")

	// ErrNotAuthenticated is returned when an endpoint requires a user and
	// the request carries no access token.
	ErrNotAuthenticated = errors.New("authentication credentials were not provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNotFound is returned for unknown routes and unknown user ids.
	ErrNotFound = errors.New("not found")

	ErrMethodNotAllowed = errors.New("method not allowed")
)
