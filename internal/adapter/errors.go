package adapter

import "errors"

var (
	ErrSMSSendFailed     = errors.New("sms sending failed")
	ErrInvalidOAuthToken = errors.New("invalid oauth token")
	ErrUnknownProvider   = errors.New("unknown social provider")
	ErrUnknownSMSBackend = errors.New("unknown sms backend")
)

// HTTP status errors returned by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
