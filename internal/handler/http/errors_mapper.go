package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/thingsfree/internal/app"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/service"
	"github.com/MKhiriev/thingsfree/internal/validators"
	"github.com/go-chi/chi/v5"
)

// Application statuses. The first three digits are the HTTP status code.
const (
	StatusOK      = 200000
	StatusCreated = 201000

	StatusMalformedJSON       = 400000
	StatusInvalidPhoneNumber  = 400001
	StatusPhoneAlreadyUsed    = 400002
	StatusInvalidSecurityCode = 400003
	StatusInvalidData         = 400004
	StatusUserNotFound        = 400005
	StatusWrongPassword       = 400006
	StatusUserBlocked         = 400007
	StatusInvalidRefreshToken = 400008
	StatusInvalidProvider     = 400009
	StatusInvalidOAuthToken   = 400010
	StatusFollowingExists     = 400011
	StatusFollowingNotExists  = 400012
	StatusSelfFollowing       = 400013

	StatusNotAuthenticated = 401000
	StatusNotFound         = 404000
	StatusMethodNotAllowed = 405000

	StatusUnknownError      = 500000
	StatusSMSSendingFailed  = 500001
	StatusUserCreationError = 500002
	StatusTokenError        = 500003
	StatusUserUpdateError   = 500004
	StatusFollowingError    = 500005
)

type apiError struct {
	status  int
	message string
}

// Every error returned by the service layer wraps at most one of these
// sentinels.
var errorStatusMap = map[error]apiError{
	ErrMalformedJSON:              {StatusMalformedJSON, app.MsgMalformedJSON},
	ErrNotAuthenticated:           {StatusNotAuthenticated, app.MsgNotAuthenticated},
	ErrInvalidAuthorizationHeader: {StatusNotAuthenticated, app.MsgInvalidAuthorizationHeader},
	ErrNotFound:                   {StatusNotFound, app.MsgNotFound},
	ErrMethodNotAllowed:           {StatusMethodNotAllowed, app.MsgMethodNotAllowed},

	service.ErrInvalidPhoneNumber:  {StatusInvalidPhoneNumber, app.MsgInvalidPhoneNumber},
	service.ErrPhoneAlreadyUsed:    {StatusPhoneAlreadyUsed, app.MsgPhoneAlreadyUsed},
	service.ErrSMSSendingFailed:    {StatusSMSSendingFailed, app.MsgSMSSendingFailed},
	service.ErrInvalidSecurityCode: {StatusInvalidSecurityCode, app.MsgInvalidSecurityCode},

	service.ErrUserCreation:   {StatusUserCreationError, app.MsgUserCreationError},
	service.ErrUserUpdate:     {StatusUserUpdateError, app.MsgUserUpdateError},
	service.ErrUserNotFound:   {StatusUserNotFound, app.MsgUserNotFound},
	service.ErrWrongPassword:  {StatusWrongPassword, app.MsgWrongPassword},
	service.ErrUserBlocked:    {StatusUserBlocked, app.MsgUserBlocked},
	service.ErrProfileMissing: {StatusNotFound, app.MsgNotFound},

	service.ErrTokenGeneration:     {StatusTokenError, app.MsgTokenGenerationError},
	service.ErrInvalidRefreshToken: {StatusInvalidRefreshToken, app.MsgInvalidRefreshToken},
	service.ErrInvalidAccessToken:  {StatusNotAuthenticated, app.MsgTokenNotValid},

	service.ErrInvalidSocialProvider: {StatusInvalidProvider, app.MsgInvalidSocialProvider},
	service.ErrInvalidOAuthToken:     {StatusInvalidOAuthToken, app.MsgInvalidOAuthToken},

	service.ErrFollowingExists:    {StatusFollowingExists, app.MsgFollowingExists},
	service.ErrFollowingNotExists: {StatusFollowingNotExists, app.MsgFollowingNotExists},
	service.ErrSelfFollowing:      {StatusSelfFollowing, app.MsgSelfFollowing},
	service.ErrFollowingCreation:  {StatusFollowingError, app.MsgFollowingCreationError},
}

func apiErrorFromError(err error) (apiError, bool) {
	var fieldErrors validators.FieldErrors
	if errors.As(err, &fieldErrors) {
		return apiError{StatusInvalidData, fieldErrors.Message()}, true
	}

	for target, mapped := range errorStatusMap {
		if errors.Is(err, target) {
			return mapped, true
		}
	}
	return apiError{StatusUnknownError, app.MsgUnknownError}, false
}

// writeError writes the envelope mapped from err. Unmapped errors are
// logged together with the route that produced them and become 500000.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	mapped, ok := apiErrorFromError(err)
	if !ok {
		log.Err(err).Str("route", routePattern(r)).Msg("unexpected error")
	} else if mapped.status/1000 == http.StatusInternalServerError {
		log.Err(err).Int("status", mapped.status).Send()
	} else {
		log.Debug().Err(err).Int("status", mapped.status).Send()
	}

	writeMessage(w, r, mapped.status, mapped.message)
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
