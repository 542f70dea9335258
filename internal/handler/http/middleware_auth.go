package http

import (
	"net/http"

	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/utils"
)

// authenticate resolves the bearer access token, if any, into a user id
// stored under [utils.UserIDCtxKey].
//
// A request without an "Authorization" header passes through anonymously.
// A header that is present but malformed, or carries a token that is
// expired, of the refresh type or signed with another key, is rejected with
// 401000 on every route, public ones included.
//
// The user is not reloaded: a blocked user keeps access until the access
// token expires.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		claims, err := h.services.TokenService.ParseAccessToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		userID, err := claims.GetUserID()
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("access token passed validation with a malformed user_id")
			writeError(w, r, ErrNotAuthenticated)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, userID)))
	})
}

// requireUser rejects anonymous requests with 401000. It must run after
// authenticate.
func requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			writeError(w, r, ErrNotAuthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}
