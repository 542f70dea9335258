package http

import (
	"net/http"

	"github.com/MKhiriev/thingsfree/internal/app"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/utils"
	"github.com/MKhiriev/thingsfree/models"
	"github.com/google/uuid"
)

func (h *Handler) userProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := targetUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, StatusOK, user.Profile())
}

func (h *Handler) followers(w http.ResponseWriter, r *http.Request) {
	h.followList(w, r, models.Followers)
}

func (h *Handler) following(w http.ResponseWriter, r *http.Request) {
	h.followList(w, r, models.Followings)
}

func (h *Handler) followList(w http.ResponseWriter, r *http.Request, direction models.FollowDirection) {
	userID, err := targetUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page := pageFromQuery(r.URL.Query())
	users, count, err := h.services.FollowingService.List(r.Context(), userID, direction, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	results := make([]models.ShortUserProfile, 0, len(users))
	for _, u := range users {
		results = append(results, u.Short())
	}
	next, previous := pageLinks(r, page, count)

	writeResponse(w, r, StatusOK, models.FollowList{
		Count:    count,
		Next:     next,
		Previous: previous,
		Results:  results,
	})
}

func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	followerID, authorID, err := followEdge(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.FollowingService.Follow(ctx, authorID, followerID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().
		Str("author", authorID.String()).
		Str("follower", followerID.String()).
		Msg("following created")
	writeMessage(w, r, StatusCreated, app.MsgFollowingCreated)
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	followerID, authorID, err := followEdge(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.FollowingService.Unfollow(ctx, authorID, followerID); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, StatusOK, app.MsgFollowingRemoved)
}

// followEdge returns the acting user and the user named in the path.
func followEdge(r *http.Request) (followerID, authorID uuid.UUID, err error) {
	follower, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return followerID, authorID, ErrNotAuthenticated
	}

	author, err := targetUserID(r)
	if err != nil {
		return followerID, authorID, err
	}

	return follower, author, nil
}
