package http

import (
	"net/http"

	"github.com/MKhiriev/thingsfree/internal/app"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/service"
	"github.com/MKhiriev/thingsfree/internal/utils"
	"github.com/MKhiriev/thingsfree/models"
)

func (h *Handler) registerPhone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.PhoneRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, service.ErrInvalidPhoneNumber)
		return
	}

	sessionToken, err := h.services.VerificationService.Issue(ctx, req.PhoneNumber)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, StatusOK, models.SessionTokenBody{SessionToken: sessionToken})
}

func (h *Handler) verifyPhone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := h.decodeVerificationRequest(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.services.VerificationService.Verify(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, StatusOK, app.MsgSecurityCodeValid)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	// the code is checked before anything else about the new account
	if err := h.validator.Validate(ctx, req.VerificationRequest); err != nil {
		writeError(w, r, service.ErrInvalidSecurityCode)
		return
	}

	user, err := h.services.UserService.Signup(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.UserID.String()).Msg("user signed up")
	writeMessage(w, r, StatusCreated, app.MsgUserCreated)
}

func (h *Handler) bindPhone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNotAuthenticated)
		return
	}

	req, err := h.decodeVerificationRequest(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.services.UserService.BindPhoneNumber(ctx, userID, req); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", userID.String()).Msg("phone number bound")
	writeMessage(w, r, StatusOK, app.MsgUserUpdated)
}

// decodeVerificationRequest reports any malformed verification triple as
// an invalid security code.
func (h *Handler) decodeVerificationRequest(w http.ResponseWriter, r *http.Request) (models.VerificationRequest, error) {
	var req models.VerificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return req, err
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		return req, service.ErrInvalidSecurityCode
	}
	return req, nil
}
