// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/service"
	"github.com/MKhiriev/thingsfree/models"
)

func (h *Handler) obtainToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TokenObtainRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.CredentialResolver.Resolve(ctx, req.User, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pair, err := h.services.TokenService.IssuePair(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.UserID.String()).Msg("token pair issued")
	writeResponse(w, r, StatusOK, pair)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.TokenRefreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, service.ErrInvalidRefreshToken)
		return
	}

	pair, err := h.services.TokenService.Refresh(ctx, req.Refresh)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, StatusOK, pair)
}
