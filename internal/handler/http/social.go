package http

import (
	"net/http"

	"github.com/MKhiriev/thingsfree/models"
)

func (h *Handler) socialProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.services.SocialService.ListProviders(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if providers == nil {
		providers = []models.ProviderInfo{}
	}

	writeResponse(w, r, StatusOK, models.ProvidersBody{Providers: providers})
}

func (h *Handler) convertSocialToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ConvertTokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	pair, err := h.services.SocialService.ConvertToken(ctx, req.Provider, req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, StatusOK, pair)
}
