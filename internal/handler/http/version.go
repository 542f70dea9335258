package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, StatusOK, h.services.AppInfoService.GetAppInfo(r.Context()))
}
