package http

import (
	"net/http"

	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/utils"
	"github.com/MKhiriev/thingsfree/models"
)

// writeResponse wraps body into the envelope and derives the HTTP code from
// status.
func writeResponse(w http.ResponseWriter, r *http.Request, status int, body any) {
	envelope := models.Envelope{Status: status, Body: body}
	if _, err := utils.WriteJSON(w, envelope, status/1000); err != nil {
		logger.FromRequest(r).Err(err).Int("status", status).Msg("error writing response")
	}
}

func writeMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeResponse(w, r, status, models.Message{Message: message})
}
