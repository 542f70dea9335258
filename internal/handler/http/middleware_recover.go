package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/thingsfree/internal/app"
	"github.com/MKhiriev/thingsfree/internal/logger"
)

// withRecover turns a panic in a handler into the 500000 envelope. The
// panic value and stack are logged, never sent to the client.
func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Str("route", routePattern(r)).
				Str("panic", fmt.Sprint(rvr)).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			writeMessage(w, r, StatusUnknownError, app.MsgUnknownError)
		}()

		next.ServeHTTP(w, r)
	})
}
