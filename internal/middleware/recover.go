package middleware

import (
	"net/http"
	"runtime/debug"

	"bird-sightings-api/internal/platform/httpx"
	"bird-sightings-api/internal/platform/logger"
)

// Recover reemplaza a chimw.Recoverer: el cliente recibe el mismo 500 JSON
// que cualquier error interno y el panic queda en una sola línea de log.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				httpx.WritePanic(w, r, log, rec, debug.Stack())
			}()

			next.ServeHTTP(w, r)
		})
	}
}
