package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// LogRequest logs each request once it is served. Writes (session transitions, program
// changes, imports) go out at debug level, reads at trace.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			resp := &responseWriter{w, http.StatusOK}

			next.ServeHTTP(resp, r)

			entry := log.WithFields(log.Fields{
				"method":   r.Method,
				"route":    routeTemplate(r),
				"path":     r.URL.Path,
				"status":   resp.statusCode,
				"duration": time.Since(begin).Round(time.Millisecond).String(),
				"ua":       r.Header.Get("User-Agent"),
			})
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodDelete:
				entry.Debug("request served")
			default:
				entry.Trace("request served")
			}
		})
	}
}
