package middlewares

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
)

type statusCapturingWriter struct {
	http.ResponseWriter
	status int
}

func (s *statusCapturingWriter) WriteHeader(statusCode int) {
	if s.status == 0 {
		s.status = statusCode
	}
	s.ResponseWriter.WriteHeader(statusCode)
}

func (s *statusCapturingWriter) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

// SentryAlertMiddleware reports any 5xx response to Sentry. Config and
// persistence failures both surface as 500 here, so this is the single spot
// that alerts on a broken run.
func SentryAlertMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusCapturingWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)

		if sw.status < http.StatusInternalServerError {
			return
		}
		hub := sentry.GetHubFromContext(r.Context())
		if hub != nil {
			hub.CaptureMessage(fmt.Sprintf("%s %s responded %d", r.Method, r.URL.Path, sw.status))
		}
	})
}
