package middlewares

import (
	"net/http"
	"time"
)

// slowRequestThreshold flags invocations that spent most of their upstream
// timeout budget.
const slowRequestThreshold = 5 * time.Second

type timedResponseWriter struct {
	http.ResponseWriter
	start       time.Time
	status      int
	wroteHeader bool
}

func (t *timedResponseWriter) WriteHeader(statusCode int) {
	if !t.wroteHeader {
		elapsed := time.Since(t.start)
		t.ResponseWriter.Header().Set("X-Response-Time", elapsed.String())
		t.status = statusCode
		t.wroteHeader = true
	}
	t.ResponseWriter.WriteHeader(statusCode)
}

func (t *timedResponseWriter) Write(b []byte) (int, error) {
	if !t.wroteHeader {
		t.WriteHeader(http.StatusOK)
	}
	return t.ResponseWriter.Write(b)
}

// ResponseTimeMiddleware stamps X-Response-Time on every response and logs
// requests that ran long; an /update invocation fans out to two platform
// APIs and the KV store, so slow responses usually mean a slow upstream.
func ResponseTimeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &timedResponseWriter{
			ResponseWriter: w,
			start:          time.Now(),
		}
		next.ServeHTTP(tw, r)
		if elapsed := time.Since(tw.start); elapsed > slowRequestThreshold {
			DebugLogger.Printf("Slow request: %s %s took %s (status %d)", r.Method, r.URL.Path, elapsed, tw.status)
		}
	})
}
