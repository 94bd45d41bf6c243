package sources

import (
	"net/http"
	"time"

	"follower-tracker/models"
)

// Each outbound call gets its own fixed timeout; a timed-out call is an
// adapter failure, never a handler-level one.
const requestTimeout = 10 * time.Second

// CountSource converts a platform identifier into a normalized count.
// Implementations swallow their own errors: they log and return a null
// count instead of propagating failures to the caller.
type CountSource interface {
	FetchCount(id string) models.Count
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}
