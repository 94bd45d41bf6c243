package handlers

import (
	"net/http"

	"follower-tracker/config"
)

// HealthHandler reports process liveness and configuration presence. It
// makes no network calls so that health probes never count against the
// platform APIs.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := config.Load().Validate(); err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "unhealthy",
			"message": "Required configuration is missing",
			"error":   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Server is up and configuration is present",
	})
}
