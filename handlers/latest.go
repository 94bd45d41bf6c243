package handlers

import (
	"net/http"

	"follower-tracker/config"
	"follower-tracker/kvstore"
	"follower-tracker/middlewares"
)

// LatestHandler reads the stored snapshot back from the KV store.
func LatestHandler(w http.ResponseWriter, r *http.Request) {
	cfg := config.Load()

	store := SnapshotStore
	if store == nil {
		store = kvstore.NewRestKVStore(cfg.KVRestAPIURL, cfg.KVRestToken)
	}

	snapshot, err := store.Get(config.KVKeyName)
	switch {
	case err == kvstore.ErrNotFound:
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "No snapshot stored yet"})
	case err == kvstore.ErrNotConfigured:
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	case err != nil:
		middlewares.ErrorLogger.Printf("Error reading snapshot from Vercel KV: %v", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to read data from Vercel KV"})
	default:
		respondJSON(w, http.StatusOK, snapshot)
	}
}
