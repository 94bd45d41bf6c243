package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"follower-tracker/aggregator"
	"follower-tracker/config"
	"follower-tracker/kvstore"
	"follower-tracker/middlewares"
	"follower-tracker/pubsub"
	"follower-tracker/queue"
)

// SnapshotStore overrides the per-invocation REST store when set; tests
// inject an in-memory store here.
var SnapshotStore kvstore.SnapshotStore

// PS publishes snapshot_stored events when main wires Redis up.
var PS *pubsub.PubSub

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// UpdateHandler fetches both platform counts, assembles a snapshot, and
// overwrites the stored record. Configuration is checked before any network
// call; an adapter failure is already encoded inside the snapshot by the
// time persistence runs, so only a store failure turns the response into an
// error.
func UpdateHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Function triggered...")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		middlewares.ErrorLogger.Printf("Missing environment variables: %v", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	log.Println("Fetching follower counts...")
	snapshot := aggregator.New(cfg).Collect()

	store := SnapshotStore
	if store == nil {
		store = kvstore.NewRestKVStore(cfg.KVRestAPIURL, cfg.KVRestToken)
	}

	log.Printf("Storing data in Vercel KV under key: %s...", config.KVKeyName)
	if err := store.Set(config.KVKeyName, snapshot); err != nil {
		middlewares.ErrorLogger.Printf("Error storing data in Vercel KV: %v", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "Failed to store data in Vercel KV",
		})
		return
	}

	if PS != nil {
		notifySnapshotStored(snapshot)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "success",
		"data_stored": snapshot,
	})
}

// notifySnapshotStored enqueues the publish so a slow Redis never delays the
// response.
func notifySnapshotStored(snapshot interface{}) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return
	}
	queue.TaskQueue <- func() {
		if err := PS.Publish(pubsub.EventSnapshotStored, data); err != nil {
			middlewares.ErrorLogger.Printf("Failed to publish snapshot_stored: %v", err)
		}
	}
}
