package main

import (
	"log"
	"os"

	"follower-tracker/kvstore"
	"follower-tracker/pubsub"
	"follower-tracker/utils"
)

// Standalone subscriber: tails snapshot_stored events published by the
// tracker and logs them, alerting when the subscriber count goes hidden.
func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Fatal("REDIS_URL must be set for the notifier")
	}
	redisStore, err := kvstore.NewRedisStore(redisURL, os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	ps := pubsub.NewPubSub(redisStore)
	ps.Subscribe(pubsub.EventSnapshotStored, utils.LogSnapshotStored)
	ps.Subscribe(pubsub.EventSnapshotStored, utils.AlertOnHiddenCount)

	log.Println("Notifier listening for snapshot_stored events...")
	select {}
}
