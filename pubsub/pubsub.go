package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"follower-tracker/kvstore"
)

// EventSnapshotStored fires after a snapshot was durably written to the KV
// store.
const EventSnapshotStored = "snapshot_stored"

// eventsChannel is the single Redis channel all events flow through.
const eventsChannel = "follower-events"

type HandlerFunc func(data map[string]interface{})

type PubSub struct {
	redisStore *kvstore.RedisStore
}

func NewPubSub(redisStore *kvstore.RedisStore) *PubSub {
	return &PubSub{redisStore: redisStore}
}

// Subscribe to an event
func (ps *PubSub) Subscribe(event string, handler HandlerFunc) {
	go func() {
		sub := ps.redisStore.Client.Subscribe(ps.redisStore.Ctx, eventsChannel)
		ch := sub.Channel()

		for msg := range ch {
			var payload map[string]interface{}
			if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
				fmt.Println("Decode error:", err)
				continue
			}

			if evt, ok := payload["event"].(string); ok && evt == event {
				if data, ok := payload["data"].(map[string]interface{}); ok {
					handler(data)
				}
			}
		}
	}()
}

// Publish an event
func (ps *PubSub) Publish(event string, data map[string]interface{}) error {
	payload := map[string]interface{}{
		"event": event,
		"data":  data,
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return ps.redisStore.Client.Publish(context.Background(), eventsChannel, bytes).Err()
}
