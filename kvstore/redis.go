package kvstore

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"follower-tracker/models"
)

// RedisStore implements SnapshotStore against a Redis instance directly
// (Vercel KV is Redis-compatible). It also exposes the raw client for the
// rate limiter and pubsub, which need more than get/set.
type RedisStore struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisStore initializes a new RedisStore instance and verifies
// connectivity.
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password, // leave empty if no password
		DB:       db,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{
		Client: rdb,
		Ctx:    ctx,
	}, nil
}

// Set stores the snapshot with no expiration; each write overwrites the
// previous one.
func (r *RedisStore) Set(key string, snap models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return r.Client.Set(r.Ctx, key, data, 0).Err()
}

// Get retrieves the stored snapshot.
func (r *RedisStore) Get(key string) (models.Snapshot, error) {
	var snap models.Snapshot
	data, err := r.Client.Get(r.Ctx, key).Result()
	if err == redis.Nil {
		return snap, ErrNotFound
	}
	if err != nil {
		return snap, err
	}
	err = json.Unmarshal([]byte(data), &snap)
	return snap, err
}

// Close closes the Redis client.
func (r *RedisStore) Close() error {
	return r.Client.Close()
}
