package kvstore

import (
	"encoding/json"
	"time"

	"github.com/allegro/bigcache"

	"follower-tracker/models"
)

// BigCacheStore is an in-memory SnapshotStore used by tests.
type BigCacheStore struct {
	cache *bigcache.BigCache
}

// NewBigCacheStore initializes a new BigCacheStore.
func NewBigCacheStore() (*BigCacheStore, error) {
	config := bigcache.Config{
		Shards:           16,
		LifeWindow:       10 * time.Minute,
		CleanWindow:      5 * time.Minute,
		MaxEntrySize:     500,
		HardMaxCacheSize: 64,
		Verbose:          false,
	}
	bc, err := bigcache.NewBigCache(config)
	if err != nil {
		return nil, err
	}
	return &BigCacheStore{cache: bc}, nil
}

// Set stores the snapshot, overwriting any previous value under key.
func (b *BigCacheStore) Set(key string, snap models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return b.cache.Set(key, data)
}

// Get retrieves the stored snapshot.
func (b *BigCacheStore) Get(key string) (models.Snapshot, error) {
	var snap models.Snapshot
	data, err := b.cache.Get(key)
	if err == bigcache.ErrEntryNotFound {
		return snap, ErrNotFound
	}
	if err != nil {
		return snap, err
	}
	err = json.Unmarshal(data, &snap)
	return snap, err
}

// Close stops the underlying cache.
func (b *BigCacheStore) Close() error {
	return b.cache.Close()
}
