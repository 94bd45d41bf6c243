package kvstore

import (
	"errors"

	"follower-tracker/models"
)

// SnapshotStore holds exactly one Snapshot under a fixed key; every Set
// overwrites the previous value.
type SnapshotStore interface {
	Set(key string, snap models.Snapshot) error
	Get(key string) (models.Snapshot, error)
	Close() error
}

// ErrNotFound is returned by Get when nothing has been stored yet.
var ErrNotFound = errors.New("kvstore: key not found")

// ErrNotConfigured is returned before any network I/O when the store
// endpoint or credential is missing.
var ErrNotConfigured = errors.New("kvstore: KV URL or token not configured")
