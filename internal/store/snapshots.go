// Package store persists table snapshots in Redis so a restarted server can
// restore in-flight games.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"doppelkopf/internal/engine"
)

// ErrNotFound is returned when no snapshot exists for the table.
var ErrNotFound = errors.New("store: snapshot not found")

type SnapshotStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSnapshotStore wraps the Redis client. A nil client yields a store whose
// operations are no-ops, so tables can run without persistence.
func NewSnapshotStore(rdb *redis.Client, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{rdb: rdb, ttl: ttl}
}

func snapshotKey(tableID string) string {
	return "table:" + tableID + ":state"
}

func (s *SnapshotStore) Save(ctx context.Context, tableID string, state engine.GameState) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, snapshotKey(tableID), data, s.ttl).Err()
}

func (s *SnapshotStore) Load(ctx context.Context, tableID string) (engine.GameState, error) {
	var state engine.GameState
	if s == nil || s.rdb == nil {
		return state, ErrNotFound
	}
	data, err := s.rdb.Get(ctx, snapshotKey(tableID)).Bytes()
	if err == redis.Nil {
		return state, ErrNotFound
	}
	if err != nil {
		return state, err
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return state, err
	}
	return state, nil
}

func (s *SnapshotStore) Delete(ctx context.Context, tableID string) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, snapshotKey(tableID)).Err()
}
