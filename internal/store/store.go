// Package store is the persistence gateway: the whole session state is
// serialized as one JSON blob under a single key. Mirroring the forgiving
// nature of client-side persistence, every operation fails soft — the
// session keeps running on in-memory state when the backing store is
// unavailable or the stored blob is unreadable.
package store

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/globalmarket/backend/internal/models"
)

// DefaultKey is the record the session state is persisted under.
const DefaultKey = "globalMarketplaceData"

// Store reads and writes the persisted session blob.
type Store struct {
	redis *redis.Client
	key   string
}

// New wraps a redis client. A nil client is allowed and turns every
// operation into a no-op, so a failed connection at startup degrades to an
// in-memory-only session.
func New(client *redis.Client, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{redis: client, key: key}
}

// Load returns the persisted state. Absent, unreadable or unparseable data
// yields zero-value defaults; Load never reports an error to the caller.
func (s *Store) Load(ctx context.Context) models.PersistedState {
	if s.redis == nil {
		return models.PersistedState{}
	}

	data, err := s.redis.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return models.PersistedState{}
	}
	if err != nil {
		zap.S().Warnf("[STORE] load failed, starting with defaults: %v", err)
		return models.PersistedState{}
	}

	var state models.PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		zap.S().Warnf("[STORE] persisted state unparseable, starting with defaults: %v", err)
		return models.PersistedState{}
	}
	return state
}

// Save writes the state blob. Serialization or storage errors are logged and
// swallowed: in-memory state stays the source of truth until the next
// successful save.
func (s *Store) Save(ctx context.Context, state models.PersistedState) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(state)
	if err != nil {
		zap.S().Errorf("[STORE] state serialization failed: %v", err)
		return
	}
	if err := s.redis.Set(ctx, s.key, data, 0).Err(); err != nil {
		zap.S().Errorf("[STORE] state save failed, keeping in-memory state: %v", err)
	}
}

// Clear removes the persisted record unconditionally.
func (s *Store) Clear(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, s.key).Err(); err != nil && err != redis.Nil {
		zap.S().Errorf("[STORE] state clear failed: %v", err)
	}
}
