package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/coffeehouse/backend/internal/domain/cart"
	"github.com/google/uuid"
)

// InMemoryCartStore implements cart.SnapshotStore with a process-local
// map. Suitable for development and single-instance deployments where
// Redis is not available. Snapshots are kept in encoded form so the
// load path behaves exactly like the Redis store.
type InMemoryCartStore struct {
	mu        sync.RWMutex
	snapshots map[uuid.UUID][]byte
}

// NewInMemoryCartStore creates a new in-memory snapshot store
func NewInMemoryCartStore() *InMemoryCartStore {
	return &InMemoryCartStore{
		snapshots: make(map[uuid.UUID][]byte),
	}
}

// Load returns the user's snapshot, or (nil, nil) when none is stored
func (s *InMemoryCartStore) Load(ctx context.Context, userID uuid.UUID) (*cart.Snapshot, error) {
	s.mu.RLock()
	payload, ok := s.snapshots[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var snapshot cart.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, cart.ErrCorruptSnapshot
	}
	return &snapshot, nil
}

// Save writes the snapshot under the user's key, replacing any prior one
func (s *InMemoryCartStore) Save(ctx context.Context, snapshot *cart.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}

	s.mu.Lock()
	s.snapshots[snapshot.UserID] = payload
	s.mu.Unlock()
	return nil
}

// Remove deletes the user's snapshot
func (s *InMemoryCartStore) Remove(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	delete(s.snapshots, userID)
	s.mu.Unlock()
	return nil
}

// put stores raw bytes under a user's key, bypassing encoding
func (s *InMemoryCartStore) put(userID uuid.UUID, payload []byte) {
	s.mu.Lock()
	s.snapshots[userID] = payload
	s.mu.Unlock()
}

var _ cart.SnapshotStore = (*InMemoryCartStore)(nil)
