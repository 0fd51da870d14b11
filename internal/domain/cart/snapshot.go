package cart

import (
	"context"
	"time"

	"github.com/coffeehouse/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ErrCorruptSnapshot is returned by a SnapshotStore when a persisted
// snapshot cannot be decoded. Callers are expected to treat it as an
// empty cart, not a failure.
var ErrCorruptSnapshot = shared.NewDomainError("CORRUPT_SNAPSHOT", "Persisted cart snapshot cannot be decoded")

// Snapshot is the serialized form of a cart persisted under a per-user key
type Snapshot struct {
	UserID  uuid.UUID  `json:"user_id"`
	Items   []LineItem `json:"items"`
	SavedAt time.Time  `json:"saved_at"`
}

// NewSnapshot captures the current cart state for persistence
func NewSnapshot(c *Cart) *Snapshot {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return &Snapshot{
		UserID:  c.UserID,
		Items:   items,
		SavedAt: time.Now(),
	}
}

// Restore rebuilds a cart from a persisted snapshot
func (s *Snapshot) Restore() (*Cart, error) {
	c, err := NewCart(s.UserID)
	if err != nil {
		return nil, err
	}
	c.Items = make([]LineItem, len(s.Items))
	copy(c.Items, s.Items)
	return c, nil
}

// SnapshotStore persists one cart snapshot per user identity. The store
// derives the storage key from the user ID itself so callers can never
// address another user's snapshot.
type SnapshotStore interface {
	// Load returns the snapshot for the user, or (nil, nil) when none exists.
	// A snapshot that exists but cannot be decoded yields ErrCorruptSnapshot.
	Load(ctx context.Context, userID uuid.UUID) (*Snapshot, error)
	// Save writes the snapshot under the user's key, replacing any prior one
	Save(ctx context.Context, snapshot *Snapshot) error
	// Remove deletes the user's snapshot entirely
	Remove(ctx context.Context, userID uuid.UUID) error
}
