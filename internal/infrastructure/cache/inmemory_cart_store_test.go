package cache

import (
	"context"
	"testing"

	"github.com/coffeehouse/backend/internal/domain/cart"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotWithItem(t *testing.T, userID uuid.UUID, productID string, quantity int64) *cart.Snapshot {
	t.Helper()
	c, err := cart.NewCart(userID)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(cart.LineItem{
		ProductID: productID,
		Name:      "Flat White",
		Price:     decimal.RequireFromString("4.50"),
		Quantity:  quantity,
	}))
	return cart.NewSnapshot(c)
}

func TestInMemoryCartStore_LoadMissingReturnsNil(t *testing.T) {
	store := NewInMemoryCartStore()

	snapshot, err := store.Load(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestInMemoryCartStore_SaveThenLoad(t *testing.T) {
	store := NewInMemoryCartStore()
	userID := uuid.New()

	require.NoError(t, store.Save(context.Background(), snapshotWithItem(t, userID, "flat-white", 2)))

	loaded, err := store.Load(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, int64(2), loaded.Items[0].Quantity)
}

func TestInMemoryCartStore_SaveReplacesPriorSnapshot(t *testing.T) {
	store := NewInMemoryCartStore()
	userID := uuid.New()

	require.NoError(t, store.Save(context.Background(), snapshotWithItem(t, userID, "flat-white", 2)))
	require.NoError(t, store.Save(context.Background(), snapshotWithItem(t, userID, "espresso", 1)))

	loaded, err := store.Load(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "espresso", loaded.Items[0].ProductID)
}

func TestInMemoryCartStore_UserIsolation(t *testing.T) {
	store := NewInMemoryCartStore()
	userA := uuid.New()
	userB := uuid.New()

	require.NoError(t, store.Save(context.Background(), snapshotWithItem(t, userA, "flat-white", 2)))
	require.NoError(t, store.Save(context.Background(), snapshotWithItem(t, userB, "espresso", 5)))

	require.NoError(t, store.Remove(context.Background(), userB))

	gone, err := store.Load(context.Background(), userB)
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := store.Load(context.Background(), userA)
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, "flat-white", kept.Items[0].ProductID)
}

func TestInMemoryCartStore_RemoveMissingIsNoop(t *testing.T) {
	store := NewInMemoryCartStore()
	assert.NoError(t, store.Remove(context.Background(), uuid.New()))
}

func TestInMemoryCartStore_CorruptPayload(t *testing.T) {
	store := NewInMemoryCartStore()
	userID := uuid.New()
	store.put(userID, []byte("{not json"))

	_, err := store.Load(context.Background(), userID)
	assert.ErrorIs(t, err, cart.ErrCorruptSnapshot)
}
