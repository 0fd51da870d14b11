package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func espresso() LineItem {
	return LineItem{
		ProductID: "espresso",
		Name:      "Espresso",
		Price:     decimal.NewFromFloat(3.50),
		Category:  "hot",
		Quantity:  1,
	}
}

func latte() LineItem {
	return LineItem{
		ProductID: "latte",
		Name:      "Latte",
		Price:     decimal.NewFromFloat(5.25),
		Category:  "hot",
		Quantity:  2,
	}
}

func TestNewCart(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())
}

func TestNewCart_EmptyUserID(t *testing.T) {
	_, err := NewCart(uuid.Nil)
	assert.Error(t, err)
}

func TestAddItem_DistinctIDs(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)

	require.NoError(t, c.AddItem(espresso()))
	require.NoError(t, c.AddItem(latte()))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, int64(1), c.Item("espresso").Quantity)
	assert.Equal(t, int64(2), c.Item("latte").Quantity)
}

func TestAddItem_SameIDMergesQuantity(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)

	item := espresso()
	item.Quantity = 2
	require.NoError(t, c.AddItem(item))

	item.Quantity = 3
	require.NoError(t, c.AddItem(item))

	// q1 + q2 on a single entry, never two entries
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(5), c.Item("espresso").Quantity)
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)

	require.NoError(t, c.AddItem(latte()))
	require.NoError(t, c.AddItem(espresso()))
	require.NoError(t, c.AddItem(latte()))

	require.Equal(t, 2, c.Len())
	assert.Equal(t, "latte", c.Items[0].ProductID)
	assert.Equal(t, "espresso", c.Items[1].ProductID)
}

func TestAddItem_ClampsNonPositiveQuantity(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)

	item := espresso()
	item.Quantity = 0
	require.NoError(t, c.AddItem(item))
	assert.Equal(t, int64(1), c.Item("espresso").Quantity)

	item.Quantity = -3
	require.NoError(t, c.AddItem(item))
	assert.Equal(t, int64(2), c.Item("espresso").Quantity)
}

func TestAddItem_Validation(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name string
		item LineItem
	}{
		{"empty product id", LineItem{Name: "x", Price: decimal.NewFromInt(1), Quantity: 1}},
		{"empty name", LineItem{ProductID: "x", Price: decimal.NewFromInt(1), Quantity: 1}},
		{"negative price", LineItem{ProductID: "x", Name: "x", Price: decimal.NewFromInt(-1), Quantity: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, c.AddItem(tt.item))
		})
	}
	assert.True(t, c.IsEmpty())
}

func TestRemoveItem(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)

	require.NoError(t, c.AddItem(espresso()))
	c.RemoveItem("espresso")
	assert.True(t, c.IsEmpty())
}

func TestRemoveItem_AbsentIsNoOp(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)

	assert.NotPanics(t, func() { c.RemoveItem("mocha") })

	require.NoError(t, c.AddItem(espresso()))
	c.RemoveItem("mocha")
	assert.Equal(t, 1, c.Len())
}

func TestSetItemQuantity(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)

	require.NoError(t, c.AddItem(espresso()))
	c.SetItemQuantity("espresso", 4)
	assert.Equal(t, int64(4), c.Item("espresso").Quantity)
}

func TestSetItemQuantity_ZeroPrunesItem(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)

	require.NoError(t, c.AddItem(espresso()))
	c.SetItemQuantity("espresso", 0)
	assert.Nil(t, c.Item("espresso"))
	assert.True(t, c.IsEmpty())
}

func TestSetItemQuantity_NegativeClampsToZero(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)

	require.NoError(t, c.AddItem(espresso()))
	c.SetItemQuantity("espresso", -5)
	assert.True(t, c.IsEmpty())
}

func TestSetItemQuantity_AbsentIsNoOp(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)

	require.NoError(t, c.AddItem(espresso()))
	c.SetItemQuantity("mocha", 3)
	assert.Equal(t, 1, c.Len())
	assert.Nil(t, c.Item("mocha"))
}

func TestClear(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)

	require.NoError(t, c.AddItem(espresso()))
	require.NoError(t, c.AddItem(latte()))
	c.Clear()
	assert.True(t, c.IsEmpty())
}

func TestCartEvents(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)

	require.NoError(t, c.AddItem(espresso()))
	c.SetItemQuantity("espresso", 2)
	c.RemoveItem("espresso")
	c.Clear()

	events := c.GetDomainEvents()
	require.Len(t, events, 4)
	assert.Equal(t, EventTypeCartItemAdded, events[0].EventType())
	assert.Equal(t, EventTypeCartQuantityChanged, events[1].EventType())
	assert.Equal(t, EventTypeCartItemRemoved, events[2].EventType())
	assert.Equal(t, EventTypeCartCleared, events[3].EventType())

	c.ClearDomainEvents()
	assert.Empty(t, c.GetDomainEvents())
}

func TestSnapshotRoundTrip(t *testing.T) {
	userID := uuid.New()
	c, err := NewCart(userID)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(espresso()))
	require.NoError(t, c.AddItem(latte()))

	restored, err := NewSnapshot(c).Restore()
	require.NoError(t, err)

	assert.Equal(t, userID, restored.UserID)
	require.Equal(t, c.Len(), restored.Len())
	for i, item := range c.Items {
		assert.Equal(t, item.ProductID, restored.Items[i].ProductID)
		assert.Equal(t, item.Quantity, restored.Items[i].Quantity)
		assert.True(t, item.Price.Equal(restored.Items[i].Price))
	}
}

func TestSnapshot_IsolatedFromLaterMutations(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)
	require.NoError(t, c.AddItem(espresso()))

	snap := NewSnapshot(c)
	c.SetItemQuantity("espresso", 10)

	require.Len(t, snap.Items, 1)
	assert.Equal(t, int64(1), snap.Items[0].Quantity)
}
