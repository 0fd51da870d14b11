package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals_Pickup(t *testing.T) {
	items := []LineItem{
		{ProductID: "espresso", Name: "Espresso", Price: decimal.NewFromFloat(3.50), Quantity: 1},
	}

	totals := ComputeTotals(items, OrderTypePickup, DefaultPricingPolicy())

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromFloat(3.50)), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(decimal.NewFromFloat(0.35)), "tax = %s", totals.Tax)
	assert.True(t, totals.DeliveryFee.IsZero(), "delivery fee = %s", totals.DeliveryFee)
	assert.True(t, totals.Total.Equal(decimal.NewFromFloat(3.85)), "total = %s", totals.Total)
}

func TestComputeTotals_Delivery(t *testing.T) {
	items := []LineItem{
		{ProductID: "latte", Name: "Latte", Price: decimal.NewFromFloat(5.25), Quantity: 2},
	}

	totals := ComputeTotals(items, OrderTypeDelivery, DefaultPricingPolicy())

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromFloat(10.50)), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(decimal.NewFromFloat(1.05)), "tax = %s", totals.Tax)
	assert.True(t, totals.DeliveryFee.Equal(decimal.NewFromFloat(5.99)), "delivery fee = %s", totals.DeliveryFee)
	assert.True(t, totals.Total.Equal(decimal.NewFromFloat(17.54)), "total = %s", totals.Total)
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, OrderTypePickup, DefaultPricingPolicy())

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotals_FreeDeliveryThreshold(t *testing.T) {
	policy := DefaultPricingPolicy()
	policy.FreeDeliveryOver = decimal.NewFromInt(25)

	below := []LineItem{{ProductID: "latte", Name: "Latte", Price: decimal.NewFromFloat(5.25), Quantity: 2}}
	atThreshold := []LineItem{{ProductID: "beans", Name: "Whole Beans", Price: decimal.NewFromFloat(12.50), Quantity: 2}}

	assert.True(t, ComputeTotals(below, OrderTypeDelivery, policy).DeliveryFee.Equal(decimal.NewFromFloat(5.99)))
	assert.True(t, ComputeTotals(atThreshold, OrderTypeDelivery, policy).DeliveryFee.IsZero())
}

func TestComputeTotals_MultipleItems(t *testing.T) {
	items := []LineItem{
		{ProductID: "espresso", Name: "Espresso", Price: decimal.NewFromFloat(3.50), Quantity: 2},
		{ProductID: "croissant", Name: "Croissant", Price: decimal.NewFromFloat(4.25), Quantity: 1},
	}

	totals := ComputeTotals(items, OrderTypePickup, DefaultPricingPolicy())

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromFloat(11.25)))
	assert.True(t, totals.Tax.Equal(decimal.NewFromFloat(1.13)), "tax rounds to cents, got %s", totals.Tax)
	assert.True(t, totals.Total.Equal(decimal.NewFromFloat(12.38)))
}

func TestTotals_PureAndIdempotent(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)
	require.NoError(t, c.AddItem(LineItem{ProductID: "latte", Name: "Latte", Price: decimal.NewFromFloat(5.25), Quantity: 2}))

	before := make([]LineItem, len(c.Items))
	copy(before, c.Items)

	first := c.Totals(OrderTypeDelivery, DefaultPricingPolicy())
	second := c.Totals(OrderTypeDelivery, DefaultPricingPolicy())

	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.Equal(t, before, c.Items, "computing totals must not mutate the cart")
}
