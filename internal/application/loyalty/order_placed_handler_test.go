package loyalty

import (
	"context"
	"testing"

	"github.com/coffeehouse/backend/internal/domain/cart"
	"github.com/coffeehouse/backend/internal/domain/loyalty"
	"github.com/coffeehouse/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func placedEvent(t *testing.T, userID uuid.UUID, price float64, qty int64) *order.OrderPlacedEvent {
	t.Helper()
	items := []cart.LineItem{
		{ProductID: "latte", Name: "Latte", Price: decimal.NewFromFloat(price), Quantity: qty},
	}
	totals := cart.ComputeTotals(items, cart.OrderTypePickup, cart.DefaultPricingPolicy())
	o, err := order.NewOrder(userID, "ORD-20260828-TEST42", order.ContactInfo{Name: "Ada", Email: "ada@example.com"}, items, totals, cart.OrderTypePickup, "", "card", "")
	require.NoError(t, err)
	return order.NewOrderPlacedEvent(o)
}

func TestOrderPlacedHandler_CreditsPoints(t *testing.T) {
	userID := uuid.New()
	account, err := loyalty.NewAccount(userID)
	require.NoError(t, err)

	accounts := new(MockAccountRepository)
	accounts.On("FindByUser", mock.Anything, userID).Return(account, nil)
	accounts.On("Save", mock.Anything, account).Return(nil)

	svc := newTestService(accounts, new(MockRewardRepository), new(MockRedemptionRepository))
	handler := NewOrderPlacedHandler(svc, zap.NewNop())

	// 2 x 5.25 = 10.50 subtotal, 1.05 tax, 11.55 total -> 11 points
	event := placedEvent(t, userID, 5.25, 2)
	require.NoError(t, handler.Handle(context.Background(), event))

	assert.Equal(t, int64(11), account.Points)
	assert.Equal(t, int64(11), account.LifetimePoints)
}

func TestOrderPlacedHandler_EventTypes(t *testing.T) {
	handler := NewOrderPlacedHandler(newTestService(new(MockAccountRepository), new(MockRewardRepository), new(MockRedemptionRepository)), zap.NewNop())
	assert.Equal(t, []string{order.EventTypeOrderPlaced}, handler.EventTypes())
}

func TestOrderPlacedHandler_RejectsWrongEvent(t *testing.T) {
	userID := uuid.New()
	c, err := cart.NewCart(userID)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(cart.LineItem{ProductID: "espresso", Name: "Espresso", Price: decimal.NewFromFloat(3.50), Quantity: 1}))
	events := c.GetDomainEvents()
	require.NotEmpty(t, events)

	handler := NewOrderPlacedHandler(newTestService(new(MockAccountRepository), new(MockRewardRepository), new(MockRedemptionRepository)), zap.NewNop())
	assert.Error(t, handler.Handle(context.Background(), events[0]))
}
