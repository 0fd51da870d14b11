package order

import (
	"context"
	"testing"

	"github.com/coffeehouse/backend/internal/domain/cart"
	"github.com/coffeehouse/backend/internal/domain/order"
	"github.com/coffeehouse/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func placedOrder(t *testing.T, userID uuid.UUID) *order.Order {
	t.Helper()
	items := []cart.LineItem{
		{ProductID: "espresso", Name: "Espresso", Price: decimal.NewFromFloat(3.50), Quantity: 1},
	}
	totals := cart.ComputeTotals(items, cart.OrderTypePickup, cart.DefaultPricingPolicy())
	o, err := order.NewOrder(userID, "ORD-20260828-TEST42", order.ContactInfo{Name: "Ada", Email: "ada@example.com"}, items, totals, cart.OrderTypePickup, "", "card", "")
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func newOrderService(repo *MockOrderRepository) *OrderService {
	bus := new(MockEventPublisher)
	bus.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	return NewOrderService(repo, bus, zap.NewNop())
}

func TestOrderService_GetByID_OwnerAccess(t *testing.T) {
	userID := uuid.New()
	o := placedOrder(t, userID)

	repo := new(MockOrderRepository)
	repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	svc := newOrderService(repo)

	resp, err := svc.GetByID(context.Background(), userID, false, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.OrderNumber, resp.OrderNumber)

	// Another customer may not read it, an admin may
	_, err = svc.GetByID(context.Background(), uuid.New(), false, o.ID)
	assert.ErrorIs(t, err, shared.ErrForbidden)

	_, err = svc.GetByID(context.Background(), uuid.New(), true, o.ID)
	assert.NoError(t, err)
}

func TestOrderService_ListByUser(t *testing.T) {
	userID := uuid.New()
	o := placedOrder(t, userID)

	repo := new(MockOrderRepository)
	repo.On("FindByUser", mock.Anything, userID, mock.Anything).Return([]order.Order{*o}, nil)
	repo.On("CountByUser", mock.Anything, userID).Return(int64(1), nil)
	svc := newOrderService(repo)

	page, err := svc.ListByUser(context.Background(), userID, OrderListFilter{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Total)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	o := placedOrder(t, uuid.New())

	repo := new(MockOrderRepository)
	repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	repo.On("Save", mock.Anything, o).Return(nil)
	svc := newOrderService(repo)

	resp, err := svc.UpdateStatus(context.Background(), o.ID, UpdateStatusRequest{Status: "PREPARING"})
	require.NoError(t, err)
	assert.Equal(t, "PREPARING", resp.Status)
}

func TestOrderService_UpdateStatus_InvalidTransition(t *testing.T) {
	o := placedOrder(t, uuid.New())

	repo := new(MockOrderRepository)
	repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	svc := newOrderService(repo)

	_, err := svc.UpdateStatus(context.Background(), o.ID, UpdateStatusRequest{Status: "COMPLETED"})
	assert.Error(t, err, "pending orders cannot complete without being prepared")
}

func TestOrderService_CancelOwn(t *testing.T) {
	userID := uuid.New()
	o := placedOrder(t, userID)

	repo := new(MockOrderRepository)
	repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	repo.On("Save", mock.Anything, o).Return(nil)
	svc := newOrderService(repo)

	resp, err := svc.CancelOwn(context.Background(), userID, o.ID, "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.Status)
	assert.Equal(t, "changed my mind", resp.CancelReason)
}

func TestOrderService_CancelOwn_Forbidden(t *testing.T) {
	o := placedOrder(t, uuid.New())

	repo := new(MockOrderRepository)
	repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	svc := newOrderService(repo)

	_, err := svc.CancelOwn(context.Background(), uuid.New(), o.ID, "not mine")
	assert.ErrorIs(t, err, shared.ErrForbidden)
}
