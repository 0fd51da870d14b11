package loyalty

import (
	"context"
	"fmt"

	"github.com/coffeehouse/backend/internal/domain/order"
	"github.com/coffeehouse/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// OrderPlacedHandler credits loyalty points when an order is placed.
// One point is earned per whole currency unit of the order total.
type OrderPlacedHandler struct {
	service *LoyaltyService
	logger  *zap.Logger
}

// NewOrderPlacedHandler creates a new handler for order placed events
func NewOrderPlacedHandler(service *LoyaltyService, logger *zap.Logger) *OrderPlacedHandler {
	return &OrderPlacedHandler{service: service, logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *OrderPlacedHandler) EventTypes() []string {
	return []string{order.EventTypeOrderPlaced}
}

// Handle credits floor(order total) points to the buyer's account
func (h *OrderPlacedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	placedEvent, ok := event.(*order.OrderPlacedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			order.EventTypeOrderPlaced, event.EventType())
	}

	points := placedEvent.Total.IntPart()
	if points <= 0 {
		return nil
	}

	account, err := h.service.loadOrCreateAccount(ctx, placedEvent.UserID)
	if err != nil {
		return fmt.Errorf("load loyalty account: %w", err)
	}
	if err := account.Earn(points); err != nil {
		return err
	}
	if err := h.service.accountRepo.Save(ctx, account); err != nil {
		return fmt.Errorf("save loyalty account: %w", err)
	}
	account.ClearDomainEvents()

	h.logger.Info("loyalty points credited",
		zap.String("user_id", placedEvent.UserID.String()),
		zap.String("order_number", placedEvent.OrderNumber),
		zap.Int64("points", points),
		zap.Int64("balance", account.Points),
	)

	return nil
}

// Ensure OrderPlacedHandler implements shared.EventHandler
var _ shared.EventHandler = (*OrderPlacedHandler)(nil)
