package cart

import (
	"context"

	"github.com/coffeehouse/backend/internal/domain/cart"
	"github.com/coffeehouse/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartService handles cart operations for the authenticated user. Every
// mutation is persisted to the snapshot store before the call returns, so
// the store always reflects the last acknowledged state.
type CartService struct {
	store    cart.SnapshotStore
	eventBus shared.EventPublisher
	policy   cart.PricingPolicy
	logger   *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(store cart.SnapshotStore, eventBus shared.EventPublisher, policy cart.PricingPolicy, logger *zap.Logger) *CartService {
	return &CartService{
		store:    store,
		eventBus: eventBus,
		policy:   policy,
		logger:   logger,
	}
}

// Get returns the user's cart, or an empty cart when none is persisted
func (s *CartService) Get(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	c, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := ToCartResponse(c)
	return &response, nil
}

// AddItem adds a product to the user's cart, merging quantities when the
// product is already present
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartResponse, error) {
	c, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := c.AddItem(cart.LineItem{
		ProductID:   req.ProductID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Quantity:    req.Quantity,
	}); err != nil {
		return nil, err
	}

	s.persist(ctx, c)
	s.publishEvents(ctx, c)

	response := ToCartResponse(c)
	return &response, nil
}

// RemoveItem removes a product from the user's cart. Removing a product
// that is not in the cart succeeds without changing anything.
func (s *CartService) RemoveItem(ctx context.Context, userID uuid.UUID, productID string) (*CartResponse, error) {
	c, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.RemoveItem(productID)

	s.persist(ctx, c)
	s.publishEvents(ctx, c)

	response := ToCartResponse(c)
	return &response, nil
}

// SetQuantity sets the quantity of a line item. A quantity of zero or less
// removes the item from the cart.
func (s *CartService) SetQuantity(ctx context.Context, userID uuid.UUID, productID string, quantity int64) (*CartResponse, error) {
	c, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.SetItemQuantity(productID, quantity)

	s.persist(ctx, c)
	s.publishEvents(ctx, c)

	response := ToCartResponse(c)
	return &response, nil
}

// Clear empties the user's cart and deletes the persisted snapshot
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	c, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.Clear()

	if err := s.store.Remove(ctx, userID); err != nil {
		s.logger.Warn("failed to remove cart snapshot",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
	s.publishEvents(ctx, c)

	response := ToCartResponse(c)
	return &response, nil
}

// Totals derives the order totals for the user's current cart under the
// configured pricing policy. The cart itself is never modified.
func (s *CartService) Totals(ctx context.Context, userID uuid.UUID, orderType cart.OrderType) (*TotalsResponse, error) {
	if !orderType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ORDER_TYPE", "Order type must be pickup or delivery")
	}

	c, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToTotalsResponse(orderType, c.Totals(orderType, s.policy))
	return &response, nil
}

// PricingPolicy exposes the configured pricing policy for checkout
func (s *CartService) PricingPolicy() cart.PricingPolicy {
	return s.policy
}

// loadCart resolves the user's cart from the snapshot store. A missing
// snapshot yields a fresh empty cart. Any read failure, a corrupt blob
// or an unreachable store alike, is logged and degrades to an empty
// cart, never surfaced to the caller. The persisted snapshot itself is
// not touched on the read path.
func (s *CartService) loadCart(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	snapshot, err := s.store.Load(ctx, userID)
	if err != nil {
		s.logger.Warn("cart snapshot unreadable, starting empty",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return cart.NewCart(userID)
	}
	if snapshot == nil {
		return cart.NewCart(userID)
	}
	return snapshot.Restore()
}

// persist writes the cart snapshot. A write failure is logged and the
// in-memory state is kept; the caller still sees the mutated cart.
func (s *CartService) persist(ctx context.Context, c *cart.Cart) {
	if err := s.store.Save(ctx, cart.NewSnapshot(c)); err != nil {
		s.logger.Warn("failed to persist cart snapshot",
			zap.String("user_id", c.UserID.String()),
			zap.Int("items", c.Len()),
			zap.Error(err),
		)
	}
}

func (s *CartService) publishEvents(ctx context.Context, c *cart.Cart) {
	events := c.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Warn("failed to publish cart events",
			zap.String("user_id", c.UserID.String()),
			zap.Error(err),
		)
	}
	c.ClearDomainEvents()
}
