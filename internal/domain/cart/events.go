package cart

import (
	"github.com/coffeehouse/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeCart = "Cart"

// Event type constants
const (
	EventTypeCartItemAdded       = "CartItemAdded"
	EventTypeCartItemRemoved     = "CartItemRemoved"
	EventTypeCartQuantityChanged = "CartQuantityChanged"
	EventTypeCartCleared         = "CartCleared"
)

// CartItemAddedEvent is published when an item is added to (or merged into) a cart
type CartItemAddedEvent struct {
	shared.BaseDomainEvent
	UserID    uuid.UUID `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int64     `json:"quantity"`
}

// NewCartItemAddedEvent creates a new CartItemAddedEvent
func NewCartItemAddedEvent(c *Cart, productID string, quantity int64) *CartItemAddedEvent {
	return &CartItemAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartItemAdded, AggregateTypeCart, c.ID),
		UserID:          c.UserID,
		ProductID:       productID,
		Quantity:        quantity,
	}
}

// CartItemRemovedEvent is published when an item is removed from a cart
type CartItemRemovedEvent struct {
	shared.BaseDomainEvent
	UserID    uuid.UUID `json:"user_id"`
	ProductID string    `json:"product_id"`
}

// NewCartItemRemovedEvent creates a new CartItemRemovedEvent
func NewCartItemRemovedEvent(c *Cart, productID string) *CartItemRemovedEvent {
	return &CartItemRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartItemRemoved, AggregateTypeCart, c.ID),
		UserID:          c.UserID,
		ProductID:       productID,
	}
}

// CartQuantityChangedEvent is published when a line item quantity changes
type CartQuantityChangedEvent struct {
	shared.BaseDomainEvent
	UserID    uuid.UUID `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int64     `json:"quantity"`
}

// NewCartQuantityChangedEvent creates a new CartQuantityChangedEvent
func NewCartQuantityChangedEvent(c *Cart, productID string, quantity int64) *CartQuantityChangedEvent {
	return &CartQuantityChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartQuantityChanged, AggregateTypeCart, c.ID),
		UserID:          c.UserID,
		ProductID:       productID,
		Quantity:        quantity,
	}
}

// CartClearedEvent is published when a cart is emptied
type CartClearedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
}

// NewCartClearedEvent creates a new CartClearedEvent
func NewCartClearedEvent(c *Cart) *CartClearedEvent {
	return &CartClearedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartCleared, AggregateTypeCart, c.ID),
		UserID:          c.UserID,
	}
}
