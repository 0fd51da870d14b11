package cart

import (
	"time"

	"github.com/coffeehouse/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem represents one product and quantity in a cart.
// The product descriptor is copied from the catalog at add time and is
// trusted as-is; the cart never validates it against the catalog.
type LineItem struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	Category    string          `json:"category,omitempty"`
	Quantity    int64           `json:"quantity"`
}

// Amount returns price multiplied by quantity
func (i LineItem) Amount() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

// Cart is the ordered collection of line items belonging to one user's
// in-progress order. Exactly one cart exists per user identity; line item
// product IDs are unique within the cart and insertion order is preserved
// for display.
type Cart struct {
	shared.BaseAggregateRoot
	UserID uuid.UUID
	Items  []LineItem
}

// NewCart creates an empty cart for the given user
func NewCart(userID uuid.UUID) (*Cart, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Items:             make([]LineItem, 0),
	}, nil
}

// AddItem adds a line item to the cart. If an item with the same product ID
// already exists the quantities are summed onto the existing entry, never
// creating a duplicate. A non-positive quantity is clamped to 1.
func (c *Cart) AddItem(item LineItem) error {
	if item.ProductID == "" {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if item.Name == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if item.Price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	for idx := range c.Items {
		if c.Items[idx].ProductID == item.ProductID {
			c.Items[idx].Quantity += item.Quantity
			c.UpdatedAt = time.Now()
			c.AddDomainEvent(NewCartItemAddedEvent(c, item.ProductID, c.Items[idx].Quantity))
			return nil
		}
	}

	c.Items = append(c.Items, item)
	c.UpdatedAt = time.Now()
	c.AddDomainEvent(NewCartItemAddedEvent(c, item.ProductID, item.Quantity))
	return nil
}

// RemoveItem removes the line item with the given product ID.
// Removing an absent product is a no-op, not an error.
func (c *Cart) RemoveItem(productID string) {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			c.UpdatedAt = time.Now()
			c.AddDomainEvent(NewCartItemRemovedEvent(c, productID))
			return
		}
	}
}

// SetItemQuantity sets the quantity of an existing line item. The quantity is
// clamped at 0 and an item reduced to 0 is pruned from the cart, matching the
// remove semantics. Setting the quantity of an absent product is a no-op.
func (c *Cart) SetItemQuantity(productID string, quantity int64) {
	if quantity < 0 {
		quantity = 0
	}
	if quantity == 0 {
		c.RemoveItem(productID)
		return
	}
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items[idx].Quantity = quantity
			c.UpdatedAt = time.Now()
			c.AddDomainEvent(NewCartQuantityChangedEvent(c, productID, quantity))
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = make([]LineItem, 0)
	c.UpdatedAt = time.Now()
	c.AddDomainEvent(NewCartClearedEvent(c))
}

// Item returns the line item with the given product ID, or nil if absent
func (c *Cart) Item(productID string) *LineItem {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			return &c.Items[idx]
		}
	}
	return nil
}

// IsEmpty returns true if the cart has no line items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Len returns the number of distinct line items
func (c *Cart) Len() int {
	return len(c.Items)
}

// Totals derives the order totals for the cart under the given order type and
// pricing policy. It is pure and never mutates the cart.
func (c *Cart) Totals(orderType OrderType, policy PricingPolicy) Totals {
	return ComputeTotals(c.Items, orderType, policy)
}
