package cart

import (
	"time"

	"github.com/coffeehouse/backend/internal/domain/cart"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemRequest represents a request to add a product to the cart
type AddItemRequest struct {
	ProductID   string          `json:"product_id" binding:"required,min=1,max=100"`
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	Price       decimal.Decimal `json:"price" binding:"required,gt=0"`
	Image       string          `json:"image" binding:"max=500"`
	Category    string          `json:"category" binding:"max=100"`
	Quantity    int64           `json:"quantity"`
}

// SetQuantityRequest represents a request to change a line item quantity
type SetQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// LineItemResponse represents one cart line item in API responses
type LineItemResponse struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	Category    string          `json:"category,omitempty"`
	Quantity    int64           `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// CartResponse represents the cart in API responses
type CartResponse struct {
	UserID    uuid.UUID          `json:"user_id"`
	Items     []LineItemResponse `json:"items"`
	ItemCount int64              `json:"item_count"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// TotalsResponse represents derived order totals in API responses
type TotalsResponse struct {
	OrderType   string          `json:"order_type"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

// ToCartResponse converts a domain Cart to CartResponse
func ToCartResponse(c *cart.Cart) CartResponse {
	items := make([]LineItemResponse, 0, len(c.Items))
	var count int64
	for _, item := range c.Items {
		items = append(items, LineItemResponse{
			ProductID:   item.ProductID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Image:       item.Image,
			Category:    item.Category,
			Quantity:    item.Quantity,
			Amount:      item.Amount(),
		})
		count += item.Quantity
	}
	return CartResponse{
		UserID:    c.UserID,
		Items:     items,
		ItemCount: count,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToTotalsResponse converts domain Totals to TotalsResponse
func ToTotalsResponse(orderType cart.OrderType, t cart.Totals) TotalsResponse {
	return TotalsResponse{
		OrderType:   orderType.String(),
		Subtotal:    t.Subtotal,
		Tax:         t.Tax,
		DeliveryFee: t.DeliveryFee,
		Total:       t.Total,
	}
}
