package order

import (
	"time"

	"github.com/coffeehouse/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutRequest represents a request to place an order from the
// current cart
type CheckoutRequest struct {
	OrderType           string `json:"order_type" binding:"required,oneof=pickup delivery"`
	ContactName         string `json:"contact_name" binding:"required,min=1,max=200"`
	ContactPhone        string `json:"contact_phone" binding:"max=50"`
	ContactEmail        string `json:"contact_email" binding:"required,email"`
	DeliveryAddress     string `json:"delivery_address" binding:"max=500"`
	PaymentMethod       string `json:"payment_method" binding:"omitempty,oneof=card cash"`
	SpecialInstructions string `json:"special_instructions" binding:"max=1000"`
}

// UpdateStatusRequest represents an admin request to move an order along
// its status machine
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PREPARING READY COMPLETED CANCELLED"`
	Reason string `json:"reason" binding:"max=500"`
}

// OrderItemResponse represents one order line item in API responses
type OrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID                  uuid.UUID           `json:"id"`
	OrderNumber         string              `json:"order_number"`
	UserID              uuid.UUID           `json:"user_id"`
	ContactName         string              `json:"contact_name"`
	ContactEmail        string              `json:"contact_email"`
	Items               []OrderItemResponse `json:"items"`
	Subtotal            decimal.Decimal     `json:"subtotal"`
	Tax                 decimal.Decimal     `json:"tax"`
	DeliveryFee         decimal.Decimal     `json:"delivery_fee"`
	Total               decimal.Decimal     `json:"total"`
	OrderType           string              `json:"order_type"`
	DeliveryAddress     string              `json:"delivery_address,omitempty"`
	PaymentMethod       string              `json:"payment_method"`
	SpecialInstructions string              `json:"special_instructions,omitempty"`
	Status              string              `json:"status"`
	CreatedAt           time.Time           `json:"created_at"`
	CompletedAt         *time.Time          `json:"completed_at,omitempty"`
	CancelledAt         *time.Time          `json:"cancelled_at,omitempty"`
	CancelReason        string              `json:"cancel_reason,omitempty"`
}

// OrderListFilter represents filter options for order listings
type OrderListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=PENDING PREPARING READY COMPLETED CANCELLED"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size" binding:"omitempty,max=100"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}
	return OrderResponse{
		ID:                  o.ID,
		OrderNumber:         o.OrderNumber,
		UserID:              o.UserID,
		ContactName:         o.Contact.Name,
		ContactEmail:        o.Contact.Email,
		Items:               items,
		Subtotal:            o.Subtotal,
		Tax:                 o.Tax,
		DeliveryFee:         o.DeliveryFee,
		Total:               o.Total,
		OrderType:           o.OrderType.String(),
		DeliveryAddress:     o.DeliveryAddress,
		PaymentMethod:       o.PaymentMethod,
		SpecialInstructions: o.SpecialInstructions,
		Status:              o.Status.String(),
		CreatedAt:           o.CreatedAt,
		CompletedAt:         o.CompletedAt,
		CancelledAt:         o.CancelledAt,
		CancelReason:        o.CancelReason,
	}
}
