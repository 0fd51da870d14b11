package order

import (
	"time"

	"github.com/coffeehouse/backend/internal/domain/cart"
	"github.com/coffeehouse/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of a placed order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusPreparing || target == OrderStatusCancelled
	case OrderStatusPreparing:
		return target == OrderStatusReady || target == OrderStatusCancelled
	case OrderStatusReady:
		return target == OrderStatusCompleted
	case OrderStatusCompleted, OrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// OrderItem is a line item frozen at placement time. Name and price are
// copied from the cart so later menu edits never change a placed order.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

// ContactInfo holds the customer contact details captured at checkout
type ContactInfo struct {
	Name  string
	Phone string
	Email string
}

// Order is the aggregate root for a placed order
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber         string
	UserID              uuid.UUID
	Contact             ContactInfo
	Items               []OrderItem
	Subtotal            decimal.Decimal
	Tax                 decimal.Decimal
	DeliveryFee         decimal.Decimal
	Total               decimal.Decimal
	OrderType           cart.OrderType
	DeliveryAddress     string
	PaymentMethod       string
	SpecialInstructions string
	Status              OrderStatus
	CompletedAt         *time.Time
	CancelledAt         *time.Time
	CancelReason        string
}

// NewOrder creates a pending order from cart line items and derived totals.
// The cart itself is not touched here; clearing it after a successful save
// is the checkout service's job.
func NewOrder(userID uuid.UUID, orderNumber string, contact ContactInfo, items []cart.LineItem, totals cart.Totals, orderType cart.OrderType, deliveryAddress, paymentMethod, specialInstructions string) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.ErrEmptyCart
	}
	if !orderType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ORDER_TYPE", "Order type must be pickup or delivery")
	}
	if orderType == cart.OrderTypeDelivery && deliveryAddress == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Delivery orders require an address")
	}
	if contact.Email == "" {
		return nil, shared.NewDomainError("INVALID_CONTACT", "Contact email cannot be empty")
	}
	if paymentMethod == "" {
		paymentMethod = "card"
	}

	o := &Order{
		BaseAggregateRoot:   shared.NewBaseAggregateRoot(),
		OrderNumber:         orderNumber,
		UserID:              userID,
		Contact:             contact,
		Subtotal:            totals.Subtotal,
		Tax:                 totals.Tax,
		DeliveryFee:         totals.DeliveryFee,
		Total:               totals.Total,
		OrderType:           orderType,
		DeliveryAddress:     deliveryAddress,
		PaymentMethod:       paymentMethod,
		SpecialInstructions: specialInstructions,
		Status:              OrderStatusPending,
		Items:               make([]OrderItem, 0, len(items)),
	}

	now := time.Now()
	for _, line := range items {
		o.Items = append(o.Items, OrderItem{
			ID:          uuid.New(),
			OrderID:     o.ID,
			ProductID:   line.ProductID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.Price,
			Amount:      line.Amount(),
		})
	}
	o.CreatedAt = now
	o.UpdatedAt = now

	o.AddDomainEvent(NewOrderPlacedEvent(o))

	return o, nil
}

// TransitionTo moves the order along the status machine
func (o *Order) TransitionTo(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", "Cannot transition order from "+o.Status.String()+" to "+target.String())
	}

	old := o.Status
	o.Status = target
	now := time.Now()
	o.UpdatedAt = now
	if target == OrderStatusCompleted {
		o.CompletedAt = &now
	}

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, old, target))

	return nil
}

// Cancel cancels the order with a reason. Only pending and preparing
// orders can be cancelled.
func (o *Order) Cancel(reason string) error {
	if !o.Status.CanTransitionTo(OrderStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE", "Cannot cancel order in status "+o.Status.String())
	}

	old := o.Status
	o.Status = OrderStatusCancelled
	now := time.Now()
	o.CancelledAt = &now
	o.CancelReason = reason
	o.UpdatedAt = now

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, old, OrderStatusCancelled))

	return nil
}

// ItemCount returns the total quantity across all line items
func (o *Order) ItemCount() int64 {
	var count int64
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
