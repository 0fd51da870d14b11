package models

import (
	"time"

	"github.com/coffeehouse/backend/internal/domain/cart"
	"github.com/coffeehouse/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	AggregateModel
	OrderNumber         string            `gorm:"type:varchar(50);not null;uniqueIndex"`
	UserID              uuid.UUID         `gorm:"type:uuid;not null;index"`
	ContactName         string            `gorm:"type:varchar(200);not null"`
	ContactPhone        string            `gorm:"type:varchar(50)"`
	ContactEmail        string            `gorm:"type:varchar(255);not null"`
	Items               []OrderItemModel  `gorm:"foreignKey:OrderID;references:ID"`
	Subtotal            decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	Tax                 decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	DeliveryFee         decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	Total               decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	OrderType           cart.OrderType    `gorm:"type:varchar(20);not null"`
	DeliveryAddress     string            `gorm:"type:varchar(500)"`
	PaymentMethod       string            `gorm:"type:varchar(20);not null"`
	SpecialInstructions string            `gorm:"type:text"`
	Status              order.OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CompletedAt         *time.Time
	CancelledAt         *time.Time
	CancelReason        string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the persistence model for an order line item.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   string          `gorm:"type:varchar(100);not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int64           `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain Order
func (m *OrderModel) ToDomain() *order.Order {
	items := make([]order.OrderItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, order.OrderItem{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	return &order.Order{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		OrderNumber:       m.OrderNumber,
		UserID:            m.UserID,
		Contact: order.ContactInfo{
			Name:  m.ContactName,
			Phone: m.ContactPhone,
			Email: m.ContactEmail,
		},
		Items:               items,
		Subtotal:            m.Subtotal,
		Tax:                 m.Tax,
		DeliveryFee:         m.DeliveryFee,
		Total:               m.Total,
		OrderType:           m.OrderType,
		DeliveryAddress:     m.DeliveryAddress,
		PaymentMethod:       m.PaymentMethod,
		SpecialInstructions: m.SpecialInstructions,
		Status:              m.Status,
		CompletedAt:         m.CompletedAt,
		CancelledAt:         m.CancelledAt,
		CancelReason:        m.CancelReason,
	}
}

// OrderModelFromDomain converts a domain Order to its persistence model
func OrderModelFromDomain(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemModel{
			ID:          item.ID,
			OrderID:     o.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	m := &OrderModel{
		OrderNumber:         o.OrderNumber,
		UserID:              o.UserID,
		ContactName:         o.Contact.Name,
		ContactPhone:        o.Contact.Phone,
		ContactEmail:        o.Contact.Email,
		Items:               items,
		Subtotal:            o.Subtotal,
		Tax:                 o.Tax,
		DeliveryFee:         o.DeliveryFee,
		Total:               o.Total,
		OrderType:           o.OrderType,
		DeliveryAddress:     o.DeliveryAddress,
		PaymentMethod:       o.PaymentMethod,
		SpecialInstructions: o.SpecialInstructions,
		Status:              o.Status,
		CompletedAt:         o.CompletedAt,
		CancelledAt:         o.CancelledAt,
		CancelReason:        o.CancelReason,
	}
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	return m
}
