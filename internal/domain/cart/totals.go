package cart

import "github.com/shopspring/decimal"

// OrderType distinguishes pickup orders (no delivery fee) from delivery
// orders (flat or threshold-waived fee)
type OrderType string

const (
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
)

// IsValid checks if the order type is known
func (t OrderType) IsValid() bool {
	return t == OrderTypePickup || t == OrderTypeDelivery
}

// String returns the string representation of OrderType
func (t OrderType) String() string {
	return string(t)
}

// PricingPolicy holds the configured rates used to derive order totals.
// The delivery fee is waived when FreeDeliveryOver is positive and the
// subtotal reaches it.
type PricingPolicy struct {
	TaxRate          decimal.Decimal
	DeliveryFee      decimal.Decimal
	FreeDeliveryOver decimal.Decimal
}

// DefaultPricingPolicy returns the storefront's standard pricing:
// 10% tax, 5.99 flat delivery fee, no free-delivery threshold.
func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		TaxRate:          decimal.NewFromFloat(0.10),
		DeliveryFee:      decimal.NewFromFloat(5.99),
		FreeDeliveryOver: decimal.Zero,
	}
}

// Totals holds the derived order totals. They are a pure function of the
// line items, the order type and the pricing policy, and are never stored
// on the cart itself.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

// ComputeTotals derives order totals for a set of line items.
// subtotal = sum(price * quantity); tax = subtotal * rate; the delivery fee
// applies only to delivery orders and is waived at the free-delivery
// threshold. Tax and total are rounded to cents.
func ComputeTotals(items []LineItem, orderType OrderType, policy PricingPolicy) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount())
	}

	tax := subtotal.Mul(policy.TaxRate).Round(2)

	deliveryFee := decimal.Zero
	if orderType == OrderTypeDelivery {
		deliveryFee = policy.DeliveryFee
		if policy.FreeDeliveryOver.IsPositive() && subtotal.GreaterThanOrEqual(policy.FreeDeliveryOver) {
			deliveryFee = decimal.Zero
		}
	}

	return Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: deliveryFee,
		Total:       subtotal.Add(tax).Add(deliveryFee).Round(2),
	}
}
