package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusCount is a read model for order counts grouped by status
type OrderStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// RevenueSummary provides aggregated revenue statistics for a period
type RevenueSummary struct {
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
	TotalOrders   int64           `json:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

// ProductSales represents a product's sales ranking entry
type ProductSales struct {
	Rank          int             `json:"rank"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// DailyRevenuePoint represents one day in a revenue trend series
type DailyRevenuePoint struct {
	Date       time.Time       `json:"date"`
	OrderCount int64           `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// StatsFilter defines the period and limits for stats queries
type StatsFilter struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	TopN      int       `json:"top_n,omitempty"`
}

// StatsRepository defines the interface for storefront statistics queries.
// Cancelled orders are excluded from all revenue figures.
type StatsRepository interface {
	// CountOrdersByStatus returns order counts grouped by status
	CountOrdersByStatus(ctx context.Context, filter StatsFilter) ([]OrderStatusCount, error)

	// GetRevenueSummary returns aggregated revenue for the period
	GetRevenueSummary(ctx context.Context, filter StatsFilter) (*RevenueSummary, error)

	// GetTopProducts returns the top N products by quantity sold
	GetTopProducts(ctx context.Context, filter StatsFilter) ([]ProductSales, error)

	// GetDailyRevenue returns a daily revenue series for the period
	GetDailyRevenue(ctx context.Context, filter StatsFilter) ([]DailyRevenuePoint, error)
}
