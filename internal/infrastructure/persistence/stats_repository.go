package persistence

import (
	"context"
	"time"

	"github.com/coffeehouse/backend/internal/domain/order"
	"github.com/coffeehouse/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormStatsRepository implements report.StatsRepository over the order
// tables using GORM
type GormStatsRepository struct {
	db *gorm.DB
}

// NewGormStatsRepository creates a new GormStatsRepository
func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

// CountOrdersByStatus returns order counts grouped by status
func (r *GormStatsRepository) CountOrdersByStatus(ctx context.Context, filter report.StatsFilter) ([]report.OrderStatusCount, error) {
	var results []report.OrderStatusCount

	err := r.db.WithContext(ctx).Table("orders").
		Select("status, COUNT(*) as count").
		Where("created_at BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Group("status").
		Order("status ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetRevenueSummary returns aggregated revenue for the period.
// Cancelled orders do not count towards revenue.
func (r *GormStatsRepository) GetRevenueSummary(ctx context.Context, filter report.StatsFilter) (*report.RevenueSummary, error) {
	type summaryResult struct {
		TotalOrders  int64
		TotalRevenue decimal.Decimal
	}

	var result summaryResult
	err := r.db.WithContext(ctx).Table("orders").
		Select("COUNT(*) as total_orders, COALESCE(SUM(total), 0) as total_revenue").
		Where("created_at BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Where("status <> ?", order.OrderStatusCancelled).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	var avgOrderValue decimal.Decimal
	if result.TotalOrders > 0 {
		avgOrderValue = result.TotalRevenue.Div(decimal.NewFromInt(result.TotalOrders)).Round(2)
	}

	return &report.RevenueSummary{
		PeriodStart:   filter.StartDate,
		PeriodEnd:     filter.EndDate,
		TotalOrders:   result.TotalOrders,
		TotalRevenue:  result.TotalRevenue,
		AvgOrderValue: avgOrderValue,
	}, nil
}

// GetTopProducts returns the top N products by quantity sold
func (r *GormStatsRepository) GetTopProducts(ctx context.Context, filter report.StatsFilter) ([]report.ProductSales, error) {
	type productResult struct {
		ProductID     string
		ProductName   string
		TotalQuantity int64
		TotalAmount   decimal.Decimal
	}

	var results []productResult
	err := r.db.WithContext(ctx).Table("order_items oi").
		Select(`
			oi.product_id,
			oi.product_name,
			COALESCE(SUM(oi.quantity), 0) as total_quantity,
			COALESCE(SUM(oi.amount), 0) as total_amount
		`).
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.created_at BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Where("o.status <> ?", order.OrderStatusCancelled).
		Group("oi.product_id, oi.product_name").
		Order("total_quantity DESC").
		Limit(filter.TopN).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	sales := make([]report.ProductSales, len(results))
	for i, row := range results {
		sales[i] = report.ProductSales{
			Rank:          i + 1,
			ProductID:     row.ProductID,
			ProductName:   row.ProductName,
			TotalQuantity: row.TotalQuantity,
			TotalAmount:   row.TotalAmount,
		}
	}
	return sales, nil
}

// GetDailyRevenue returns a daily revenue series for the period
func (r *GormStatsRepository) GetDailyRevenue(ctx context.Context, filter report.StatsFilter) ([]report.DailyRevenuePoint, error) {
	type dailyResult struct {
		Day        string
		OrderCount int64
		Revenue    decimal.Decimal
	}

	var results []dailyResult
	err := r.db.WithContext(ctx).Table("orders").
		Select(`
			DATE(created_at) as day,
			COUNT(*) as order_count,
			COALESCE(SUM(total), 0) as revenue
		`).
		Where("created_at BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Where("status <> ?", order.OrderStatusCancelled).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	points := make([]report.DailyRevenuePoint, len(results))
	for i, row := range results {
		day, err := parseDay(row.Day)
		if err != nil {
			return nil, err
		}
		points[i] = report.DailyRevenuePoint{
			Date:       day,
			OrderCount: row.OrderCount,
			Revenue:    row.Revenue,
		}
	}
	return points, nil
}

// parseDay parses the DATE() result, whose textual form varies by driver
func parseDay(value string) (time.Time, error) {
	if len(value) > 10 {
		value = value[:10]
	}
	return time.Parse("2006-01-02", value)
}

// Ensure GormStatsRepository implements StatsRepository
var _ report.StatsRepository = (*GormStatsRepository)(nil)
