package report

import (
	"context"
	"time"

	"github.com/coffeehouse/backend/internal/domain/report"
	"github.com/coffeehouse/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const defaultTopN = 10

// StatsFilter defines the request filter for storefront stats
type StatsFilter struct {
	StartDate time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   time.Time `form:"end_date" time_format:"2006-01-02"`
	TopN      int       `form:"top_n"`
}

// DashboardResponse bundles the stats shown on the admin dashboard
type DashboardResponse struct {
	PeriodStart   time.Time                 `json:"period_start"`
	PeriodEnd     time.Time                 `json:"period_end"`
	TotalOrders   int64                     `json:"total_orders"`
	TotalRevenue  decimal.Decimal           `json:"total_revenue"`
	AvgOrderValue decimal.Decimal           `json:"avg_order_value"`
	StatusCounts  []report.OrderStatusCount `json:"status_counts"`
	TopProducts   []report.ProductSales     `json:"top_products"`
}

// StatsService provides admin statistics over the order history
type StatsService struct {
	statsRepo report.StatsRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(statsRepo report.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// GetDashboard returns the aggregate stats for the admin dashboard
func (s *StatsService) GetDashboard(ctx context.Context, filter StatsFilter) (*DashboardResponse, error) {
	domainFilter, err := s.buildFilter(filter)
	if err != nil {
		return nil, err
	}

	summary, err := s.statsRepo.GetRevenueSummary(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	statusCounts, err := s.statsRepo.CountOrdersByStatus(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	topProducts, err := s.statsRepo.GetTopProducts(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		PeriodStart:   summary.PeriodStart,
		PeriodEnd:     summary.PeriodEnd,
		TotalOrders:   summary.TotalOrders,
		TotalRevenue:  summary.TotalRevenue,
		AvgOrderValue: summary.AvgOrderValue,
		StatusCounts:  statusCounts,
		TopProducts:   topProducts,
	}, nil
}

// GetDailyRevenue returns the daily revenue series for the period
func (s *StatsService) GetDailyRevenue(ctx context.Context, filter StatsFilter) ([]report.DailyRevenuePoint, error) {
	domainFilter, err := s.buildFilter(filter)
	if err != nil {
		return nil, err
	}
	return s.statsRepo.GetDailyRevenue(ctx, domainFilter)
}

func (s *StatsService) buildFilter(filter StatsFilter) (report.StatsFilter, error) {
	end := filter.EndDate
	if end.IsZero() {
		end = time.Now()
	}
	start := filter.StartDate
	if start.IsZero() {
		start = end.AddDate(0, 0, -30)
	}
	if end.Before(start) {
		return report.StatsFilter{}, shared.NewDomainError("INVALID_PERIOD", "End date must not be before start date")
	}

	topN := filter.TopN
	if topN < 1 || topN > 100 {
		topN = defaultTopN
	}

	return report.StatsFilter{
		StartDate: start,
		EndDate:   end,
		TopN:      topN,
	}, nil
}
