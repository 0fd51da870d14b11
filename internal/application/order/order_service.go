package order

import (
	"context"

	"github.com/coffeehouse/backend/internal/domain/order"
	"github.com/coffeehouse/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService handles order queries and status management
type OrderService struct {
	orderRepo order.OrderRepository
	eventBus  shared.EventPublisher
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo order.OrderRepository, eventBus shared.EventPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// GetByID retrieves an order. Customers may only see their own orders;
// admins may see any.
func (s *OrderService) GetByID(ctx context.Context, requesterID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.UserID != requesterID {
		return nil, shared.ErrForbidden
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// ListByUser retrieves the user's own orders, newest first
func (s *OrderService) ListByUser(ctx context.Context, userID uuid.UUID, filter OrderListFilter) (shared.Paginated[OrderResponse], error) {
	repoFilter := buildFilter(filter)

	orders, err := s.orderRepo.FindByUser(ctx, userID, repoFilter)
	if err != nil {
		return shared.Paginated[OrderResponse]{}, err
	}
	total, err := s.orderRepo.CountByUser(ctx, userID)
	if err != nil {
		return shared.Paginated[OrderResponse]{}, err
	}

	return shared.NewPaginated(toResponses(orders), total, repoFilter.Page, repoFilter.PageSize), nil
}

// ListAll retrieves all orders for the back office
func (s *OrderService) ListAll(ctx context.Context, filter OrderListFilter) (shared.Paginated[OrderResponse], error) {
	repoFilter := buildFilter(filter)

	orders, err := s.orderRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return shared.Paginated[OrderResponse]{}, err
	}
	total, err := s.orderRepo.Count(ctx, repoFilter)
	if err != nil {
		return shared.Paginated[OrderResponse]{}, err
	}

	return shared.NewPaginated(toResponses(orders), total, repoFilter.Page, repoFilter.PageSize), nil
}

// UpdateStatus moves an order along its status machine
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, req UpdateStatusRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	target := order.OrderStatus(req.Status)
	if target == order.OrderStatusCancelled {
		err = o.Cancel(req.Reason)
	} else {
		err = o.TransitionTo(target)
	}
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	if err := s.eventBus.Publish(ctx, o.GetDomainEvents()...); err != nil {
		s.logger.Warn("failed to publish order status events",
			zap.String("order_number", o.OrderNumber),
			zap.Error(err),
		)
	}
	o.ClearDomainEvents()

	response := ToOrderResponse(o)
	return &response, nil
}

// CancelOwn cancels the user's own order while it is still pending or
// being prepared
func (s *OrderService) CancelOwn(ctx context.Context, userID, orderID uuid.UUID, reason string) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, shared.ErrForbidden
	}

	if err := o.Cancel(reason); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	if err := s.eventBus.Publish(ctx, o.GetDomainEvents()...); err != nil {
		s.logger.Warn("failed to publish order status events",
			zap.String("order_number", o.OrderNumber),
			zap.Error(err),
		)
	}
	o.ClearDomainEvents()

	response := ToOrderResponse(o)
	return &response, nil
}

func buildFilter(filter OrderListFilter) shared.Filter {
	repoFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}
	if filter.Status != "" {
		repoFilter.Filters["status"] = filter.Status
	}
	return repoFilter
}

func toResponses(orders []order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToOrderResponse(&orders[i]))
	}
	return responses
}
