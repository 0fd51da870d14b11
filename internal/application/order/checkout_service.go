package order

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/coffeehouse/backend/internal/application/notification"
	"github.com/coffeehouse/backend/internal/domain/cart"
	"github.com/coffeehouse/backend/internal/domain/order"
	"github.com/coffeehouse/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const orderNumberAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CheckoutService turns the user's cart into a placed order. The cart is
// cleared only after the order row is committed; any failure before that
// leaves the cart untouched.
type CheckoutService struct {
	orderRepo order.OrderRepository
	cartStore cart.SnapshotStore
	policy    cart.PricingPolicy
	eventBus  shared.EventPublisher
	sender    notification.EmailSender
	logger    *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	orderRepo order.OrderRepository,
	cartStore cart.SnapshotStore,
	policy cart.PricingPolicy,
	eventBus shared.EventPublisher,
	sender notification.EmailSender,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		orderRepo: orderRepo,
		cartStore: cartStore,
		policy:    policy,
		eventBus:  eventBus,
		sender:    sender,
		logger:    logger,
	}
}

// Checkout places an order from the user's current cart
func (s *CheckoutService) Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*OrderResponse, error) {
	orderType := cart.OrderType(req.OrderType)
	if !orderType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ORDER_TYPE", "Order type must be pickup or delivery")
	}

	snapshot, err := s.cartStore.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil || len(snapshot.Items) == 0 {
		return nil, shared.ErrEmptyCart
	}

	totals := cart.ComputeTotals(snapshot.Items, orderType, s.policy)

	o, err := order.NewOrder(
		userID,
		generateOrderNumber(),
		order.ContactInfo{Name: req.ContactName, Phone: req.ContactPhone, Email: req.ContactEmail},
		snapshot.Items,
		totals,
		orderType,
		req.DeliveryAddress,
		req.PaymentMethod,
		req.SpecialInstructions,
	)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		// The cart is untouched so the customer can retry
		return nil, err
	}

	// The order is committed; everything below is best-effort
	if err := s.cartStore.Remove(ctx, userID); err != nil {
		s.logger.Warn("failed to clear cart after checkout",
			zap.String("user_id", userID.String()),
			zap.String("order_number", o.OrderNumber),
			zap.Error(err),
		)
	}

	if err := s.eventBus.Publish(ctx, o.GetDomainEvents()...); err != nil {
		s.logger.Warn("failed to publish order events",
			zap.String("order_number", o.OrderNumber),
			zap.Error(err),
		)
	}
	o.ClearDomainEvents()

	if err := s.sender.SendOrderConfirmation(ctx, o); err != nil {
		s.logger.Warn("failed to send order confirmation email",
			zap.String("order_number", o.OrderNumber),
			zap.String("to", o.Contact.Email),
			zap.Error(err),
		)
	}

	s.logger.Info("order placed",
		zap.String("order_number", o.OrderNumber),
		zap.String("user_id", userID.String()),
		zap.String("total", o.Total.StringFixed(2)),
		zap.Int64("items", o.ItemCount()),
	)

	response := ToOrderResponse(o)
	return &response, nil
}

// generateOrderNumber builds a human-readable order number such as
// ORD-20260828-K7M2PX. The suffix alphabet omits easily confused
// characters.
func generateOrderNumber() string {
	suffix := make([]byte, 6)
	max := big.NewInt(int64(len(orderNumberAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			suffix[i] = orderNumberAlphabet[0]
			continue
		}
		suffix[i] = orderNumberAlphabet[n.Int64()]
	}
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), suffix)
}
