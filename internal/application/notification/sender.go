package notification

import (
	"context"

	"github.com/coffeehouse/backend/internal/domain/order"
	"go.uber.org/zap"
)

// ContactMessage is a message submitted through the contact form
type ContactMessage struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=1,max=200"`
	Message string `json:"message" binding:"required,min=1,max=5000"`
}

// EmailSender delivers transactional email. Implementations must be safe
// for concurrent use.
type EmailSender interface {
	SendOrderConfirmation(ctx context.Context, o *order.Order) error
	SendContactMessage(ctx context.Context, msg ContactMessage) error
}

// LogSender writes outgoing mail to the log instead of delivering it.
// Used in development and as the default when no mail provider is
// configured.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a new LogSender
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// SendOrderConfirmation logs the order confirmation
func (s *LogSender) SendOrderConfirmation(_ context.Context, o *order.Order) error {
	s.logger.Info("order confirmation email",
		zap.String("to", o.Contact.Email),
		zap.String("order_number", o.OrderNumber),
		zap.String("total", o.Total.StringFixed(2)),
		zap.Int64("items", o.ItemCount()),
	)
	return nil
}

// SendContactMessage logs the relayed contact form message
func (s *LogSender) SendContactMessage(_ context.Context, msg ContactMessage) error {
	s.logger.Info("contact form message",
		zap.String("from", msg.Email),
		zap.String("name", msg.Name),
		zap.String("subject", msg.Subject),
	)
	return nil
}

// Ensure LogSender implements EmailSender
var _ EmailSender = (*LogSender)(nil)
