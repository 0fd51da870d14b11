package notification

import (
	"context"

	"go.uber.org/zap"
)

// ContactService relays contact form submissions to the shop inbox
type ContactService struct {
	sender EmailSender
	logger *zap.Logger
}

// NewContactService creates a new ContactService
func NewContactService(sender EmailSender, logger *zap.Logger) *ContactService {
	return &ContactService{sender: sender, logger: logger}
}

// Submit relays a contact form message
func (s *ContactService) Submit(ctx context.Context, msg ContactMessage) error {
	if err := s.sender.SendContactMessage(ctx, msg); err != nil {
		s.logger.Error("failed to relay contact message",
			zap.String("from", msg.Email),
			zap.Error(err),
		)
		return err
	}
	return nil
}
