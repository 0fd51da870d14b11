package shared

import "context"

// EventHandler reacts to domain events, such as the loyalty accrual
// that follows an order being placed
type EventHandler interface {
	// Handle processes a single domain event
	Handle(ctx context.Context, event DomainEvent) error
	// EventTypes returns the event types this handler is interested in.
	// An empty slice subscribes the handler to every event.
	EventTypes() []string
}

// EventPublisher is the write side of the bus; cart, order and loyalty
// services publish through it after their state is committed
type EventPublisher interface {
	// Publish delivers one or more domain events
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventSubscriber is the read side of the bus
type EventSubscriber interface {
	// Subscribe registers a handler for specific event types. With no
	// explicit types the handler's own EventTypes() decide.
	Subscribe(handler EventHandler, eventTypes ...string)
	// Unsubscribe removes a handler from every event type
	Unsubscribe(handler EventHandler)
}

// EventBus combines both sides of the bus
type EventBus interface {
	EventPublisher
	EventSubscriber
}
