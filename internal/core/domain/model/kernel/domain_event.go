package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate during a state change.
// Events are collected by the unit of work and written to the outbox in the
// same transaction as the aggregate itself.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	OccurredOn() time.Time
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}
