package ports

import "context"

// EventPublisher delivers serialized domain events to other services.
type EventPublisher interface {
	Publish(ctx context.Context, name string, payload []byte) error
}
