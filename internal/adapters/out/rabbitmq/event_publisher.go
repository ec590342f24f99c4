package rabbitmq

import "context"

// EventPublisher implements ports.EventPublisher. The event name is used as
// the routing key, so consumers can bind to e.g. "order.status.*".
type EventPublisher struct {
	publisher publisher
	exchange  string
}

func NewEventPublisher(p publisher, exchange string) *EventPublisher {
	return &EventPublisher{publisher: p, exchange: exchange}
}

func (p *EventPublisher) Publish(ctx context.Context, name string, payload []byte) error {
	return p.publisher.Publish(ctx, p.exchange, name, payload)
}
