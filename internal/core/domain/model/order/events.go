package order

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
)

// StatusChangedEventName is the name (and broker routing key) of StatusChangedEvent.
const StatusChangedEventName = "order.status.changed"

// StatusChangedEvent is recorded when an order is created and after every
// successful transition. PreviousStatus is empty for a new order.
type StatusChangedEvent struct {
	ID             kernel.UUID `json:"-"`
	OrderID        string      `json:"order_id"`
	OrderType      string      `json:"order_type"`
	PreviousStatus string      `json:"previous_status,omitempty"`
	Status         string      `json:"status"`
	OccurredAt     time.Time   `json:"occurred_at"`
}

func newStatusChangedEvent(o *Order, previous Status, occurredAt time.Time) StatusChangedEvent {
	e := StatusChangedEvent{
		ID:         kernel.NewUUID(),
		OrderID:    o.id.String(),
		OrderType:  o.orderType.String(),
		Status:     o.status.String(),
		OccurredAt: occurredAt.UTC(),
	}
	if previous != Unknown {
		e.PreviousStatus = previous.String()
	}
	return e
}

func (e StatusChangedEvent) EventID() kernel.UUID {
	return e.ID
}

func (e StatusChangedEvent) EventName() string {
	return StatusChangedEventName
}

func (e StatusChangedEvent) OccurredOn() time.Time {
	return e.OccurredAt
}
