package order

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root of the order lifecycle.
//
// Order follows these invariants:
//   - Has a valid identifier, a known type and at least one line item
//   - A DELIVERY order has a non-empty delivery address
//   - An EAT_IN order references an order table
//   - Status changes only through the Transition table
//
// Fields are private; state changes go through the transition methods, each
// of which records a StatusChangedEvent.
type Order struct {
	id        kernel.UUID
	orderType Type
	status    Status
	lineItems []LineItem

	// deliveryAddress is kept for DELIVERY orders only
	deliveryAddress string

	// orderTableID is kept for EAT_IN orders only
	orderTableID *kernel.UUID

	createdAt time.Time
	events    []kernel.DomainEvent
	guard     guard.ConstructorGuard
}

// NewOrder creates a WAITING order.
//
// Parameters:
//   - id: unique identifier
//   - orderType: DELIVERY, TAKEOUT or EAT_IN
//   - lineItems: at least one, already matched against the menu catalog
//   - deliveryAddress: required (non-empty) for DELIVERY, ignored otherwise
//   - orderTableID: required for EAT_IN, ignored otherwise
//   - createdAt: order time
//
// All field errors are joined into the returned error. The address check
// only looks for the empty string, so an address of blanks is accepted.
func NewOrder(
	id kernel.UUID,
	orderType Type,
	lineItems []LineItem,
	deliveryAddress string,
	orderTableID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:    Waiting,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setType(orderType),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}
	if err := o.setDestination(deliveryAddress, orderTableID); err != nil {
		return nil, err
	}

	o.raise(Unknown, createdAt)
	return o, nil
}

// RestoreOrder rebuilds an order from persistence. It applies the same field
// checks as NewOrder plus a status check and records no events.
func RestoreOrder(
	id kernel.UUID,
	orderType Type,
	status Status,
	lineItems []LineItem,
	deliveryAddress string,
	orderTableID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setType(orderType),
		o.setStatus(status),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}
	if err := o.setDestination(deliveryAddress, orderTableID); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate reports whether the order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Type() Type {
	return o.orderType
}

func (o *Order) Status() Status {
	return o.status
}

// LineItems returns a copy of the order's line items in their original order.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// DeliveryAddress is empty for orders other than DELIVERY.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// OrderTableID is nil for orders other than EAT_IN.
func (o *Order) OrderTableID() *kernel.UUID {
	if o.orderTableID == nil {
		return nil
	}
	id := *o.orderTableID
	return &id
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TotalPrice is the sum of price times quantity over all line items.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, li := range o.lineItems {
		total = total.Add(li.Amount())
	}
	return total
}

// Accept moves a WAITING order to ACCEPTED. For DELIVERY orders the caller
// must request delivery before the change is persisted; see SideEffectOf.
func (o *Order) Accept() error {
	return o.apply(TransitionAccept)
}

// Serve moves an ACCEPTED order to SERVED.
func (o *Order) Serve() error {
	return o.apply(TransitionServe)
}

// StartDelivery moves a SERVED DELIVERY order to DELIVERING.
func (o *Order) StartDelivery() error {
	return o.apply(TransitionStartDelivery)
}

// CompleteDelivery moves a DELIVERING order to DELIVERED.
func (o *Order) CompleteDelivery() error {
	return o.apply(TransitionCompleteDelivery)
}

// Complete moves the order to COMPLETED. A DELIVERY order must be DELIVERED,
// TAKEOUT and EAT_IN orders must be SERVED. Completing an EAT_IN order
// requires its table to be cleared.
func (o *Order) Complete() error {
	return o.apply(TransitionComplete)
}

// SideEffectOf returns the side effect t requires for this order's type.
func (o *Order) SideEffectOf(t Transition) SideEffect {
	return t.SideEffect(o.orderType)
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	events := make([]kernel.DomainEvent, len(o.events))
	copy(events, o.events)
	return events
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) apply(t Transition) error {
	next, err := t.Next(o.orderType, o.status)
	if err != nil {
		return err
	}

	previous := o.status
	o.status = next
	o.raise(previous, time.Now().UTC())
	return nil
}

func (o *Order) raise(previous Status, at time.Time) {
	o.events = append(o.events, newStatusChangedEvent(o, previous, at))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("order line items")
	}
	for _, li := range lineItems {
		if err := li.menuID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("order line item menu id", err)
		}
	}
	o.lineItems = make([]LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}

// setDestination needs the type to be set already.
func (o *Order) setDestination(deliveryAddress string, orderTableID *kernel.UUID) error {
	switch o.orderType {
	case Delivery:
		if deliveryAddress == "" {
			return errs.NewValueIsRequiredError("delivery address")
		}
		o.deliveryAddress = deliveryAddress
	case EatIn:
		if orderTableID == nil {
			return errs.NewValueIsRequiredError("order table id")
		}
		if err := orderTableID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("order table id", err)
		}
		id := *orderTableID
		o.orderTableID = &id
	}
	return nil
}
