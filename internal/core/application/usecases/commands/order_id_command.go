package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrOrderCommandIsNotConstructed = errors.New(
	"order transition command must be created via its constructor",
)

// orderIDCommand is embedded by the commands that move one order along the
// state machine.
type orderIDCommand struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func newOrderIDCommand(orderID kernel.UUID) (orderIDCommand, error) {
	if err := orderID.Validate(); err != nil {
		return orderIDCommand{}, err
	}
	return orderIDCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c orderIDCommand) Validate() error {
	return c.guard.Validate(ErrOrderCommandIsNotConstructed)
}

func (c orderIDCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AcceptOrderCommand moves a WAITING order to ACCEPTED.
type AcceptOrderCommand struct{ orderIDCommand }

func NewAcceptOrderCommand(orderID kernel.UUID) (AcceptOrderCommand, error) {
	c, err := newOrderIDCommand(orderID)
	return AcceptOrderCommand{c}, err
}

// ServeOrderCommand moves an ACCEPTED order to SERVED.
type ServeOrderCommand struct{ orderIDCommand }

func NewServeOrderCommand(orderID kernel.UUID) (ServeOrderCommand, error) {
	c, err := newOrderIDCommand(orderID)
	return ServeOrderCommand{c}, err
}

// StartDeliveryCommand moves a SERVED DELIVERY order to DELIVERING.
type StartDeliveryCommand struct{ orderIDCommand }

func NewStartDeliveryCommand(orderID kernel.UUID) (StartDeliveryCommand, error) {
	c, err := newOrderIDCommand(orderID)
	return StartDeliveryCommand{c}, err
}

// CompleteDeliveryCommand moves a DELIVERING order to DELIVERED.
type CompleteDeliveryCommand struct{ orderIDCommand }

func NewCompleteDeliveryCommand(orderID kernel.UUID) (CompleteDeliveryCommand, error) {
	c, err := newOrderIDCommand(orderID)
	return CompleteDeliveryCommand{c}, err
}

// CompleteOrderCommand moves an order to COMPLETED.
type CompleteOrderCommand struct{ orderIDCommand }

func NewCompleteOrderCommand(orderID kernel.UUID) (CompleteOrderCommand, error) {
	c, err := newOrderIDCommand(orderID)
	return CompleteOrderCommand{c}, err
}
