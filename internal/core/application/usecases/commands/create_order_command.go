package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(),
//	    order.Delivery,
//	    []services.RequestedLineItem{{MenuID: menuID, Quantity: 2}},
//	    "Seoul, Gangnam-gu",
//	    nil,
//	)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	orderType       order.Type
	lineItems       []services.RequestedLineItem
	deliveryAddress string
	orderTableID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks the order id, the type and that at least one
// line item is given. All other checks need the catalog and run in the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderType order.Type,
	lineItems []services.RequestedLineItem,
	deliveryAddress string,
	orderTableID *kernel.UUID,
) (CreateOrderCommand, error) {
	c := CreateOrderCommand{
		deliveryAddress: deliveryAddress,
		orderTableID:    orderTableID,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setOrderID(orderID),
		c.setOrderType(orderType),
		c.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return c, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

func (c CreateOrderCommand) LineItems() []services.RequestedLineItem {
	items := make([]services.RequestedLineItem, len(c.lineItems))
	copy(items, c.lineItems)
	return items
}

// MenuIDs returns the menu of every line item, in line item order.
func (c CreateOrderCommand) MenuIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.lineItems))
	for _, li := range c.lineItems {
		ids = append(ids, li.MenuID)
	}
	return ids
}

func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c CreateOrderCommand) OrderTableID() *kernel.UUID {
	return c.orderTableID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []services.RequestedLineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("order line items")
	}
	c.lineItems = make([]services.RequestedLineItem, len(lineItems))
	copy(c.lineItems, lineItems)
	return nil
}
