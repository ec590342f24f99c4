package commands

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/services"
)

// CreateOrderCommandHandler validates a new order against the menu catalog
// and, for EAT_IN orders, the order table, then stores it as WAITING.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	matcher    services.LineItemMatcher
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewLineItemMatcher(),
	}
}

// Handle runs the checks in a fixed order: menus exist, quantities, display
// flags, prices, delivery address, then the order table exists and is
// occupied. The first failing check is returned and nothing is stored.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menus, err := uow.MenuRepository().GetByIDs(ctx, command.MenuIDs())
	if err != nil {
		return nil, err
	}

	catalog := make(map[kernel.UUID]*menu.Menu, len(menus))
	for _, m := range menus {
		catalog[m.ID()] = m
	}

	lineItems, err := h.matcher.Match(command.OrderType(), command.LineItems(), catalog)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		command.OrderID(),
		command.OrderType(),
		lineItems,
		command.DeliveryAddress(),
		command.OrderTableID(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if o.Type() == order.EatIn {
		table, err := uow.OrderTableRepository().Get(ctx, *o.OrderTableID())
		if err != nil {
			return nil, err
		}
		if err = table.ValidateAcceptsEatInOrder(); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
