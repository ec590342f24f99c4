package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler completes an order. Completing an EAT_IN order
// also clears its table in the same transaction, whatever other orders the
// table has.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCompleteOrderCommandHandler(uowFactory UoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{uowFactory: uowFactory}
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, command CompleteOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Complete(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if o.SideEffectOf(order.TransitionComplete) == order.ClearOrderTable {
		tableRepo := uow.OrderTableRepository()

		table, err := tableRepo.Get(ctx, *o.OrderTableID())
		if err != nil {
			return nil, err
		}

		table.Clear()

		if err = tableRepo.Update(ctx, table); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
