package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
)

// changeOrderStatus loads the order under lock, applies change and commits.
func changeOrderStatus(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	change func(*order.Order) error,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	o, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = change(o); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// ServeOrderCommandHandler handles ServeOrderCommand.
type ServeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewServeOrderCommandHandler(uowFactory OrderUoWFactory) ServeOrderCommandHandler {
	return ServeOrderCommandHandler{uowFactory: uowFactory}
}

func (h ServeOrderCommandHandler) Handle(ctx context.Context, command ServeOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	return changeOrderStatus(ctx, h.uowFactory, command.OrderID(), (*order.Order).Serve)
}

// StartDeliveryCommandHandler handles StartDeliveryCommand.
type StartDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewStartDeliveryCommandHandler(uowFactory OrderUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h StartDeliveryCommandHandler) Handle(ctx context.Context, command StartDeliveryCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	return changeOrderStatus(ctx, h.uowFactory, command.OrderID(), (*order.Order).StartDelivery)
}

// CompleteDeliveryCommandHandler handles CompleteDeliveryCommand.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteDeliveryCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	return changeOrderStatus(ctx, h.uowFactory, command.OrderID(), (*order.Order).CompleteDelivery)
}
