package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/ports"
)

// AcceptOrderCommandHandler accepts a WAITING order. For DELIVERY orders it
// requests riders through the DeliveryClient after the status change is
// written and before it is committed. When the request fails the error is
// returned as is and the transaction is rolled back, so the order stays WAITING.
type AcceptOrderCommandHandler struct {
	uowFactory     OrderUoWFactory
	deliveryClient ports.DeliveryClient
}

func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory, deliveryClient ports.DeliveryClient) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory:     uowFactory,
		deliveryClient: deliveryClient,
	}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) (*order.Order, error) {
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

	repo := uow.OrderRepository()

	o, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Accept(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if o.SideEffectOf(order.TransitionAccept) == order.RequestDelivery {
		if err = h.deliveryClient.RequestDelivery(ctx, o.ID(), o.DeliveryAddress(), o.TotalPrice()); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
