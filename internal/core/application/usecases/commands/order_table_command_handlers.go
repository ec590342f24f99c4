package commands

import (
	"context"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"
)

// CreateOrderTableCommandHandler stores a new empty table.
type CreateOrderTableCommandHandler struct {
	uowFactory OrderTableUoWFactory
}

func NewCreateOrderTableCommandHandler(uowFactory OrderTableUoWFactory) CreateOrderTableCommandHandler {
	return CreateOrderTableCommandHandler{uowFactory: uowFactory}
}

func (h CreateOrderTableCommandHandler) Handle(ctx context.Context, command CreateOrderTableCommand) (*ordertable.OrderTable, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	table, err := ordertable.NewOrderTable(command.TableID(), command.Name())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderTableRepository().Add(ctx, table); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return table, nil
}

// changeOrderTable loads the table under lock, applies change and commits.
func changeOrderTable(
	ctx context.Context,
	uowFactory OrderTableUoWFactory,
	tableID kernel.UUID,
	change func(*ordertable.OrderTable) error,
) (*ordertable.OrderTable, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderTableRepository()

	table, err := repo.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}

	if err = change(table); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, table); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return table, nil
}

// SitOrderTableCommandHandler handles SitOrderTableCommand.
type SitOrderTableCommandHandler struct {
	uowFactory OrderTableUoWFactory
}

func NewSitOrderTableCommandHandler(uowFactory OrderTableUoWFactory) SitOrderTableCommandHandler {
	return SitOrderTableCommandHandler{uowFactory: uowFactory}
}

func (h SitOrderTableCommandHandler) Handle(ctx context.Context, command SitOrderTableCommand) (*ordertable.OrderTable, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	return changeOrderTable(ctx, h.uowFactory, command.TableID(), func(t *ordertable.OrderTable) error {
		t.Sit()
		return nil
	})
}

// ChangeNumberOfGuestsCommandHandler handles ChangeNumberOfGuestsCommand.
type ChangeNumberOfGuestsCommandHandler struct {
	uowFactory OrderTableUoWFactory
}

func NewChangeNumberOfGuestsCommandHandler(uowFactory OrderTableUoWFactory) ChangeNumberOfGuestsCommandHandler {
	return ChangeNumberOfGuestsCommandHandler{uowFactory: uowFactory}
}

func (h ChangeNumberOfGuestsCommandHandler) Handle(ctx context.Context, command ChangeNumberOfGuestsCommand) (*ordertable.OrderTable, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	return changeOrderTable(ctx, h.uowFactory, command.TableID(), func(t *ordertable.OrderTable) error {
		return t.ChangeNumberOfGuests(command.NumberOfGuests())
	})
}

// ClearOrderTableCommandHandler empties a table. It refuses while any order
// placed for the table is not COMPLETED.
type ClearOrderTableCommandHandler struct {
	uowFactory UoWFactory
}

func NewClearOrderTableCommandHandler(uowFactory UoWFactory) ClearOrderTableCommandHandler {
	return ClearOrderTableCommandHandler{uowFactory: uowFactory}
}

func (h ClearOrderTableCommandHandler) Handle(ctx context.Context, command ClearOrderTableCommand) (*ordertable.OrderTable, error) {
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

	tableRepo := uow.OrderTableRepository()

	table, err := tableRepo.Get(ctx, command.TableID())
	if err != nil {
		return nil, err
	}

	active, err := uow.OrderRepository().ExistsByTableAndStatusNot(ctx, table.ID(), order.Completed)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, errs.NewStateConflictError("order table", fmt.Sprintf("%s has orders that are not completed", table.ID()))
	}

	table.Clear()

	if err = tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return table, nil
}
