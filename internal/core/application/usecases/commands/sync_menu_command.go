package commands

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSyncMenuCommandIsNotConstructed = errors.New(
	"SyncMenuCommand must be created via NewSyncMenuCommand constructor",
)

// SyncMenuCommand stores the catalog's current view of a menu so that new
// orders are checked against it.
type SyncMenuCommand struct {
	menu  *menu.Menu
	guard guard.ConstructorGuard
}

func NewSyncMenuCommand(menuID kernel.UUID, name string, price decimal.Decimal, displayed bool) (SyncMenuCommand, error) {
	m, err := menu.RestoreMenu(menuID, name, price, displayed)
	if err != nil {
		return SyncMenuCommand{}, err
	}
	return SyncMenuCommand{menu: m, guard: guard.NewConstructorGuard()}, nil
}

func (c SyncMenuCommand) Validate() error {
	return c.guard.Validate(ErrSyncMenuCommandIsNotConstructed)
}

func (c SyncMenuCommand) Menu() *menu.Menu {
	return c.menu
}

// SyncMenuCommandHandler upserts menu snapshots.
type SyncMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewSyncMenuCommandHandler(uowFactory MenuUoWFactory) SyncMenuCommandHandler {
	return SyncMenuCommandHandler{uowFactory: uowFactory}
}

func (h SyncMenuCommandHandler) Handle(ctx context.Context, command SyncMenuCommand) (*menu.Menu, error) {
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

	if err := uow.MenuRepository().Save(ctx, command.Menu()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return command.Menu(), nil
}
