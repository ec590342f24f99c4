// Package commands contains the write operations of kitchenpos: the order
// lifecycle transitions, order table operations, menu snapshot sync and the
// outbox relay. Every handler validates its command, opens a unit of work,
// applies one aggregate change and commits; any error rolls the whole
// operation back.
package commands

import (
	"context"

	"kitchenpos/internal/core/ports"
)

// Unit of Work interfaces give each handler only the repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OrderTableRepoFactory interface {
		OrderTableRepository() ports.OrderTableRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW serves the transitions that touch a single order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderTableUoW serves table operations that do not look at orders.
	OrderTableUoW interface {
		TxManager
		OrderTableRepoFactory
	}

	OrderTableUoWFactory interface {
		Create() OrderTableUoW
	}

	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// UoW spans orders, tables and menus. Used by order creation, completion
	// and table clearing, which read or change more than one aggregate.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   table, err := uow.OrderTableRepository().Get(ctx, *o.OrderTableID())
	//   // ... change both
	//
	//   return uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		OrderTableRepoFactory
		MenuRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
