package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after
// Begin share its transaction; Commit also stores the domain events of every
// aggregate the repositories saved.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error

	// Rollback discards the transaction. It returns an error when there is no
	// active transaction, which is the case after a successful Commit.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	OrderTableRepository() OrderTableRepository
	MenuRepository() MenuRepository
	OutboxRepository() OutboxRepository
}
