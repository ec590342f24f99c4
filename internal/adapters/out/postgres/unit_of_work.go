// Package postgres provides the GORM implementation of the Unit of Work and
// the schema migrations of the kitchenpos database.
//
// A unit of work wraps one database transaction. Repositories obtained from it
// after Begin run inside that transaction and report every aggregate they
// save back to the unit of work. Commit writes the domain events of those
// aggregates to the outbox table before committing, so state and events are
// stored atomically.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().Get(ctx, id) // SELECT ... FOR UPDATE
//	if err != nil {
//	    return err
//	}
//	if err := o.Serve(); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency considerations:
//   - Each UnitOfWork instance is used by one goroutine
//   - Repository Get locks the row, so two transactions on the same order or
//     table serialize while different ids do not contend
package postgres

import (
	"context"

	"kitchenpos/internal/adapters/out/postgres/menurepo"
	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/adapters/out/postgres/ordertablerepo"
	"kitchenpos/internal/adapters/out/postgres/outboxrepo"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate saved during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates a fresh UnitOfWork per business operation.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and the outbox writes of
// the aggregates saved in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit stores the pending domain events of every tracked aggregate in the
// outbox and commits. Events are cleared from the aggregates only once the
// commit succeeded. A failed outbox write rolls the transaction back.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	sources := uow.eventSources()
	events := make([]kernel.DomainEvent, 0)
	for _, s := range sources {
		events = append(events, s.DomainEvents()...)
	}

	if err := outboxrepo.NewGormOutboxRepository(uow.tx).Add(ctx, events); err != nil {
		_ = uow.tx.Rollback()
		uow.tx = nil
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, s := range sources {
		s.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards the transaction. It returns gorm.ErrInvalidTransaction
// when no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderTableRepository() ports.OrderTableRepository {
	return ordertablerepo.NewGormOrderTableRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate saved by a repository of this unit
// of work. Saving the same aggregate twice tracks it once.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	for _, t := range uow.trackedAggregates {
		if t.ID.IsEqual(id) && t.Aggregate == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) eventSources() []kernel.EventSource {
	sources := make([]kernel.EventSource, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		if s, ok := t.Aggregate.(kernel.EventSource); ok {
			sources = append(sources, s)
		}
	}
	return sources
}
