// Package ports defines the contracts between the kitchenpos core and its
// infrastructure: repositories bound to a unit of work, the delivery
// dispatch client and the event publisher.
package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order. Line items never change
	// after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order and locks it for the rest of the transaction, so
	// concurrent transitions of the same order run one after the other.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ExistsByTableAndStatusNot reports whether any order placed for the
	// table has a status other than the given one.
	ExistsByTableAndStatusNot(ctx context.Context, tableID kernel.UUID, status order.Status) (bool, error)
}
