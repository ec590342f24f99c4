package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
)

// OrderTableRepository defines the persistence contract for order tables.
type OrderTableRepository interface {
	Add(ctx context.Context, table *ordertable.OrderTable) error
	Update(ctx context.Context, table *ordertable.OrderTable) error

	// Get loads a table and locks it for the rest of the transaction.
	// Returns errs.ObjectNotFoundError when the table does not exist.
	Get(ctx context.Context, id kernel.UUID) (*ordertable.OrderTable, error)
}
