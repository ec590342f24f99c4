package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
)

// MenuRepository is the local snapshot of the menu catalog.
type MenuRepository interface {
	// Save inserts the menu or overwrites the stored snapshot with the same id.
	Save(ctx context.Context, m *menu.Menu) error

	// GetByIDs returns the menus that exist among ids. Unknown ids are
	// skipped, duplicates are returned once.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error)
}
