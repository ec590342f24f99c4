package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrderTablesQueryHandler lists order tables sorted by name.
type GetAllOrderTablesQueryHandler struct {
	db *gorm.DB
}

func NewGetAllOrderTablesQueryHandler(db *gorm.DB) GetAllOrderTablesQueryHandler {
	return GetAllOrderTablesQueryHandler{db: db}
}

func (h GetAllOrderTablesQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrderTablesQuery,
) ([]GetAllOrderTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]GetAllOrderTablesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			number_of_guests,
			occupied
		FROM order_tables
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t GetAllOrderTablesQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &t.Name, &t.NumberOfGuests, &t.Occupied); err != nil {
			return nil, err
		}

		if t.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
