package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrGetAllOrderTablesQueryIsNotConstructed = errors.New(
		"GetAllOrderTablesQuery must be created via NewGetAllOrderTablesQuery constructor",
	)
)

type GetAllOrderTablesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrderTablesQuery() GetAllOrderTablesQuery {
	return GetAllOrderTablesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllOrderTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrderTablesQueryIsNotConstructed)
}

type GetAllOrderTablesQueryResponse struct {
	ID             kernel.UUID
	Name           string
	NumberOfGuests int
	Occupied       bool
}
