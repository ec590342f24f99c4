// Package queries contains the read side of the application. Query handlers
// read straight from the database and return flat read models instead of
// aggregates.
package queries

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery lists every order regardless of status.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse is the read model of one order. Type and Status
// hold the wire names (DELIVERY, WAITING, ...).
type GetAllOrdersQueryResponse struct {
	ID              kernel.UUID
	Type            string
	Status          string
	DeliveryAddress string
	OrderTableID    *kernel.UUID
	CreatedAt       time.Time
	LineItems       []OrderLineItemResponse
}

type OrderLineItemResponse struct {
	MenuID   kernel.UUID
	Quantity int
	Price    decimal.Decimal
}
