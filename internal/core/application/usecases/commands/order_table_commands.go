package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrCreateOrderTableCommandIsNotConstructed = errors.New(
		"CreateOrderTableCommand must be created via NewCreateOrderTableCommand constructor",
	)
	ErrOrderTableCommandIsNotConstructed = errors.New(
		"order table command must be created via its constructor",
	)
	ErrChangeNumberOfGuestsCommandIsNotConstructed = errors.New(
		"ChangeNumberOfGuestsCommand must be created via NewChangeNumberOfGuestsCommand constructor",
	)
)

// CreateOrderTableCommand registers a new, empty order table.
type CreateOrderTableCommand struct {
	tableID kernel.UUID
	name    string
	guard   guard.ConstructorGuard
}

// NewCreateOrderTableCommand checks that the id is valid and a name is given.
// The length rule is enforced by the order table itself.
func NewCreateOrderTableCommand(tableID kernel.UUID, name string) (CreateOrderTableCommand, error) {
	if err := tableID.Validate(); err != nil {
		return CreateOrderTableCommand{}, err
	}
	if name == "" {
		return CreateOrderTableCommand{}, errs.NewValueIsRequiredError("order table name")
	}
	return CreateOrderTableCommand{tableID: tableID, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateOrderTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderTableCommandIsNotConstructed)
}

func (c CreateOrderTableCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c CreateOrderTableCommand) Name() string {
	return c.name
}

type orderTableIDCommand struct {
	tableID kernel.UUID
	guard   guard.ConstructorGuard
}

func newOrderTableIDCommand(tableID kernel.UUID) (orderTableIDCommand, error) {
	if err := tableID.Validate(); err != nil {
		return orderTableIDCommand{}, err
	}
	return orderTableIDCommand{tableID: tableID, guard: guard.NewConstructorGuard()}, nil
}

func (c orderTableIDCommand) Validate() error {
	return c.guard.Validate(ErrOrderTableCommandIsNotConstructed)
}

func (c orderTableIDCommand) TableID() kernel.UUID {
	return c.tableID
}

// SitOrderTableCommand marks a table occupied.
type SitOrderTableCommand struct{ orderTableIDCommand }

func NewSitOrderTableCommand(tableID kernel.UUID) (SitOrderTableCommand, error) {
	c, err := newOrderTableIDCommand(tableID)
	return SitOrderTableCommand{c}, err
}

// ClearOrderTableCommand empties a table once all its orders are completed.
type ClearOrderTableCommand struct{ orderTableIDCommand }

func NewClearOrderTableCommand(tableID kernel.UUID) (ClearOrderTableCommand, error) {
	c, err := newOrderTableIDCommand(tableID)
	return ClearOrderTableCommand{c}, err
}

// ChangeNumberOfGuestsCommand sets the guest count of an occupied table.
type ChangeNumberOfGuestsCommand struct {
	tableID        kernel.UUID
	numberOfGuests int
	guard          guard.ConstructorGuard
}

func NewChangeNumberOfGuestsCommand(tableID kernel.UUID, numberOfGuests int) (ChangeNumberOfGuestsCommand, error) {
	if err := tableID.Validate(); err != nil {
		return ChangeNumberOfGuestsCommand{}, err
	}
	return ChangeNumberOfGuestsCommand{
		tableID:        tableID,
		numberOfGuests: numberOfGuests,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeNumberOfGuestsCommand) Validate() error {
	return c.guard.Validate(ErrChangeNumberOfGuestsCommandIsNotConstructed)
}

func (c ChangeNumberOfGuestsCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c ChangeNumberOfGuestsCommand) NumberOfGuests() int {
	return c.numberOfGuests
}
