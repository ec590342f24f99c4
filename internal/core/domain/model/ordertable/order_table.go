// Package ordertable provides the OrderTable aggregate: a physical table that
// guests sit at and EAT_IN orders are placed for.
package ordertable

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

const (
	MinNameLength = 1
	MaxNameLength = 255
)

var ErrOrderTableIsNotConstructed = errors.New("OrderTable must be created via NewOrderTable or RestoreOrderTable")

// OrderTable tracks whether a table is occupied and how many guests sit at it.
// An empty table always has zero guests.
type OrderTable struct {
	id             kernel.UUID
	name           string
	numberOfGuests int
	occupied       bool
	guard          guard.ConstructorGuard
}

// NewOrderTable creates an empty table. The name must be 1 to 255 characters long.
func NewOrderTable(id kernel.UUID, name string) (*OrderTable, error) {
	t := &OrderTable{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreOrderTable rebuilds a table from persistence.
func RestoreOrderTable(id kernel.UUID, name string, numberOfGuests int, occupied bool) (*OrderTable, error) {
	t := &OrderTable{
		occupied: occupied,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setNumberOfGuests(numberOfGuests),
	); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *OrderTable) Validate() error {
	if t == nil {
		return ErrOrderTableIsNotConstructed
	}
	return t.guard.Validate(ErrOrderTableIsNotConstructed)
}

func (t *OrderTable) ID() kernel.UUID {
	return t.id
}

func (t *OrderTable) Name() string {
	return t.name
}

func (t *OrderTable) NumberOfGuests() int {
	return t.numberOfGuests
}

func (t *OrderTable) IsOccupied() bool {
	return t.occupied
}

// Sit marks the table occupied. Sitting at an occupied table is a no-op.
func (t *OrderTable) Sit() {
	t.occupied = true
}

// Clear empties the table and resets the guest count. Callers check that no
// order placed for the table is still open.
func (t *OrderTable) Clear() {
	t.numberOfGuests = 0
	t.occupied = false
}

// ChangeNumberOfGuests sets the guest count of an occupied table.
func (t *OrderTable) ChangeNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsInvalidErrorWithCause("number of guests", fmt.Errorf("%d is negative", numberOfGuests))
	}
	if !t.occupied {
		return errs.NewStateConflictError("order table", fmt.Sprintf("%s is not occupied", t.id))
	}
	t.numberOfGuests = numberOfGuests
	return nil
}

// ValidateAcceptsEatInOrder fails unless guests sit at the table.
func (t *OrderTable) ValidateAcceptsEatInOrder() error {
	if !t.occupied {
		return errs.NewStateConflictError("order table", fmt.Sprintf("%s is not occupied", t.id))
	}
	return nil
}

func (t *OrderTable) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *OrderTable) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("order table name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("order table name length", n, MinNameLength, MaxNameLength)
	}
	t.name = name
	return nil
}

func (t *OrderTable) setNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsInvalidErrorWithCause("number of guests", fmt.Errorf("%d is negative", numberOfGuests))
	}
	t.numberOfGuests = numberOfGuests
	return nil
}
