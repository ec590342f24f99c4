// Package menu models the catalog menu as the order lifecycle sees it: a
// read-only snapshot of identity, current price and the displayed flag.
// Catalog management (menu groups, products, price changes) lives elsewhere.
package menu

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrMenuIsNotConstructed = errors.New("Menu must be created via RestoreMenu")

// MaxPriceScale is the number of decimal places a stored price keeps.
const MaxPriceScale = 2

// Menu is a catalog entry that can be ordered while it is displayed.
type Menu struct {
	id        kernel.UUID
	name      string
	price     decimal.Decimal
	displayed bool
	guard     guard.ConstructorGuard
}

// RestoreMenu rebuilds a menu from the catalog. The name is required and the
// price must not be negative nor have more than MaxPriceScale decimal places.
func RestoreMenu(id kernel.UUID, name string, price decimal.Decimal, displayed bool) (*Menu, error) {
	m := &Menu{
		displayed: displayed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPrice(price),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Menu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

func (m *Menu) ID() kernel.UUID {
	return m.id
}

func (m *Menu) Name() string {
	return m.name
}

func (m *Menu) Price() decimal.Decimal {
	return m.price
}

func (m *Menu) IsDisplayed() bool {
	return m.displayed
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menu name")
	}
	m.name = name
	return nil
}

func (m *Menu) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("menu price", fmt.Errorf("%s is negative", price))
	}
	if !price.Equal(price.Round(MaxPriceScale)) {
		return errs.NewValueIsInvalidErrorWithCause("menu price",
			fmt.Errorf("%s has more than %d decimal places", price, MaxPriceScale))
	}
	m.price = price
	return nil
}
