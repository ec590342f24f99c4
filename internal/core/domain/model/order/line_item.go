package order

import (
	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// LineItem is one menu on an order. Price is the menu price at the time the
// order was placed; later menu price changes do not affect it.
type LineItem struct {
	menuID   kernel.UUID
	quantity int
	price    decimal.Decimal
}

// NewLineItem builds a line item. Quantity rules depend on the order type and
// are checked when the order is assembled.
func NewLineItem(menuID kernel.UUID, quantity int, price decimal.Decimal) (LineItem, error) {
	if err := menuID.Validate(); err != nil {
		return LineItem{}, err
	}
	return LineItem{menuID: menuID, quantity: quantity, price: price}, nil
}

func (li LineItem) MenuID() kernel.UUID {
	return li.menuID
}

func (li LineItem) Quantity() int {
	return li.quantity
}

func (li LineItem) Price() decimal.Decimal {
	return li.price
}

// Amount is price times quantity.
func (li LineItem) Amount() decimal.Decimal {
	return li.price.Mul(decimal.NewFromInt(int64(li.quantity)))
}
