package services

import (
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// RequestedLineItem is a line item as the customer asked for it. Price is
// optional; when set it must equal the current menu price.
type RequestedLineItem struct {
	MenuID   kernel.UUID
	Quantity int
	Price    *decimal.Decimal
}

// LineItemMatcher validates requested line items against menus.
//
// Checks run in this order, each over every item before the next starts, so
// the reported error does not depend on item order:
//   - every menu is known (errs.ObjectNotFoundError)
//   - quantities are not negative unless the order is EAT_IN (errs.ValueIsInvalidError)
//   - every menu is displayed (errs.StateConflictError)
//   - a given price equals the menu price (errs.ValueIsInvalidError)
type LineItemMatcher struct{}

func NewLineItemMatcher() LineItemMatcher {
	return LineItemMatcher{}
}

// Match returns the order line items, priced with the menu price, in the
// order they were requested.
func (LineItemMatcher) Match(
	orderType order.Type,
	requested []RequestedLineItem,
	menus map[kernel.UUID]*menu.Menu,
) ([]order.LineItem, error) {
	if len(requested) == 0 {
		return nil, errs.NewValueIsRequiredError("order line items")
	}

	for _, r := range requested {
		m, ok := menus[r.MenuID]
		if !ok || m == nil {
			return nil, errs.NewObjectNotFoundError("menu", r.MenuID)
		}
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}

	if orderType != order.EatIn {
		for _, r := range requested {
			if r.Quantity < 0 {
				return nil, errs.NewValueIsInvalidErrorWithCause("order line item quantity", fmt.Errorf("%d is negative", r.Quantity))
			}
		}
	}

	for _, r := range requested {
		if m := menus[r.MenuID]; !m.IsDisplayed() {
			return nil, errs.NewStateConflictError("menu", fmt.Sprintf("%s is not displayed", m.ID()))
		}
	}

	for _, r := range requested {
		if m := menus[r.MenuID]; r.Price != nil && !r.Price.Equal(m.Price()) {
			return nil, errs.NewValueIsInvalidErrorWithCause("order line item price", fmt.Errorf("%s does not match menu price %s", r.Price, m.Price()))
		}
	}

	items := make([]order.LineItem, 0, len(requested))
	for _, r := range requested {
		li, err := order.NewLineItem(r.MenuID, r.Quantity, menus[r.MenuID].Price())
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return items, nil
}
