package services_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenu(t *testing.T, price string, displayed bool) *menu.Menu {
	t.Helper()
	m, err := menu.RestoreMenu(kernel.NewUUID(), "Fried chicken", decimal.RequireFromString(price), displayed)
	require.NoError(t, err)
	return m
}

func catalog(menus ...*menu.Menu) map[kernel.UUID]*menu.Menu {
	out := make(map[kernel.UUID]*menu.Menu, len(menus))
	for _, m := range menus {
		out[m.ID()] = m
	}
	return out
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestLineItemMatcher_Match(t *testing.T) {
	matcher := services.NewLineItemMatcher()

	t.Run("should snapshot menu prices in request order", func(t *testing.T) {
		chicken := newMenu(t, "16000", true)
		cola := newMenu(t, "1500", true)
		requested := []services.RequestedLineItem{
			{MenuID: chicken.ID(), Quantity: 1, Price: price("16000.00")},
			{MenuID: cola.ID(), Quantity: 2},
		}

		items, err := matcher.Match(order.Takeout, requested, catalog(chicken, cola))

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.True(t, items[0].MenuID().IsEqual(chicken.ID()))
		assert.True(t, decimal.NewFromInt(16000).Equal(items[0].Price()))
		assert.True(t, items[1].MenuID().IsEqual(cola.ID()))
		assert.Equal(t, 2, items[1].Quantity())
		assert.True(t, decimal.NewFromInt(3000).Equal(items[1].Amount()))
	})

	t.Run("should require line items", func(t *testing.T) {
		_, err := matcher.Match(order.Delivery, nil, catalog())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should report unknown menu", func(t *testing.T) {
		requested := []services.RequestedLineItem{{MenuID: kernel.NewUUID(), Quantity: 1}}

		_, err := matcher.Match(order.Takeout, requested, catalog())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject negative quantity unless eat-in", func(t *testing.T) {
		m := newMenu(t, "1000", true)
		requested := []services.RequestedLineItem{{MenuID: m.ID(), Quantity: -1}}

		for _, orderType := range []order.Type{order.Delivery, order.Takeout} {
			_, err := matcher.Match(orderType, requested, catalog(m))
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, orderType.String())
		}

		items, err := matcher.Match(order.EatIn, requested, catalog(m))
		require.NoError(t, err)
		assert.Equal(t, -1, items[0].Quantity())
	})

	t.Run("should reject hidden menu", func(t *testing.T) {
		m := newMenu(t, "1000", false)

		for _, orderType := range order.Types() {
			_, err := matcher.Match(orderType, []services.RequestedLineItem{{MenuID: m.ID(), Quantity: 1}}, catalog(m))
			require.ErrorIs(t, err, errs.ErrStateConflict, orderType.String())
		}
	})

	t.Run("should reject price mismatch", func(t *testing.T) {
		m := newMenu(t, "1000", true)

		_, err := matcher.Match(order.Takeout, []services.RequestedLineItem{{MenuID: m.ID(), Quantity: 1, Price: price("999")}}, catalog(m))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "does not match menu price")
	})

	t.Run("should check quantities before display flags across all items", func(t *testing.T) {
		hidden := newMenu(t, "1000", false)
		shown := newMenu(t, "1000", true)
		requested := []services.RequestedLineItem{
			{MenuID: hidden.ID(), Quantity: 1},
			{MenuID: shown.ID(), Quantity: -3},
		}

		_, err := matcher.Match(order.Delivery, requested, catalog(hidden, shown))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.NotErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("should check display flags before prices", func(t *testing.T) {
		hidden := newMenu(t, "1000", false)
		shown := newMenu(t, "1000", true)
		requested := []services.RequestedLineItem{
			{MenuID: shown.ID(), Quantity: 1, Price: price("1")},
			{MenuID: hidden.ID(), Quantity: 1},
		}

		_, err := matcher.Match(order.Takeout, requested, catalog(hidden, shown))

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}
