package commands_test

import (
	"testing"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testMenu(t *testing.T, price int64, displayed bool) *menu.Menu {
	t.Helper()
	m, err := menu.RestoreMenu(kernel.NewUUID(), "Fried chicken", decimal.NewFromInt(price), displayed)
	require.NoError(t, err)
	return m
}

// testOrder restores an order of the given type and status with one line
// item of two portions at 16000.
func testOrder(t *testing.T, orderType order.Type, status order.Status) *order.Order {
	t.Helper()
	li, err := order.NewLineItem(kernel.NewUUID(), 2, decimal.NewFromInt(16000))
	require.NoError(t, err)
	tableID := kernel.NewUUID()
	o, err := order.RestoreOrder(kernel.NewUUID(), orderType, status, []order.LineItem{li}, "Seoul, Gangnam", &tableID, time.Now())
	require.NoError(t, err)
	return o
}

func testTable(t *testing.T, guests int, occupied bool) *ordertable.OrderTable {
	t.Helper()
	table, err := ordertable.RestoreOrderTable(kernel.NewUUID(), "Table 1", guests, occupied)
	require.NoError(t, err)
	return table
}
