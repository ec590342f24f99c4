package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "kitchenpos/internal/adapters/in/http"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFunc[C, R any] func(ctx context.Context, c C) (R, error)

func (f handlerFunc[C, R]) Handle(ctx context.Context, c C) (R, error) {
	return f(ctx, c)
}

func newEcho(h httpadapter.Handlers) *echo.Echo {
	e := echo.New()
	httpadapter.NewServer(h, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(e)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func deliveryOrder(t *testing.T) *order.Order {
	t.Helper()
	li, err := order.NewLineItem(kernel.NewUUID(), 2, decimal.NewFromInt(16000))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), order.Delivery, []order.LineItem{li}, "Seoul, Gangnam", nil,
		time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.ErrorResponse {
	t.Helper()
	var resp httpadapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	rec := do(newEcho(httpadapter.Handlers{}), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestCreateOrder(t *testing.T) {
	menuID := kernel.NewUUID()

	t.Run("created", func(t *testing.T) {
		o := deliveryOrder(t)
		var got commands.CreateOrderCommand
		e := newEcho(httpadapter.Handlers{
			CreateOrder: handlerFunc[commands.CreateOrderCommand, *order.Order](
				func(_ context.Context, c commands.CreateOrderCommand) (*order.Order, error) {
					got = c
					return o, nil
				}),
		})

		rec := do(e, http.MethodPost, "/api/v1/orders", `{
			"type": "DELIVERY",
			"order_line_items": [{"menu_id": "`+menuID.String()+`", "quantity": 2, "price": "16000"}],
			"delivery_address": "Seoul, Gangnam"
		}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, order.Delivery, got.OrderType())
		require.Len(t, got.LineItems(), 1)
		assert.True(t, got.LineItems()[0].MenuID.IsEqual(menuID))
		require.NotNil(t, got.LineItems()[0].Price)
		assert.True(t, decimal.NewFromInt(16000).Equal(*got.LineItems()[0].Price))
		assert.Equal(t, "Seoul, Gangnam", got.DeliveryAddress())

		var resp httpadapter.OrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, o.ID().String(), resp.ID)
		assert.Equal(t, "DELIVERY", resp.Type)
		assert.Equal(t, "WAITING", resp.Status)
		require.Len(t, resp.LineItems, 1)
		assert.Equal(t, 2, resp.LineItems[0].Quantity)
	})

	t.Run("price is optional", func(t *testing.T) {
		var got commands.CreateOrderCommand
		e := newEcho(httpadapter.Handlers{
			CreateOrder: handlerFunc[commands.CreateOrderCommand, *order.Order](
				func(_ context.Context, c commands.CreateOrderCommand) (*order.Order, error) {
					got = c
					return deliveryOrder(t), nil
				}),
		})

		rec := do(e, http.MethodPost, "/api/v1/orders",
			`{"type":"TAKEOUT","order_line_items":[{"menu_id":"`+menuID.String()+`","quantity":1}]}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Nil(t, got.LineItems()[0].Price)
	})

	cases := []struct {
		name string
		body string
	}{
		{"malformed body", `{`},
		{"unknown type", `{"type":"DINE_OUT","order_line_items":[{"menu_id":"` + menuID.String() + `","quantity":1}]}`},
		{"missing type", `{"order_line_items":[{"menu_id":"` + menuID.String() + `","quantity":1}]}`},
		{"no line items", `{"type":"TAKEOUT","order_line_items":[]}`},
		{"bad menu id", `{"type":"TAKEOUT","order_line_items":[{"menu_id":"nope","quantity":1}]}`},
		{"bad table id", `{"type":"EAT_IN","order_line_items":[{"menu_id":"` + menuID.String() + `","quantity":1}],"order_table_id":"x"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := do(newEcho(httpadapter.Handlers{}), http.MethodPost, "/api/v1/orders", c.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	t.Run("handler errors are mapped", func(t *testing.T) {
		mapping := map[int]error{
			http.StatusNotFound:            errs.NewObjectNotFoundError("menu", menuID.String()),
			http.StatusConflict:            errs.NewStateConflictError("menu", "is not displayed"),
			http.StatusBadRequest:          errs.NewValueIsInvalidError("price"),
			http.StatusInternalServerError: errors.New("connection refused"),
		}
		for code, handlerErr := range mapping {
			e := newEcho(httpadapter.Handlers{
				CreateOrder: handlerFunc[commands.CreateOrderCommand, *order.Order](
					func(context.Context, commands.CreateOrderCommand) (*order.Order, error) {
						return nil, handlerErr
					}),
			})

			rec := do(e, http.MethodPost, "/api/v1/orders",
				`{"type":"TAKEOUT","order_line_items":[{"menu_id":"`+menuID.String()+`","quantity":1}]}`)

			assert.Equal(t, code, rec.Code)
			assert.Equal(t, handlerErr.Error(), decodeError(t, rec).Message)
		}
	})
}

func TestAcceptOrder(t *testing.T) {
	accept := func(err error) httpadapter.Handlers {
		return httpadapter.Handlers{
			AcceptOrder: handlerFunc[commands.AcceptOrderCommand, *order.Order](
				func(_ context.Context, c commands.AcceptOrderCommand) (*order.Order, error) {
					if err != nil {
						return nil, err
					}
					o := deliveryOrder(t)
					require.NoError(t, o.Accept())
					return o, nil
				}),
		}
	}

	t.Run("accepted", func(t *testing.T) {
		rec := do(newEcho(accept(nil)), http.MethodPut, "/api/v1/orders/"+kernel.NewUUID().String()+"/accept", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp httpadapter.OrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ACCEPTED", resp.Status)
	})

	t.Run("dispatch failure is bad gateway", func(t *testing.T) {
		dispatchErr := fmt.Errorf("%w: %w", ports.ErrDeliveryDispatchFailed, errors.New("publish nacked by broker"))
		rec := do(newEcho(accept(dispatchErr)), http.MethodPut,
			"/api/v1/orders/"+kernel.NewUUID().String()+"/accept", "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, dispatchErr.Error(), decodeError(t, rec).Message)
	})

	t.Run("storage failure is internal error", func(t *testing.T) {
		rec := do(newEcho(accept(errors.New("commit: connection reset"))), http.MethodPut,
			"/api/v1/orders/"+kernel.NewUUID().String()+"/accept", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("state conflict", func(t *testing.T) {
		rec := do(newEcho(accept(errs.NewStateConflictError("order", "in status SERVED cannot accept"))), http.MethodPut,
			"/api/v1/orders/"+kernel.NewUUID().String()+"/accept", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		rec := do(newEcho(accept(nil)), http.MethodPut, "/api/v1/orders/not-a-uuid/accept", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderTransitions_PassPathID(t *testing.T) {
	id := kernel.NewUUID()
	var seen []string
	record := func(name string, got kernel.UUID) (*order.Order, error) {
		assert.True(t, got.IsEqual(id))
		seen = append(seen, name)
		return deliveryOrder(t), nil
	}

	e := newEcho(httpadapter.Handlers{
		ServeOrder: handlerFunc[commands.ServeOrderCommand, *order.Order](
			func(_ context.Context, c commands.ServeOrderCommand) (*order.Order, error) {
				return record("serve", c.OrderID())
			}),
		StartDelivery: handlerFunc[commands.StartDeliveryCommand, *order.Order](
			func(_ context.Context, c commands.StartDeliveryCommand) (*order.Order, error) {
				return record("start-delivery", c.OrderID())
			}),
		CompleteDelivery: handlerFunc[commands.CompleteDeliveryCommand, *order.Order](
			func(_ context.Context, c commands.CompleteDeliveryCommand) (*order.Order, error) {
				return record("complete-delivery", c.OrderID())
			}),
		CompleteOrder: handlerFunc[commands.CompleteOrderCommand, *order.Order](
			func(_ context.Context, c commands.CompleteOrderCommand) (*order.Order, error) {
				return record("complete", c.OrderID())
			}),
	})

	for _, action := range []string{"serve", "start-delivery", "complete-delivery", "complete"} {
		rec := do(e, http.MethodPut, "/api/v1/orders/"+id.String()+"/"+action, "")
		assert.Equal(t, http.StatusOK, rec.Code, action)
	}
	assert.Equal(t, []string{"serve", "start-delivery", "complete-delivery", "complete"}, seen)
}

func TestGetOrders(t *testing.T) {
	tableID := kernel.NewUUID()
	e := newEcho(httpadapter.Handlers{
		GetAllOrders: handlerFunc[queries.GetAllOrdersQuery, []queries.GetAllOrdersQueryResponse](
			func(context.Context, queries.GetAllOrdersQuery) ([]queries.GetAllOrdersQueryResponse, error) {
				return []queries.GetAllOrdersQueryResponse{{
					ID:           kernel.NewUUID(),
					Type:         "EAT_IN",
					Status:       "SERVED",
					OrderTableID: &tableID,
					LineItems: []queries.OrderLineItemResponse{
						{MenuID: kernel.NewUUID(), Quantity: -1, Price: decimal.NewFromInt(1000)},
					},
				}}, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/orders", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []httpadapter.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "EAT_IN", resp[0].Type)
	require.NotNil(t, resp[0].OrderTableID)
	assert.Equal(t, tableID.String(), *resp[0].OrderTableID)
	assert.Equal(t, -1, resp[0].LineItems[0].Quantity)
}

func TestOrderTables(t *testing.T) {
	newTable := func(t *testing.T) *ordertable.OrderTable {
		table, err := ordertable.NewOrderTable(kernel.NewUUID(), "table 1")
		require.NoError(t, err)
		return table
	}

	t.Run("create", func(t *testing.T) {
		e := newEcho(httpadapter.Handlers{
			CreateOrderTable: handlerFunc[commands.CreateOrderTableCommand, *ordertable.OrderTable](
				func(_ context.Context, c commands.CreateOrderTableCommand) (*ordertable.OrderTable, error) {
					return ordertable.NewOrderTable(c.TableID(), c.Name())
				}),
		})

		rec := do(e, http.MethodPost, "/api/v1/order-tables", `{"name":"window"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp httpadapter.OrderTableResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "window", resp.Name)
		assert.False(t, resp.Occupied)
	})

	t.Run("create without name", func(t *testing.T) {
		rec := do(newEcho(httpadapter.Handlers{}), http.MethodPost, "/api/v1/order-tables", `{"name":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("change number of guests", func(t *testing.T) {
		var guests int
		e := newEcho(httpadapter.Handlers{
			ChangeNumberOfGuests: handlerFunc[commands.ChangeNumberOfGuestsCommand, *ordertable.OrderTable](
				func(_ context.Context, c commands.ChangeNumberOfGuestsCommand) (*ordertable.OrderTable, error) {
					guests = c.NumberOfGuests()
					table := newTable(t)
					table.Sit()
					return table, table.ChangeNumberOfGuests(c.NumberOfGuests())
				}),
		})

		rec := do(e, http.MethodPut, "/api/v1/order-tables/"+kernel.NewUUID().String()+"/number-of-guests",
			`{"number_of_guests":4}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 4, guests)
	})

	t.Run("sit", func(t *testing.T) {
		e := newEcho(httpadapter.Handlers{
			SitOrderTable: handlerFunc[commands.SitOrderTableCommand, *ordertable.OrderTable](
				func(context.Context, commands.SitOrderTableCommand) (*ordertable.OrderTable, error) {
					table := newTable(t)
					table.Sit()
					return table, nil
				}),
		})

		rec := do(e, http.MethodPut, "/api/v1/order-tables/"+kernel.NewUUID().String()+"/sit", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp httpadapter.OrderTableResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Occupied)
	})

	t.Run("clear with open orders", func(t *testing.T) {
		e := newEcho(httpadapter.Handlers{
			ClearOrderTable: handlerFunc[commands.ClearOrderTableCommand, *ordertable.OrderTable](
				func(context.Context, commands.ClearOrderTableCommand) (*ordertable.OrderTable, error) {
					return nil, errs.NewStateConflictError("order table", "has orders that are not completed")
				}),
		})

		rec := do(e, http.MethodPut, "/api/v1/order-tables/"+kernel.NewUUID().String()+"/clear", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		e := newEcho(httpadapter.Handlers{
			GetAllOrderTables: handlerFunc[queries.GetAllOrderTablesQuery, []queries.GetAllOrderTablesQueryResponse](
				func(context.Context, queries.GetAllOrderTablesQuery) ([]queries.GetAllOrderTablesQueryResponse, error) {
					return []queries.GetAllOrderTablesQueryResponse{{ID: kernel.NewUUID(), Name: "a", NumberOfGuests: 2, Occupied: true}}, nil
				}),
		})

		rec := do(e, http.MethodGet, "/api/v1/order-tables", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []httpadapter.OrderTableResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, 2, resp[0].NumberOfGuests)
	})
}

func TestSyncMenu(t *testing.T) {
	id := kernel.NewUUID()
	e := newEcho(httpadapter.Handlers{
		SyncMenu: handlerFunc[commands.SyncMenuCommand, *menu.Menu](
			func(_ context.Context, c commands.SyncMenuCommand) (*menu.Menu, error) {
				return c.Menu(), nil
			}),
	})

	t.Run("stores snapshot", func(t *testing.T) {
		rec := do(e, http.MethodPut, "/api/v1/menus/"+id.String(), `{"name":"chicken","price":"16000","displayed":true}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp httpadapter.MenuResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, id.String(), resp.ID)
		assert.True(t, decimal.NewFromInt(16000).Equal(resp.Price))
		assert.True(t, resp.Displayed)
	})

	t.Run("negative price", func(t *testing.T) {
		rec := do(e, http.MethodPut, "/api/v1/menus/"+id.String(), `{"name":"chicken","price":"-1","displayed":true}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
