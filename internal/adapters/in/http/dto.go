package http

import (
	"time"

	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type OrderLineItemRequest struct {
	MenuID   string           `json:"menu_id"`
	Quantity int              `json:"quantity"`
	Price    *decimal.Decimal `json:"price,omitempty"`
}

type CreateOrderRequest struct {
	Type            string                 `json:"type"`
	LineItems       []OrderLineItemRequest `json:"order_line_items"`
	DeliveryAddress string                 `json:"delivery_address"`
	OrderTableID    *string                `json:"order_table_id"`
}

type OrderLineItemResponse struct {
	MenuID   string          `json:"menu_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderResponse struct {
	ID              string                  `json:"id"`
	Type            string                  `json:"type"`
	Status          string                  `json:"status"`
	OrderDateTime   time.Time               `json:"order_date_time"`
	LineItems       []OrderLineItemResponse `json:"order_line_items"`
	DeliveryAddress string                  `json:"delivery_address,omitempty"`
	OrderTableID    *string                 `json:"order_table_id,omitempty"`
}

type CreateOrderTableRequest struct {
	Name string `json:"name"`
}

type ChangeNumberOfGuestsRequest struct {
	NumberOfGuests int `json:"number_of_guests"`
}

type OrderTableResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NumberOfGuests int    `json:"number_of_guests"`
	Occupied       bool   `json:"occupied"`
}

type SyncMenuRequest struct {
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Displayed bool            `json:"displayed"`
}

type MenuResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Displayed bool            `json:"displayed"`
}

func optionalID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderLineItemResponse, 0, len(o.LineItems()))
	for _, li := range o.LineItems() {
		items = append(items, OrderLineItemResponse{
			MenuID:   li.MenuID().String(),
			Quantity: li.Quantity(),
			Price:    li.Price(),
		})
	}

	return OrderResponse{
		ID:              o.ID().String(),
		Type:            o.Type().String(),
		Status:          o.Status().String(),
		OrderDateTime:   o.CreatedAt(),
		LineItems:       items,
		DeliveryAddress: o.DeliveryAddress(),
		OrderTableID:    optionalID(o.OrderTableID()),
	}
}

func fromOrderReadModel(o queries.GetAllOrdersQueryResponse) OrderResponse {
	items := make([]OrderLineItemResponse, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		items = append(items, OrderLineItemResponse{
			MenuID:   li.MenuID.String(),
			Quantity: li.Quantity,
			Price:    li.Price,
		})
	}

	return OrderResponse{
		ID:              o.ID.String(),
		Type:            o.Type,
		Status:          o.Status,
		OrderDateTime:   o.CreatedAt,
		LineItems:       items,
		DeliveryAddress: o.DeliveryAddress,
		OrderTableID:    optionalID(o.OrderTableID),
	}
}

func toOrderTableResponse(t *ordertable.OrderTable) OrderTableResponse {
	return OrderTableResponse{
		ID:             t.ID().String(),
		Name:           t.Name(),
		NumberOfGuests: t.NumberOfGuests(),
		Occupied:       t.IsOccupied(),
	}
}

func fromOrderTableReadModel(t queries.GetAllOrderTablesQueryResponse) OrderTableResponse {
	return OrderTableResponse{
		ID:             t.ID.String(),
		Name:           t.Name,
		NumberOfGuests: t.NumberOfGuests,
		Occupied:       t.Occupied,
	}
}

func toMenuResponse(m *menu.Menu) MenuResponse {
	return MenuResponse{
		ID:        m.ID().String(),
		Name:      m.Name(),
		Price:     m.Price(),
		Displayed: m.IsDisplayed(),
	}
}
