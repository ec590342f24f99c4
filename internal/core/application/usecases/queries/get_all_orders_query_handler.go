package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads orders and their line items with two plain
// SQL statements. Orders come back oldest first; line items keep the order in
// which they were requested.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := h.readOrders(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	if err := h.readLineItems(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetAllOrdersQueryHandler) readOrders(
	ctx context.Context,
) ([]GetAllOrdersQueryResponse, map[uuid.UUID]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			status,
			delivery_address,
			order_table_id,
			created_at
		FROM orders
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	orders := make([]GetAllOrdersQueryResponse, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			o            GetAllOrdersQueryResponse
			id           uuid.UUID
			orderType    int16
			status       int16
			orderTableID uuid.NullUUID
		)

		if err := rows.Scan(&id, &orderType, &status, &o.DeliveryAddress, &orderTableID, &o.CreatedAt); err != nil {
			return nil, nil, err
		}

		if o.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, nil, err
		}
		if orderTableID.Valid {
			tableID, err := kernel.UUIDFromBytes(orderTableID.UUID[:])
			if err != nil {
				return nil, nil, err
			}
			o.OrderTableID = &tableID
		}
		o.Type = order.Type(orderType).String()
		o.Status = order.Status(status).String()
		o.LineItems = make([]OrderLineItemResponse, 0)

		index[id] = len(orders)
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, index, nil
}

func (h GetAllOrdersQueryHandler) readLineItems(
	ctx context.Context,
	orders []GetAllOrdersQueryResponse,
	index map[uuid.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_id,
			quantity,
			price
		FROM order_line_items
		ORDER BY order_id, seq
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID  uuid.UUID
			menuID   uuid.UUID
			quantity int64
			price    decimal.Decimal
		)

		if err := rows.Scan(&orderID, &menuID, &quantity, &price); err != nil {
			return err
		}

		i, ok := index[orderID]
		if !ok {
			// inserted after the orders were read
			continue
		}

		id, err := kernel.UUIDFromBytes(menuID[:])
		if err != nil {
			return err
		}
		orders[i].LineItems = append(orders[i].LineItems, OrderLineItemResponse{
			MenuID:   id,
			Quantity: int(quantity),
			Price:    price,
		})
	}

	return rows.Err()
}
