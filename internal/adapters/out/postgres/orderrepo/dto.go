// Package orderrepo persists Order aggregates in the orders and
// order_line_items tables.
package orderrepo

import (
	"sort"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table.
type OrderDTO struct {
	ID              uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Type            int                `gorm:"type:smallint;not null"`
	Status          int                `gorm:"type:smallint;not null;index"`
	DeliveryAddress string             `gorm:"type:text;not null;default:''"`
	OrderTableID    *uuid.UUID         `gorm:"type:uuid;index"`
	CreatedAt       time.Time          `gorm:"type:timestamptz;not null"`
	LineItems       []OrderLineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineItemDTO is a row of order_line_items. Seq keeps the order in
// which the items were requested.
type OrderLineItemDTO struct {
	OrderID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Seq      int             `gorm:"primaryKey;autoIncrement:false"`
	MenuID   uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity int64           `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(19,2);not null"`
}

func (OrderLineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var tableID *uuid.UUID
	if id := o.OrderTableID(); id != nil {
		raw := id.Bytes()
		tableID = &raw
	}

	orderID := o.ID().Bytes()
	lineItems := make([]OrderLineItemDTO, 0, len(o.LineItems()))
	for i, li := range o.LineItems() {
		lineItems = append(lineItems, OrderLineItemDTO{
			OrderID:  orderID,
			Seq:      i + 1,
			MenuID:   li.MenuID().Bytes(),
			Quantity: int64(li.Quantity()),
			Price:    li.Price(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		Type:            int(o.Type()),
		Status:          int(o.Status()),
		DeliveryAddress: o.DeliveryAddress(),
		OrderTableID:    tableID,
		CreatedAt:       o.CreatedAt(),
		LineItems:       lineItems,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tableID *kernel.UUID
	if dto.OrderTableID != nil {
		tID, tableErr := kernel.UUIDFromBytes((*dto.OrderTableID)[:])
		if tableErr != nil {
			return nil, tableErr
		}
		tableID = &tID
	}

	sort.Slice(dto.LineItems, func(i, j int) bool {
		return dto.LineItems[i].Seq < dto.LineItems[j].Seq
	})

	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, liDTO := range dto.LineItems {
		menuID, menuErr := kernel.UUIDFromBytes(liDTO.MenuID[:])
		if menuErr != nil {
			return nil, menuErr
		}
		li, liErr := order.NewLineItem(menuID, int(liDTO.Quantity), liDTO.Price)
		if liErr != nil {
			return nil, liErr
		}
		lineItems = append(lineItems, li)
	}

	return order.RestoreOrder(
		id,
		order.Type(dto.Type),
		order.Status(dto.Status),
		lineItems,
		dto.DeliveryAddress,
		tableID,
		dto.CreatedAt,
	)
}
