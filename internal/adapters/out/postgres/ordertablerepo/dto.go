// Package ordertablerepo persists OrderTable aggregates in the order_tables table.
package ordertablerepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"

	"github.com/google/uuid"
)

type OrderTableDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	NumberOfGuests int       `gorm:"type:int;not null;default:0"`
	Occupied       bool      `gorm:"not null;default:false"`
}

func (OrderTableDTO) TableName() string {
	return "order_tables"
}

func fromDomain(t *ordertable.OrderTable) OrderTableDTO {
	return OrderTableDTO{
		ID:             t.ID().Bytes(),
		Name:           t.Name(),
		NumberOfGuests: t.NumberOfGuests(),
		Occupied:       t.IsOccupied(),
	}
}

func toDomain(dto OrderTableDTO) (*ordertable.OrderTable, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return ordertable.RestoreOrderTable(id, dto.Name, dto.NumberOfGuests, dto.Occupied)
}
