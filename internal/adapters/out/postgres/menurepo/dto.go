// Package menurepo stores the local snapshot of the menu catalog.
package menurepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	Displayed bool            `gorm:"not null"`
}

func (MenuDTO) TableName() string {
	return "menus"
}

func fromDomain(m *menu.Menu) MenuDTO {
	return MenuDTO{
		ID:        m.ID().Bytes(),
		Name:      m.Name(),
		Price:     m.Price(),
		Displayed: m.IsDisplayed(),
	}
}

func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return menu.RestoreMenu(id, dto.Name, dto.Price, dto.Displayed)
}
