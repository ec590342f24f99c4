package menurepo

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// Save upserts the menu by id.
func (r *GormMenuRepository) Save(ctx context.Context, m *menu.Menu) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := fromDomain(m)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price", "displayed"}),
		}).
		Create(&dto).Error
}

func (r *GormMenuRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error) {
	if len(ids) == 0 {
		return []*menu.Menu{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	menus := make([]*menu.Menu, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}

	return menus, nil
}
