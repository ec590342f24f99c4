package ordertablerepo

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderTableRepository implements ports.OrderTableRepository using GORM.
type GormOrderTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderTableRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderTableRepository {
	return &GormOrderTableRepository{db: db, tracker: tracker}
}

func (r *GormOrderTableRepository) Add(ctx context.Context, table *ordertable.OrderTable) error {
	if err := table.Validate(); err != nil {
		return err
	}

	dto := fromDomain(table)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(table.ID(), table)
	return nil
}

// Update writes occupancy and guest count. Zero values are written too, so
// a cleared table is stored as empty.
func (r *GormOrderTableRepository) Update(ctx context.Context, table *ordertable.OrderTable) error {
	if err := table.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderTableDTO{}).
		Where("id = ?", table.ID().Bytes()).
		Updates(map[string]any{
			"name":             table.Name(),
			"number_of_guests": table.NumberOfGuests(),
			"occupied":         table.IsOccupied(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order table", table.ID().String())
	}

	r.tracker.TrackAggregate(table.ID(), table)
	return nil
}

// Get loads the table with SELECT ... FOR UPDATE.
func (r *GormOrderTableRepository) Get(ctx context.Context, id kernel.UUID) (*ordertable.OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderTableDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order table", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
