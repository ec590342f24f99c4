package outboxrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add serializes events with encoding/json and stores them. It is called by
// the unit of work inside the aggregate's transaction.
func (r *GormOutboxRepository) Add(ctx context.Context, events []kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OutboxDTO, 0, len(events))
	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal %s event: %w", e.EventName(), err)
		}
		dtos = append(dtos, OutboxDTO{
			ID:         e.EventID().Bytes(),
			Name:       e.EventName(),
			Payload:    payload,
			OccurredAt: e.OccurredOn(),
		})
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetUnpublished locks up to limit rows, skipping rows locked by another
// relay, so concurrent relays never publish the same event twice.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toMessage(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, nil
}

func (r *GormOutboxRepository) Delete(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	return r.db.WithContext(ctx).Where("id IN ?", raw).Delete(&OutboxDTO{}).Error
}
