// Package outboxrepo stores domain events waiting to be published.
package outboxrepo

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"

	"github.com/google/uuid"
)

type OutboxDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Payload    []byte    `gorm:"type:bytea;not null"`
	OccurredAt time.Time `gorm:"type:timestamptz;not null;index"`
}

func (OutboxDTO) TableName() string {
	return "outbox"
}

func toMessage(dto OutboxDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{
		ID:         id,
		Name:       dto.Name,
		Payload:    dto.Payload,
		OccurredAt: dto.OccurredAt,
	}, nil
}
