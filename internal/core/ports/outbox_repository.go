package ports

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event stored in the same transaction as the
// aggregate that raised it, waiting to be published.
type OutboxMessage struct {
	ID         kernel.UUID
	Name       string
	Payload    []byte
	OccurredAt time.Time
}

// OutboxRepository reads and removes stored events. Events are written by the
// unit of work on commit.
type OutboxRepository interface {
	// GetUnpublished returns up to limit messages, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	Delete(ctx context.Context, ids []kernel.UUID) error
}
