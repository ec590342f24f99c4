package commands

import (
	"context"
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

const DefaultOutboxBatchSize = 100

var ErrPublishOutboxEventsCommandIsNotConstructed = errors.New(
	"PublishOutboxEventsCommand must be created via NewPublishOutboxEventsCommand constructor",
)

// PublishOutboxEventsCommand relays up to BatchSize stored events.
type PublishOutboxEventsCommand struct {
	batchSize int
	guard     guard.ConstructorGuard
}

func NewPublishOutboxEventsCommand(batchSize int) (PublishOutboxEventsCommand, error) {
	if batchSize <= 0 {
		return PublishOutboxEventsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"outbox batch size", fmt.Errorf("%d is not greater than 0", batchSize),
		)
	}
	return PublishOutboxEventsCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c PublishOutboxEventsCommand) Validate() error {
	return c.guard.Validate(ErrPublishOutboxEventsCommandIsNotConstructed)
}

func (c PublishOutboxEventsCommand) BatchSize() int {
	return c.batchSize
}

// PublishOutboxEventsCommandHandler publishes stored events oldest first and
// deletes the ones that were published. It stops at the first publish error;
// the events published before it are still deleted, the rest stay for the
// next run.
type PublishOutboxEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

func NewPublishOutboxEventsCommandHandler(uowFactory OutboxUoWFactory, publisher ports.EventPublisher) PublishOutboxEventsCommandHandler {
	return PublishOutboxEventsCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

// Handle returns the number of published events.
func (h PublishOutboxEventsCommandHandler) Handle(ctx context.Context, command PublishOutboxEventsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()

	messages, err := repo.GetUnpublished(ctx, command.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	published := make([]kernel.UUID, 0, len(messages))
	var publishErr error
	for _, m := range messages {
		if publishErr = h.publisher.Publish(ctx, m.Name, m.Payload); publishErr != nil {
			break
		}
		published = append(published, m.ID)
	}

	if len(published) > 0 {
		if err = repo.Delete(ctx, published); err != nil {
			return 0, err
		}
		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
	}

	return len(published), publishErr
}
