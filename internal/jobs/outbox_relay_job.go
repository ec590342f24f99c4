package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"kitchenpos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxSchedule runs the relay every second.
const DefaultOutboxSchedule = "* * * * * *"

type outboxPublisher interface {
	Handle(ctx context.Context, command commands.PublishOutboxEventsCommand) (int, error)
}

// OutboxRelayJob periodically publishes pending outbox events.
type OutboxRelayJob struct {
	handler   outboxPublisher
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates the relay job. An empty schedule falls back to
// DefaultOutboxSchedule and a non positive batch size to
// commands.DefaultOutboxBatchSize.
func NewOutboxRelayJob(handler outboxPublisher, schedule string, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultOutboxSchedule
	}
	if batchSize <= 0 {
		batchSize = commands.DefaultOutboxBatchSize
	}

	return &OutboxRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		// runs never overlap
		cron:   cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("invalid outbox schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// Run publishes one batch. Failures are logged; unpublished rows stay in the
// outbox and are read again on the next tick.
func (j *OutboxRelayJob) Run(ctx context.Context) {
	cmd, err := commands.NewPublishOutboxEventsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return
	}

	published, err := j.handler.Handle(ctx, cmd)
	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox events published", "count", published)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err, "published", published)
	}
}

// Stop stops scheduling and waits for a running batch to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
