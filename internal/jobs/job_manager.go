package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops all scheduled jobs of the application.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
}

func NewJobManager(
	publishOutboxHandler outboxPublisher,
	outboxSchedule string,
	outboxBatchSize int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxRelayJob: NewOutboxRelayJob(publishOutboxHandler, outboxSchedule, outboxBatchSize, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxRelayJob.Stop()
}
