// Package jobs provides scheduled background tasks for kitchenpos.
//
// Jobs run on github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// OutboxRelayJob publishes the order events stored in the outbox table to the
// message broker. Each run handles one batch; rows are removed once the
// broker confirmed them, so rows a failed run left behind are read again on
// the next tick.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(publishOutboxHandler, "* * * * * *", 100, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
