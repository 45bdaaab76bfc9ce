package jobs

import (
	"fmt"
	"log/slog"

	"foodorders/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderStatusJob *OrderStatusJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	advanceOrderStatusesHandler commands.AdvanceOrderStatusesCommandHandler,
	orderStatusSchedule string,
	logger *slog.Logger,
	opts ...Option,
) *JobManager {
	return &JobManager{
		orderStatusJob: NewOrderStatusJob(advanceOrderStatusesHandler, orderStatusSchedule, logger, opts...),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatusJob.Start(); err != nil {
		return fmt.Errorf("failed to start order status job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs, waiting for running ticks.
func (jm *JobManager) StopAll() {
	jm.orderStatusJob.Stop()
}
