package jobs

import (
	"fmt"
	"log/slog"

	"sellerhub/internal/core/application/usecases/queries"
	"sellerhub/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleReadyOrdersJob *StaleReadyOrdersJob
	dailyEarningsJob    *DailyEarningsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	orders ports.OrderRepository,
	walletHandler queries.WalletSummaryQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleReadyOrdersJob: NewStaleReadyOrdersJob(orders, logger),
		dailyEarningsJob:    NewDailyEarningsJob(walletHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleReadyOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale ready orders job: %w", err)
	}

	if err := jm.dailyEarningsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.staleReadyOrdersJob.Stop()
		return fmt.Errorf("failed to start daily earnings job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dailyEarningsJob.Stop()
	jm.staleReadyOrdersJob.Stop()
}
