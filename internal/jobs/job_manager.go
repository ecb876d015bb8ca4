package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Schedules holds the cron expressions of the jobs, each with a leading
// seconds field.
type Schedules struct {
	DailyRevenue string
	OpenOrders   string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dailyRevenueJob *DailyRevenueJob
	openOrdersJob   *OpenOrdersJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	reporter RevenueReporter,
	lister OpenOrdersLister,
	schedules Schedules,
	now func() time.Time,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dailyRevenueJob: NewDailyRevenueJob(reporter, schedules.DailyRevenue, now, logger),
		openOrdersJob:   NewOpenOrdersJob(lister, schedules.OpenOrders, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.openOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start open orders job: %w", err)
	}

	if err := jm.dailyRevenueJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.openOrdersJob.Stop()
		return fmt.Errorf("failed to start daily revenue job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dailyRevenueJob.Stop()
	jm.openOrdersJob.Stop()
}
