package jobs

import (
	"context"
	"log/slog"
	"time"

	"fnbpos/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// RevenueReporter computes the revenue of one day.
// queries.GetDailyRevenueQueryHandler satisfies it.
type RevenueReporter interface {
	Handle(ctx context.Context, query queries.GetDailyRevenueQuery) (queries.GetDailyRevenueQueryResponse, error)
}

// DailyRevenueJob logs the previous day's revenue on a cron schedule.
type DailyRevenueJob struct {
	reporter RevenueReporter
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDailyRevenueJob creates a job that runs reporter on schedule, a cron
// expression with a leading seconds field.
func NewDailyRevenueJob(
	reporter RevenueReporter,
	schedule string,
	now func() time.Time,
	logger *slog.Logger,
) *DailyRevenueJob {
	return &DailyRevenueJob{
		reporter: reporter,
		schedule: schedule,
		now:      now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "daily_revenue_job"),
	}
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *DailyRevenueJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Daily revenue job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily revenue job started", "schedule", j.schedule)
	return nil
}

// Run reports the day before now immediately.
func (j *DailyRevenueJob) Run(ctx context.Context) (queries.GetDailyRevenueQueryResponse, error) {
	query, err := queries.NewGetDailyRevenueQuery(j.now().AddDate(0, 0, -1))
	if err != nil {
		return queries.GetDailyRevenueQueryResponse{}, err
	}

	revenue, err := j.reporter.Handle(ctx, query)
	if err != nil {
		return queries.GetDailyRevenueQueryResponse{}, err
	}

	j.logger.InfoContext(ctx, "Daily revenue",
		"day", revenue.Day.Format(time.DateOnly),
		"orders", revenue.OrderCount,
		"goods_amount", revenue.GoodsAmount,
		"tax_amount", revenue.TaxAmount,
		"payable_amount", revenue.PayableAmount,
	)
	return revenue, nil
}

// Stop stops the daily revenue job.
func (j *DailyRevenueJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily revenue job stopped")
}
