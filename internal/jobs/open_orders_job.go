package jobs

import (
	"context"
	"log/slog"

	"fnbpos/internal/core/application/usecases/queries"
	"fnbpos/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
)

var openOrders = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "fnbpos_open_orders",
		Help: "Number of orders that are neither completed nor cancelled, by status",
	},
	[]string{"status"},
)

// OpenOrdersLister lists the open orders.
// queries.GetOpenOrdersQueryHandler satisfies it.
type OpenOrdersLister interface {
	Handle(ctx context.Context, query queries.GetOpenOrdersQuery) ([]queries.GetOpenOrdersQueryResponse, error)
}

// OpenOrdersJob refreshes the fnbpos_open_orders gauge on a cron schedule.
type OpenOrdersJob struct {
	lister   OpenOrdersLister
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOpenOrdersJob creates a job that counts open orders on schedule.
func NewOpenOrdersJob(lister OpenOrdersLister, schedule string, logger *slog.Logger) *OpenOrdersJob {
	return &OpenOrdersJob{
		lister:   lister,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "open_orders_job"),
	}
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *OpenOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Open orders job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Open orders job started", "schedule", j.schedule)
	return nil
}

// Run counts the open orders per status and publishes the counts. Every
// non-terminal status is published, zero included.
func (j *OpenOrdersJob) Run(ctx context.Context) error {
	orders, err := j.lister.Handle(ctx, queries.NewGetOpenOrdersQuery())
	if err != nil {
		return err
	}

	counts := map[order.Status]int{order.New: 0, order.Confirmed: 0, order.Sent: 0}
	for _, o := range orders {
		counts[o.Status]++
	}
	for status, n := range counts {
		openOrders.WithLabelValues(status.String()).Set(float64(n))
	}
	return nil
}

// Stop stops the open orders job.
func (j *OpenOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Open orders job stopped")
}
