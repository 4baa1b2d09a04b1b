package jobs

import (
	"context"
	"log/slog"

	"parceltrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DeliveryStatsJob periodically logs how many deliveries sit in each status.
// Runs once a minute and only observes: it never modifies deliveries or
// schedules couriers.
type DeliveryStatsJob struct {
	handler queries.StatusCountsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryStatsJob creates a job logging per-status delivery counts.
// Uses StatusCountsQueryHandler to aggregate the deliveries table.
func NewDeliveryStatsJob(handler queries.StatusCountsQueryHandler, logger *slog.Logger) *DeliveryStatsJob {
	return &DeliveryStatsJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_stats_job"),
	}
}

// Start begins the stats job to run at the top of every minute.
func (j *DeliveryStatsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		counts, err := j.handler.Handle(ctx, queries.NewStatusCountsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery stats job failed", "error", err)
			return
		}

		total := int64(0)
		attrs := make([]any, 0, len(counts)*2+2)
		for _, count := range counts {
			total += count.Count
			attrs = append(attrs, count.Status, count.Count)
		}
		attrs = append(attrs, "total", total)

		j.logger.InfoContext(ctx, "Delivery status counts", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery stats job started (running every minute)")
	return nil
}

// Stop stops the stats job.
func (j *DeliveryStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery stats job stopped")
}
