package jobs

import (
	"context"
	"log/slog"
	"time"

	"sellerhub/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DailyEarningsJob logs the previous day's wallet summary.
// Runs at midnight so the seller starts the day with yesterday's figures in
// the log.
type DailyEarningsJob struct {
	handler queries.WalletSummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailyEarningsJob creates the daily earnings summary job.
func NewDailyEarningsJob(handler queries.WalletSummaryQueryHandler, logger *slog.Logger) *DailyEarningsJob {
	return &DailyEarningsJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "daily_earnings_job"),
	}
}

// Start begins the job, running at midnight every day.
func (j *DailyEarningsJob) Start() error {
	_, err := j.cron.AddFunc("0 0 0 * * *", func() {
		ctx := context.Background()

		to := time.Now().Truncate(24 * time.Hour)
		from := to.Add(-24 * time.Hour)

		query, err := queries.NewWalletSummaryQuery(from, to)
		if err != nil {
			j.logger.ErrorContext(ctx, "Daily earnings query invalid", "error", err)
			return
		}

		summary, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Daily earnings summary failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Daily earnings summary",
			"from", from,
			"to", to,
			"completed_amount", summary.CompletedAmount,
			"completed_orders", summary.CompletedOrders,
			"pending_amount", summary.PendingAmount,
			"pending_orders", summary.PendingOrders,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily earnings job started (running at midnight)")
	return nil
}

// Stop stops the job.
func (j *DailyEarningsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily earnings job stopped")
}
