package jobs

import (
	"context"
	"log/slog"
	"time"

	"sellerhub/internal/core/domain/model/order"
	"sellerhub/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// staleReadyThreshold is how long an order may sit in ready before the
// monitor flags it.
const staleReadyThreshold = 15 * time.Minute

// StaleReadyOrdersJob watches for orders stuck in the ready status.
// Runs every minute and warns when packed orders wait too long for a
// delivery partner.
type StaleReadyOrdersJob struct {
	orders ports.OrderRepository
	cron   *cron.Cron
	logger *slog.Logger
}

// NewStaleReadyOrdersJob creates the monitor for unassigned ready orders.
func NewStaleReadyOrdersJob(orders ports.OrderRepository, logger *slog.Logger) *StaleReadyOrdersJob {
	return &StaleReadyOrdersJob{
		orders: orders,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "stale_ready_orders_job"),
	}
}

// Start begins the monitor, running at the top of every minute.
func (j *StaleReadyOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		ready, err := j.orders.GetAllInStatuses(ctx, order.StatusReady)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale ready orders check failed", "error", err)
			return
		}

		cutoff := time.Now().Add(-staleReadyThreshold)
		for _, o := range ready {
			if o.UpdatedAt().After(cutoff) {
				continue
			}
			j.logger.WarnContext(ctx, "Order ready without delivery partner",
				"order_id", o.ID().String(),
				"number", o.Number(),
				"ready_since", o.UpdatedAt(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale ready orders job started (running every minute)")
	return nil
}

// Stop stops the monitor.
func (j *StaleReadyOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale ready orders job stopped")
}
