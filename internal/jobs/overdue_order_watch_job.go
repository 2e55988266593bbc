package jobs

import (
	"context"
	"log/slog"

	"transport/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueOrderWatchJob periodically reports active orders whose planned
// delivery time has passed. It only observes and logs; order statuses are
// never changed automatically.
type OverdueOrderWatchJob struct {
	handler queries.GetOverdueOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueOrderWatchJob creates a job watching for overdue deliveries.
func NewOverdueOrderWatchJob(
	handler queries.GetOverdueOrdersQueryHandler,
	logger *slog.Logger,
) *OverdueOrderWatchJob {
	return &OverdueOrderWatchJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_order_watch_job"),
	}
}

// Start begins the watch, running once a minute.
func (j *OverdueOrderWatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		overdue, err := j.handler.Handle(ctx, queries.NewGetOverdueOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue order watch failed", "error", err)
			return
		}

		for _, o := range overdue {
			j.logger.WarnContext(ctx, "Order past planned delivery time",
				"orderId", o.ID,
				"client", o.ClientName,
				"deliveryAt", o.DeliveryAt,
				"status", o.Status,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue order watch started (running every minute)")
	return nil
}

// Stop stops the watch.
func (j *OverdueOrderWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue order watch stopped")
}
