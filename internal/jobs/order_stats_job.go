package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// DefaultOrderStatsSchedule is used when no schedule is configured.
const DefaultOrderStatsSchedule = "@every 30s"

// OrderStatsPublisher receives order counts by status.
type OrderStatsPublisher interface {
	SetOrdersByStatus(counts map[order.Status]int)
}

// OrderStatsJob periodically counts orders per status for monitoring.
type OrderStatsJob struct {
	store     Store
	publisher OrderStatsPublisher
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderStatsJob creates a new order statistics job.
func NewOrderStatsJob(store Store, publisher OrderStatsPublisher, schedule string, logger *slog.Logger) *OrderStatsJob {
	if schedule == "" {
		schedule = DefaultOrderStatsSchedule
	}

	return &OrderStatsJob{
		store:     store,
		publisher: publisher,
		schedule:  schedule,
		cron:      cron.New(),
		logger:    logger.With("component", "order_stats_job"),
	}
}

// Start publishes the current counts once and then on the schedule.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.run()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started", "schedule", j.schedule)
	return nil
}

func (j *OrderStatsJob) run() {
	ctx := context.Background()
	if _, err := j.RunOnce(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
	}
}

// RunOnce counts orders by status, publishes and returns the counts.
// Rows with an out-of-range status are logged and left out.
func (j *OrderStatsJob) RunOnce(ctx context.Context) (map[order.Status]int, error) {
	var rows []struct {
		BeanStats int
		Total     int
	}

	err := j.store.Do(ctx, func(db *gorm.DB) error {
		return db.Raw(`
			SELECT bean_stats, COUNT(*) AS total
			FROM bean_buyer
			GROUP BY bean_stats
		`).Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int, len(rows))
	for _, row := range rows {
		status := order.Status(row.BeanStats)
		if status.Validate() != nil {
			j.logger.WarnContext(ctx, "orders with invalid status", "bean_stats", row.BeanStats, "total", row.Total)
			continue
		}
		counts[status] = row.Total
	}

	j.publisher.SetOrdersByStatus(counts)
	return counts, nil
}

// Stop stops the job and waits for a running count to finish.
func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
