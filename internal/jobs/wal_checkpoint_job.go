package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// DefaultWalCheckpointSchedule is used when no schedule is configured.
const DefaultWalCheckpointSchedule = "@every 5m"

// WalCheckpointJob truncates the SQLite write-ahead log on a schedule so it
// does not grow without bound between automatic checkpoints.
type WalCheckpointJob struct {
	store    Store
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewWalCheckpointJob creates a new checkpoint job.
func NewWalCheckpointJob(store Store, schedule string, logger *slog.Logger) *WalCheckpointJob {
	if schedule == "" {
		schedule = DefaultWalCheckpointSchedule
	}

	return &WalCheckpointJob{
		store:    store,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "wal_checkpoint_job"),
	}
}

// Start schedules the job.
func (j *WalCheckpointJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "WAL checkpoint failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "WAL checkpoint job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs one checkpoint.
func (j *WalCheckpointJob) RunOnce(ctx context.Context) error {
	var result struct {
		Busy         int
		Log          int
		Checkpointed int
	}

	err := j.store.Do(ctx, func(db *gorm.DB) error {
		return db.Raw("PRAGMA wal_checkpoint(TRUNCATE)").Row().Scan(&result.Busy, &result.Log, &result.Checkpointed)
	})
	if err != nil {
		return err
	}

	j.logger.DebugContext(ctx, "WAL checkpoint done",
		"busy", result.Busy,
		"log_frames", result.Log,
		"checkpointed_frames", result.Checkpointed,
	)
	return nil
}

// Stop stops the job and waits for a running checkpoint to finish.
func (j *WalCheckpointJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "WAL checkpoint job stopped")
}
