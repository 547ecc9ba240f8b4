// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// for periodic store maintenance.
//
// # Available Jobs
//
// 1. WalCheckpointJob - Folds the SQLite write-ahead log back into the database file
// 2. OrderStatsJob - Counts stored orders by status and publishes them as a gauge
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(store, metrics, schedules, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are standard five-field cron expressions or descriptors such as
// "@every 5m". Both jobs go through the store guard, so they wait for any
// open unit of work and never interleave with checkout or admin changes.
//
// # Error Handling
//
// - Job failures are logged and the job keeps its schedule
// - Failed job starts will stop any already running jobs
package jobs

import (
	"context"

	"gorm.io/gorm"
)

// Store runs work against the order database while holding the store guard.
type Store interface {
	Do(ctx context.Context, fn func(db *gorm.DB) error) error
}
