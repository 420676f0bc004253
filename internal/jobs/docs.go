// Package jobs provides scheduled background tasks for the sales desk.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. HeartbeatJob - Sends a keep-alive comment frame to every open notification
// stream. A stream whose write fails is dropped by the hub, the same way a
// failed broadcast drops it.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(hub, cfg.HeartbeatSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format with a leading seconds field. The
// heartbeat defaults to "*/30 * * * * *".
//
// # Error Handling
//
// - An invalid schedule fails StartAll
// - Failed job starts will stop any already running jobs
package jobs
