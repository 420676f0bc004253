package jobs

import (
	"fmt"
	"log/slog"
)

// Job is a scheduled task the manager can start and stop.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs []namedJob
}

type namedJob struct {
	name string
	job  Job
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(hub Heartbeater, heartbeatSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		jobs: []namedJob{
			{name: "heartbeat", job: NewHeartbeatJob(hub, heartbeatSchedule, logger)},
		},
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for i, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			// Stop already started jobs if this one fails
			for _, started := range jm.jobs[:i] {
				started.job.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].job.Stop()
	}
}
