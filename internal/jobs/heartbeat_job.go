package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultHeartbeatSchedule sends a keep-alive every 30 seconds.
const DefaultHeartbeatSchedule = "*/30 * * * * *"

// Heartbeater sends a keep-alive frame to every open notification stream.
type Heartbeater interface {
	Heartbeat()
}

// HeartbeatJob keeps idle notification streams open through proxies and
// prunes listeners whose connection has silently died.
type HeartbeatJob struct {
	hub      Heartbeater
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewHeartbeatJob creates a new heartbeat job. An empty schedule falls back
// to DefaultHeartbeatSchedule. Schedules use the six-field cron format with
// seconds.
func NewHeartbeatJob(hub Heartbeater, schedule string, logger *slog.Logger) *HeartbeatJob {
	if schedule == "" {
		schedule = DefaultHeartbeatSchedule
	}

	return &HeartbeatJob{
		hub:      hub,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "heartbeat_job"),
	}
}

// Start schedules the heartbeat.
func (j *HeartbeatJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.hub.Heartbeat)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Heartbeat job started", "schedule", j.schedule)
	return nil
}

// Stop stops the heartbeat job and waits for a running tick to finish.
func (j *HeartbeatJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Heartbeat job stopped")
}
