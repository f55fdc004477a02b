package cron

import (
	"context"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron, NewRecruiterDataJob)

// 每日 03:00 UTC 重建反正規化在職名單
const recruiterDataSchedule = "0 0 3 * * *"

type Cron struct {
	logger           *zap.Logger
	server           *cron.Cron
	recruiterDataJob *RecruiterDataJob
}

// NewCron .
func NewCron(logger *zap.Logger, recruiterDataJob *RecruiterDataJob) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:           logger,
		server:           server,
		recruiterDataJob: recruiterDataJob,
	}
}

func (c *Cron) Run() error {
	if _, err := c.server.AddFunc(recruiterDataSchedule, c.recruiterDataJob.Run); err != nil {
		return err
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}
