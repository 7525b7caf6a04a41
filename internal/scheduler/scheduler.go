package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler re-runs the scan job on a cron schedule. Used only when a
// schedule is configured; the default mode is a single synchronous run.
type Scheduler struct {
	Cron   *cron.Cron
	Job    func()
	Ctx    context.Context
	logger *logrus.Logger
}

// New creates a Scheduler wrapping the given job.
func New(ctx context.Context, job func()) *Scheduler {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Job:    job,
		Ctx:    ctx,
		logger: logger,
	}
}

// Register adds the scan job under the given cron expression (with seconds).
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.Job); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.logger.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.logger.Info("scheduler stopped")
}

// RunNow executes the scan immediately (manual trigger / run-on-start).
func (s *Scheduler) RunNow() {
	s.Job()
}
