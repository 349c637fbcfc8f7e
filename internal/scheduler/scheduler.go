// Package scheduler triggers assignment runs periodically during working hours.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/Loandr1324/InsertManagerInOrder/config"
	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"

	"go.uber.org/zap"
)

// Runner is the part of the usecase layer the scheduler drives.
type Runner interface {
	Run(ctx context.Context, dryRun bool) (entities.RunReport, error)
}

// Scheduler fires Runner.Run on every tick whose local hour is inside [FromHour, ToHour].
type Scheduler struct {
	log       *zap.SugaredLogger
	runner    Runner
	cfg       config.ScheduleConfig
	newTicker func(time.Duration) (<-chan time.Time, func())
}

// New constructs a scheduler.
func New(log *zap.SugaredLogger, runner Runner, cfg config.ScheduleConfig) *Scheduler {
	return &Scheduler{
		log:    log.Named("scheduler"),
		runner: runner,
		cfg:    cfg,
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		},
	}
}

// Start blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	ticks, stop := s.newTicker(s.cfg.Interval)
	defer stop()

	s.log.Infow("scheduler started",
		"interval", s.cfg.Interval,
		"from_hour", s.cfg.FromHour,
		"to_hour", s.cfg.ToHour,
	)
	for {
		select {
		case <-ctx.Done():
			s.log.Infow("scheduler stopped")
			return nil
		case now := <-ticks:
			if !s.inWindow(now) {
				s.log.Debugw("outside working hours", "hour", now.Hour())
				continue
			}
			s.fire(ctx)
		}
	}
}

func (s *Scheduler) inWindow(t time.Time) bool {
	h := t.Hour()
	return h >= s.cfg.FromHour && h <= s.cfg.ToHour
}

func (s *Scheduler) fire(ctx context.Context) {
	report, err := s.runner.Run(ctx, false)
	switch {
	case err == nil:
		s.log.Infow("scheduled run done", "applied", len(report.Applied))
	case errors.Is(err, entities.ErrRunInProgress), errors.Is(err, entities.ErrRunIncomplete):
		s.log.Warnw("scheduled run", "error", err, "applied", len(report.Applied), "failed", len(report.Failed))
	default:
		s.log.Errorw("scheduled run failed", "error", err)
	}
}
