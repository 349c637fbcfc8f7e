package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Loandr1324/InsertManagerInOrder/config"
	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type runnerStub struct {
	mu    sync.Mutex
	calls int
	done  chan struct{}
	err   error
}

func (r *runnerStub) Run(_ context.Context, dryRun bool) (entities.RunReport, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	r.done <- struct{}{}
	return entities.RunReport{DryRun: dryRun}, r.err
}

func (r *runnerStub) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func newTestScheduler(r Runner) (*Scheduler, chan time.Time) {
	ticks := make(chan time.Time)
	s := New(zap.NewNop().Sugar(), r, config.ScheduleConfig{
		Enabled:  true,
		Interval: time.Hour,
		FromHour: 8,
		ToHour:   19,
	})
	s.newTicker = func(time.Duration) (<-chan time.Time, func()) {
		return ticks, func() {}
	}
	return s, ticks
}

func at(hour int) time.Time {
	return time.Date(2024, 3, 10, hour, 0, 0, 0, time.Local)
}

func TestSchedulerRunsInsideWorkingHours(t *testing.T) {
	r := &runnerStub{done: make(chan struct{}, 4), err: entities.ErrRunIncomplete}
	s, ticks := newTestScheduler(r)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Start(ctx) }()

	ticks <- at(7)
	ticks <- at(8)
	<-r.done
	ticks <- at(19)
	<-r.done
	ticks <- at(20)
	ticks <- at(23)

	cancel()
	require.NoError(t, <-errCh)
	require.Equal(t, 2, r.count())
}

func TestSchedulerStopsOnCancel(t *testing.T) {
	r := &runnerStub{done: make(chan struct{}, 1)}
	s, _ := newTestScheduler(r)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, s.Start(ctx))
	require.Zero(t, r.count())
}

func TestInWindow(t *testing.T) {
	s, _ := newTestScheduler(&runnerStub{})
	for hour, want := range map[int]bool{0: false, 7: false, 8: true, 12: true, 19: true, 20: false} {
		require.Equal(t, want, s.inWindow(at(hour)), "hour %d", hour)
	}
}
