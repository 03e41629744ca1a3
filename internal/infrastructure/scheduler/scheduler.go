package scheduler

import (
	"context"
	"fmt"
	"time"

	"exchangerates-service/internal/application"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSpec fires every day at 00:10:00 UTC.
const DefaultSpec = "0 10 0 * * *"

var parser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

type Refresher interface {
	RefreshAll(ctx context.Context) (application.RefreshReport, error)
}

var _ application.Worker = (*Scheduler)(nil)

// Scheduler triggers a full refresh on a cron schedule evaluated in UTC.
// A run still in progress when the next one is due causes that one to be skipped.
type Scheduler struct {
	refresher Refresher
	spec      string
	schedule  cron.Schedule
	log       *zap.Logger
}

func New(r Refresher, spec string, log *zap.Logger) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultSpec
	}
	sched, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", spec, err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		refresher: r,
		spec:      spec,
		schedule:  sched,
		log:       log.With(zap.String("worker", "refresh_scheduler")),
	}, nil
}

// Next reports the first activation strictly after t.
func (s *Scheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t.UTC())
}

// Start runs until ctx is cancelled, then waits for an in-flight refresh to return.
func (s *Scheduler) Start(ctx context.Context) {
	cl := cronLogger{s.log}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithParser(parser),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	c.Schedule(s.schedule, cron.FuncJob(func() { s.RunOnce(ctx) }))
	c.Start()
	s.log.Info("scheduler.started", zap.String("spec", s.spec), zap.Time("next", s.Next(time.Now())))

	<-ctx.Done()
	<-c.Stop().Done()
	s.log.Info("scheduler.stopped")
}

// RunOnce performs a single refresh and logs its outcome.
func (s *Scheduler) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	report, err := s.refresher.RefreshAll(ctx)
	if err != nil {
		s.log.Error("scheduler.refresh_failed", zap.Error(err))
		return
	}
	s.log.Info("scheduler.refresh_done",
		zap.Int("total", report.Total),
		zap.Int("refreshed", report.Refreshed),
		zap.Int("failed", report.Failed),
	)
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct{ l *zap.Logger }

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Sugar().Debugw("cron."+msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Sugar().Errorw("cron."+msg, append(keysAndValues, "error", err)...)
}
