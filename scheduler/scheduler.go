// Package scheduler triggers the export at start-up and on a cron cadence.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"seroter.com/ordersheet/model"
)

// Runner is the job the scheduler triggers.
type Runner interface {
	Run(ctx context.Context) (model.RunReport, error)
}

type Scheduler struct {
	cron   *cron.Cron
	runner Runner
	spec   string

	ctx context.Context
}

// New validates spec, a standard five-field cron expression such as
// "0 */6 * * *".
func New(spec string, runner Runner) (*Scheduler, error) {
	logger := cronLogger{slog.Default().With("component", "cron")}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		runner: runner,
		spec:   spec,
		ctx:    context.Background(),
	}
	if _, err := s.cron.AddFunc(spec, s.trigger); err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start runs the export once, then on every tick until ctx is done. It
// returns after the in-flight run has finished.
func (s *Scheduler) Start(ctx context.Context) error {
	s.ctx = ctx
	slog.Info("starting export scheduler", "schedule", s.spec)

	s.cron.Start()
	s.trigger()

	<-ctx.Done()
	slog.Info("stopping export scheduler")
	<-s.cron.Stop().Done()
	return nil
}

// trigger ignores the result; the runner logs its own outcome.
func (s *Scheduler) trigger() {
	slog.Info("running scheduled export")
	s.runner.Run(s.ctx)
}

// cronLogger routes cron's internal logging to slog.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
