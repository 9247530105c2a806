// Package scheduler fires the daily report on a cron cadence.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler wraps a single cron entry. A malformed cadence expression is a
// construction error, so misconfiguration is fatal at startup rather than a
// silent runtime no-op. Ticks never overlap: if a run is still in flight
// when the next tick fires, the tick is skipped and logged.
type Scheduler struct {
	cron *cron.Cron
	spec string
}

// New validates the cadence expression and registers the job. The job
// receives a background context; it owns its own timeouts.
func New(spec string, job func(ctx context.Context)) (*Scheduler, error) {
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("invalid report cadence %q: %w", spec, err)
	}

	logger := &cronLogger{}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(logger)))

	if _, err := c.AddFunc(spec, func() { job(context.Background()) }); err != nil {
		return nil, fmt.Errorf("failed to schedule report job: %w", err)
	}

	return &Scheduler{cron: c, spec: spec}, nil
}

func (s *Scheduler) Start() {
	slog.Info("Daily report scheduled", "cadence", s.spec)
	s.cron.Start()
}

// Stop halts the cadence and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// cronLogger adapts slog to the cron logging interface; its only traffic is
// the skip notice from SkipIfStillRunning.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Info("Scheduler: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("Scheduler: "+msg, append([]any{"error", err}, keysAndValues...)...)
}
