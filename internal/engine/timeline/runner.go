package timeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/disaster-sim/internal/errors"
	"github.com/KirkDiggler/disaster-sim/internal/pkg/clock"
)

//go:generate mockgen -destination=mock/mock.go -package=timelinemock github.com/KirkDiggler/disaster-sim/internal/engine/timeline Target

// DefaultInterval is the frame period used when none is configured
const DefaultInterval = 100 * time.Millisecond

// Target is driven by a Runner. Schedule is called when a frame is
// requested and Fire when it is due, with the ticket Schedule returned.
type Target interface {
	Schedule(ctx context.Context) (Ticket, error)
	Fire(ctx context.Context, ticket Ticket, elapsed float64) (Snapshot, error)
}

// RunnerConfig configures a Runner
type RunnerConfig struct {
	Clock    clock.Clock
	Interval time.Duration
	Target   Target
	// StopOnFinish ends Run once the timeline reaches PhaseFinished
	StopOnFinish bool
}

// Validate checks the config
func (c *RunnerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Target == nil {
		vb.RequiredField("Target")
	}
	if c.Interval < 0 {
		vb.Fieldf("Interval", "must not be negative, got %s", c.Interval)
	}
	return vb.Build()
}

// Runner is the single writer that turns clock ticks into frames
type Runner struct {
	clock        clock.Clock
	interval     time.Duration
	target       Target
	stopOnFinish bool
}

// NewRunner creates a Runner
func NewRunner(cfg *RunnerConfig) (*Runner, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	interval := cfg.Interval
	if interval == 0 {
		interval = DefaultInterval
	}

	return &Runner{
		clock:        cfg.Clock,
		interval:     interval,
		target:       cfg.Target,
		stopOnFinish: cfg.StopOnFinish,
	}, nil
}

// Run fires frames until ctx is done, the target fails, or the timeline
// finishes when StopOnFinish is set. Cancellation is not an error.
func (r *Runner) Run(ctx context.Context) error {
	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	ticket, err := r.target.Schedule(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to schedule first frame")
	}
	last := r.clock.Now()

	slog.Debug("timeline runner started", "interval", r.interval)
	for {
		select {
		case <-ctx.Done():
			slog.Debug("timeline runner stopped", "reason", ctx.Err())
			return nil
		case now := <-ticker.C():
			elapsed := now.Sub(last).Seconds()
			last = now

			snap, err := r.target.Fire(ctx, ticket, elapsed)
			if err != nil {
				return errors.Wrap(err, "failed to fire frame")
			}
			if r.stopOnFinish && snap.Phase == PhaseFinished {
				slog.Debug("timeline finished", "time", snap.CurrentTime)
				return nil
			}

			ticket, err = r.target.Schedule(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to schedule frame")
			}
		}
	}
}
