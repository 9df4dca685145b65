// Package timeline owns simulation time: play state, speed, seek and the
// cancellable tick tickets that drive the stepper.
package timeline

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/disaster-sim/internal/errors"
)

// DefaultDuration of every scenario, in seconds
const DefaultDuration = 30.0

// Phase of the timeline state machine
type Phase string

// Phases
const (
	PhaseIdle     Phase = "idle"
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseFinished Phase = "finished"
)

// Event types published on the bus
const (
	EventPlayed       = "timeline.played"
	EventPaused       = "timeline.paused"
	EventReset        = "timeline.reset"
	EventSeeked       = "timeline.seeked"
	EventSpeedChanged = "timeline.speed_changed"
	EventFinished     = "timeline.finished"
)

// Event context keys
const (
	KeyTime  = "time"
	KeySpeed = "speed"
	KeyPhase = "phase"
)

// SupportedSpeeds are the playback multipliers offered to users
func SupportedSpeeds() []float64 {
	return []float64{0.5, 1, 2, 4}
}

// IsSupportedSpeed reports whether speed is one of SupportedSpeeds
func IsSupportedSpeed(speed float64) bool {
	for _, s := range SupportedSpeeds() {
		if s == speed {
			return true
		}
	}
	return false
}

// Ticket identifies the command epoch a tick was scheduled in.
// The zero ticket always refers to the current epoch.
type Ticket uint64

// Snapshot is the observable clock state
type Snapshot struct {
	CurrentTime float64 `json:"current_time"`
	Playing     bool    `json:"playing"`
	Speed       float64 `json:"speed"`
	Duration    float64 `json:"duration"`
	Phase       Phase   `json:"phase"`
}

// Idle reports whether the timeline is in its reset state
func (s Snapshot) Idle() bool { return s.Phase == PhaseIdle }

// Config configures a Driver
type Config struct {
	// Duration defaults to DefaultDuration
	Duration float64
	// AllowAnySpeed accepts any positive speed instead of SupportedSpeeds
	AllowAnySpeed bool
	// EventBus is optional; when set phase changes are published on it
	EventBus events.EventBus
	// Source is the entity events are attributed to
	Source core.Entity
}

// Validate checks the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Duration < 0 || math.IsNaN(c.Duration) || math.IsInf(c.Duration, 0) {
		vb.Fieldf("Duration", "must be a finite non-negative number, got %v", c.Duration)
	}
	return vb.Build()
}

// Driver is the timeline state machine. It is safe for concurrent use.
type Driver struct {
	mu sync.Mutex

	duration      float64
	allowAnySpeed bool
	eventBus      events.EventBus
	source        core.Entity

	currentTime float64
	speed       float64
	phase       Phase
	epoch       uint64
}

// NewDriver creates an idle Driver at t=0 and speed 1
func NewDriver(cfg *Config) (*Driver, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	duration := cfg.Duration
	if duration == 0 {
		duration = DefaultDuration
	}

	return &Driver{
		duration:      duration,
		allowAnySpeed: cfg.AllowAnySpeed,
		eventBus:      cfg.EventBus,
		source:        cfg.Source,
		speed:         1,
		phase:         PhaseIdle,
		epoch:         1,
	}, nil
}

// Snapshot returns the current state
func (d *Driver) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshotLocked()
}

// Ticket returns a ticket for the current epoch
func (d *Driver) Ticket() Ticket {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Ticket(d.epoch)
}

// Play starts or resumes playback. Playing and Finished do not change phase.
// Like every command it invalidates outstanding tickets.
func (d *Driver) Play(ctx context.Context) Snapshot {
	d.mu.Lock()
	changed := d.phase == PhaseIdle || d.phase == PhasePaused
	if changed {
		d.phase = PhasePlaying
	}
	d.bumpLocked()
	snap := d.snapshotLocked()
	d.mu.Unlock()

	if changed {
		d.publish(ctx, EventPlayed, snap)
	}
	return snap
}

// Pause stops playback. Only valid while playing.
func (d *Driver) Pause(ctx context.Context) Snapshot {
	d.mu.Lock()
	changed := d.phase == PhasePlaying
	if changed {
		d.phase = PhasePaused
	}
	d.bumpLocked()
	snap := d.snapshotLocked()
	d.mu.Unlock()

	if changed {
		d.publish(ctx, EventPaused, snap)
	}
	return snap
}

// Toggle plays when stopped and pauses when playing
func (d *Driver) Toggle(ctx context.Context) Snapshot {
	if d.Snapshot().Playing {
		return d.Pause(ctx)
	}
	return d.Play(ctx)
}

// Reset returns to Idle at t=0. Speed is kept.
func (d *Driver) Reset(ctx context.Context) Snapshot {
	d.mu.Lock()
	d.currentTime = 0
	d.phase = PhaseIdle
	d.bumpLocked()
	snap := d.snapshotLocked()
	d.mu.Unlock()

	d.publish(ctx, EventReset, snap)
	return snap
}

// Seek moves to t clamped into [0, duration]. The phase is unchanged except
// Idle becomes Paused for t > 0 and Finished becomes Paused for t < duration.
func (d *Driver) Seek(ctx context.Context, t float64) Snapshot {
	d.mu.Lock()
	d.currentTime = d.clampLocked(t)
	switch {
	case d.phase == PhaseIdle && d.currentTime > 0:
		d.phase = PhasePaused
	case d.phase == PhaseFinished && d.currentTime < d.duration:
		d.phase = PhasePaused
	}
	d.bumpLocked()
	snap := d.snapshotLocked()
	d.mu.Unlock()

	d.publish(ctx, EventSeeked, snap)
	return snap
}

// SetSpeed changes the playback multiplier
func (d *Driver) SetSpeed(ctx context.Context, speed float64) (Snapshot, error) {
	if err := d.checkSpeed(speed); err != nil {
		return d.Snapshot(), err
	}

	d.mu.Lock()
	d.speed = speed
	d.bumpLocked()
	snap := d.snapshotLocked()
	d.mu.Unlock()

	d.publish(ctx, EventSpeedChanged, snap)
	return snap, nil
}

// Advance moves time forward by elapsed*speed seconds when ticket is current
// and the timeline is playing. It reports false for stale tickets, which
// leave the state untouched. Reaching the duration clamps and finishes.
func (d *Driver) Advance(ctx context.Context, ticket Ticket, elapsed float64) (Snapshot, bool) {
	d.mu.Lock()
	if ticket != 0 && uint64(ticket) != d.epoch {
		snap := d.snapshotLocked()
		d.mu.Unlock()
		return snap, false
	}

	finished := false
	if d.phase == PhasePlaying && elapsed > 0 {
		next := d.currentTime + elapsed*d.speed
		if next >= d.duration {
			next = d.duration
			d.phase = PhaseFinished
			d.bumpLocked()
			finished = true
		}
		d.currentTime = next
	}
	snap := d.snapshotLocked()
	d.mu.Unlock()

	if finished {
		d.publish(ctx, EventFinished, snap)
	}
	return snap, true
}

// Restore replaces the state with a stored snapshot. Pending tickets are
// invalidated and nothing is published.
func (d *Driver) Restore(snap Snapshot) error {
	if err := d.checkSpeed(snap.Speed); err != nil {
		return err
	}
	switch snap.Phase {
	case PhaseIdle, PhasePlaying, PhasePaused, PhaseFinished:
	default:
		return errors.InvalidArgumentf("unknown phase: %s", snap.Phase)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.currentTime = d.clampLocked(snap.CurrentTime)
	d.speed = snap.Speed
	d.phase = snap.Phase
	d.bumpLocked()
	return nil
}

func (d *Driver) checkSpeed(speed float64) error {
	if !(speed > 0) || math.IsInf(speed, 0) {
		return errors.InvalidArgumentf("speed must be positive, got %v", speed)
	}
	if d.allowAnySpeed {
		return nil
	}
	if IsSupportedSpeed(speed) {
		return nil
	}
	return errors.InvalidArgumentf("unsupported speed %v", speed).
		WithMeta("supported", SupportedSpeeds())
}

func (d *Driver) clampLocked(t float64) float64 {
	switch {
	case math.IsNaN(t) || t < 0:
		return 0
	case t > d.duration:
		return d.duration
	default:
		return t
	}
}

func (d *Driver) bumpLocked() {
	d.epoch++
}

func (d *Driver) snapshotLocked() Snapshot {
	return Snapshot{
		CurrentTime: d.currentTime,
		Playing:     d.phase == PhasePlaying,
		Speed:       d.speed,
		Duration:    d.duration,
		Phase:       d.phase,
	}
}

func (d *Driver) publish(ctx context.Context, eventType string, snap Snapshot) {
	if d.eventBus == nil {
		return
	}

	event := events.NewGameEvent(eventType, d.source, nil)
	event.Context().Set(KeyTime, snap.CurrentTime)
	event.Context().Set(KeySpeed, snap.Speed)
	event.Context().Set(KeyPhase, string(snap.Phase))

	if err := d.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish timeline event", "type", eventType, "error", err)
	}
}

// FormatTime renders seconds as m:ss
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
