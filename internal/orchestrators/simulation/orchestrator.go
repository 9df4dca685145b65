// Package simulation implements the simulation orchestrator: the session
// state a viewer holds (building, disaster selection, timeline) and the
// per-tick pipeline that turns it into frames.
package simulation

//go:generate mockgen -destination=mock/mock_service.go -package=simulationmock github.com/KirkDiggler/disaster-sim/internal/orchestrators/simulation Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/disaster-sim/internal/engine"
	"github.com/KirkDiggler/disaster-sim/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/disaster-sim/internal/engine/stepper"
	"github.com/KirkDiggler/disaster-sim/internal/engine/timeline"
	"github.com/KirkDiggler/disaster-sim/internal/entities/building"
	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
	"github.com/KirkDiggler/disaster-sim/internal/entities/scene"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
	"github.com/KirkDiggler/disaster-sim/internal/pkg/clock"
	"github.com/KirkDiggler/disaster-sim/internal/pkg/idgen"
	"github.com/KirkDiggler/disaster-sim/internal/repositories/session"
)

// Event types published by the orchestrator
const (
	EventSessionCreated   = "simulation.session_created"
	EventDisasterSelected = "simulation.disaster_selected"
	EventBuildingLoaded   = "simulation.building_loaded"
)

// Event context keys
const (
	KeyKind      = "kind"
	KeyIntensity = "intensity"
	KeyBuilding  = "building_type"
)

// DefaultSnapshotTTL is how long persisted snapshots live
const DefaultSnapshotTTL = time.Hour

// Service defines the interface for simulation operations
type Service interface {
	// Session lifecycle
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)
	RestoreSession(ctx context.Context, input *RestoreSessionInput) (*RestoreSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
	DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error)

	// Scenario selection
	LoadBuilding(ctx context.Context, input *LoadBuildingInput) (*LoadBuildingOutput, error)
	SelectDisaster(ctx context.Context, input *SelectDisasterInput) (*SelectDisasterOutput, error)
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// Transport
	Play(ctx context.Context, input *ControlInput) (*ControlOutput, error)
	Pause(ctx context.Context, input *ControlInput) (*ControlOutput, error)
	TogglePlay(ctx context.Context, input *ControlInput) (*ControlOutput, error)
	Reset(ctx context.Context, input *ControlInput) (*ControlOutput, error)
	Seek(ctx context.Context, input *SeekInput) (*ControlOutput, error)
	SetSpeed(ctx context.Context, input *SetSpeedInput) (*ControlOutput, error)

	// Frame pipeline
	Ticket(ctx context.Context, input *TicketInput) (*TicketOutput, error)
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)
}

// Config holds the dependencies for the simulation orchestrator
type Config struct {
	Engine      engine.Engine
	IDGenerator idgen.Generator
	EventBus    events.EventBus
	Clock       clock.Clock

	// SessionRepo is optional; when set snapshots are persisted after commands
	SessionRepo session.Repository
	SnapshotTTL time.Duration

	// Duration of each timeline, defaults to timeline.DefaultDuration
	Duration      float64
	AllowAnySpeed bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Duration < 0 {
		vb.Fieldf("Duration", "must not be negative, got %v", c.Duration)
	}

	return vb.Build()
}

type orchestrator struct {
	engine        engine.Engine
	idGen         idgen.Generator
	eventBus      events.EventBus
	clock         clock.Clock
	sessionRepo   session.Repository
	snapshotTTL   time.Duration
	duration      float64
	allowAnySpeed bool

	mu       sync.RWMutex
	sessions map[string]*sessionState
}

// sessionState is guarded by its own mutex so ticks on different sessions
// never contend
type sessionState struct {
	mu sync.Mutex

	entity    *rpgtoolkit.SessionEntity
	kind      disaster.Kind
	intensity disaster.Intensity
	building  *building.Spec
	driver    *timeline.Driver
	stepState *stepper.State
	tick      uint64
	createdAt time.Time
}

// NewOrchestrator creates a new simulation orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.SnapshotTTL
	if ttl == 0 {
		ttl = DefaultSnapshotTTL
	}

	return &orchestrator{
		engine:        cfg.Engine,
		idGen:         cfg.IDGenerator,
		eventBus:      cfg.EventBus,
		clock:         cfg.Clock,
		sessionRepo:   cfg.SessionRepo,
		snapshotTTL:   ttl,
		duration:      cfg.Duration,
		allowAnySpeed: cfg.AllowAnySpeed,
		sessions:      make(map[string]*sessionState),
	}, nil
}

// CreateSession starts an idle session
func (o *orchestrator) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sessionID := o.idGen.Generate()
	state, err := o.newSessionState(sessionID, input.Building)
	if err != nil {
		return nil, err
	}
	state.kind = disaster.ParseKind(input.Kind)
	state.intensity = disaster.ClampIntensity(input.Intensity)

	if input.Speed != 0 {
		if _, err := state.driver.SetSpeed(ctx, input.Speed); err != nil {
			return nil, errors.Wrap(err, "invalid initial speed")
		}
	}

	o.persist(ctx, state)
	view := state.view()

	o.mu.Lock()
	o.sessions[sessionID] = state
	o.mu.Unlock()

	slog.Info("Simulation session created",
		"session_id", sessionID,
		"kind", view.Kind,
		"intensity", view.Intensity,
		"building_type", view.Building.Type,
	)
	o.publish(ctx, EventSessionCreated, state)

	return &CreateSessionOutput{Session: view}, nil
}

// RestoreSession rebuilds an in-memory session from its persisted snapshot
func (o *orchestrator) RestoreSession(ctx context.Context, input *RestoreSessionInput) (*RestoreSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if o.sessionRepo == nil {
		return nil, errors.FailedPrecondition("session persistence is not configured")
	}

	o.mu.RLock()
	_, exists := o.sessions[input.SessionID]
	o.mu.RUnlock()
	if exists {
		return nil, errors.AlreadyExistsf("session %s is already active", input.SessionID)
	}

	out, err := o.sessionRepo.Get(ctx, session.GetInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load session %s", input.SessionID)
	}
	snap := out.Snapshot

	state, err := o.newSessionState(snap.SessionID, input.Building)
	if err != nil {
		return nil, err
	}
	state.kind = snap.Kind.Normalize()
	state.intensity = snap.Intensity.Clamp()
	state.tick = snap.Tick
	if !snap.CreatedAt.IsZero() {
		state.createdAt = snap.CreatedAt
	}
	if err := state.driver.Restore(snap.Timeline); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored timeline is invalid")
	}

	o.mu.Lock()
	if _, exists := o.sessions[snap.SessionID]; exists {
		o.mu.Unlock()
		return nil, errors.AlreadyExistsf("session %s is already active", snap.SessionID)
	}
	o.sessions[snap.SessionID] = state
	o.mu.Unlock()

	slog.Info("Simulation session restored",
		"session_id", snap.SessionID,
		"kind", state.kind,
		"time", snap.Timeline.CurrentTime,
		"phase", snap.Timeline.Phase,
	)

	state.mu.Lock()
	defer state.mu.Unlock()
	return &RestoreSessionOutput{Session: state.view()}, nil
}

// GetSession returns the current session state
func (o *orchestrator) GetSession(_ context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	return &GetSessionOutput{Session: state.view()}, nil
}

// DeleteSession drops the session from memory and storage
func (o *orchestrator) DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	_, existed := o.sessions[input.SessionID]
	delete(o.sessions, input.SessionID)
	o.mu.Unlock()

	if o.sessionRepo != nil {
		out, err := o.sessionRepo.Delete(ctx, session.DeleteInput{SessionID: input.SessionID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to delete snapshot for %s", input.SessionID)
		}
		existed = existed || out.Deleted
	}

	if !existed {
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}

	slog.Info("Simulation session deleted", "session_id", input.SessionID)
	return &DeleteSessionOutput{Deleted: true}, nil
}

// LoadBuilding replaces the session's building
func (o *orchestrator) LoadBuilding(ctx context.Context, input *LoadBuildingInput) (*LoadBuildingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	state.building = copyBuilding(input.Building)
	view := state.view()
	state.mu.Unlock()

	if input.Building != nil && view.DefaultBuilding {
		slog.Warn("Invalid building replaced with default",
			"session_id", input.SessionID,
			"error", input.Building.Validate())
	}
	slog.Info("Building loaded",
		"session_id", input.SessionID,
		"building_type", view.Building.Type,
		"floors", view.Building.Floors)
	o.publish(ctx, EventBuildingLoaded, state)

	return &LoadBuildingOutput{Session: view}, nil
}

// SelectDisaster changes the disaster kind and intensity. The particle field
// is regenerated on the next tick.
func (o *orchestrator) SelectDisaster(ctx context.Context, input *SelectDisasterInput) (*SelectDisasterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	state.kind = disaster.ParseKind(input.Kind)
	state.intensity = disaster.ClampIntensity(input.Intensity)
	o.persist(ctx, state)
	view := state.view()
	state.mu.Unlock()

	slog.Info("Disaster selected",
		"session_id", input.SessionID,
		"kind", view.Kind,
		"intensity", view.Intensity,
	)
	o.publish(ctx, EventDisasterSelected, state)

	return &SelectDisasterOutput{Session: view}, nil
}

// GetProfile derives the profile of the session's active disaster
func (o *orchestrator) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	kind, intensity := state.kind, state.intensity
	state.mu.Unlock()

	out, err := o.engine.DeriveProfile(ctx, &engine.DeriveProfileInput{
		Kind:      kind,
		Intensity: intensity,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive profile")
	}

	return &GetProfileOutput{Profile: out.Profile}, nil
}

// Play starts or resumes playback
func (o *orchestrator) Play(ctx context.Context, input *ControlInput) (*ControlOutput, error) {
	return o.control(ctx, input, func(d *timeline.Driver) (timeline.Snapshot, error) {
		return d.Play(ctx), nil
	}, false)
}

// Pause stops playback
func (o *orchestrator) Pause(ctx context.Context, input *ControlInput) (*ControlOutput, error) {
	return o.control(ctx, input, func(d *timeline.Driver) (timeline.Snapshot, error) {
		return d.Pause(ctx), nil
	}, false)
}

// TogglePlay pauses when playing and plays otherwise
func (o *orchestrator) TogglePlay(ctx context.Context, input *ControlInput) (*ControlOutput, error) {
	return o.control(ctx, input, func(d *timeline.Driver) (timeline.Snapshot, error) {
		return d.Toggle(ctx), nil
	}, false)
}

// Reset returns the timeline to idle and renders the reset frame
func (o *orchestrator) Reset(ctx context.Context, input *ControlInput) (*ControlOutput, error) {
	return o.control(ctx, input, func(d *timeline.Driver) (timeline.Snapshot, error) {
		return d.Reset(ctx), nil
	}, true)
}

// Seek moves the timeline and renders the frame at the new time
func (o *orchestrator) Seek(ctx context.Context, input *SeekInput) (*ControlOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.control(ctx, &ControlInput{SessionID: input.SessionID}, func(d *timeline.Driver) (timeline.Snapshot, error) {
		return d.Seek(ctx, input.Time), nil
	}, true)
}

// SetSpeed changes the playback multiplier
func (o *orchestrator) SetSpeed(ctx context.Context, input *SetSpeedInput) (*ControlOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.control(ctx, &ControlInput{SessionID: input.SessionID}, func(d *timeline.Driver) (timeline.Snapshot, error) {
		return d.SetSpeed(ctx, input.Speed)
	}, false)
}

// Ticket schedules a tick against the current command epoch
func (o *orchestrator) Ticket(_ context.Context, input *TicketInput) (*TicketOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	return &TicketOutput{Ticket: state.driver.Ticket()}, nil
}

// Tick advances the timeline and steps the simulation once. Stale tickets
// change nothing.
func (o *orchestrator) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Elapsed < 0 {
		return nil, errors.InvalidArgumentf("elapsed must not be negative, got %v", input.Elapsed)
	}

	state, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	before := state.driver.Snapshot().Phase
	clk, ok := state.driver.Advance(ctx, input.Ticket, input.Elapsed)
	if !ok {
		slog.Debug("Stale tick ignored",
			"session_id", input.SessionID,
			"ticket", input.Ticket)
		return &TickOutput{Applied: false, Clock: clk}, nil
	}

	frame, err := o.step(ctx, state, clk)
	if err != nil {
		return nil, err
	}

	if before != clk.Phase && clk.Phase == timeline.PhaseFinished {
		slog.Info("Simulation finished",
			"session_id", input.SessionID,
			"ticks", state.tick)
		o.persist(ctx, state)
	}

	return &TickOutput{Applied: true, Clock: clk, Frame: frame}, nil
}

type command func(d *timeline.Driver) (timeline.Snapshot, error)

func (o *orchestrator) control(ctx context.Context, input *ControlInput, cmd command, render bool) (*ControlOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	clk, err := cmd(state.driver)
	if err != nil {
		return nil, errors.Wrapf(err, "command failed for session %s", input.SessionID)
	}

	out := &ControlOutput{Clock: clk}
	if render {
		frame, err := o.step(ctx, state, clk)
		if err != nil {
			return nil, err
		}
		out.Frame = frame
	}
	o.persist(ctx, state)

	slog.Debug("Timeline command applied",
		"session_id", input.SessionID,
		"phase", clk.Phase,
		"time", clk.CurrentTime,
		"speed", clk.Speed)

	return out, nil
}

// step must be called with state.mu held
func (o *orchestrator) step(ctx context.Context, state *sessionState, clk timeline.Snapshot) (*scene.Frame, error) {
	out, err := o.engine.Step(ctx, &engine.StepInput{
		State:     state.stepState,
		Kind:      state.kind,
		Intensity: state.intensity,
		Clock:     clk,
		Building:  state.building,
		Source:    state.entity,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to step session %s", state.entity.ID)
	}

	state.tick++
	return &scene.Frame{
		SessionID: state.entity.ID,
		Tick:      state.tick,
		Time:      clk.CurrentTime,
		Phase:     string(clk.Phase),
		Speed:     clk.Speed,
		Kind:      state.kind,
		Intensity: state.intensity,
		State:     out.State,
	}, nil
}

func (o *orchestrator) newSessionState(sessionID string, b *building.Spec) (*sessionState, error) {
	entity := rpgtoolkit.WrapSession(sessionID)
	driver, err := timeline.NewDriver(&timeline.Config{
		Duration:      o.duration,
		AllowAnySpeed: o.allowAnySpeed,
		EventBus:      o.eventBus,
		Source:        entity,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create timeline")
	}

	return &sessionState{
		entity:    entity,
		kind:      disaster.DefaultKind,
		intensity: disaster.DefaultIntensity,
		building:  copyBuilding(b),
		driver:    driver,
		stepState: stepper.NewState(),
		createdAt: o.clock.Now(),
	}, nil
}

func (o *orchestrator) getSession(sessionID string) (*sessionState, error) {
	if sessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.RLock()
	state, exists := o.sessions[sessionID]
	o.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("session %s not found", sessionID).
			WithMeta("session_id", sessionID)
	}
	return state, nil
}

// persist must be called with state.mu held. Failures are logged; a
// storage outage never interrupts playback.
func (o *orchestrator) persist(ctx context.Context, state *sessionState) {
	if o.sessionRepo == nil {
		return
	}

	_, err := o.sessionRepo.Save(ctx, session.SaveInput{
		Snapshot: &session.Snapshot{
			SessionID: state.entity.ID,
			Kind:      state.kind,
			Intensity: state.intensity,
			Timeline:  state.driver.Snapshot(),
			Tick:      state.tick,
			CreatedAt: state.createdAt,
		},
		TTL: o.snapshotTTL,
	})
	if err != nil {
		slog.Warn("Failed to persist session snapshot",
			"session_id", state.entity.ID,
			"error", err)
	}
}

func (o *orchestrator) publish(ctx context.Context, eventType string, state *sessionState) {
	state.mu.Lock()
	kind, intensity := state.kind, state.intensity
	buildingType := building.Resolve(state.building).Type
	state.mu.Unlock()

	event := events.NewGameEvent(eventType, state.entity, nil)
	event.Context().Set(KeyKind, string(kind))
	event.Context().Set(KeyIntensity, int(intensity))
	event.Context().Set(KeyBuilding, string(buildingType))

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish simulation event",
			"type", eventType,
			"session_id", state.entity.ID,
			"error", err)
	}
}

// view must be called with s.mu held
func (s *sessionState) view() *Session {
	return &Session{
		ID:              s.entity.ID,
		Kind:            s.kind,
		Intensity:       s.intensity,
		Building:        building.Resolve(s.building),
		DefaultBuilding: s.building == nil,
		Clock:           s.driver.Snapshot(),
		Tick:            s.tick,
		CreatedAt:       s.createdAt,
	}
}

// copyBuilding returns an owned copy of b, or nil when b is nil or invalid
func copyBuilding(b *building.Spec) *building.Spec {
	if b == nil || b.Validate() != nil {
		return nil
	}
	c := *b
	return &c
}
