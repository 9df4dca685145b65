// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/disaster-sim/internal/engine"
	"github.com/KirkDiggler/disaster-sim/internal/engine/field"
	"github.com/KirkDiggler/disaster-sim/internal/engine/profile"
	"github.com/KirkDiggler/disaster-sim/internal/engine/stepper"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
	"github.com/KirkDiggler/disaster-sim/internal/pkg/random"
)

// Event types published by the adapter
const (
	EventFieldRegenerated = "disaster.field_regenerated"
)

// Event context keys
const (
	KeyKind      = "kind"
	KeyIntensity = "intensity"
	KeyCount     = "count"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	eventBus events.EventBus
	profiles *profile.Table
	stepper  *stepper.Stepper
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus   events.EventBus
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sampler := random.NewDiceSampler(cfg.DiceRoller)

	profiles, err := profile.NewTable(&profile.Config{Sampler: sampler})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile table")
	}

	generator, err := field.NewGenerator(&field.Config{Sampler: sampler})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create field generator")
	}

	st, err := stepper.New(&stepper.Config{Fields: generator})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stepper")
	}

	return &Adapter{
		eventBus: cfg.EventBus,
		profiles: profiles,
		stepper:  st,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// DeriveProfile derives the profile for the requested disaster
func (a *Adapter) DeriveProfile(
	_ context.Context,
	input *engine.DeriveProfileInput,
) (*engine.DeriveProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &engine.DeriveProfileOutput{
		Profile: a.profiles.Derive(input.Kind, input.Intensity),
	}, nil
}

// Step advances the caller's state by one tick
func (a *Adapter) Step(ctx context.Context, input *engine.StepInput) (*engine.StepOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.State == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	before := input.State.Field()
	visual := a.stepper.Step(stepper.Input{
		Kind:        input.Kind,
		Intensity:   input.Intensity,
		CurrentTime: input.Clock.CurrentTime,
		Playing:     input.Clock.Playing,
		Idle:        input.Clock.Idle(),
		Building:    input.Building,
	}, input.State)

	after := input.State.Field()
	regenerated := before != after
	if regenerated {
		a.publishRegenerated(ctx, input, after)
	}

	return &engine.StepOutput{
		State:       visual,
		Regenerated: regenerated,
	}, nil
}

func (a *Adapter) publishRegenerated(ctx context.Context, input *engine.StepInput, f *field.Field) {
	event := events.NewGameEvent(EventFieldRegenerated, input.Source, nil)
	event.Context().Set(KeyKind, string(f.Kind))
	event.Context().Set(KeyIntensity, int(f.Intensity))
	event.Context().Set(KeyCount, f.Len())

	if err := a.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish field regeneration",
			"kind", f.Kind,
			"intensity", f.Intensity,
			"error", err)
	}
}
