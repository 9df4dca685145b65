package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/disaster-sim/internal/config"
	"github.com/KirkDiggler/disaster-sim/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/disaster-sim/internal/engine/timeline"
	"github.com/KirkDiggler/disaster-sim/internal/entities/building"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
	"github.com/KirkDiggler/disaster-sim/internal/orchestrators/simulation"
	"github.com/KirkDiggler/disaster-sim/internal/pkg/random"
	buildingsvc "github.com/KirkDiggler/disaster-sim/internal/services/building"
)

func newAdapter(bus events.EventBus) (*rpgtoolkit.Adapter, error) {
	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:   bus,
		DiceRoller: dice.DefaultRoller,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}
	return adapter, nil
}

func newBuildingService() (buildingsvc.Service, error) {
	svc, err := buildingsvc.NewService(&buildingsvc.Config{
		Sampler: random.NewDiceSampler(dice.DefaultRoller),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create building service")
	}
	return svc, nil
}

// resolveBuilding returns nil when the scenario names no building
func resolveBuilding(ctx context.Context, svc buildingsvc.Service, b config.Building) (*building.Spec, error) {
	switch {
	case b.Generate != "":
		out, err := svc.Generate(ctx, &buildingsvc.GenerateInput{Type: b.Generate})
		if err != nil {
			return nil, err
		}
		return out.Spec, nil
	case b.Params != nil:
		out, err := svc.FromParams(ctx, &buildingsvc.FromParamsInput{Params: *b.Params})
		if err != nil {
			return nil, err
		}
		return out.Spec, nil
	default:
		return nil, nil
	}
}

// logEvents mirrors domain events into the debug log
func logEvents(bus events.EventBus) {
	for _, et := range []string{
		simulation.EventSessionCreated,
		simulation.EventDisasterSelected,
		simulation.EventBuildingLoaded,
		timeline.EventPlayed,
		timeline.EventPaused,
		timeline.EventReset,
		timeline.EventSeeked,
		timeline.EventSpeedChanged,
		timeline.EventFinished,
		rpgtoolkit.EventFieldRegenerated,
	} {
		bus.SubscribeFunc(et, 0, func(ctx context.Context, e events.Event) error {
			slog.DebugContext(ctx, "event", "type", e.Type())
			return nil
		})
	}
}

// sessionControls binds keyboard commands to one session
type sessionControls struct {
	svc       simulation.Service
	sessionID string
}

func (c *sessionControls) TogglePlay(ctx context.Context) error {
	_, err := c.svc.TogglePlay(ctx, &simulation.ControlInput{SessionID: c.sessionID})
	return err
}

func (c *sessionControls) Reset(ctx context.Context) error {
	_, err := c.svc.Reset(ctx, &simulation.ControlInput{SessionID: c.sessionID})
	return err
}

func (c *sessionControls) SetSpeed(ctx context.Context, speed float64) error {
	_, err := c.svc.SetSpeed(ctx, &simulation.SetSpeedInput{SessionID: c.sessionID, Speed: speed})
	return err
}
