package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/disaster-sim/internal/engine/profile"
	"github.com/KirkDiggler/disaster-sim/internal/engine/stepper"
	"github.com/KirkDiggler/disaster-sim/internal/engine/timeline"
	"github.com/KirkDiggler/disaster-sim/internal/entities/building"
	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
	"github.com/KirkDiggler/disaster-sim/internal/entities/scene"
)

// DeriveProfileInput selects the disaster to describe
type DeriveProfileInput struct {
	Kind      disaster.Kind
	Intensity disaster.Intensity
}

// DeriveProfileOutput contains the derived profile
type DeriveProfileOutput struct {
	Profile profile.Profile
}

// StepInput contains everything needed for one tick
type StepInput struct {
	// State is owned by the caller and mutated in place
	State     *stepper.State
	Kind      disaster.Kind
	Intensity disaster.Intensity
	Clock     timeline.Snapshot
	Building  *building.Spec
	// Source is the entity regeneration events are attributed to
	Source core.Entity
}

// StepOutput contains the visual state for the tick
type StepOutput struct {
	State scene.VisualState
	// Regenerated is true when this tick replaced the particle field
	Regenerated bool
}
