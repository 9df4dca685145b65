// Package stepper computes the per-tick visual state of a disaster.
//
// Each disaster kind owns one transition function. A step always starts
// from scene.Neutral and applies exactly one transition, so transforms
// owned by other kinds never survive a kind switch.
package stepper

import (
	"math"

	"github.com/KirkDiggler/disaster-sim/internal/engine/field"
	"github.com/KirkDiggler/disaster-sim/internal/entities/building"
	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
	"github.com/KirkDiggler/disaster-sim/internal/entities/scene"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
)

// Motion constants
const (
	WaterRest        = -5.0
	WaterRiseStep    = 0.02
	EmberRiseStep    = 0.05
	EmberCeiling     = 20.0
	DebrisSpinStep   = 0.02
	FireLightColor   = "#ff6b35"
	FireLightRange   = 30.0
	QuakeLightColor  = "#f59e0b"
	quakeOffsetScale = 0.3
	hurricaneWobble  = 0.5 * 0.05
)

// FieldSource regenerates particle fields and respawns embers
type FieldSource interface {
	Generate(kind disaster.Kind, intensity disaster.Intensity) *field.Field
	Respawn() scene.Vec3
}

// Input is everything the stepper reads for one tick
type Input struct {
	Kind        disaster.Kind
	Intensity   disaster.Intensity
	CurrentTime float64
	Playing     bool
	// Idle is true when the timeline was reset and has not started again
	Idle     bool
	Building *building.Spec
}

// State is the integrable memory carried between ticks
type State struct {
	kind           disaster.Kind
	intensity      disaster.Intensity
	field          *field.Field
	waterHeight    float64
	debrisRotation float64
}

// NewState returns a State with water at rest
func NewState() *State {
	return &State{waterHeight: WaterRest}
}

// WaterHeight is the current integrated flood level
func (s *State) WaterHeight() float64 { return s.waterHeight }

// DebrisRotation is the accumulated hurricane spin
func (s *State) DebrisRotation() float64 { return s.debrisRotation }

// Field is the active particle field, nil before the first step
func (s *State) Field() *field.Field { return s.field }

// Config configures a Stepper
type Config struct {
	Fields FieldSource
}

// Validate ensures all dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Fields == nil {
		vb.RequiredField("Fields")
	}
	return vb.Build()
}

type transition func(in Input, st *State, out *scene.VisualState)

// Stepper dispatches ticks to the active kind's transition
type Stepper struct {
	fields      FieldSource
	transitions map[disaster.Kind]transition
}

// New creates a Stepper
func New(cfg *Config) (*Stepper, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &Stepper{fields: cfg.Fields}
	s.transitions = map[disaster.Kind]transition{
		disaster.KindEarthquake: s.earthquake,
		disaster.KindFlood:      s.flood,
		disaster.KindFire:       s.fire,
		disaster.KindHurricane:  s.hurricane,
	}
	return s, nil
}

// Step advances st by one tick and returns the frame's visual state.
// Kind and intensity are normalized; a change in either regenerates the field.
func (s *Stepper) Step(in Input, st *State) scene.VisualState {
	in.Kind = in.Kind.Normalize()
	in.Intensity = in.Intensity.Clamp()

	if st.field == nil || st.kind != in.Kind || st.intensity != in.Intensity {
		if st.field != nil && st.kind != in.Kind {
			st.waterHeight = WaterRest
			st.debrisRotation = 0
		}
		st.kind = in.Kind
		st.intensity = in.Intensity
		st.field = s.fields.Generate(in.Kind, in.Intensity)
	}

	if in.Idle {
		st.waterHeight = WaterRest
	}

	out := scene.Neutral()
	s.transitions[in.Kind](in, st, &out)
	return out
}

func (s *Stepper) earthquake(in Input, _ *State, out *scene.VisualState) {
	if in.Playing {
		out.BuildingOffset.X = math.Sin(in.CurrentTime*10) * in.Intensity.Over(10) * quakeOffsetScale
		out.BuildingTilt.Z = math.Sin(in.CurrentTime*8) * in.Intensity.Over(100)
	}
	out.Lights = []scene.Light{{
		Color:     QuakeLightColor,
		Intensity: in.Intensity.Over(5),
	}}
}

func (s *Stepper) flood(in Input, st *State, out *scene.VisualState) {
	if in.Playing {
		target := in.Intensity.Over(10) * 5
		if st.waterHeight < target {
			st.waterHeight = math.Min(st.waterHeight+WaterRiseStep, target)
		}
	}
	out.WaterHeight = scene.Float(st.waterHeight)
}

func (s *Stepper) fire(in Input, st *State, out *scene.VisualState) {
	embers := st.field.Embers
	if in.Playing {
		rise := EmberRiseStep * in.Intensity.Over(5)
		for i := range embers.Positions {
			embers.Positions[i].Y += rise
			if embers.Positions[i].Y > EmberCeiling {
				embers.Positions[i] = s.fields.Respawn()
			}
		}
	}

	out.ParticlePositions = append([]scene.Vec3(nil), embers.Positions...)
	out.ParticleColors = append([]scene.Color(nil), embers.Colors...)

	b := building.Resolve(in.Building)
	out.Lights = []scene.Light{{
		Color:     FireLightColor,
		Intensity: in.Intensity.Over(2),
		Distance:  FireLightRange,
		Position:  scene.Vec3{Y: b.TopCenter()},
	}}
}

func (s *Stepper) hurricane(in Input, st *State, out *scene.VisualState) {
	if in.Playing {
		st.debrisRotation += DebrisSpinStep * in.Intensity.Over(5)
		out.BuildingTilt.X = math.Sin(in.CurrentTime*5) * in.Intensity.Over(10) * hurricaneWobble
	}
	out.DebrisPositions = append([]scene.Vec3(nil), st.field.Debris.Positions...)
	out.DebrisRotationY = scene.Float(st.debrisRotation)
}
