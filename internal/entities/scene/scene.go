// Package scene holds the renderer-facing output of the simulation.
package scene

import (
	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
)

// Vec3 is a point in world space, y up
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Planar is a horizontal (x, z) pair
type Planar struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Color is a linear RGB triple in [0,1]
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Light is a point light contributed by the active disaster
type Light struct {
	Color     string  `json:"color"`
	Intensity float64 `json:"intensity"`
	Distance  float64 `json:"distance,omitempty"`
	Position  Vec3    `json:"position"`
}

// VisualState is what a renderer needs to draw one frame.
// Nil fields are not active for the current disaster.
type VisualState struct {
	BuildingOffset    Planar   `json:"building_offset"`
	BuildingTilt      Planar   `json:"building_tilt"` // radians
	WaterHeight       *float64 `json:"water_height,omitempty"`
	ParticlePositions []Vec3   `json:"particle_positions,omitempty"`
	ParticleColors    []Color  `json:"particle_colors,omitempty"`
	DebrisPositions   []Vec3   `json:"debris_positions,omitempty"`
	DebrisRotationY   *float64 `json:"debris_rotation_y,omitempty"`
	Lights            []Light  `json:"lights,omitempty"`
}

// Neutral returns a state with no displacement and no active effects
func Neutral() VisualState {
	return VisualState{}
}

// IsNeutral reports whether the building transforms are at rest
func (v VisualState) IsNeutral() bool {
	return v.BuildingOffset == (Planar{}) && v.BuildingTilt == (Planar{})
}

// Frame is one rendered step of a session
type Frame struct {
	SessionID string             `json:"session_id,omitempty"`
	Tick      uint64             `json:"tick"`
	Time      float64            `json:"time"`
	Phase     string             `json:"phase"`
	Speed     float64            `json:"speed"`
	Kind      disaster.Kind      `json:"kind"`
	Intensity disaster.Intensity `json:"intensity"`
	State     VisualState        `json:"state"`
}

// Float returns a pointer to v
func Float(v float64) *float64 {
	return &v
}
