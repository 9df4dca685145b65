// Package building describes the parametric building the simulation acts on.
package building

import (
	"github.com/KirkDiggler/disaster-sim/internal/errors"
)

// Type is the building category
type Type string

// Building categories
const (
	TypeResidential Type = "residential"
	TypeCommercial  Type = "commercial"
	TypeHighRise    Type = "high-rise"
	TypeWarehouse   Type = "warehouse"
	TypeCustom      Type = "custom"
)

// AllTypes returns every category in display order
func AllTypes() []Type {
	return []Type{TypeResidential, TypeCommercial, TypeHighRise, TypeWarehouse, TypeCustom}
}

// IsValid reports whether t is a known category
func (t Type) IsValid() bool {
	switch t {
	case TypeResidential, TypeCommercial, TypeHighRise, TypeWarehouse, TypeCustom:
		return true
	default:
		return false
	}
}

// Material names a surface finish
type Material string

// Surface finishes
const (
	MaterialConcrete Material = "concrete"
	MaterialBrick    Material = "brick"
	MaterialMetal    Material = "metal"
	MaterialTiles    Material = "tiles"
	MaterialGlass    Material = "glass"
	MaterialStandard Material = "standard"
)

// Dimensions are in meters
type Dimensions struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Depth  float64 `json:"depth" yaml:"depth"`
}

// Materials of the outer shell
type Materials struct {
	Walls   Material `json:"walls" yaml:"walls"`
	Roof    Material `json:"roof" yaml:"roof"`
	Windows Material `json:"windows" yaml:"windows"`
}

// Spec is an immutable building description. Values are copied, never shared.
type Spec struct {
	Type       Type       `json:"type" yaml:"type"`
	Floors     int        `json:"floors" yaml:"floors"`
	Dimensions Dimensions `json:"dimensions" yaml:"dimensions"`
	Materials  Materials  `json:"materials" yaml:"materials"`
}

// Default is the placeholder block shown when no building was supplied
func Default() Spec {
	return Spec{
		Type:   TypeCustom,
		Floors: 1,
		Dimensions: Dimensions{
			Width:  10,
			Height: 10,
			Depth:  10,
		},
		Materials: Materials{
			Walls:   MaterialConcrete,
			Roof:    MaterialTiles,
			Windows: MaterialStandard,
		},
	}
}

// Validate checks the structural invariants of the spec
func (s Spec) Validate() error {
	vb := errors.NewValidationBuilder()

	if !s.Type.IsValid() {
		vb.InvalidField("type", "unknown building type: "+string(s.Type))
	}
	if s.Floors < 1 {
		vb.Fieldf("floors", "must be at least 1, got %d", s.Floors)
	}
	errors.ValidatePositive("dimensions.width", s.Dimensions.Width, vb)
	errors.ValidatePositive("dimensions.height", s.Dimensions.Height, vb)
	errors.ValidatePositive("dimensions.depth", s.Dimensions.Depth, vb)

	return vb.Build()
}

// Resolve returns a copy of spec, or Default when spec is nil or invalid
func Resolve(spec *Spec) Spec {
	if spec == nil || spec.Validate() != nil {
		return Default()
	}
	return *spec
}

// TopCenter is the y coordinate of the roof center
func (s Spec) TopCenter() float64 {
	return s.Dimensions.Height
}
