// Package field generates the initial particle and debris distributions
// for the disasters that have them.
package field

import (
	"math"

	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
	"github.com/KirkDiggler/disaster-sim/internal/entities/scene"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
	"github.com/KirkDiggler/disaster-sim/internal/pkg/random"
)

// Ember and debris layout constants
const (
	EmberBase       = 200.0
	EmberHalfWidth  = 5.0
	EmberMaxSpawnY  = 3.0
	DebrisBase      = 50.0
	DebrisMinRadius = 15.0
	DebrisRadiusVar = 10.0
	DebrisMaxHeight = 15.0
	EmberMaxGreen   = 0.5
)

// Embers is the mutable fire particle buffer. The stepper integrates
// Positions in place; Colors are fixed at generation.
type Embers struct {
	Positions []scene.Vec3
	Colors    []scene.Color
}

// Debris is the static hurricane ring. Only a global rotation animates it.
type Debris struct {
	Positions []scene.Vec3
}

// Field is the generated state for one (kind, intensity) pair.
// Embers and Debris are nil for kinds that do not use them.
type Field struct {
	Kind      disaster.Kind
	Intensity disaster.Intensity
	Embers    *Embers
	Debris    *Debris
}

// Len is the number of particles or debris pieces in the field
func (f *Field) Len() int {
	switch {
	case f == nil:
		return 0
	case f.Embers != nil:
		return len(f.Embers.Positions)
	case f.Debris != nil:
		return len(f.Debris.Positions)
	default:
		return 0
	}
}

// EmberCount is round(200*I/5)
func EmberCount(intensity disaster.Intensity) int {
	return int(math.Round(EmberBase * intensity.Clamp().Over(5)))
}

// DebrisCount is round(50*I/5)
func DebrisCount(intensity disaster.Intensity) int {
	return int(math.Round(DebrisBase * intensity.Clamp().Over(5)))
}

// Config configures a Generator
type Config struct {
	Sampler random.Sampler
}

// Validate ensures all dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Sampler == nil {
		vb.RequiredField("Sampler")
	}
	return vb.Build()
}

// Generator builds fields
type Generator struct {
	sampler random.Sampler
}

// NewGenerator creates a Generator
func NewGenerator(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Generator{sampler: cfg.Sampler}, nil
}

// Generate builds a fresh field. Nothing is shared with previous fields.
func (g *Generator) Generate(kind disaster.Kind, intensity disaster.Intensity) *Field {
	kind = kind.Normalize()
	intensity = intensity.Clamp()

	f := &Field{Kind: kind, Intensity: intensity}
	switch kind {
	case disaster.KindFire:
		f.Embers = g.embers(EmberCount(intensity))
	case disaster.KindHurricane:
		f.Debris = g.debris(DebrisCount(intensity))
	}
	return f
}

// Respawn returns a fresh ember position at ground level
func (g *Generator) Respawn() scene.Vec3 {
	return scene.Vec3{
		X: g.sampler.Uniform(-EmberHalfWidth, EmberHalfWidth),
		Y: 0,
		Z: g.sampler.Uniform(-EmberHalfWidth, EmberHalfWidth),
	}
}

func (g *Generator) embers(count int) *Embers {
	e := &Embers{
		Positions: make([]scene.Vec3, count),
		Colors:    make([]scene.Color, count),
	}
	for i := 0; i < count; i++ {
		e.Positions[i] = scene.Vec3{
			X: g.sampler.Uniform(-EmberHalfWidth, EmberHalfWidth),
			Y: g.sampler.Uniform(0, EmberMaxSpawnY),
			Z: g.sampler.Uniform(-EmberHalfWidth, EmberHalfWidth),
		}
		e.Colors[i] = scene.Color{R: 1, G: g.sampler.Uniform(0, EmberMaxGreen), B: 0}
	}
	return e
}

func (g *Generator) debris(count int) *Debris {
	d := &Debris{Positions: make([]scene.Vec3, count)}
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		radius := DebrisMinRadius + g.sampler.Uniform(0, DebrisRadiusVar)
		d.Positions[i] = scene.Vec3{
			X: math.Cos(angle) * radius,
			Y: g.sampler.Uniform(0, DebrisMaxHeight),
			Z: math.Sin(angle) * radius,
		}
	}
	return d
}
