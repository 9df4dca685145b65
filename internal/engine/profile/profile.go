// Package profile derives the physical parameters of a disaster from its
// kind and intensity.
//
// Motion-affecting fields are pure functions of the intensity. Fields
// marked as flavor are drawn from the sampler on every call and are not
// reproducible across calls with identical inputs.
package profile

import (
	"math"

	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
	"github.com/KirkDiggler/disaster-sim/internal/pkg/random"
)

// ShakePattern is the dominant ground motion of an earthquake
type ShakePattern string

// Shake patterns
const (
	ShakeHorizontal ShakePattern = "horizontal"
	ShakeVertical   ShakePattern = "vertical"
	ShakeRolling    ShakePattern = "rolling"
)

var shakePatterns = []ShakePattern{ShakeHorizontal, ShakeVertical, ShakeRolling}

// Earthquake parameters
type Earthquake struct {
	Magnitude       float64 `json:"magnitude"`        // 4.0 - 9.0
	DurationSeconds float64 `json:"duration_seconds"` // 12 - 30
	// flavor
	EpicenterDistanceKm float64      `json:"epicenter_distance_km"`
	ShakePattern        ShakePattern `json:"shake_pattern"`
}

// Flood parameters
type Flood struct {
	WaterLevelMeters float64 `json:"water_level_meters"` // 0.5 - 5
	RiseSpeed        float64 `json:"rise_speed"`         // m/s
	WaveHeight       float64 `json:"wave_height"`
	// flavor
	FlowDirectionDeg float64 `json:"flow_direction_deg"`
}

// Fire parameters
type Fire struct {
	StartLocations int     `json:"start_locations"` // 1 - 4
	SpreadRate     float64 `json:"spread_rate"`     // m/s
	IntensityPct   int     `json:"intensity_pct"`
	// flavor
	WindSpeedKmh float64 `json:"wind_speed_kmh"`
}

// Hurricane parameters
type Hurricane struct {
	Category        int     `json:"category"` // 1 - 5
	WindSpeedKmh    float64 `json:"wind_speed_kmh"`
	RainfallMmh     float64 `json:"rainfall_mmh"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// Profile is a tagged variant: exactly one of the kind sections is set,
// matching Kind.
type Profile struct {
	Kind      disaster.Kind      `json:"kind"`
	Intensity disaster.Intensity `json:"intensity"`

	Earthquake *Earthquake `json:"earthquake,omitempty"`
	Flood      *Flood      `json:"flood,omitempty"`
	Fire       *Fire       `json:"fire,omitempty"`
	Hurricane  *Hurricane  `json:"hurricane,omitempty"`
}

// Config configures a Table
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

// Table derives profiles
type Table struct {
	sampler random.Sampler
}

// NewTable creates a Table
func NewTable(cfg *Config) (*Table, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Table{sampler: cfg.Sampler}, nil
}

// Derive computes the profile for kind at intensity.
// Intensity is clamped and unknown kinds resolve to earthquake.
func (t *Table) Derive(kind disaster.Kind, intensity disaster.Intensity) Profile {
	kind = kind.Normalize()
	intensity = intensity.Clamp()
	i := float64(intensity)

	p := Profile{Kind: kind, Intensity: intensity}
	switch kind {
	case disaster.KindFlood:
		p.Flood = &Flood{
			WaterLevelMeters: 0.5 * i,
			RiseSpeed:        0.1 + intensity.Over(10)*0.4,
			WaveHeight:       0.3 * i,
			FlowDirectionDeg: t.sampler.Uniform(0, 360),
		}
	case disaster.KindFire:
		p.Fire = &Fire{
			StartLocations: int(math.Ceil(i / 3)),
			SpreadRate:     0.5 + intensity.Over(10)*2,
			IntensityPct:   10 * int(intensity),
			WindSpeedKmh:   t.sampler.Uniform(0, 20),
		}
	case disaster.KindHurricane:
		p.Hurricane = &Hurricane{
			Category:        int(math.Ceil(i / 2)),
			WindSpeedKmh:    100 + 20*i,
			RainfallMmh:     50 * i,
			DurationMinutes: 60 + 30*i,
		}
	default:
		p.Earthquake = &Earthquake{
			Magnitude:           4 + intensity.Over(10)*5,
			DurationSeconds:     10 + 2*i,
			EpicenterDistanceKm: t.sampler.Uniform(0, 100),
			ShakePattern:        shakePatterns[t.sampler.Intn(len(shakePatterns))],
		}
	}
	return p
}
