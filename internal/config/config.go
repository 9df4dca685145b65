// Package config loads simulation scenarios from YAML
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/disaster-sim/internal/engine/timeline"
	"github.com/KirkDiggler/disaster-sim/internal/entities/building"
	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
	buildingsvc "github.com/KirkDiggler/disaster-sim/internal/services/building"
)

// Scenario describes one simulation run
type Scenario struct {
	Disaster  string  `yaml:"disaster"`
	Intensity int     `yaml:"intensity"`
	Speed     float64 `yaml:"speed"`
	FPS       int     `yaml:"fps"`
	// DurationSeconds overrides the 30 s timeline
	DurationSeconds float64 `yaml:"duration_seconds"`

	Building Building `yaml:"building"`
	Redis    Redis    `yaml:"redis"`
}

// Building selects the building for a scenario. Generate picks a random
// building of that type; otherwise Params is used when set.
type Building struct {
	Generate building.Type      `yaml:"generate"`
	Params   *buildingsvc.Params `yaml:"params"`
}

// Redis configures optional snapshot persistence
type Redis struct {
	Addr        string        `yaml:"addr"`
	Password    string        `yaml:"password"`
	DB          int           `yaml:"db"`
	SnapshotTTL time.Duration `yaml:"snapshot_ttl"`
}

// Enabled reports whether a redis address is configured
func (r Redis) Enabled() bool {
	return r.Addr != ""
}

// Default returns the scenario used when no file is given
func Default() Scenario {
	return Scenario{
		Disaster:        string(disaster.DefaultKind),
		Intensity:       int(disaster.DefaultIntensity),
		Speed:           1,
		FPS:             10,
		DurationSeconds: timeline.DefaultDuration,
		Redis: Redis{
			SnapshotTTL: time.Hour,
		},
	}
}

// Load reads path over Default. Unset keys keep their default values.
func Load(path string) (Scenario, error) {
	sc := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sc, errors.NotFoundf("scenario file %s not found", path)
		}
		return sc, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read %s", path)
	}
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return sc, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "%s: malformed yaml", path)
	}
	if err := sc.Validate(); err != nil {
		return sc, errors.Wrapf(err, "%s", path)
	}
	return sc, nil
}

// Validate checks values that cannot be normalized. Disaster and intensity
// are never rejected here; the simulation clamps them.
func (s *Scenario) Validate() error {
	vb := errors.NewValidationBuilder()

	if s.Speed != 0 && !timeline.IsSupportedSpeed(s.Speed) {
		vb.Fieldf("speed", "must be one of %v, got %v", timeline.SupportedSpeeds(), s.Speed)
	}
	if s.FPS < 0 || s.FPS > 120 {
		vb.Fieldf("fps", "must be between 1 and 120, got %d", s.FPS)
	}
	if s.DurationSeconds < 0 {
		vb.Fieldf("duration_seconds", "must not be negative, got %v", s.DurationSeconds)
	}
	if g := s.Building.Generate; g != "" {
		if !g.IsValid() || g == building.TypeCustom {
			vb.Fieldf("building.generate", "cannot generate type %q", g)
		}
		if s.Building.Params != nil {
			vb.Field("building", "generate and params are mutually exclusive")
		}
	}
	if s.Redis.DB < 0 {
		vb.Fieldf("redis.db", "must not be negative, got %d", s.Redis.DB)
	}
	if s.Redis.SnapshotTTL < 0 {
		vb.Fieldf("redis.snapshot_ttl", "must not be negative, got %s", s.Redis.SnapshotTTL)
	}

	return vb.Build()
}

// Kind returns the normalized disaster kind
func (s *Scenario) Kind() disaster.Kind {
	return disaster.ParseKind(s.Disaster)
}

// FrameInterval converts FPS into a ticker period
func (s *Scenario) FrameInterval() time.Duration {
	if s.FPS <= 0 {
		return timeline.DefaultInterval
	}
	return time.Second / time.Duration(s.FPS)
}
