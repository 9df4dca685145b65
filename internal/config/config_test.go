package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/disaster-sim/internal/config"
	"github.com/KirkDiggler/disaster-sim/internal/entities/building"
	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
	buildingsvc "github.com/KirkDiggler/disaster-sim/internal/services/building"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(name, body string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefault() {
	sc := config.Default()
	s.NoError(sc.Validate())
	s.Equal(disaster.KindEarthquake, sc.Kind())
	s.Equal(5, sc.Intensity)
	s.Equal(100*time.Millisecond, sc.FrameInterval())
	s.False(sc.Redis.Enabled())
}

func (s *ConfigTestSuite) TestLoad() {
	path := s.write("flood.yaml", `
disaster: Flood
intensity: 8
speed: 2
fps: 30
building:
  params:
    type: warehouse
    floors: 2
    width: 30
redis:
  addr: localhost:6379
  db: 2
  snapshot_ttl: 15m
`)

	sc, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal(disaster.KindFlood, sc.Kind())
	s.Equal(8, sc.Intensity)
	s.Equal(2.0, sc.Speed)
	s.Equal(time.Second/30, sc.FrameInterval())
	s.Require().NotNil(sc.Building.Params)
	s.Equal(building.TypeWarehouse, sc.Building.Params.Type)
	s.Equal(30.0, sc.Building.Params.Width)
	s.True(sc.Redis.Enabled())
	s.Equal(2, sc.Redis.DB)
	s.Equal(15*time.Minute, sc.Redis.SnapshotTTL)
	s.Equal(30.0, sc.DurationSeconds)
}

func (s *ConfigTestSuite) TestLoadErrors() {
	s.Run("missing file", func() {
		_, err := config.Load(filepath.Join(s.dir, "nope.yaml"))
		s.True(errors.IsNotFound(err))
	})

	s.Run("malformed yaml", func() {
		_, err := config.Load(s.write("bad.yaml", "disaster: [fire"))
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unsupported speed", func() {
		_, err := config.Load(s.write("speed.yaml", "speed: 3\n"))
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "speed")
	})
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		mutate  func(*config.Scenario)
		wantErr string
	}{
		{
			name:   "unknown disaster is accepted",
			mutate: func(sc *config.Scenario) { sc.Disaster = "volcano" },
		},
		{
			name:   "out of range intensity is accepted",
			mutate: func(sc *config.Scenario) { sc.Intensity = 99 },
		},
		{
			name:    "fps too high",
			mutate:  func(sc *config.Scenario) { sc.FPS = 500 },
			wantErr: "fps",
		},
		{
			name:    "custom buildings cannot be generated",
			mutate:  func(sc *config.Scenario) { sc.Building.Generate = building.TypeCustom },
			wantErr: "building.generate",
		},
		{
			name: "generate with params",
			mutate: func(sc *config.Scenario) {
				sc.Building.Generate = building.TypeHighRise
				sc.Building.Params = &buildingsvc.Params{Type: building.TypeResidential}
			},
			wantErr: "mutually exclusive",
		},
		{
			name:    "negative ttl",
			mutate:  func(sc *config.Scenario) { sc.Redis.SnapshotTTL = -time.Second },
			wantErr: "redis.snapshot_ttl",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			sc := config.Default()
			tc.mutate(&sc)
			err := sc.Validate()
			if tc.wantErr == "" {
				s.NoError(err)
				return
			}
			s.Error(err)
			s.Contains(err.Error(), tc.wantErr)
		})
	}
}
