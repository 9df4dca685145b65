package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/disaster-sim/internal/engine/profile"
	"github.com/KirkDiggler/disaster-sim/internal/entities/building"
	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
	"github.com/KirkDiggler/disaster-sim/internal/recording"
)

type CLITestSuite struct {
	suite.Suite
	out *bytes.Buffer
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	rootCmd.SetOut(s.out)
	rootCmd.SetErr(&bytes.Buffer{})
}

func (s *CLITestSuite) execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func (s *CLITestSuite) TestProfile() {
	s.Require().NoError(s.execute("profile", "--disaster", "fire", "--intensity", "7"))

	out := s.out.String()
	s.Contains(out, "# Fire:")

	var p profile.Profile
	s.Require().NoError(json.Unmarshal(s.out.Bytes()[bytes.IndexByte(s.out.Bytes(), '\n')+1:], &p))
	s.Equal(disaster.KindFire, p.Kind)
	s.Require().NotNil(p.Fire)
	s.Equal(3, p.Fire.StartLocations)
	s.Equal(70, p.Fire.IntensityPct)
}

func (s *CLITestSuite) TestBuildingFromType() {
	s.Require().NoError(s.execute("building", "--type", "high-rise"))

	var spec building.Spec
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &spec))
	s.Equal(building.TypeHighRise, spec.Type)
	s.NoError(spec.Validate())
	buildingType = ""
}

func (s *CLITestSuite) TestBuildingCustomTypeRejected() {
	err := s.execute("building", "--type", "custom")
	s.Error(err)
	s.Equal(2, errors.GetCode(err).ExitCode())
	buildingType = ""
}

func (s *CLITestSuite) TestInvalidLogFormat() {
	err := s.execute("profile", "--log-format", "xml")
	s.True(errors.IsInvalidArgument(err))
	logFormat = "text"
}

func (s *CLITestSuite) TestReplayMissingFile() {
	err := s.execute("replay", filepath.Join(s.T().TempDir(), "none"+recording.Extension))
	s.True(errors.IsNotFound(err))
	s.Equal(3, errors.GetCode(err).ExitCode())
}
