package profile_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/disaster-sim/internal/engine/profile"
	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
	"github.com/KirkDiggler/disaster-sim/internal/pkg/random"
)

type ProfileTestSuite struct {
	suite.Suite
	table *profile.Table
}

func TestProfileSuite(t *testing.T) {
	suite.Run(t, new(ProfileTestSuite))
}

func (s *ProfileTestSuite) SetupTest() {
	table, err := profile.NewTable(&profile.Config{Sampler: random.NewDiceSampler(nil)})
	s.Require().NoError(err)
	s.table = table
}

func (s *ProfileTestSuite) TestNewTableRequiresSampler() {
	_, err := profile.NewTable(nil)
	s.Error(err)

	_, err = profile.NewTable(&profile.Config{})
	s.Error(err)
}

func (s *ProfileTestSuite) TestExactlyOneVariant() {
	for _, k := range disaster.AllKinds() {
		s.Run(string(k), func() {
			p := s.table.Derive(k, 5)
			s.Equal(k, p.Kind)
			set := 0
			for _, v := range []bool{p.Earthquake != nil, p.Flood != nil, p.Fire != nil, p.Hurricane != nil} {
				if v {
					set++
				}
			}
			s.Equal(1, set)
		})
	}
}

func (s *ProfileTestSuite) TestRangesForAllIntensities() {
	for i := disaster.MinIntensity; i <= disaster.MaxIntensity; i++ {
		eq := s.table.Derive(disaster.KindEarthquake, i).Earthquake
		s.GreaterOrEqual(eq.Magnitude, 4.0)
		s.LessOrEqual(eq.Magnitude, 9.0)
		s.GreaterOrEqual(eq.EpicenterDistanceKm, 0.0)
		s.LessOrEqual(eq.EpicenterDistanceKm, 100.0)
		s.Contains([]profile.ShakePattern{profile.ShakeHorizontal, profile.ShakeVertical, profile.ShakeRolling}, eq.ShakePattern)

		fl := s.table.Derive(disaster.KindFlood, i).Flood
		s.GreaterOrEqual(fl.WaterLevelMeters, 0.5)
		s.LessOrEqual(fl.WaterLevelMeters, 5.0)
		s.GreaterOrEqual(fl.FlowDirectionDeg, 0.0)
		s.Less(fl.FlowDirectionDeg, 360.0)

		fi := s.table.Derive(disaster.KindFire, i).Fire
		s.GreaterOrEqual(fi.StartLocations, 1)
		s.LessOrEqual(fi.StartLocations, 4)
		s.Equal(10*int(i), fi.IntensityPct)
		s.GreaterOrEqual(fi.WindSpeedKmh, 0.0)
		s.LessOrEqual(fi.WindSpeedKmh, 20.0)

		hu := s.table.Derive(disaster.KindHurricane, i).Hurricane
		s.GreaterOrEqual(hu.Category, 1)
		s.LessOrEqual(hu.Category, 5)
	}
}

func (s *ProfileTestSuite) TestFormulas() {
	table, err := profile.NewTable(&profile.Config{Sampler: random.Constant(0.5)})
	s.Require().NoError(err)

	eq := table.Derive(disaster.KindEarthquake, 6).Earthquake
	s.InDelta(7.0, eq.Magnitude, 1e-9)
	s.InDelta(22.0, eq.DurationSeconds, 1e-9)
	s.InDelta(50.0, eq.EpicenterDistanceKm, 1e-9)
	s.Equal(profile.ShakeVertical, eq.ShakePattern)

	fl := table.Derive(disaster.KindFlood, 6).Flood
	s.InDelta(3.0, fl.WaterLevelMeters, 1e-9)
	s.InDelta(0.34, fl.RiseSpeed, 1e-9)
	s.InDelta(1.8, fl.WaveHeight, 1e-9)
	s.InDelta(180.0, fl.FlowDirectionDeg, 1e-9)

	fi := table.Derive(disaster.KindFire, 7).Fire
	s.Equal(3, fi.StartLocations)
	s.InDelta(1.9, fi.SpreadRate, 1e-9)
	s.Equal(70, fi.IntensityPct)
	s.InDelta(10.0, fi.WindSpeedKmh, 1e-9)

	hu := table.Derive(disaster.KindHurricane, 7).Hurricane
	s.Equal(4, hu.Category)
	s.InDelta(240.0, hu.WindSpeedKmh, 1e-9)
	s.InDelta(350.0, hu.RainfallMmh, 1e-9)
	s.InDelta(270.0, hu.DurationMinutes, 1e-9)
}

func (s *ProfileTestSuite) TestUnknownKindFallsBackToEarthquake() {
	p := s.table.Derive(disaster.Kind("tornado"), 5)
	s.Equal(disaster.KindEarthquake, p.Kind)
	s.Require().NotNil(p.Earthquake)
	s.InDelta(6.5, p.Earthquake.Magnitude, 1e-9)
}

func (s *ProfileTestSuite) TestIntensityIsClamped() {
	high := s.table.Derive(disaster.KindHurricane, 40)
	s.Equal(disaster.MaxIntensity, high.Intensity)
	s.Equal(5, high.Hurricane.Category)

	low := s.table.Derive(disaster.KindFire, -2)
	s.Equal(disaster.MinIntensity, low.Intensity)
	s.Equal(1, low.Fire.StartLocations)
}

func (s *ProfileTestSuite) TestMotionFieldsAreDeterministic() {
	a := s.table.Derive(disaster.KindEarthquake, 8).Earthquake
	b := s.table.Derive(disaster.KindEarthquake, 8).Earthquake
	s.Equal(a.Magnitude, b.Magnitude)
	s.Equal(a.DurationSeconds, b.DurationSeconds)
}
