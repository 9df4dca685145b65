package disaster_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
)

type DisasterTestSuite struct {
	suite.Suite
}

func TestDisasterSuite(t *testing.T) {
	suite.Run(t, new(DisasterTestSuite))
}

func (s *DisasterTestSuite) TestParseKind() {
	testCases := []struct {
		name     string
		input    string
		expected disaster.Kind
	}{
		{name: "earthquake", input: "earthquake", expected: disaster.KindEarthquake},
		{name: "flood", input: "flood", expected: disaster.KindFlood},
		{name: "fire with whitespace", input: "  fire ", expected: disaster.KindFire},
		{name: "hurricane upper case", input: "HURRICANE", expected: disaster.KindHurricane},
		{name: "unknown falls back to earthquake", input: "tornado", expected: disaster.KindEarthquake},
		{name: "empty falls back to earthquake", input: "", expected: disaster.KindEarthquake},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, disaster.ParseKind(tc.input))
		})
	}
}

func (s *DisasterTestSuite) TestClampIntensity() {
	testCases := []struct {
		name     string
		input    int
		expected disaster.Intensity
	}{
		{name: "below range", input: -3, expected: disaster.MinIntensity},
		{name: "zero", input: 0, expected: disaster.MinIntensity},
		{name: "lower bound", input: 1, expected: 1},
		{name: "middle", input: 6, expected: 6},
		{name: "upper bound", input: 10, expected: 10},
		{name: "above range", input: 42, expected: disaster.MaxIntensity},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, disaster.ClampIntensity(tc.input))
		})
	}
}

func (s *DisasterTestSuite) TestIntensityOver() {
	s.InDelta(1.0, disaster.Intensity(10).Over(10), 1e-12)
	s.InDelta(0.2, disaster.Intensity(1).Over(5), 1e-12)
	s.InDelta(0.07, disaster.Intensity(7).Over(100), 1e-12)
}

func (s *DisasterTestSuite) TestCatalog() {
	entries := disaster.Catalog()
	s.Require().Len(entries, 4)
	for i, k := range disaster.AllKinds() {
		s.Equal(k, entries[i].Kind)
		s.NotEmpty(entries[i].Name)
		s.NotEmpty(entries[i].Color)
	}

	s.Equal(disaster.KindEarthquake, disaster.Lookup("volcano").Kind)
	s.Equal("Flood", disaster.Lookup(disaster.KindFlood).Name)
}
