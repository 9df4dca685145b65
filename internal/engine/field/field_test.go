package field_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/disaster-sim/internal/engine/field"
	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
	"github.com/KirkDiggler/disaster-sim/internal/pkg/random"
)

type FieldTestSuite struct {
	suite.Suite
	gen *field.Generator
}

func TestFieldSuite(t *testing.T) {
	suite.Run(t, new(FieldTestSuite))
}

func (s *FieldTestSuite) SetupTest() {
	gen, err := field.NewGenerator(&field.Config{Sampler: random.NewDiceSampler(nil)})
	s.Require().NoError(err)
	s.gen = gen
}

func (s *FieldTestSuite) TestCounts() {
	testCases := []struct {
		intensity disaster.Intensity
		embers    int
		debris    int
	}{
		{intensity: 1, embers: 40, debris: 10},
		{intensity: 5, embers: 200, debris: 50},
		{intensity: 7, embers: 280, debris: 70},
		{intensity: 10, embers: 400, debris: 100},
		{intensity: 15, embers: 400, debris: 100},
	}

	for _, tc := range testCases {
		s.Equal(tc.embers, field.EmberCount(tc.intensity))
		s.Equal(tc.debris, field.DebrisCount(tc.intensity))
	}
}

func (s *FieldTestSuite) TestFireField() {
	f := s.gen.Generate(disaster.KindFire, 6)
	s.Require().NotNil(f.Embers)
	s.Nil(f.Debris)
	s.Equal(240, f.Len())
	s.Len(f.Embers.Colors, 240)

	for i, p := range f.Embers.Positions {
		s.GreaterOrEqual(p.X, -5.0)
		s.LessOrEqual(p.X, 5.0)
		s.GreaterOrEqual(p.Z, -5.0)
		s.LessOrEqual(p.Z, 5.0)
		s.GreaterOrEqual(p.Y, 0.0)
		s.LessOrEqual(p.Y, 3.0)

		c := f.Embers.Colors[i]
		s.Equal(1.0, c.R)
		s.GreaterOrEqual(c.G, 0.0)
		s.LessOrEqual(c.G, 0.5)
		s.Equal(0.0, c.B)
	}
}

func (s *FieldTestSuite) TestHurricaneRing() {
	gen, err := field.NewGenerator(&field.Config{Sampler: random.Constant(0.5)})
	s.Require().NoError(err)

	f := gen.Generate(disaster.KindHurricane, 4)
	s.Require().NotNil(f.Debris)
	s.Nil(f.Embers)
	s.Equal(40, f.Len())

	for i, p := range f.Debris.Positions {
		angle := 2 * math.Pi * float64(i) / 40
		s.InDelta(math.Cos(angle)*20, p.X, 1e-9)
		s.InDelta(math.Sin(angle)*20, p.Z, 1e-9)
		s.InDelta(7.5, p.Y, 1e-9)
	}
}

func (s *FieldTestSuite) TestHurricaneRadiusBounds() {
	f := s.gen.Generate(disaster.KindHurricane, 10)
	for _, p := range f.Debris.Positions {
		r := math.Hypot(p.X, p.Z)
		s.GreaterOrEqual(r, 15.0-1e-9)
		s.LessOrEqual(r, 25.0+1e-9)
		s.GreaterOrEqual(p.Y, 0.0)
		s.LessOrEqual(p.Y, 15.0)
	}
}

func (s *FieldTestSuite) TestEmptyKinds() {
	for _, k := range []disaster.Kind{disaster.KindEarthquake, disaster.KindFlood, "unknown"} {
		f := s.gen.Generate(k, 8)
		s.Nil(f.Embers)
		s.Nil(f.Debris)
		s.Equal(0, f.Len())
	}
	var nilField *field.Field
	s.Equal(0, nilField.Len())
}

func (s *FieldTestSuite) TestRegenerationDoesNotShareBuffers() {
	a := s.gen.Generate(disaster.KindFire, 5)
	b := s.gen.Generate(disaster.KindFire, 5)
	a.Embers.Positions[0].Y = 99
	s.NotEqual(99.0, b.Embers.Positions[0].Y)
}

func (s *FieldTestSuite) TestRespawn() {
	p := s.gen.Respawn()
	s.Equal(0.0, p.Y)
	s.GreaterOrEqual(p.X, -5.0)
	s.LessOrEqual(p.X, 5.0)
}
