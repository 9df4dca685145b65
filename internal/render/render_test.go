package render_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
	"github.com/KirkDiggler/disaster-sim/internal/entities/scene"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
	"github.com/KirkDiggler/disaster-sim/internal/render"
)

type RenderTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}

func (s *RenderTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func quakeFrame(tick uint64) *scene.Frame {
	state := scene.Neutral()
	state.BuildingOffset.X = 0.2524
	state.BuildingTilt.Z = 0.0717
	state.Lights = []scene.Light{{Color: "#f59e0b", Intensity: 2}}
	return &scene.Frame{
		Tick:      tick,
		Time:      65.4,
		Phase:     "playing",
		Speed:     2,
		Kind:      disaster.KindEarthquake,
		Intensity: 10,
		State:     state,
	}
}

func (s *RenderTestSuite) TestFormatFrame() {
	line := render.FormatFrame(quakeFrame(12))
	s.True(strings.HasPrefix(line, "[1:05] #12"), line)
	s.Contains(line, "earthquake I=10")
	s.Contains(line, "offset=+0.252")
	s.Contains(line, "tilt=(+0.0000,+0.0717)")
	s.Contains(line, "light=#f59e0b@2.0")
	s.NotContains(line, "water=")
}

func (s *RenderTestSuite) TestFormatFrameFlood() {
	state := scene.Neutral()
	state.WaterHeight = scene.Float(-3)
	line := render.FormatFrame(&scene.Frame{Kind: disaster.KindFlood, Intensity: 6, State: state})
	s.Contains(line, "water=-3.00")
	s.NotContains(line, "offset=")
}

func (s *RenderTestSuite) TestTextEvery() {
	var buf bytes.Buffer
	text := render.NewText(&buf, 5)

	for tick := uint64(1); tick <= 10; tick++ {
		s.Require().NoError(text.Render(s.ctx, quakeFrame(tick)))
	}
	finished := quakeFrame(11)
	finished.Phase = "finished"
	s.Require().NoError(text.Render(s.ctx, finished))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	s.Len(lines, 3)
	s.Contains(lines[2], "finished")
}

func (s *RenderTestSuite) TestTextNilFrame() {
	s.True(errors.IsInvalidArgument(render.NewText(&bytes.Buffer{}, 1).Render(s.ctx, nil)))
}

func (s *RenderTestSuite) TestMulti() {
	var calls []string
	record := func(name string, err error) render.Renderer {
		return render.Func(func(context.Context, *scene.Frame) error {
			calls = append(calls, name)
			return err
		})
	}

	s.Run("fans out in order", func() {
		calls = nil
		m := render.Multi{record("a", nil), nil, record("b", nil)}
		s.NoError(m.Render(s.ctx, quakeFrame(1)))
		s.Equal([]string{"a", "b"}, calls)
	})

	s.Run("stops at first failure", func() {
		calls = nil
		m := render.Multi{record("a", fmt.Errorf("disk full")), record("b", nil)}
		err := m.Render(s.ctx, quakeFrame(1))
		s.Error(err)
		s.Contains(err.Error(), "disk full")
		s.Equal([]string{"a"}, calls)
	})
}
