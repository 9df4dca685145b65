package timeline_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/disaster-sim/internal/engine/timeline"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
)

type DriverTestSuite struct {
	suite.Suite
	ctx      context.Context
	bus      events.EventBus
	received []string
	driver   *timeline.Driver
}

func TestDriverSuite(t *testing.T) {
	suite.Run(t, new(DriverTestSuite))
}

func (s *DriverTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()
	s.received = nil
	for _, et := range []string{
		timeline.EventPlayed,
		timeline.EventPaused,
		timeline.EventReset,
		timeline.EventSeeked,
		timeline.EventSpeedChanged,
		timeline.EventFinished,
	} {
		s.bus.SubscribeFunc(et, 0, func(_ context.Context, e events.Event) error {
			s.received = append(s.received, e.Type())
			return nil
		})
	}

	driver, err := timeline.NewDriver(&timeline.Config{EventBus: s.bus})
	s.Require().NoError(err)
	s.driver = driver
}

func (s *DriverTestSuite) TestInitialState() {
	snap := s.driver.Snapshot()
	s.Equal(timeline.PhaseIdle, snap.Phase)
	s.True(snap.Idle())
	s.False(snap.Playing)
	s.Equal(0.0, snap.CurrentTime)
	s.Equal(1.0, snap.Speed)
	s.Equal(timeline.DefaultDuration, snap.Duration)
}

func (s *DriverTestSuite) TestInvalidConfig() {
	_, err := timeline.NewDriver(&timeline.Config{Duration: -1})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DriverTestSuite) TestPlayPauseTransitions() {
	snap := s.driver.Play(s.ctx)
	s.Equal(timeline.PhasePlaying, snap.Phase)
	s.True(snap.Playing)

	snap = s.driver.Play(s.ctx)
	s.Equal(timeline.PhasePlaying, snap.Phase)

	snap = s.driver.Pause(s.ctx)
	s.Equal(timeline.PhasePaused, snap.Phase)

	snap = s.driver.Pause(s.ctx)
	s.Equal(timeline.PhasePaused, snap.Phase)

	snap = s.driver.Toggle(s.ctx)
	s.Equal(timeline.PhasePlaying, snap.Phase)
	snap = s.driver.Toggle(s.ctx)
	s.Equal(timeline.PhasePaused, snap.Phase)

	s.Equal([]string{
		timeline.EventPlayed,
		timeline.EventPaused,
		timeline.EventPlayed,
		timeline.EventPaused,
	}, s.received)
}

func (s *DriverTestSuite) TestAdvance() {
	s.Run("idle does not advance", func() {
		snap, ok := s.driver.Advance(s.ctx, 0, 1)
		s.True(ok)
		s.Equal(0.0, snap.CurrentTime)
	})

	s.Run("playing advances by elapsed times speed", func() {
		s.driver.Play(s.ctx)
		_, err := s.driver.SetSpeed(s.ctx, 2)
		s.Require().NoError(err)

		snap, ok := s.driver.Advance(s.ctx, s.driver.Ticket(), 0.1)
		s.True(ok)
		s.InDelta(0.2, snap.CurrentTime, 1e-12)
	})

	s.Run("reaching the duration finishes", func() {
		snap, ok := s.driver.Advance(s.ctx, 0, 100)
		s.True(ok)
		s.Equal(timeline.DefaultDuration, snap.CurrentTime)
		s.Equal(timeline.PhaseFinished, snap.Phase)
		s.False(snap.Playing)
		s.Contains(s.received, timeline.EventFinished)
	})

	s.Run("play from finished is a no-op", func() {
		snap := s.driver.Play(s.ctx)
		s.Equal(timeline.PhaseFinished, snap.Phase)
	})
}

func (s *DriverTestSuite) TestStaleTicketsAreIgnored() {
	s.driver.Play(s.ctx)
	ticket := s.driver.Ticket()

	commands := []struct {
		name string
		run  func()
	}{
		{"pause", func() { s.driver.Pause(s.ctx) }},
		{"play", func() { s.driver.Play(s.ctx) }},
		{"seek", func() { s.driver.Seek(s.ctx, 3) }},
		{"speed", func() { _, _ = s.driver.SetSpeed(s.ctx, 4) }},
		{"reset", func() { s.driver.Reset(s.ctx) }},
	}

	for _, cmd := range commands {
		s.Run(cmd.name, func() {
			s.driver.Play(s.ctx)
			ticket = s.driver.Ticket()

			cmd.run()
			after := s.driver.Snapshot()

			snap, ok := s.driver.Advance(s.ctx, ticket, 1)
			s.False(ok)
			s.Equal(after, snap)
		})
	}
}

func (s *DriverTestSuite) TestSeek() {
	testCases := []struct {
		name     string
		setup    func()
		target   float64
		expected float64
		phase    timeline.Phase
	}{
		{
			name:     "idle to paused",
			setup:    func() {},
			target:   12,
			expected: 12,
			phase:    timeline.PhasePaused,
		},
		{
			name:     "idle stays idle at zero",
			setup:    func() {},
			target:   0,
			expected: 0,
			phase:    timeline.PhaseIdle,
		},
		{
			name:     "clamps below zero",
			setup:    func() {},
			target:   -4,
			expected: 0,
			phase:    timeline.PhaseIdle,
		},
		{
			name:     "clamps above duration",
			setup:    func() { s.driver.Play(s.ctx) },
			target:   99,
			expected: 30,
			phase:    timeline.PhasePlaying,
		},
		{
			name:     "playing stays playing",
			setup:    func() { s.driver.Play(s.ctx) },
			target:   0.05,
			expected: 0.05,
			phase:    timeline.PhasePlaying,
		},
		{
			name: "finished becomes paused",
			setup: func() {
				s.driver.Play(s.ctx)
				s.driver.Advance(s.ctx, 0, 60)
			},
			target:   10,
			expected: 10,
			phase:    timeline.PhasePaused,
		},
		{
			name: "finished stays finished at the end",
			setup: func() {
				s.driver.Play(s.ctx)
				s.driver.Advance(s.ctx, 0, 60)
			},
			target:   30,
			expected: 30,
			phase:    timeline.PhaseFinished,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.driver.Reset(s.ctx)
			tc.setup()
			snap := s.driver.Seek(s.ctx, tc.target)
			s.Equal(tc.expected, snap.CurrentTime)
			s.Equal(tc.phase, snap.Phase)
		})
	}
}

func (s *DriverTestSuite) TestReset() {
	s.driver.Play(s.ctx)
	_, err := s.driver.SetSpeed(s.ctx, 0.5)
	s.Require().NoError(err)
	s.driver.Advance(s.ctx, 0, 4)

	snap := s.driver.Reset(s.ctx)
	s.Equal(timeline.PhaseIdle, snap.Phase)
	s.Equal(0.0, snap.CurrentTime)
	s.Equal(0.5, snap.Speed)
	s.Contains(s.received, timeline.EventReset)
}

func (s *DriverTestSuite) TestSetSpeed() {
	for _, speed := range timeline.SupportedSpeeds() {
		snap, err := s.driver.SetSpeed(s.ctx, speed)
		s.NoError(err)
		s.Equal(speed, snap.Speed)
	}

	snap, err := s.driver.SetSpeed(s.ctx, 3)
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(4.0, snap.Speed)

	_, err = s.driver.SetSpeed(s.ctx, 0)
	s.Error(err)

	free, err := timeline.NewDriver(&timeline.Config{AllowAnySpeed: true})
	s.Require().NoError(err)
	snap, err = free.SetSpeed(s.ctx, 3)
	s.NoError(err)
	s.Equal(3.0, snap.Speed)
	_, err = free.SetSpeed(s.ctx, -1)
	s.Error(err)
}

func (s *DriverTestSuite) TestRestore() {
	err := s.driver.Restore(timeline.Snapshot{CurrentTime: 14, Speed: 2, Phase: timeline.PhasePaused})
	s.Require().NoError(err)
	snap := s.driver.Snapshot()
	s.Equal(14.0, snap.CurrentTime)
	s.Equal(2.0, snap.Speed)
	s.Equal(timeline.PhasePaused, snap.Phase)

	s.Error(s.driver.Restore(timeline.Snapshot{Speed: 1, Phase: "rewinding"}))
	s.Error(s.driver.Restore(timeline.Snapshot{Speed: 7, Phase: timeline.PhaseIdle}))
	s.Empty(s.received)
}

func (s *DriverTestSuite) TestNoBus() {
	driver, err := timeline.NewDriver(nil)
	s.Require().NoError(err)
	s.Equal(timeline.PhasePlaying, driver.Play(s.ctx).Phase)
}

func (s *DriverTestSuite) TestFormatTime() {
	testCases := []struct {
		seconds  float64
		expected string
	}{
		{0, "0:00"},
		{5.9, "0:05"},
		{30, "0:30"},
		{61.2, "1:01"},
		{-3, "0:00"},
	}
	for _, tc := range testCases {
		s.Equal(tc.expected, timeline.FormatTime(tc.seconds))
	}
}
