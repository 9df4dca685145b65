package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/disaster-sim/internal/engine/timeline"
	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
	mockclock "github.com/KirkDiggler/disaster-sim/internal/pkg/clock/mock"
	"github.com/KirkDiggler/disaster-sim/internal/repositories/session"
	"github.com/KirkDiggler/disaster-sim/internal/testutils"
)

const testSessionID = "sim_001"

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	miniRedis *miniredis.Miniredis
	cleanup   func()
	repo      session.Repository
	ctx       context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)

	client, mr, cleanup := testutils.CreateTestRedisServer(s.T(), nil)
	s.miniRedis = mr
	s.cleanup = cleanup

	repo, err := session.NewRedisRepository(&session.Config{
		Client: client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) TestNewRedisRepository() {
	_, err := session.NewRedisRepository(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = session.NewRedisRepository(&session.Config{})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "redis client is required")
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	s.mockClock.EXPECT().Now().Return(testutils.FixedTime)

	out, err := s.repo.Save(s.ctx, session.SaveInput{
		Snapshot: testutils.CreateTestSnapshot(testSessionID),
		TTL:      10 * time.Minute,
	})
	s.Require().NoError(err)
	s.Equal(testutils.FixedTime, out.Snapshot.CreatedAt)
	s.Equal(testutils.FixedTime.Add(10*time.Minute), out.Snapshot.ExpiresAt)

	s.True(s.miniRedis.Exists(session.Key(testSessionID)))
	s.Equal(10*time.Minute, s.miniRedis.TTL(session.Key(testSessionID)))

	s.mockClock.EXPECT().Now().Return(testutils.FixedTime.Add(time.Minute))
	got, err := s.repo.Get(s.ctx, session.GetInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Equal(disaster.KindFlood, got.Snapshot.Kind)
	s.Equal(disaster.Intensity(6), got.Snapshot.Intensity)
	s.Equal(timeline.PhasePaused, got.Snapshot.Timeline.Phase)
	s.InDelta(4.2, got.Snapshot.Timeline.CurrentTime, 1e-12)
	s.Equal(uint64(42), got.Snapshot.Tick)
}

func (s *RedisRepositoryTestSuite) TestSaveKeepsCreatedAt() {
	created := testutils.FixedTime.Add(-time.Hour)
	snap := testutils.CreateTestSnapshot(testSessionID)
	snap.CreatedAt = created

	s.mockClock.EXPECT().Now().Return(testutils.FixedTime)
	out, err := s.repo.Save(s.ctx, session.SaveInput{Snapshot: snap})
	s.Require().NoError(err)
	s.Equal(created, out.Snapshot.CreatedAt)
	s.Equal(testutils.FixedTime, out.Snapshot.UpdatedAt)
	s.Equal(time.Hour, s.miniRedis.TTL(session.Key(testSessionID)))
}

func (s *RedisRepositoryTestSuite) TestSaveValidation() {
	_, err := s.repo.Save(s.ctx, session.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, session.SaveInput{Snapshot: &session.Snapshot{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, session.GetInput{SessionID: "missing"})
	s.True(errors.IsNotFound(err))
	s.Equal("missing", errors.GetMeta(err)["session_id"])

	_, err = s.repo.Get(s.ctx, session.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetExpired() {
	s.mockClock.EXPECT().Now().Return(testutils.FixedTime)
	_, err := s.repo.Save(s.ctx, session.SaveInput{
		Snapshot: testutils.CreateTestSnapshot(testSessionID),
		TTL:      time.Minute,
	})
	s.Require().NoError(err)

	s.mockClock.EXPECT().Now().Return(testutils.FixedTime.Add(2 * time.Minute))
	_, err = s.repo.Get(s.ctx, session.GetInput{SessionID: testSessionID})
	s.True(errors.IsNotFound(err))
	s.False(s.miniRedis.Exists(session.Key(testSessionID)))
}

func (s *RedisRepositoryTestSuite) TestGetCorrupted() {
	s.Require().NoError(s.miniRedis.Set(session.Key(testSessionID), "{not json"))

	_, err := s.repo.Get(s.ctx, session.GetInput{SessionID: testSessionID})
	s.Equal(errors.CodeDataLoss, errors.GetCode(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	s.mockClock.EXPECT().Now().Return(testutils.FixedTime)
	_, err := s.repo.Save(s.ctx, session.SaveInput{Snapshot: testutils.CreateTestSnapshot(testSessionID)})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, session.DeleteInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.True(out.Deleted)

	out, err = s.repo.Delete(s.ctx, session.DeleteInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.False(out.Deleted)
}

func (s *RedisRepositoryTestSuite) TestDecode() {
	testCases := []struct {
		name string
		data string
		ok   bool
	}{
		{name: "valid", data: `{"session_id":"a","kind":"fire","intensity":3}`, ok: true},
		{name: "missing id", data: `{"kind":"fire"}`},
		{name: "unknown kind", data: `{"session_id":"a","kind":"meteor"}`},
		{name: "garbage", data: `xx`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			snap, err := session.Decode([]byte(tc.data))
			if tc.ok {
				s.NoError(err)
				s.Equal("a", snap.SessionID)
				return
			}
			s.Equal(errors.CodeDataLoss, errors.GetCode(err))
		})
	}
}
