// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/disaster-sim/internal/errors"
	"github.com/KirkDiggler/disaster-sim/internal/repositories/session"
	sessionmock "github.com/KirkDiggler/disaster-sim/internal/repositories/session/mock"
)

// ExpectSnapshotSave expects one Save for sessionID and echoes the snapshot back
func ExpectSnapshotSave(ctx context.Context, mockRepo *sessionmock.MockRepository, sessionID string) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input session.SaveInput) (*session.SaveOutput, error) {
			if input.Snapshot == nil || input.Snapshot.SessionID != sessionID {
				return nil, errors.InvalidArgumentf("unexpected snapshot for %s", sessionID)
			}
			return &session.SaveOutput{Snapshot: input.Snapshot}, nil
		})
}

// ExpectSnapshotGet sets up a mock expectation for loading a snapshot
func ExpectSnapshotGet(
	ctx context.Context, mockRepo *sessionmock.MockRepository,
	sessionID string, snapshot *session.Snapshot, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, session.GetInput{SessionID: sessionID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, session.GetInput{SessionID: sessionID}).
		Return(&session.GetOutput{Snapshot: snapshot}, nil)
}

// ExpectSnapshotDelete sets up a mock expectation for removing a snapshot
func ExpectSnapshotDelete(ctx context.Context, mockRepo *sessionmock.MockRepository, sessionID string) *gomock.Call {
	return mockRepo.EXPECT().
		Delete(ctx, session.DeleteInput{SessionID: sessionID}).
		Return(&session.DeleteOutput{Deleted: true}, nil)
}
