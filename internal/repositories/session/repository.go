// Package session provides the repository for simulation session snapshots.
// Building specs are never stored; only the timeline and disaster selection.
package session

import (
	"context"
	"time"

	"github.com/KirkDiggler/disaster-sim/internal/engine/timeline"
	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/disaster-sim/internal/repositories/session Repository

// Repository persists session snapshots
type Repository interface {
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// Snapshot is the resumable part of a simulation session
type Snapshot struct {
	SessionID string             `json:"session_id"`
	Kind      disaster.Kind      `json:"kind"`
	Intensity disaster.Intensity `json:"intensity"`
	Timeline  timeline.Snapshot  `json:"timeline"`
	Tick      uint64             `json:"tick"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	ExpiresAt time.Time          `json:"expires_at"`
}

// SaveInput contains the snapshot to store
type SaveInput struct {
	Snapshot *Snapshot
	// TTL defaults to one hour
	TTL time.Duration
}

// SaveOutput contains the stored snapshot with timestamps filled in
type SaveOutput struct {
	Snapshot *Snapshot
}

// GetInput identifies a snapshot
type GetInput struct {
	SessionID string
}

// GetOutput contains the snapshot
type GetOutput struct {
	Snapshot *Snapshot
}

// DeleteInput identifies a snapshot
type DeleteInput struct {
	SessionID string
}

// DeleteOutput reports whether anything was removed
type DeleteOutput struct {
	Deleted bool
}
