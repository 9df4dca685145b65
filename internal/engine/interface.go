// Package engine exposes the disaster simulation core behind one interface
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/disaster-sim/internal/engine Engine

import (
	"context"
)

// Engine derives disaster profiles and steps visual state
type Engine interface {
	// DeriveProfile computes the physical parameters for a kind and intensity
	DeriveProfile(ctx context.Context, input *DeriveProfileInput) (*DeriveProfileOutput, error)

	// Step advances a simulation state by one tick
	Step(ctx context.Context, input *StepInput) (*StepOutput, error)
}
