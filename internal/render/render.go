// Package render defines how frames leave the simulation
package render

import (
	"context"

	"github.com/KirkDiggler/disaster-sim/internal/entities/scene"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
)

// Renderer consumes frames in tick order
type Renderer interface {
	Render(ctx context.Context, frame *scene.Frame) error
}

// Func adapts a function to Renderer
type Func func(ctx context.Context, frame *scene.Frame) error

// Render calls f
func (f Func) Render(ctx context.Context, frame *scene.Frame) error {
	return f(ctx, frame)
}

// Multi fans each frame out to every renderer in order and stops at the
// first failure
type Multi []Renderer

// Render implements Renderer
func (m Multi) Render(ctx context.Context, frame *scene.Frame) error {
	for i, r := range m {
		if r == nil {
			continue
		}
		if err := r.Render(ctx, frame); err != nil {
			return errors.Wrapf(err, "renderer %d failed", i)
		}
	}
	return nil
}
