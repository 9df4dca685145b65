package simulation

import (
	"context"

	"github.com/KirkDiggler/disaster-sim/internal/engine/timeline"
	"github.com/KirkDiggler/disaster-sim/internal/entities/scene"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
)

// FrameFunc receives every frame a RunnerTarget produces
type FrameFunc func(ctx context.Context, frame *scene.Frame) error

// RunnerTarget binds one session of a Service to a timeline.Runner
type RunnerTarget struct {
	service   Service
	sessionID string
	onFrame   FrameFunc
}

// NewRunnerTarget creates a target for sessionID. onFrame may be nil.
func NewRunnerTarget(service Service, sessionID string, onFrame FrameFunc) (*RunnerTarget, error) {
	vb := errors.NewValidationBuilder()
	if service == nil {
		vb.RequiredField("service")
	}
	if sessionID == "" {
		vb.RequiredField("sessionID")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &RunnerTarget{service: service, sessionID: sessionID, onFrame: onFrame}, nil
}

// Schedule issues a ticket for the next frame
func (t *RunnerTarget) Schedule(ctx context.Context) (timeline.Ticket, error) {
	out, err := t.service.Ticket(ctx, &TicketInput{SessionID: t.sessionID})
	if err != nil {
		return 0, err
	}
	return out.Ticket, nil
}

// Fire runs the tick and hands the frame to onFrame
func (t *RunnerTarget) Fire(ctx context.Context, ticket timeline.Ticket, elapsed float64) (timeline.Snapshot, error) {
	out, err := t.service.Tick(ctx, &TickInput{
		SessionID: t.sessionID,
		Ticket:    ticket,
		Elapsed:   elapsed,
	})
	if err != nil {
		return timeline.Snapshot{}, err
	}

	if out.Applied && out.Frame != nil && t.onFrame != nil {
		if err := t.onFrame(ctx, out.Frame); err != nil {
			return out.Clock, errors.Wrap(err, "frame handler failed")
		}
	}
	return out.Clock, nil
}
