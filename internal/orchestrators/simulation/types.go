package simulation

import (
	"time"

	"github.com/KirkDiggler/disaster-sim/internal/engine/profile"
	"github.com/KirkDiggler/disaster-sim/internal/engine/timeline"
	"github.com/KirkDiggler/disaster-sim/internal/entities/building"
	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
	"github.com/KirkDiggler/disaster-sim/internal/entities/scene"
)

// Session is the externally visible state of a simulation session
type Session struct {
	ID        string             `json:"id"`
	Kind      disaster.Kind      `json:"kind"`
	Intensity disaster.Intensity `json:"intensity"`
	Building  building.Spec      `json:"building"`
	// DefaultBuilding is true while no building has been loaded
	DefaultBuilding bool              `json:"default_building"`
	Clock           timeline.Snapshot `json:"clock"`
	Tick            uint64            `json:"tick"`
	CreatedAt       time.Time         `json:"created_at"`
}

// CreateSessionInput defines the request for creating a session.
// Kind and Intensity are normalized rather than rejected.
type CreateSessionInput struct {
	Kind      string
	Intensity int
	Building  *building.Spec
	// Speed defaults to 1
	Speed float64
}

// CreateSessionOutput defines the response for creating a session
type CreateSessionOutput struct {
	Session *Session
}

// RestoreSessionInput defines the request for resuming a persisted session
type RestoreSessionInput struct {
	SessionID string
	// Building is not persisted; nil uses the default block
	Building *building.Spec
}

// RestoreSessionOutput defines the response for resuming a session
type RestoreSessionOutput struct {
	Session *Session
}

// GetSessionInput defines the request for getting a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the response for getting a session
type GetSessionOutput struct {
	Session *Session
}

// DeleteSessionInput defines the request for deleting a session
type DeleteSessionInput struct {
	SessionID string
}

// DeleteSessionOutput defines the response for deleting a session
type DeleteSessionOutput struct {
	Deleted bool
}

// LoadBuildingInput defines the request for swapping the building.
// A nil or invalid building falls back to the default block.
type LoadBuildingInput struct {
	SessionID string
	Building  *building.Spec
}

// LoadBuildingOutput defines the response for loading a building
type LoadBuildingOutput struct {
	Session *Session
}

// SelectDisasterInput defines the request for changing the disaster
type SelectDisasterInput struct {
	SessionID string
	Kind      string
	Intensity int
}

// SelectDisasterOutput defines the response for changing the disaster
type SelectDisasterOutput struct {
	Session *Session
}

// ControlInput identifies the session a transport command targets
type ControlInput struct {
	SessionID string
}

// ControlOutput defines the response for a transport command
type ControlOutput struct {
	Clock timeline.Snapshot
	// Frame is set for commands that re-render immediately (seek and reset)
	Frame *scene.Frame
}

// SeekInput defines the request for seeking
type SeekInput struct {
	SessionID string
	Time      float64
}

// SetSpeedInput defines the request for changing playback speed
type SetSpeedInput struct {
	SessionID string
	Speed     float64
}

// TicketInput defines the request for scheduling a tick
type TicketInput struct {
	SessionID string
}

// TicketOutput defines the response for scheduling a tick
type TicketOutput struct {
	Ticket timeline.Ticket
}

// TickInput defines the request for one frame
type TickInput struct {
	SessionID string
	// Ticket from Ticket; zero means the current epoch
	Ticket timeline.Ticket
	// Elapsed wall-clock seconds since the previous tick
	Elapsed float64
}

// TickOutput defines the response for one frame
type TickOutput struct {
	// Applied is false when the ticket was stale; Frame is nil then
	Applied bool
	Clock   timeline.Snapshot
	Frame   *scene.Frame
}

// GetProfileInput defines the request for the active disaster profile
type GetProfileInput struct {
	SessionID string
}

// GetProfileOutput defines the response for the active disaster profile
type GetProfileOutput struct {
	Profile profile.Profile
}
