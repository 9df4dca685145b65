package testutils

import (
	"time"

	"github.com/KirkDiggler/disaster-sim/internal/engine/timeline"
	"github.com/KirkDiggler/disaster-sim/internal/entities/building"
	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
	"github.com/KirkDiggler/disaster-sim/internal/repositories/session"
)

// FixedTime is the instant test clocks report
var FixedTime = time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

// CreateTestBuilding returns a valid mid-size residential building
func CreateTestBuilding() *building.Spec {
	return &building.Spec{
		Type:   building.TypeResidential,
		Floors: 3,
		Dimensions: building.Dimensions{
			Width:  10,
			Height: 10.5,
			Depth:  12,
		},
		Materials: building.Materials{
			Walls:   building.MaterialBrick,
			Roof:    building.MaterialTiles,
			Windows: building.MaterialStandard,
		},
	}
}

// CreateTestHighRise returns a tall building for light placement tests
func CreateTestHighRise() *building.Spec {
	return &building.Spec{
		Type:   building.TypeHighRise,
		Floors: 20,
		Dimensions: building.Dimensions{
			Width:  25,
			Height: 70,
			Depth:  25,
		},
		Materials: building.Materials{
			Walls:   building.MaterialConcrete,
			Roof:    building.MaterialTiles,
			Windows: building.MaterialGlass,
		},
	}
}

// CreateTestSnapshot returns a paused flood snapshot for sessionID
func CreateTestSnapshot(sessionID string) *session.Snapshot {
	return &session.Snapshot{
		SessionID: sessionID,
		Kind:      disaster.KindFlood,
		Intensity: 6,
		Tick:      42,
		Timeline: timeline.Snapshot{
			CurrentTime: 4.2,
			Speed:       1,
			Duration:    timeline.DefaultDuration,
			Phase:       timeline.PhasePaused,
		},
	}
}
