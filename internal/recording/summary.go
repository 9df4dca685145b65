package recording

import (
	"io"
	"math"

	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
)

// Summary aggregates a recording
type Summary struct {
	SessionID  string
	Frames     int
	FirstTick  uint64
	LastTick   uint64
	Duration   float64
	FinalPhase string
	Kinds      []disaster.Kind

	// Peak values across all frames
	MaxOffset    float64
	MaxTilt      float64
	MaxWater     *float64
	MaxParticles int
}

// Summarize reads r to the end
func Summarize(r *Reader) (*Summary, error) {
	sum := &Summary{}
	seen := make(map[disaster.Kind]bool)

	for {
		frame, err := r.Next()
		if errors.Is(err, io.EOF) {
			return sum, nil
		}
		if err != nil {
			return sum, err
		}

		if sum.Frames == 0 {
			sum.SessionID = frame.SessionID
			sum.FirstTick = frame.Tick
		}
		sum.Frames++
		sum.LastTick = frame.Tick
		sum.Duration = math.Max(sum.Duration, frame.Time)
		sum.FinalPhase = frame.Phase
		if !seen[frame.Kind] {
			seen[frame.Kind] = true
			sum.Kinds = append(sum.Kinds, frame.Kind)
		}

		st := frame.State
		sum.MaxOffset = math.Max(sum.MaxOffset, math.Abs(st.BuildingOffset.X))
		sum.MaxTilt = math.Max(sum.MaxTilt, math.Max(math.Abs(st.BuildingTilt.X), math.Abs(st.BuildingTilt.Z)))
		if st.WaterHeight != nil && (sum.MaxWater == nil || *st.WaterHeight > *sum.MaxWater) {
			w := *st.WaterHeight
			sum.MaxWater = &w
		}
		if n := len(st.ParticlePositions); n > sum.MaxParticles {
			sum.MaxParticles = n
		}
	}
}
