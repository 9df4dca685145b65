package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/disaster-sim/internal/engine/timeline"
	"github.com/KirkDiggler/disaster-sim/internal/entities/scene"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
)

// Text prints one summary line per frame, or per Every frames
type Text struct {
	w     io.Writer
	every uint64
}

// NewText writes to w. every <= 1 prints every frame.
func NewText(w io.Writer, every int) *Text {
	if every < 1 {
		every = 1
	}
	return &Text{w: w, every: uint64(every)}
}

// Render implements Renderer. Finished frames are always printed.
func (t *Text) Render(_ context.Context, frame *scene.Frame) error {
	if frame == nil {
		return errors.InvalidArgument("frame is required")
	}
	if frame.Tick%t.every != 0 && frame.Phase != string(timeline.PhaseFinished) {
		return nil
	}

	if _, err := fmt.Fprintln(t.w, FormatFrame(frame)); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write frame")
	}
	return nil
}

// FormatFrame renders a frame as a single line
func FormatFrame(frame *scene.Frame) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] #%-5d %-8s x%-3g %s I=%d",
		timeline.FormatTime(frame.Time), frame.Tick, frame.Phase, frame.Speed, frame.Kind, frame.Intensity)

	st := frame.State
	if st.BuildingOffset != (scene.Planar{}) {
		fmt.Fprintf(&b, " offset=%+.3f", st.BuildingOffset.X)
	}
	if st.BuildingTilt != (scene.Planar{}) {
		fmt.Fprintf(&b, " tilt=(%+.4f,%+.4f)", st.BuildingTilt.X, st.BuildingTilt.Z)
	}
	if st.WaterHeight != nil {
		fmt.Fprintf(&b, " water=%.2f", *st.WaterHeight)
	}
	if n := len(st.ParticlePositions); n > 0 {
		fmt.Fprintf(&b, " embers=%d", n)
	}
	if n := len(st.DebrisPositions); n > 0 {
		fmt.Fprintf(&b, " debris=%d", n)
	}
	if st.DebrisRotationY != nil {
		fmt.Fprintf(&b, " spin=%.3f", *st.DebrisRotationY)
	}
	for _, l := range st.Lights {
		fmt.Fprintf(&b, " light=%s@%.1f", l.Color, l.Intensity)
	}
	return b.String()
}
