// Package terminal draws frames as a side elevation in a tcell screen and
// maps keys to transport commands.
package terminal

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/disaster-sim/internal/engine/timeline"
	"github.com/KirkDiggler/disaster-sim/internal/entities/building"
	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
	"github.com/KirkDiggler/disaster-sim/internal/entities/scene"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
)

// World window shown by the view, in scene units
const (
	viewHalfWidth = 30.0
	viewBottom    = -6.0
	minViewTop    = 24.0
)

var (
	styleDefault  = tcell.StyleDefault
	styleGround   = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleBuilding = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleWindow   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleWater    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleDebris   = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleStatus   = tcell.StyleDefault.Reverse(true)
)

// View renders frames to a tcell screen
type View struct {
	screen tcell.Screen

	mu       sync.Mutex
	building building.Spec
}

// NewView wraps an initialized screen
func NewView(screen tcell.Screen, b *building.Spec) (*View, error) {
	if screen == nil {
		return nil, errors.InvalidArgument("screen is required")
	}
	return &View{screen: screen, building: building.Resolve(b)}, nil
}

// SetBuilding changes the outline drawn for subsequent frames
func (v *View) SetBuilding(b *building.Spec) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.building = building.Resolve(b)
}

// Render implements render.Renderer
func (v *View) Render(_ context.Context, frame *scene.Frame) error {
	if frame == nil {
		return errors.InvalidArgument("frame is required")
	}

	v.mu.Lock()
	b := v.building
	v.mu.Unlock()

	v.screen.Clear()
	w, h := v.screen.Size()
	if w < 10 || h < 4 {
		v.screen.Show()
		return nil
	}

	p := newProjection(w, h-1, b.Dimensions.Height)
	st := frame.State

	if st.WaterHeight != nil {
		p.fillBelow(v.screen, *st.WaterHeight, '~', styleWater)
	}
	p.hline(v.screen, 0, '_', styleGround)
	v.drawBuilding(p, b, st)

	ember := emberStyle(st.Lights)
	for i, pos := range st.ParticlePositions {
		style := ember
		if i < len(st.ParticleColors) {
			style = colorStyle(st.ParticleColors[i])
		}
		p.plot(v.screen, pos.X, pos.Y, '*', style)
	}

	rot := 0.0
	if st.DebrisRotationY != nil {
		rot = *st.DebrisRotationY
	}
	for _, pos := range st.DebrisPositions {
		// Rotate about Y then project onto the x/y plane
		x := pos.X*math.Cos(rot) + pos.Z*math.Sin(rot)
		p.plot(v.screen, x, pos.Y, 'o', styleDebris)
	}

	drawText(v.screen, 0, h-1, w, statusLine(frame), styleStatus)
	v.screen.Show()
	return nil
}

func (v *View) drawBuilding(p projection, b building.Spec, st scene.VisualState) {
	half := b.Dimensions.Width / 2
	height := b.Dimensions.Height
	floors := b.Floors
	if floors < 1 {
		floors = 1
	}
	floorHeight := height / float64(floors)

	for y := 0.0; y <= height; y += p.unitY() {
		// Tilt leans the outline proportionally to height
		shift := st.BuildingOffset.X + y*math.Tan(st.BuildingTilt.Z) + y*math.Tan(st.BuildingTilt.X)
		p.plot(v.screen, -half+shift, y, '|', styleBuilding)
		p.plot(v.screen, half+shift, y, '|', styleBuilding)

		if math.Mod(y, floorHeight) < p.unitY() && y > 0 {
			for x := -half + p.unitX(); x < half; x += p.unitX() {
				p.plot(v.screen, x+shift, y, '-', styleWindow)
			}
		}
	}

	roofShift := st.BuildingOffset.X + height*math.Tan(st.BuildingTilt.Z) + height*math.Tan(st.BuildingTilt.X)
	for x := -half; x <= half; x += p.unitX() {
		p.plot(v.screen, x+roofShift, height, '=', styleBuilding)
	}
}

func statusLine(frame *scene.Frame) string {
	info := disaster.Lookup(frame.Kind)
	return fmt.Sprintf(" %s / %s  %-8s x%g  %s I=%d  [space] play/pause  [r] reset  [1-4] speed  [q] quit",
		timeline.FormatTime(frame.Time),
		timeline.FormatTime(timeline.DefaultDuration),
		frame.Phase,
		frame.Speed,
		info.Name,
		frame.Intensity,
	)
}

func drawText(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		if col >= maxWidth {
			return
		}
		s.SetContent(x+col, y, r, nil, style)
		col++
	}
	for ; col < maxWidth; col++ {
		s.SetContent(x+col, y, ' ', nil, style)
	}
}

func emberStyle(lights []scene.Light) tcell.Style {
	if len(lights) > 0 {
		return tcell.StyleDefault.Foreground(tcell.GetColor(lights[0].Color))
	}
	return tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
}

func colorStyle(c scene.Color) tcell.Style {
	return styleDefault.Foreground(tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B)))
}

func channel(v float64) int32 {
	return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
