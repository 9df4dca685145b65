package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// projection maps scene x/y onto screen columns and rows
type projection struct {
	cols, rows int
	top        float64
}

func newProjection(cols, rows int, buildingHeight float64) projection {
	return projection{
		cols: cols,
		rows: rows,
		top:  math.Max(minViewTop, buildingHeight*1.2),
	}
}

func (p projection) unitX() float64 {
	return 2 * viewHalfWidth / float64(p.cols)
}

func (p projection) unitY() float64 {
	return (p.top - viewBottom) / float64(p.rows)
}

// cell reports false for points outside the window
func (p projection) cell(x, y float64) (int, int, bool) {
	col := int(math.Floor((x + viewHalfWidth) / p.unitX()))
	row := p.rows - 1 - int(math.Floor((y-viewBottom)/p.unitY()))
	if col < 0 || col >= p.cols || row < 0 || row >= p.rows {
		return 0, 0, false
	}
	return col, row, true
}

func (p projection) plot(s tcell.Screen, x, y float64, r rune, style tcell.Style) {
	if col, row, ok := p.cell(x, y); ok {
		s.SetContent(col, row, r, nil, style)
	}
}

func (p projection) hline(s tcell.Screen, y float64, r rune, style tcell.Style) {
	_, row, ok := p.cell(0, y)
	if !ok {
		return
	}
	for col := 0; col < p.cols; col++ {
		s.SetContent(col, row, r, nil, style)
	}
}

func (p projection) fillBelow(s tcell.Screen, y float64, r rune, style tcell.Style) {
	_, top, ok := p.cell(0, y)
	if !ok {
		if y < viewBottom {
			return
		}
		top = 0
	}
	for row := top; row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			s.SetContent(col, row, r, nil, style)
		}
	}
}
