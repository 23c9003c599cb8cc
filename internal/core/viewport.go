package core

import "math"

// CellAspect is how many times taller than wide a terminal cell is.
const CellAspect = 2.0

// UnitsPerCol is the arena width one column covers when the arena is
// sized to fill the terminal.
const UnitsPerCol = 8.0

// ArenaArea is the part of a cols x rows screen the playfield may use:
// the top row holds the score line and a one-cell border surrounds the
// arena.
func ArenaArea(cols, rows int) Rect {
	return NewRect(1, 2, Max(1, cols-2), Max(1, rows-3))
}

// Viewport maps arena units to screen cells for one frame.
type Viewport struct {
	Frame  Rect    // cells covered by the arena
	SX, SY float64 // cells per arena unit
}

// FitViewport places arena inside area. With stretch the arena fills the
// area; otherwise it keeps its proportions, accounting for tall cells, and
// is centered with bars on the spare sides.
func FitViewport(arena Box, area Rect, stretch bool) Viewport {
	if arena.W <= 0 || arena.H <= 0 || area.W <= 0 || area.H <= 0 {
		return Viewport{Frame: area}
	}

	if stretch {
		return Viewport{
			Frame: area,
			SX:    float64(area.W) / arena.W,
			SY:    float64(area.H) / arena.H,
		}
	}

	// Arena units per column; a row covers CellAspect times as many.
	unit := math.Max(arena.W/float64(area.W), arena.H/(float64(area.H)*CellAspect))
	w := Min(area.W, Max(1, int(math.Round(arena.W/unit))))
	h := Min(area.H, Max(1, int(math.Round(arena.H/(unit*CellAspect)))))

	return Viewport{
		Frame: NewRect(area.X+(area.W-w)/2, area.Y+(area.H-h)/2, w, h),
		SX:    float64(w) / arena.W,
		SY:    float64(h) / arena.H,
	}
}

// Rect converts an arena box to screen cells.
func (v Viewport) Rect(b Box) Rect {
	r := b.Rect(v.SX, v.SY)
	r.X += v.Frame.X
	r.Y += v.Frame.Y
	return r
}

// Point converts an arena position to the cell containing it.
func (v Viewport) Point(p Vec2) (int, int) {
	return v.Frame.X + int(math.Floor(p.X*v.SX)), v.Frame.Y + int(math.Floor(p.Y*v.SY))
}

// Border returns the rectangle one cell outside the frame.
func (v Viewport) Border() Rect {
	return NewRect(v.Frame.X-1, v.Frame.Y-1, v.Frame.W+2, v.Frame.H+2)
}
