// Package games holds the drawing helpers shared by the gameplay scenes.
// The variants themselves live in the sub-packages and register with the
// variant registry from their init functions.
package games

import (
	"fmt"
	"math"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar  = '█'
	BallChar    = '●'
	NetChar     = '│'
	GoalChar    = '┊'
	HeadingChar = '•'
)

// Colors of the playfield elements.
const (
	FrameColor   = core.ColorGray
	PaddleColor  = core.ColorMagenta
	BallColor    = core.ColorBrightWhite
	GoalColor    = core.ColorRed
	HitboxColor  = core.ColorRed
	HeadingColor = core.ColorBlue
)

// Layout fits the arena into dst below the score line.
func Layout(dst *core.Screen, arena core.Box, stretch bool) core.Viewport {
	return core.FitViewport(arena, core.ArenaArea(dst.Width(), dst.Height()), stretch)
}

// DrawFrame outlines the arena.
func DrawFrame(dst *core.Screen, vp core.Viewport) {
	dst.SetPen(FrameColor)
	dst.DrawBox(vp.Border())
	dst.SetPen(core.ColorDefault)
}

// DrawBody fills the cells covered by box.
func DrawBody(dst *core.Screen, vp core.Viewport, box core.Box, r rune, c core.Color) {
	dst.SetPen(c)
	dst.DrawRect(vp.Rect(box), r)
	dst.SetPen(core.ColorDefault)
}

// DrawHitbox outlines the cells covered by box.
func DrawHitbox(dst *core.Screen, vp core.Viewport, box core.Box) {
	dst.SetPen(HitboxColor)
	dst.DrawBox(vp.Rect(box))
	dst.SetPen(core.ColorDefault)
}

// DrawHeading marks where a body is heading: a dot length units from
// pos along dir. Nothing is drawn for a body at rest.
func DrawHeading(dst *core.Screen, vp core.Viewport, pos, dir core.Vec2, length float64) {
	if dir == (core.Vec2{}) {
		return
	}
	x, y := vp.Point(pos.Add(dir.Scale(length)))
	dst.SetPen(HeadingColor)
	dst.Set(x, y, HeadingChar)
	dst.SetPen(core.ColorDefault)
}

// Countdown formats the frames left before a serve as whole seconds.
func Countdown(frames, fps int) string {
	if fps <= 0 {
		fps = 1
	}
	return fmt.Sprintf("%d", int(math.Ceil(float64(frames)/float64(fps))))
}
