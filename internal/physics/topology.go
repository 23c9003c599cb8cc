package physics

import (
	"math"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// Side names an arena boundary, or the player defending it.
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "LEFT"
	case SideRight:
		return "RIGHT"
	case SideTop:
		return "TOP"
	case SideBottom:
		return "BOTTOM"
	default:
		return "NONE"
	}
}

// boundaryOrder is the fixed order in which arena boundaries are tested.
var boundaryOrder = [...]Side{SideLeft, SideRight, SideTop, SideBottom}

// Outcome is what a topology did with a ball crossing a boundary.
type Outcome uint8

const (
	// Passed leaves the ball alone.
	Passed Outcome = iota
	// Reflected bounced the ball back into the arena.
	Reflected
	// Scored credited a goal and re-served the ball.
	Scored
	// Lost means the ball left the arena for good.
	Lost
)

// Topology decides what an arena boundary does to a ball crossing it.
type Topology interface {
	Cross(b *Ball, side Side, arena core.Box) Outcome
}

// WallTopology makes every boundary a solid wall. With OpenBottom the
// bottom boundary lets the ball through and reports it lost once it has
// fully left the arena.
type WallTopology struct {
	OpenBottom bool
}

func (w WallTopology) Cross(b *Ball, side Side, arena core.Box) Outcome {
	if side == SideBottom && w.OpenBottom {
		if b.Box().Top() >= arena.Bottom() {
			return Lost
		}
		return Passed
	}
	reflect(b, side, arena)
	return Reflected
}

// GoalTopology turns the left and right boundaries into goals outside the
// window [GoalTop, GoalBottom]. Inside the window they are solid walls, as
// are the top and bottom boundaries.
type GoalTopology struct {
	GoalTop    float64
	GoalBottom float64
}

func (g GoalTopology) Cross(b *Ball, side Side, arena core.Box) Outcome {
	if side != SideLeft && side != SideRight {
		reflect(b, side, arena)
		return Reflected
	}

	if y := b.Pos.Y; y >= g.GoalTop && y <= g.GoalBottom {
		reflect(b, side, arena)
		return Reflected
	}

	// Re-serve from the center toward the side that scored.
	b.Pos = arena.Center()
	if side == SideRight {
		b.Dir = core.V(-1, 0)
	} else {
		b.Dir = core.V(1, 0)
	}
	return Scored
}

// Scorer returns the side credited when the ball scores through side.
func Scorer(side Side) Side {
	switch side {
	case SideRight:
		return SideLeft
	case SideLeft:
		return SideRight
	default:
		return SideNone
	}
}

// crosses reports whether the ball box pokes out through side.
func crosses(box core.Box, side Side, arena core.Box) bool {
	switch side {
	case SideLeft:
		return box.Left() < arena.Left()
	case SideRight:
		return box.Right() > arena.Right()
	case SideTop:
		return box.Top() < arena.Top()
	case SideBottom:
		return box.Bottom() > arena.Bottom()
	}
	return false
}

// reflect sends the perpendicular heading component back into the arena
// and puts the ball box flush against the boundary.
func reflect(b *Ball, side Side, arena core.Box) {
	switch side {
	case SideLeft:
		b.Dir.X = math.Abs(b.Dir.X)
		b.Pos.X = arena.Left() + b.Size.X/2
	case SideRight:
		b.Dir.X = -math.Abs(b.Dir.X)
		b.Pos.X = arena.Right() - b.Size.X/2
	case SideTop:
		b.Dir.Y = math.Abs(b.Dir.Y)
		b.Pos.Y = arena.Top() + b.Size.Y/2
	case SideBottom:
		b.Dir.Y = -math.Abs(b.Dir.Y)
		b.Pos.Y = arena.Bottom() - b.Size.Y/2
	}
}
