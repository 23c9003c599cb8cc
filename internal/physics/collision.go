package physics

import (
	"math"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// Event reports what happened to a ball during one resolver step.
type Event struct {
	Paddle int    // index of the last paddle hit, -1 if none
	Walls  []Side // boundaries the ball bounced off, in test order
	Goal   Side   // side credited with a goal, SideNone if none
	Lost   bool   // ball left through an open boundary
}

// Scored reports whether the step produced a goal.
func (e Event) Scored() bool {
	return e.Goal != SideNone
}

// Resolver moves a ball one frame and corrects it against paddles and the
// arena boundaries.
type Resolver struct {
	MaxBounceDeg float64
	Topology     Topology
}

// Step advances the ball and resolves collisions in a fixed order:
// paddles first, then the boundaries left, right, top and bottom, each
// tested on its own. Every overlapping paddle deflects the ball in index
// order, and a ball touching a corner may be corrected twice.
func (r Resolver) Step(b *Ball, paddles []*Paddle, arena core.Box) Event {
	ev := Event{Paddle: -1}

	b.Advance()

	for i, p := range paddles {
		if p == nil || !b.Box().Intersects(p.Box()) {
			continue
		}
		b.Dir = r.deflect(b, p)
		ev.Paddle = i
	}

	topo := r.Topology
	if topo == nil {
		topo = WallTopology{}
	}
	for _, side := range boundaryOrder {
		if !crosses(b.Box(), side, arena) {
			continue
		}
		switch topo.Cross(b, side, arena) {
		case Reflected:
			ev.Walls = append(ev.Walls, side)
		case Scored:
			ev.Goal = Scorer(side)
		case Lost:
			ev.Lost = true
		}
	}

	if b.Dir.Len() > 1 {
		b.Dir = b.Dir.Normalize()
	}
	return ev
}

// deflect computes the heading after a paddle hit. The angle from the
// face normal grows linearly with the hit offset from the paddle center
// and reaches MaxBounceDeg at the paddle edge. The offset is not clamped.
func (r Resolver) deflect(b *Ball, p *Paddle) core.Vec2 {
	var offset, away, incoming float64
	if p.Face == FaceHorizontal {
		offset = b.Pos.X - p.Pos.X
		away = b.Pos.Y - p.Pos.Y
		incoming = b.Dir.Y
	} else {
		offset = b.Pos.Y - p.Pos.Y
		away = b.Pos.X - p.Pos.X
		incoming = b.Dir.X
	}

	half := p.Extent() / 2
	normalized := 0.0
	if half > 0 {
		normalized = offset / half
	}
	angle := r.MaxBounceDeg * normalized * math.Pi / 180

	sign := 1.0
	switch {
	case away < 0:
		sign = -1
	case away == 0 && incoming > 0:
		sign = -1
	}

	perp := sign * math.Cos(angle)
	par := math.Sin(angle)
	if p.Face == FaceHorizontal {
		return core.V(par, perp)
	}
	return core.V(perp, par)
}

// BounceOff reflects the ball off an obstacle along the axis of least
// penetration. It returns false when the ball does not touch the box.
func BounceOff(b *Ball, box core.Box) bool {
	bb := b.Box()
	if !bb.Intersects(box) {
		return false
	}

	overlapX := math.Min(bb.Right(), box.Right()) - math.Max(bb.Left(), box.Left())
	overlapY := math.Min(bb.Bottom(), box.Bottom()) - math.Max(bb.Top(), box.Top())
	c := box.Center()

	if overlapX < overlapY {
		if b.Pos.X < c.X {
			b.Dir.X = -math.Abs(b.Dir.X)
		} else {
			b.Dir.X = math.Abs(b.Dir.X)
		}
	} else {
		if b.Pos.Y < c.Y {
			b.Dir.Y = -math.Abs(b.Dir.Y)
		} else {
			b.Dir.Y = math.Abs(b.Dir.Y)
		}
	}
	return true
}
