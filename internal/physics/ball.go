// Package physics implements the moving and controlled bodies of the
// arcade and the per-frame collision resolver that ties them together.
package physics

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// Ball is a moving body. Pos is the authoritative center and is never
// rounded; the collision box is derived from it on every call to Box.
type Ball struct {
	Pos   core.Vec2
	Dir   core.Vec2 // heading, components in [-1, 1]
	Speed float64   // units per frame along Dir
	Size  core.Vec2
}

// NewBall creates a square ball centered on pos.
func NewBall(pos, dir core.Vec2, speed, size float64) *Ball {
	return &Ball{
		Pos:   pos,
		Dir:   dir,
		Speed: speed,
		Size:  core.V(size, size),
	}
}

// Box returns the collision box around the current position.
func (b *Ball) Box() core.Box {
	return core.BoxAt(b.Pos, b.Size)
}

// Advance moves the ball one frame along its heading.
func (b *Ball) Advance() {
	b.Pos = b.Pos.Add(b.Dir.Scale(b.Speed))
}

// Clone returns an independent copy of the ball.
func (b *Ball) Clone() *Ball {
	c := *b
	return &c
}

// RandomDir returns a unit heading within spread degrees of the vertical
// axis, pointing up or down at random.
func RandomDir(rng *rand.Rand, spread float64) core.Vec2 {
	angle := (rng.Float64()*2 - 1) * spread * math.Pi / 180
	vy := -math.Cos(angle)
	if rng.Intn(2) == 1 {
		vy = -vy
	}
	return core.V(math.Sin(angle), vy)
}

// ServeDir returns a unit heading within spread degrees of the horizontal
// axis, toward the left when toward is negative and the right otherwise.
func ServeDir(rng *rand.Rand, spread float64, toward float64) core.Vec2 {
	angle := (rng.Float64()*2 - 1) * spread * math.Pi / 180
	vx := math.Cos(angle)
	if toward < 0 {
		vx = -vx
	}
	return core.V(vx, math.Sin(angle))
}
