package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

func TestBallBoxFollowsPosition(t *testing.T) {
	b := NewBall(core.V(100.25, 50.5), core.V(1, 0), 3, 16)

	box := b.Box()
	if box.X != 92.25 || box.Y != 42.5 || box.W != 16 || box.H != 16 {
		t.Errorf("Box() = %+v", box)
	}

	// Sub-unit motion accumulates instead of being truncated.
	b.Speed = 0.25
	for i := 0; i < 4; i++ {
		b.Advance()
	}
	if b.Pos.X != 101.25 {
		t.Errorf("Pos.X = %f, expected 101.25", b.Pos.X)
	}
}

func TestBallCloneIsIndependent(t *testing.T) {
	b := NewBall(core.V(1, 2), core.V(0, 1), 5, 16)
	c := b.Clone()
	c.Pos = core.V(9, 9)

	if b.Pos != core.V(1, 2) {
		t.Error("mutating a clone changed the original")
	}
}

func TestRandomHeadings(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	limit := math.Sin(45 * math.Pi / 180)

	for i := 0; i < 100; i++ {
		d := RandomDir(rng, 45)
		if math.Abs(d.Len()-1) > 1e-9 {
			t.Fatalf("RandomDir length %f", d.Len())
		}
		if math.Abs(d.X) > limit+1e-9 {
			t.Fatalf("RandomDir %v outside the spread", d)
		}

		s := ServeDir(rng, 30, -1)
		if s.X >= 0 {
			t.Fatalf("ServeDir toward the left returned %v", s)
		}
	}
}
