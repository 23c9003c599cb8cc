package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

const eps = 1e-9

var arena = core.Box{X: 0, Y: 0, W: 1024, H: 512}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func nearVec(a, b core.Vec2, tol float64) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol)
}

func TestStepMovesByDirTimesSpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := Resolver{MaxBounceDeg: 60, Topology: WallTopology{}}

	for i := 0; i < 200; i++ {
		dir := core.V(rng.Float64()*2-1, rng.Float64()*2-1)
		if dir.Len() > 1 {
			dir = dir.Normalize()
		}
		speed := rng.Float64() * 10
		b := NewBall(core.V(512, 256), dir, speed, 16)

		ev := r.Step(b, nil, arena)

		want := core.V(512, 256).Add(dir.Scale(speed))
		if !nearVec(b.Pos, want, eps) {
			t.Fatalf("dir %v speed %f: Pos = %v, expected %v", dir, speed, b.Pos, want)
		}
		if ev.Paddle != -1 || len(ev.Walls) != 0 || ev.Scored() || ev.Lost {
			t.Fatalf("free flight reported an event: %+v", ev)
		}
	}
}

func TestWallBounceIsPureReflection(t *testing.T) {
	r := Resolver{MaxBounceDeg: 60, Topology: WallTopology{}}

	tests := []struct {
		name    string
		pos     core.Vec2
		dir     core.Vec2
		side    Side
		wantDir core.Vec2
		wantPos core.Vec2
	}{
		{"top", core.V(300, 10), core.V(0.6, -0.8), SideTop, core.V(0.6, 0.8), core.V(306, 8)},
		{"bottom", core.V(300, 502), core.V(-0.6, 0.8), SideBottom, core.V(-0.6, -0.8), core.V(294, 504)},
		{"left", core.V(10, 200), core.V(-0.8, 0.6), SideLeft, core.V(0.8, 0.6), core.V(8, 206)},
		{"right", core.V(1014, 200), core.V(0.8, -0.6), SideRight, core.V(-0.8, -0.6), core.V(1016, 194)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBall(tc.pos, tc.dir, 10, 16)
			ev := r.Step(b, nil, arena)

			if !nearVec(b.Dir, tc.wantDir, eps) {
				t.Errorf("Dir = %v, expected %v", b.Dir, tc.wantDir)
			}
			if !nearVec(b.Pos, tc.wantPos, eps) {
				t.Errorf("Pos = %v, expected %v", b.Pos, tc.wantPos)
			}
			if len(ev.Walls) != 1 || ev.Walls[0] != tc.side {
				t.Errorf("Walls = %v, expected [%v]", ev.Walls, tc.side)
			}
		})
	}
}

func TestCornerIsCorrectedOnBothAxes(t *testing.T) {
	r := Resolver{MaxBounceDeg: 60, Topology: WallTopology{}}
	b := NewBall(core.V(10, 10), core.V(-0.6, -0.8), 10, 16)

	ev := r.Step(b, nil, arena)

	if len(ev.Walls) != 2 || ev.Walls[0] != SideLeft || ev.Walls[1] != SideTop {
		t.Fatalf("Walls = %v, expected [LEFT TOP]", ev.Walls)
	}
	if !nearVec(b.Dir, core.V(0.6, 0.8), eps) {
		t.Errorf("Dir = %v, expected (0.6, 0.8)", b.Dir)
	}
	if !b.Box().Within(arena) {
		t.Errorf("ball box %+v should be back inside the arena", b.Box())
	}
}

func TestPaddleBounceSymmetry(t *testing.T) {
	r := Resolver{MaxBounceDeg: 60, Topology: WallTopology{}}
	max := 60 * math.Pi / 180

	tests := []struct {
		name   string
		offset float64
		want   core.Vec2
	}{
		{"center", 0, core.V(1, 0)},
		{"lower edge", 64, core.V(math.Cos(max), math.Sin(max))},
		{"upper edge", -64, core.V(math.Cos(max), -math.Sin(max))},
		{"half way", 32, core.V(math.Cos(max/2), math.Sin(max/2))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Left paddle, ball coming in from the right.
			p := NewVerticalPaddle(core.V(100, 256), 128, 28, 8, Keybinds{})
			b := NewBall(core.V(125, 256+tc.offset), core.V(-1, 0), 5, 16)

			ev := r.Step(b, []*Paddle{p}, arena)

			if ev.Paddle != 0 {
				t.Fatalf("Paddle = %d, expected 0", ev.Paddle)
			}
			if !nearVec(b.Dir, tc.want, 1e-9) {
				t.Errorf("Dir = %v, expected %v", b.Dir, tc.want)
			}
		})
	}
}

func TestPaddleDeflectsAwayFromOwningSide(t *testing.T) {
	r := Resolver{MaxBounceDeg: 60, Topology: WallTopology{}}

	// Right paddle, ball coming in from the left.
	p := NewVerticalPaddle(core.V(920, 256), 128, 28, 8, Keybinds{})
	b := NewBall(core.V(897, 256), core.V(1, 0), 5, 16)

	r.Step(b, []*Paddle{p}, arena)

	if !nearVec(b.Dir, core.V(-1, 0), eps) {
		t.Errorf("Dir = %v, expected (-1, 0)", b.Dir)
	}
}

func TestEdgeBounceScenario(t *testing.T) {
	r := Resolver{MaxBounceDeg: 60, Topology: WallTopology{OpenBottom: true}}

	// Flat paddle at the bottom, ball lands on its right edge.
	p := NewHorizontalPaddle(core.V(512, 480), 128, 28, 8, Keybinds{})
	b := NewBall(core.V(576, 465), core.V(0, 1), 5, 16)

	ev := r.Step(b, []*Paddle{p}, arena)

	if ev.Paddle != 0 {
		t.Fatalf("Paddle = %d, expected 0", ev.Paddle)
	}
	if !nearVec(b.Dir, core.V(0.866, -0.5), 1e-3) {
		t.Errorf("Dir = %v, expected (0.866, -0.5)", b.Dir)
	}
}

func TestEveryOverlappingPaddleDeflects(t *testing.T) {
	r := Resolver{MaxBounceDeg: 60, Topology: WallTopology{}}

	// The ball overlaps a side paddle and a flat paddle in the same frame.
	side := NewVerticalPaddle(core.V(100, 256), 128, 28, 8, Keybinds{})
	flat := NewHorizontalPaddle(core.V(120, 270), 128, 28, 8, Keybinds{})
	b := NewBall(core.V(125, 256), core.V(-1, 0), 5, 16)

	ev := r.Step(b, []*Paddle{side, flat}, arena)

	if ev.Paddle != 1 {
		t.Errorf("Paddle = %d, expected the last paddle hit (1)", ev.Paddle)
	}
	// The flat paddle's deflection wins: straight up, away from its face.
	if !nearVec(b.Dir, core.V(0, -1), eps) {
		t.Errorf("Dir = %v, expected (0, -1)", b.Dir)
	}
}

func TestPaddleIsTestedBeforeWalls(t *testing.T) {
	r := Resolver{MaxBounceDeg: 60, Topology: GoalTopology{GoalTop: 51.2, GoalBottom: 460.8}}

	// Paddle flush with the left wall; the ball touches both.
	p := NewVerticalPaddle(core.V(14, 256), 128, 28, 8, Keybinds{})
	b := NewBall(core.V(12, 300), core.V(-1, 0), 5, 16)

	ev := r.Step(b, []*Paddle{p}, arena)

	if ev.Paddle != 0 {
		t.Errorf("Paddle = %d, expected 0", ev.Paddle)
	}
	if len(ev.Walls) != 1 || ev.Walls[0] != SideLeft {
		t.Errorf("Walls = %v, expected [LEFT]", ev.Walls)
	}
	if ev.Scored() {
		t.Error("crossing inside the window must not score")
	}

	// Deflected by the paddle first, then reflected back by the wall.
	angle := 60 * (44.0 / 64) * math.Pi / 180
	if !nearVec(b.Dir, core.V(math.Cos(angle), math.Sin(angle)), 1e-9) {
		t.Errorf("Dir = %v, expected (%f, %f)", b.Dir, math.Cos(angle), math.Sin(angle))
	}
	if b.Pos.X != 8 {
		t.Errorf("Pos.X = %f, expected 8", b.Pos.X)
	}
}

func TestDirStaysBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	topologies := []Topology{
		WallTopology{},
		WallTopology{OpenBottom: true},
		GoalTopology{GoalTop: 51.2, GoalBottom: 460.8},
	}

	for _, topo := range topologies {
		r := Resolver{MaxBounceDeg: 75, Topology: topo}
		paddles := []*Paddle{
			NewVerticalPaddle(core.V(102.4, 256), 128, 28, 8, Keybinds{}),
			NewVerticalPaddle(core.V(921.6, 256), 128, 28, 8, Keybinds{}),
			NewHorizontalPaddle(core.V(512, 480), 128, 28, 8, Keybinds{}),
		}

		for i := 0; i < 500; i++ {
			pos := core.V(rng.Float64()*1024, rng.Float64()*512)
			dir := core.V(rng.Float64()*2-1, rng.Float64()*2-1)
			b := NewBall(pos, dir, rng.Float64()*12, 16)

			for frame := 0; frame < 20; frame++ {
				r.Step(b, paddles, arena)
				if l := b.Dir.Len(); l > 1+eps {
					t.Fatalf("|Dir| = %f after step (topology %T)", l, topo)
				}
			}
		}
	}
}

func TestGoalScenario(t *testing.T) {
	r := Resolver{MaxBounceDeg: 60, Topology: GoalTopology{GoalTop: 512 * 0.1, GoalBottom: 512 * 0.9}}

	b := NewBall(core.V(1015, 20), core.V(1, 0), 5, 16)
	ev := r.Step(b, nil, arena)

	if ev.Goal != SideLeft {
		t.Fatalf("Goal = %v, expected LEFT", ev.Goal)
	}
	if b.Pos != core.V(512, 256) {
		t.Errorf("Pos = %v, expected (512, 256)", b.Pos)
	}
	if b.Dir.Y != 0 || math.Abs(b.Dir.X) != 1 {
		t.Errorf("Dir = %v, expected a horizontal unit vector", b.Dir)
	}
}

func TestGoalWindowIsSolid(t *testing.T) {
	r := Resolver{MaxBounceDeg: 60, Topology: GoalTopology{GoalTop: 51.2, GoalBottom: 460.8}}

	b := NewBall(core.V(1015, 256), core.V(0.8, 0.6), 5, 16)
	ev := r.Step(b, nil, arena)

	if ev.Scored() {
		t.Fatal("crossing inside the window should not score")
	}
	if len(ev.Walls) != 1 || ev.Walls[0] != SideRight {
		t.Errorf("Walls = %v, expected [RIGHT]", ev.Walls)
	}
	if !nearVec(b.Dir, core.V(-0.8, 0.6), eps) {
		t.Errorf("Dir = %v, expected (-0.8, 0.6)", b.Dir)
	}
}

func TestLeftGoalCreditsRight(t *testing.T) {
	r := Resolver{MaxBounceDeg: 60, Topology: GoalTopology{GoalTop: 51.2, GoalBottom: 460.8}}

	b := NewBall(core.V(9, 500), core.V(-1, 0), 5, 16)
	ev := r.Step(b, nil, arena)

	if ev.Goal != SideRight {
		t.Fatalf("Goal = %v, expected RIGHT", ev.Goal)
	}
	if b.Dir != core.V(1, 0) {
		t.Errorf("Dir = %v, expected (1, 0)", b.Dir)
	}
}

func TestOpenBottomLosesBall(t *testing.T) {
	r := Resolver{MaxBounceDeg: 60, Topology: WallTopology{OpenBottom: true}}

	b := NewBall(core.V(300, 500), core.V(0, 1), 5, 16)
	ev := r.Step(b, nil, arena)
	if ev.Lost || len(ev.Walls) != 0 {
		t.Fatalf("ball still partly inside: %+v", ev)
	}

	for i := 0; i < 5 && !ev.Lost; i++ {
		ev = r.Step(b, nil, arena)
	}
	if !ev.Lost {
		t.Errorf("ball at %v should be lost", b.Pos)
	}
}

func TestNilTopologyActsAsWalls(t *testing.T) {
	r := Resolver{MaxBounceDeg: 60}
	b := NewBall(core.V(300, 10), core.V(0, -1), 10, 16)

	ev := r.Step(b, nil, arena)
	if len(ev.Walls) != 1 || b.Dir != core.V(0, 1) {
		t.Errorf("expected a top wall bounce, got %+v dir %v", ev, b.Dir)
	}
}

func TestBounceOff(t *testing.T) {
	brick := core.Box{X: 100, Y: 100, W: 64, H: 32}

	tests := []struct {
		name string
		pos  core.Vec2
		dir  core.Vec2
		want core.Vec2
	}{
		{"from below", core.V(132, 138), core.V(0.6, -0.8), core.V(0.6, 0.8)},
		{"from above", core.V(132, 94), core.V(0.6, 0.8), core.V(0.6, -0.8)},
		{"from the left", core.V(94, 116), core.V(0.8, 0.6), core.V(-0.8, 0.6)},
		{"from the right", core.V(170, 116), core.V(-0.8, 0.6), core.V(0.8, 0.6)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBall(tc.pos, tc.dir, 5, 16)
			if !BounceOff(b, brick) {
				t.Fatal("BounceOff() should report a hit")
			}
			if !nearVec(b.Dir, tc.want, eps) {
				t.Errorf("Dir = %v, expected %v", b.Dir, tc.want)
			}
		})
	}

	miss := NewBall(core.V(10, 10), core.V(1, 0), 5, 16)
	if BounceOff(miss, brick) {
		t.Error("BounceOff() should miss a distant brick")
	}
}
