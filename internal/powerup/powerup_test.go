package powerup

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
)

var arena = core.Box{X: 0, Y: 0, W: 1024, H: 512}

func testConfig() Config {
	return Config{
		Speed:        2,
		Size:         16,
		GrowFactor:   1.5,
		GrowDuration: 3,
		Multiplier:   2,
		MaxBalls:     7,
		GrowChance:   100,
		MultiChance:  100,
	}
}

func newField(balls int) *Field {
	f := &Field{
		Paddle: physics.NewHorizontalPaddle(core.V(512, 480), 128, 28, 8, physics.Keybinds{}),
		Arena:  arena,
	}
	for i := 0; i < balls; i++ {
		f.Balls = append(f.Balls, physics.NewBall(core.V(float64(100+i*10), 200), core.V(0, 1), 5, 16))
	}
	return f
}

func TestMultiplyStopsAtCap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	balls := newField(3).Balls

	out := Multiply(balls, 2, 7, rng)

	if len(out) != 7 {
		t.Fatalf("len = %d, expected 7 (4 clones)", len(out))
	}
	// Ball 0 and ball 1 each got two clones; ball 2 got none.
	wantX := []float64{100, 110, 120, 100, 100, 110, 110}
	for i, b := range out {
		if b.Pos.X != wantX[i] {
			t.Errorf("ball %d at x=%f, expected %f", i, b.Pos.X, wantX[i])
		}
	}
	for i := 3; i < 7; i++ {
		if out[i] == out[0] || out[i] == out[1] {
			t.Errorf("clone %d shares its parent", i)
		}
	}
}

func TestMultiplyBelowCap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	out := Multiply(newField(2).Balls, 3, 10, rng)
	if len(out) != 8 {
		t.Errorf("len = %d, expected 8", len(out))
	}

	full := Multiply(newField(10).Balls, 2, 10, rng)
	if len(full) != 10 {
		t.Errorf("a full field should stay at the cap, got %d", len(full))
	}
}

func TestMultiplyPowerUpIsConsumed(t *testing.T) {
	m := NewManager(testConfig(), 1)
	f := newField(3)

	pu := m.Spawn(MultiplyBalls, core.V(512, 460))
	m.Update(f)

	if pu.State != Consumed {
		t.Errorf("State = %v, expected Consumed", pu.State)
	}
	if len(f.Balls) != 7 {
		t.Errorf("balls = %d, expected 7", len(f.Balls))
	}
	if len(m.Items()) != 0 {
		t.Error("consumed power-up should be removed")
	}
}

func TestGrowPaddleAppliesAndReverts(t *testing.T) {
	m := NewManager(testConfig(), 1)
	f := newField(1)

	pu := m.Spawn(GrowPaddle, core.V(512, 460))
	m.Update(f)

	if pu.State != Active || pu.Visible() {
		t.Fatalf("caught power-up should be active and invisible, state %v", pu.State)
	}
	if f.Paddle.Extent() != 192 {
		t.Fatalf("Extent = %f, expected 192", f.Paddle.Extent())
	}

	m.Update(f)
	m.Update(f)
	if f.Paddle.Extent() != 192 {
		t.Fatalf("effect ended early, extent %f", f.Paddle.Extent())
	}

	m.Update(f)
	if pu.State != Expired {
		t.Errorf("State = %v, expected Expired", pu.State)
	}
	if f.Paddle.Extent() != 128 {
		t.Errorf("Extent = %f after revert, expected 128", f.Paddle.Extent())
	}
	if len(m.Items()) != 0 {
		t.Error("expired power-up should be removed")
	}
}

func TestGrowPaddleTooBigIsDiscarded(t *testing.T) {
	m := NewManager(testConfig(), 1)
	f := newField(1)
	f.Paddle.SetExtent(800)

	pu := m.Spawn(GrowPaddle, core.V(512, 460))
	m.Update(f)

	if pu.State != Consumed {
		t.Errorf("State = %v, expected Consumed", pu.State)
	}
	if f.Paddle.Extent() != 800 {
		t.Errorf("Extent = %f, expected unchanged 800", f.Paddle.Extent())
	}
}

func TestFallingPowerUpLeavesArena(t *testing.T) {
	m := NewManager(testConfig(), 1)
	f := newField(1)
	f.Paddle.Pos.X = 100 // out of the way

	pu := m.Spawn(GrowPaddle, core.V(900, 500))
	startY := pu.Box.Y
	m.Update(f)
	if pu.Box.Y != startY+2 {
		t.Errorf("Box.Y = %f, expected %f", pu.Box.Y, startY+2)
	}

	for i := 0; i < 20; i++ {
		m.Update(f)
	}
	if len(m.Items()) != 0 {
		t.Error("power-up below the arena should be removed")
	}
	if f.Paddle.Extent() != 128 {
		t.Error("a missed power-up must not apply")
	}
}

func TestTrySpawnRolls(t *testing.T) {
	brick := core.Box{X: 100, Y: 100, W: 64, H: 32}

	always := NewManager(testConfig(), 1)
	pu := always.TrySpawn(brick)
	if pu == nil || pu.Kind != GrowPaddle {
		t.Fatalf("TrySpawn() = %+v, expected a grow power-up", pu)
	}
	if pu.Box.Center() != brick.Center() {
		t.Errorf("power-up centered on %v, expected %v", pu.Box.Center(), brick.Center())
	}

	cfg := testConfig()
	cfg.GrowChance = 0
	multi := NewManager(cfg, 1)
	if pu := multi.TrySpawn(brick); pu == nil || pu.Kind != MultiplyBalls {
		t.Errorf("TrySpawn() = %+v, expected a multiply power-up", pu)
	}

	cfg.MultiChance = 0
	never := NewManager(cfg, 1)
	for i := 0; i < 50; i++ {
		if never.TrySpawn(brick) != nil {
			t.Fatal("zero chances should never spawn")
		}
	}
}

func TestRevertAll(t *testing.T) {
	m := NewManager(testConfig(), 1)
	f := newField(1)

	m.Spawn(GrowPaddle, core.V(512, 460))
	m.Update(f)
	m.Spawn(MultiplyBalls, core.V(10, 10))

	m.RevertAll(f)
	if f.Paddle.Extent() != 128 || len(m.Items()) != 0 {
		t.Errorf("RevertAll left extent %f and %d items", f.Paddle.Extent(), len(m.Items()))
	}
}

func TestConfigFromTunables(t *testing.T) {
	cfg := ConfigFrom(config.DefaultTunables())
	if cfg.GrowDuration != 600 {
		t.Errorf("GrowDuration = %d frames, expected 600", cfg.GrowDuration)
	}
	if cfg.MaxBalls != 10 || cfg.Multiplier != 2 {
		t.Errorf("unexpected config %+v", cfg)
	}
}
