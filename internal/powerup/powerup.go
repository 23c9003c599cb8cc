// Package powerup implements the breakout power-ups: falling pickups that,
// once caught by the paddle, grow the paddle for a while or multiply the
// live balls.
package powerup

import (
	"math/rand"

	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
)

// Kind tags the effect a power-up carries.
type Kind uint8

const (
	GrowPaddle    Kind = iota // Scale the paddle for a while
	MultiplyBalls             // Clone every live ball
)

// Glyph returns the display character for a power-up kind.
func (k Kind) Glyph() rune {
	switch k {
	case GrowPaddle:
		return 'W'
	case MultiplyBalls:
		return 'M'
	default:
		return '?'
	}
}

// String returns the name of the power-up kind.
func (k Kind) String() string {
	switch k {
	case GrowPaddle:
		return "Grow"
	case MultiplyBalls:
		return "Multi"
	default:
		return "?"
	}
}

// State is where a power-up is in its lifecycle:
// Falling -> Active -> (Expired | Consumed).
type State uint8

const (
	Falling State = iota
	Active
	Expired
	Consumed
)

// PowerUp is one pickup. Only falling power-ups are visible.
type PowerUp struct {
	Kind      Kind
	Box       core.Box
	State     State
	Remaining int // frames left while Active
}

// Visible reports whether the pickup should be drawn.
func (p *PowerUp) Visible() bool {
	return p.State == Falling
}

// Config holds the power-up tunables in frames and arena units.
type Config struct {
	Speed        float64
	Size         float64
	GrowFactor   float64
	GrowDuration int // frames
	Multiplier   int
	MaxBalls     int
	GrowChance   int // percent
	MultiChance  int // percent
}

// ConfigFrom derives the power-up configuration from the tunables.
func ConfigFrom(t config.Tunables) Config {
	return Config{
		Speed:        t.PowerUp.Speed,
		Size:         t.PowerUp.Size,
		GrowFactor:   t.PowerUp.GrowFactor,
		GrowDuration: t.Frames(t.PowerUp.GrowDuration),
		Multiplier:   t.PowerUp.Multiplier,
		MaxBalls:     t.PowerUp.MaxBalls,
		GrowChance:   t.PowerUp.GrowChance,
		MultiChance:  t.PowerUp.MultiChance,
	}
}

// Field is the part of the playfield power-ups act on.
type Field struct {
	Paddle *physics.Paddle
	Balls  []*physics.Ball
	Arena  core.Box
}

// Manager handles spawning, falling, pickup and effect timing.
type Manager struct {
	cfg   Config
	items []*PowerUp
	rng   *rand.Rand
}

// NewManager creates a manager with a deterministic RNG.
func NewManager(cfg Config, seed int64) *Manager {
	return &Manager{
		cfg:   cfg,
		items: make([]*PowerUp, 0),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Items returns the falling and active power-ups.
func (m *Manager) Items() []*PowerUp {
	return m.items
}

// Spawn drops a power-up of the given kind centered on c.
func (m *Manager) Spawn(kind Kind, c core.Vec2) *PowerUp {
	pu := &PowerUp{
		Kind:  kind,
		Box:   core.BoxAt(c, core.V(m.cfg.Size, m.cfg.Size)),
		State: Falling,
	}
	m.items = append(m.items, pu)
	return pu
}

// TrySpawn rolls the spawn chances for a broken brick. The grow roll
// comes first; at most one power-up is dropped.
func (m *Manager) TrySpawn(brick core.Box) *PowerUp {
	if m.rng.Intn(100) < m.cfg.GrowChance {
		return m.Spawn(GrowPaddle, brick.Center())
	}
	if m.rng.Intn(100) < m.cfg.MultiChance {
		return m.Spawn(MultiplyBalls, brick.Center())
	}
	return nil
}

// Update advances every power-up by one frame: falling ones move down and
// are caught by the paddle or dropped once they leave the arena, active
// ones count down and revert. Spent power-ups are removed.
func (m *Manager) Update(f *Field) {
	kept := m.items[:0]
	for _, pu := range m.items {
		switch pu.State {
		case Falling:
			pu.Box.Y += m.cfg.Speed
			if pu.Box.Top() > f.Arena.Bottom() {
				continue
			}
			if f.Paddle != nil && pu.Box.Intersects(f.Paddle.Box()) {
				m.apply(pu, f)
			}
		case Active:
			pu.Remaining--
			if pu.Remaining <= 0 {
				m.revert(pu, f)
				pu.State = Expired
			}
		}

		if pu.State == Falling || pu.State == Active {
			kept = append(kept, pu)
		}
	}
	m.items = kept
}

// RevertAll undoes every active effect and drops all power-ups.
func (m *Manager) RevertAll(f *Field) {
	for _, pu := range m.items {
		if pu.State == Active {
			m.revert(pu, f)
			pu.State = Expired
		}
	}
	m.items = m.items[:0]
}

// apply runs the effect of a caught power-up once.
func (m *Manager) apply(pu *PowerUp, f *Field) {
	switch pu.Kind {
	case GrowPaddle:
		grown := f.Paddle.Extent() * m.cfg.GrowFactor
		limit := f.Arena.H
		if f.Paddle.Face == physics.FaceHorizontal {
			limit = f.Arena.W
		}
		if grown > limit {
			// Too big to fit: discarded without effect.
			pu.State = Consumed
			return
		}
		f.Paddle.SetExtent(grown)
		f.Paddle.Clamp(f.Arena)
		pu.State = Active
		pu.Remaining = m.cfg.GrowDuration
		if pu.Remaining <= 0 {
			m.revert(pu, f)
			pu.State = Expired
		}

	case MultiplyBalls:
		f.Balls = Multiply(f.Balls, m.cfg.Multiplier, m.cfg.MaxBalls, m.rng)
		pu.State = Consumed
	}
}

// revert undoes a timed effect.
func (m *Manager) revert(pu *PowerUp, f *Field) {
	switch pu.Kind {
	case GrowPaddle:
		f.Paddle.SetExtent(f.Paddle.Extent() / m.cfg.GrowFactor)
		f.Paddle.Clamp(f.Arena)
	case MultiplyBalls:
		// Permanent.
	}
}

// Multiply clones every ball multiplier times at the parent's position
// with a fresh heading. It stops as soon as the cap is reached.
func Multiply(balls []*physics.Ball, multiplier, maxBalls int, rng *rand.Rand) []*physics.Ball {
	parents := len(balls)
	for i := 0; i < parents; i++ {
		for j := 0; j < multiplier; j++ {
			if len(balls) >= maxBalls {
				return balls
			}
			clone := balls[i].Clone()
			clone.Dir = physics.RandomDir(rng, 60)
			balls = append(balls, clone)
		}
	}
	return balls
}
