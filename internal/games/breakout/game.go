package breakout

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/paddle-arcade/internal/app"
	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/games"
	"github.com/vovakirdan/paddle-arcade/internal/menus"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
	"github.com/vovakirdan/paddle-arcade/internal/powerup"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
	"github.com/vovakirdan/paddle-arcade/internal/scene"
)

// ID is the registry and score history key of this variant.
const ID = "breakout"

// ServeSpread is the largest launch angle from vertical, in degrees.
const ServeSpread = 30

// Keys drives the paddle with the arrow keys.
var Keys = physics.Keybinds{Left: core.KeyLeft, Right: core.KeyRight}

// BrickGlyphs are the brick glyphs by row, cycling through.
var BrickGlyphs = []rune{'█', '▓', '▒', '░'}

// BrickColors are the brick colors by row, cycling through.
var BrickColors = []core.Color{core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen, core.ColorCyan, core.ColorBlue}

// Glyphs of bricks that take more than one hit.
const (
	HardBrickGlyph  = '▓'
	SolidBrickGlyph = '█'
)

// Game is the breakout gameplay scene.
type Game struct {
	app      *app.App
	t        config.Tunables
	arena    core.Box
	stretch  bool
	rng      *rand.Rand
	ramp     *config.SpeedRamp
	resolver physics.Resolver
	layouts  []Layout

	paddle   *physics.Paddle
	balls    []*physics.Ball
	powerups *powerup.Manager
	level    *Level

	levelIndex int
	lives      int
	countdown  int // frames until the ball launches
	frames     int
}

// New creates a game from the app's current tunables.
func New(a *app.App) *Game {
	t := a.Tunables
	arena := a.Arena()
	seed := a.NextSeed()

	g := &Game{
		app:     a,
		t:       t,
		arena:   arena,
		stretch: a.Fullscreen,
		rng:     rand.New(rand.NewSource(seed)),
		ramp:    config.NewSpeedRamp(t.Ramp),
		resolver: physics.Resolver{
			MaxBounceDeg: t.Bounce.MaxAngle,
			Topology:     physics.WallTopology{OpenBottom: true},
		},
		layouts:  Layouts(t.Bricks),
		powerups: powerup.NewManager(powerup.ConfigFrom(t), seed),
		lives:    t.Match.Lives,
	}

	g.paddle = physics.NewHorizontalPaddle(
		core.V(arena.W/2, arena.H*(1-t.Paddle.Inset)),
		t.Paddle.Length, t.Paddle.Thickness, t.Paddle.Speed, Keys,
	)
	g.paddle.Clamp(arena)

	g.loadLevel(0)
	return g
}

func (g *Game) Name() string { return ID }

// Enter resets the score and puts the first ball on the paddle.
func (g *Game) Enter() {
	g.app.Score.Reset()
	g.serve()
	g.app.Logger.Debug("game started", "variant", ID, "level", g.level.Name, "bricks", g.level.CountAlive())
}

// Balls returns the live balls.
func (g *Game) Balls() []*physics.Ball { return g.balls }

// Paddle returns the paddle.
func (g *Game) Paddle() *physics.Paddle { return g.paddle }

// Level returns the current level.
func (g *Game) Level() *Level { return g.level }

// Lives returns the lives left.
func (g *Game) Lives() int { return g.lives }

// PowerUps returns the power-up manager.
func (g *Game) PowerUps() *powerup.Manager { return g.powerups }

// loadLevel lays out a level for the current arena.
func (g *Game) loadLevel(index int) {
	g.levelIndex = index
	g.level = ParseLevel(g.layouts[index], g.t.Bricks, g.arena.W, g.arena.H)
}

// serve replaces every ball with one resting on the paddle and starts
// the countdown.
func (g *Game) serve() {
	dir := physics.RandomDir(g.rng, ServeSpread)
	dir.Y = -math.Abs(dir.Y)

	b := physics.NewBall(core.Vec2{}, dir, g.t.Ball.Speed, g.t.Ball.Size)
	g.balls = []*physics.Ball{b}
	g.stickToPaddle()
	g.countdown = g.t.Frames(g.t.Match.Countdown)
}

// stickToPaddle keeps waiting balls on top of the paddle.
func (g *Game) stickToPaddle() {
	for _, b := range g.balls {
		b.Pos = core.V(g.paddle.Pos.X, g.paddle.Box().Top()-b.Size.Y/2)
	}
}

func (g *Game) field() *powerup.Field {
	return &powerup.Field{Paddle: g.paddle, Balls: g.balls, Arena: g.arena}
}

// Update runs one frame.
func (g *Game) Update(in core.Input) {
	if in.Pressed(core.KeyEscape) {
		g.app.Stack.Push(menus.NewPause(g.app, g))
		return
	}
	if g.t.Debug.Cheats && in.Pressed(core.KeyCheat) {
		g.finish(true)
		return
	}

	g.paddle.Update(in.Held, g.arena)

	f := g.field()
	g.powerups.Update(f)
	g.balls = f.Balls

	if g.countdown > 0 {
		g.countdown--
		g.stickToPaddle()
		return
	}

	g.frames++
	if g.ramp.IsEnabled() {
		speed := g.ramp.Speed(g.t.Ball.Speed, g.app.Score.Total, g.frames)
		for _, b := range g.balls {
			b.Speed = speed
		}
	}

	paddles := []*physics.Paddle{g.paddle}
	kept := g.balls[:0]
	for _, b := range g.balls {
		ev := g.resolver.Step(b, paddles, g.arena)
		if ev.Lost {
			continue
		}
		g.hitBricks(b)
		kept = append(kept, b)
	}
	g.balls = kept

	switch {
	case len(g.balls) == 0:
		g.loseLife()
	case g.level.CountAlive() == 0:
		g.nextLevel()
	}
}

// hitBricks bounces the ball off the first brick it touches.
func (g *Game) hitBricks(b *physics.Ball) {
	for _, brick := range g.level.Bricks {
		if !brick.Alive() || !physics.BounceOff(b, brick.Box) {
			continue
		}
		if !brick.Solid {
			brick.HP--
			if brick.HP == 0 {
				g.app.Score.Total += brick.Points
				if pu := g.powerups.TrySpawn(brick.Box); pu != nil {
					g.app.Logger.Debug("power-up dropped", "kind", pu.Kind)
				}
			}
		}
		return
	}
}

// loseLife is called once every ball has left through the bottom.
func (g *Game) loseLife() {
	g.lives--
	g.powerups.RevertAll(g.field())
	g.app.Logger.Debug("ball lost", "lives", g.lives)

	if g.lives <= 0 {
		g.finish(false)
		return
	}
	g.serve()
}

// nextLevel advances after the wall is cleared. Clearing the last level
// wins the game.
func (g *Game) nextLevel() {
	g.powerups.RevertAll(g.field())
	if g.levelIndex+1 >= len(g.layouts) {
		g.finish(true)
		return
	}
	g.loadLevel(g.levelIndex + 1)
	g.app.Logger.Debug("level cleared", "next", g.level.Name)
	g.serve()
}

func (g *Game) finish(won bool) {
	res := menus.Result{Points: g.app.Score.Total, Text: fmt.Sprintf("%d", g.app.Score.Total)}
	var next scene.Scene
	if won {
		next = menus.NewWin(g.app, res)
	} else {
		next = menus.NewGameOver(g.app, res)
	}
	g.app.Stack.Push(next)
}

// Render draws the playfield scaled to dst.
func (g *Game) Render(dst *core.Screen) {
	vp := games.Layout(dst, g.arena, g.stretch)
	games.DrawFrame(dst, vp)

	// Open bottom
	border := vp.Border()
	dst.DrawRect(core.NewRect(border.X, border.Bottom()-1, border.W, 1), ' ')

	g.renderBricks(dst, vp)

	for _, pu := range g.powerups.Items() {
		if !pu.Visible() {
			continue
		}
		color := core.ColorBrightYellow
		if pu.Kind == powerup.MultiplyBalls {
			color = core.ColorBrightGreen
		}
		games.DrawBody(dst, vp, pu.Box, pu.Kind.Glyph(), color)
	}

	games.DrawBody(dst, vp, g.paddle.Box(), games.PaddleChar, games.PaddleColor)
	for _, b := range g.balls {
		games.DrawBody(dst, vp, b.Box(), games.BallChar, games.BallColor)
	}

	if g.t.Debug.ShowHitbox {
		games.DrawHitbox(dst, vp, g.paddle.Box())
		for _, b := range g.balls {
			games.DrawHitbox(dst, vp, b.Box())
		}
	}
	if g.t.Debug.ShowDirection {
		games.DrawHeading(dst, vp, g.paddle.Pos, g.paddle.Dir, g.paddle.Speed*20)
		for _, b := range g.balls {
			games.DrawHeading(dst, vp, b.Pos, b.Dir, b.Size.X*2)
		}
	}

	g.renderHUD(dst, vp)
}

func (g *Game) renderBricks(dst *core.Screen, vp core.Viewport) {
	for _, b := range g.level.Bricks {
		if !b.Alive() {
			continue
		}

		glyph := BrickGlyphs[b.Row%len(BrickGlyphs)]
		color := BrickColors[b.Row%len(BrickColors)]
		switch {
		case b.Solid:
			glyph, color = SolidBrickGlyph, core.ColorGray
		case b.HP > 1:
			glyph, color = HardBrickGlyph, core.ColorBrightMagenta
		}

		r := vp.Rect(b.Box)
		// Leave a column between neighbours.
		if r.W > 1 {
			r.W--
		}
		dst.SetPen(color)
		dst.DrawRect(r, glyph)
	}
	dst.SetPen(core.ColorDefault)
}

func (g *Game) renderHUD(dst *core.Screen, vp core.Viewport) {
	dst.SetPen(core.ColorDefault)
	scoreText := fmt.Sprintf("Score: %d", g.app.Score.Total)
	dst.DrawText(1, 0, scoreText)
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	levelText := fmt.Sprintf("Level: %d/%d", g.levelIndex+1, len(g.layouts))
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	// Active effects after the score
	x := len(scoreText) + 3
	dst.SetPen(core.ColorBrightYellow)
	for _, pu := range g.powerups.Items() {
		if pu.State != powerup.Active {
			continue
		}
		text := fmt.Sprintf("%s(%s)", pu.Kind, games.Countdown(pu.Remaining, g.t.FPS))
		dst.DrawText(x, 0, text)
		x += len(text) + 1
	}
	dst.SetPen(core.ColorDefault)

	if g.countdown > 0 {
		dst.DrawTextCentered(vp.Frame.Y+vp.Frame.H*2/3, games.Countdown(g.countdown, g.t.FPS))
	}
}

func init() {
	registry.Register(registry.Info{
		ID:          ID,
		Title:       "Breakout",
		Description: "Clear the brick wall, catch power-ups, keep the ball alive",
	}, func(a *app.App) scene.Scene {
		return New(a)
	})
}
