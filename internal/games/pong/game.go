// Package pong implements the two-paddle variant. Player 1 drives the
// left paddle with W/S, player 2 the right paddle with the arrow keys.
// The side boundaries are goals outside the goal window.
package pong

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/paddle-arcade/internal/app"
	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/games"
	"github.com/vovakirdan/paddle-arcade/internal/menus"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
	"github.com/vovakirdan/paddle-arcade/internal/scene"
)

// ID is the registry and score history key of this variant.
const ID = "pong"

// ServeSpread is the largest serve angle from horizontal, in degrees.
const ServeSpread = 30

// Keybinds of the two players.
var (
	P1Keys = physics.Keybinds{Up: core.KeyW, Down: core.KeyS, Left: core.KeyA, Right: core.KeyD}
	P2Keys = physics.Keybinds{Up: core.KeyUp, Down: core.KeyDown, Left: core.KeyLeft, Right: core.KeyRight}
)

// Game is the two-paddle gameplay scene.
type Game struct {
	app      *app.App
	t        config.Tunables
	arena    core.Box
	stretch  bool
	rng      *rand.Rand
	ramp     *config.SpeedRamp
	resolver physics.Resolver

	ball    *physics.Ball
	paddles []*physics.Paddle

	countdown int // frames until the ball moves
	frames    int
}

// New creates a game from the app's current tunables.
func New(a *app.App) *Game {
	t := a.Tunables
	arena := a.Arena()
	g := &Game{
		app:     a,
		t:       t,
		arena:   arena,
		stretch: a.Fullscreen,
		rng:     rand.New(rand.NewSource(a.NextSeed())),
		ramp:    config.NewSpeedRamp(t.Ramp),
		resolver: physics.Resolver{
			MaxBounceDeg: t.Bounce.MaxAngle,
			Topology:     physics.GoalTopology{GoalTop: t.GoalTop(), GoalBottom: t.GoalBottom()},
		},
	}

	inset := arena.W * t.Paddle.Inset
	g.paddles = []*physics.Paddle{
		physics.NewVerticalPaddle(core.V(inset, arena.H/2), t.Paddle.Length, t.Paddle.Thickness, t.Paddle.Speed, P1Keys),
		physics.NewVerticalPaddle(core.V(arena.W-inset, arena.H/2), t.Paddle.Length, t.Paddle.Thickness, t.Paddle.Speed, P2Keys),
	}
	for _, p := range g.paddles {
		p.Clamp(arena)
	}

	toward := 1.0
	if g.rng.Intn(2) == 0 {
		toward = -1
	}
	g.ball = physics.NewBall(arena.Center(), physics.ServeDir(g.rng, ServeSpread, toward), t.Ball.Speed, t.Ball.Size)
	return g
}

func (g *Game) Name() string { return ID }

// Enter resets the score and starts the serve countdown.
func (g *Game) Enter() {
	g.app.Score.Reset()
	g.countdown = g.t.Frames(g.t.Match.Countdown)
	g.app.Logger.Debug("game started", "variant", ID, "arena", []float64{g.arena.W, g.arena.H})
}

// Ball returns the ball.
func (g *Game) Ball() *physics.Ball { return g.ball }

// Paddles returns the left and right paddles.
func (g *Game) Paddles() []*physics.Paddle { return g.paddles }

// Countdown returns the frames left before the ball moves.
func (g *Game) Countdown() int { return g.countdown }

// Update runs one frame: paddles move from the held keys, then the ball
// is stepped against the paddles and the arena.
func (g *Game) Update(in core.Input) {
	if in.Pressed(core.KeyEscape) {
		g.app.Stack.Push(menus.NewPause(g.app, g))
		return
	}
	if g.t.Debug.Cheats && in.Pressed(core.KeyCheat) {
		g.finish(true)
		return
	}

	for _, p := range g.paddles {
		p.Update(in.Held, g.arena)
	}

	if g.countdown > 0 {
		g.countdown--
		return
	}

	g.frames++
	score := g.app.Score
	if g.ramp.IsEnabled() {
		g.ball.Speed = g.ramp.Speed(g.t.Ball.Speed, score.Left+score.Right, g.frames)
	}

	ev := g.resolver.Step(g.ball, g.paddles, g.arena)
	if !ev.Scored() {
		return
	}

	g.app.Score.Credit(ev.Goal)
	score = g.app.Score
	g.app.Logger.Debug("goal", "side", ev.Goal, "left", score.Left, "right", score.Right)

	switch {
	case score.Left >= g.t.Match.WinScore:
		g.finish(true)
	case score.Right >= g.t.Match.WinScore:
		g.finish(false)
	default:
		g.countdown = g.t.Frames(g.t.Match.Countdown)
	}
}

// finish pushes the end screen. The left player's points are recorded.
func (g *Game) finish(won bool) {
	res := menus.Result{Points: g.app.Score.Left, Text: g.scoreText()}
	var next scene.Scene
	if won {
		next = menus.NewWin(g.app, res)
	} else {
		next = menus.NewGameOver(g.app, res)
	}
	g.app.Stack.Push(next)
}

func (g *Game) scoreText() string {
	return fmt.Sprintf("%d-%d", g.app.Score.Left, g.app.Score.Right)
}

// Render draws the playfield scaled to dst.
func (g *Game) Render(dst *core.Screen) {
	vp := games.Layout(dst, g.arena, g.stretch)
	games.DrawFrame(dst, vp)
	g.renderGoals(dst, vp)

	// Net
	netColor := games.FrameColor
	if g.t.Debug.ShowHitbox {
		netColor = games.HitboxColor
	}
	dst.SetPen(netColor)
	cx, _ := vp.Point(core.V(g.arena.W/2, 0))
	for y := vp.Frame.Y; y < vp.Frame.Bottom(); y += 2 {
		dst.Set(cx, y, games.NetChar)
	}

	for _, p := range g.paddles {
		games.DrawBody(dst, vp, p.Box(), games.PaddleChar, games.PaddleColor)
	}
	// Blink during the countdown
	if g.countdown == 0 || (g.countdown/10)%2 == 0 {
		games.DrawBody(dst, vp, g.ball.Box(), games.BallChar, games.BallColor)
	}

	if g.t.Debug.ShowHitbox {
		for _, p := range g.paddles {
			games.DrawHitbox(dst, vp, p.Box())
		}
		games.DrawHitbox(dst, vp, g.ball.Box())
	}
	if g.t.Debug.ShowDirection {
		for _, p := range g.paddles {
			games.DrawHeading(dst, vp, p.Pos, p.Dir, p.Speed*20)
		}
		games.DrawHeading(dst, vp, g.ball.Pos, g.ball.Dir, g.ball.Size.X*2)
	}

	// HUD
	dst.SetPen(core.ColorDefault)
	dst.DrawText(1, 0, "P1 W/S")
	dst.DrawTextCentered(0, g.scoreText())
	dst.DrawText(dst.Width()-7, 0, "P2 ↑/↓")
	if g.countdown > 0 {
		dst.DrawTextCentered(vp.Frame.Y+vp.Frame.H/4, games.Countdown(g.countdown, g.t.FPS))
	}
}

// renderGoals marks the parts of the side boundaries that score.
func (g *Game) renderGoals(dst *core.Screen, vp core.Viewport) {
	border := vp.Border()
	_, top := vp.Point(core.V(0, g.t.GoalTop()))
	_, bottom := vp.Point(core.V(0, g.t.GoalBottom()))

	dst.SetPen(games.GoalColor)
	for y := vp.Frame.Y; y < vp.Frame.Bottom(); y++ {
		if y >= top && y <= bottom {
			continue
		}
		dst.Set(border.X, y, games.GoalChar)
		dst.Set(border.Right()-1, y, games.GoalChar)
	}
	dst.SetPen(core.ColorDefault)
}

func init() {
	registry.Register(registry.Info{
		ID:          ID,
		Title:       "Pong",
		Description: "Two players, two paddles, goals on the sides",
	}, func(a *app.App) scene.Scene {
		return New(a)
	})
}
