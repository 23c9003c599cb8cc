package physics

import "github.com/vovakirdan/paddle-arcade/internal/core"

// Keybinds maps abstract keys to paddle movement. Unbound keys are empty.
type Keybinds struct {
	Up, Down    core.Key
	Left, Right core.Key
}

// Axis is a bit set of the axes a paddle's input drives.
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY

	AxisBoth = AxisX | AxisY
)

// Face is the orientation of a paddle's striking face.
type Face uint8

const (
	// FaceVertical paddles stand upright and send the ball back along X.
	FaceVertical Face = iota
	// FaceHorizontal paddles lie flat and send the ball back along Y.
	FaceHorizontal
)

// Paddle is a controlled body. Its direction is recomputed from the held
// keys on every update, so there is no drift.
type Paddle struct {
	Pos   core.Vec2
	Dir   core.Vec2
	Speed float64
	Size  core.Vec2
	Keys  Keybinds
	Axes  Axis
	Face  Face
}

// NewVerticalPaddle creates an upright paddle driven along Y.
func NewVerticalPaddle(pos core.Vec2, length, thickness, speed float64, keys Keybinds) *Paddle {
	return &Paddle{
		Pos:   pos,
		Speed: speed,
		Size:  core.V(thickness, length),
		Keys:  keys,
		Axes:  AxisY,
		Face:  FaceVertical,
	}
}

// NewHorizontalPaddle creates a flat paddle driven along X.
func NewHorizontalPaddle(pos core.Vec2, length, thickness, speed float64, keys Keybinds) *Paddle {
	return &Paddle{
		Pos:   pos,
		Speed: speed,
		Size:  core.V(length, thickness),
		Keys:  keys,
		Axes:  AxisX,
		Face:  FaceHorizontal,
	}
}

// Box returns the collision box around the current position.
func (p *Paddle) Box() core.Box {
	return core.BoxAt(p.Pos, p.Size)
}

// Extent is the paddle's length along its striking face.
func (p *Paddle) Extent() float64 {
	if p.Face == FaceHorizontal {
		return p.Size.X
	}
	return p.Size.Y
}

// SetExtent changes the length along the striking face, keeping the center.
func (p *Paddle) SetExtent(l float64) {
	if p.Face == FaceHorizontal {
		p.Size.X = l
	} else {
		p.Size.Y = l
	}
}

// Update steers the paddle from the held keys, moves it and keeps it
// inside the arena.
func (p *Paddle) Update(keys core.KeySet, arena core.Box) {
	p.Dir = core.Vec2{}

	if p.Axes&AxisY != 0 {
		switch {
		case keys.Has(p.Keys.Up):
			p.Dir.Y = -1
		case keys.Has(p.Keys.Down):
			p.Dir.Y = 1
		}
	}
	if p.Axes&AxisX != 0 {
		switch {
		case keys.Has(p.Keys.Right):
			p.Dir.X = 1
		case keys.Has(p.Keys.Left):
			p.Dir.X = -1
		}
	}

	p.Pos = p.Pos.Add(p.Dir.Scale(p.Speed))
	p.Clamp(arena)
}

// Clamp moves the paddle back inside the arena on both axes. A paddle
// larger than the arena on an axis is centered on it.
func (p *Paddle) Clamp(arena core.Box) {
	p.Pos.X = clampCenter(p.Pos.X, p.Size.X, arena.Left(), arena.Right())
	p.Pos.Y = clampCenter(p.Pos.Y, p.Size.Y, arena.Top(), arena.Bottom())
}

func clampCenter(c, size, lo, hi float64) float64 {
	half := size / 2
	if lo+half > hi-half {
		return (lo + hi) / 2
	}
	return core.ClampF(c, lo+half, hi-half)
}
