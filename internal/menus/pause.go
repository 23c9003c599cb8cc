package menus

import (
	"github.com/vovakirdan/paddle-arcade/internal/app"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/scene"
)

// Pause is a transparent menu: the frozen frame of the scene underneath
// stays visible, dimmed, behind the buttons.
type Pause struct {
	menu  *scene.Menu
	under scene.Scene
}

// NewPause creates the pause menu over the given gameplay scene.
func NewPause(a *app.App, under scene.Scene) *Pause {
	resume := back(a)
	m := scene.NewMenu("PAUSED",
		scene.Item{Label: "resume", Action: resume},
		scene.Item{Label: "menu", Action: func() {
			a.Stack.Pop() // back to gameplay
			a.Stack.Pop() // back to the menu
		}},
	)
	m.Cancel = resume
	m.Color = PauseColor
	return &Pause{menu: m, under: under}
}

func (p *Pause) Name() string { return "pause" }

func (p *Pause) Update(in core.Input) {
	p.menu.Update(in)
}

func (p *Pause) Render(dst *core.Screen) {
	if p.under != nil {
		p.under.Render(dst)
		dst.Dim(core.ColorGray)
	}

	w, h := 24, len(p.menu.Items)+5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.SetPen(core.ColorDefault)
	dst.DrawRect(box, ' ')
	dst.SetPen(PauseColor)
	dst.DrawBox(box)
	p.menu.Render(dst)
}
