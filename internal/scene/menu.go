package scene

import (
	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// Item is one selectable menu entry. Value, when set, is shown after the
// label and re-evaluated on every render.
type Item struct {
	Label  string
	Value  func() string
	Action func()
}

// Text returns the rendered item text.
func (it Item) Text() string {
	if it.Value == nil {
		return it.Label
	}
	return it.Label + ": " + it.Value()
}

// Menu is a vertical list with exactly one selected item. Up and Down
// move the selection without wrapping, Return invokes the selected item
// and Escape runs Cancel.
type Menu struct {
	Title    string
	Lines    []string // informational lines drawn under the title
	Items    []Item
	Selected int
	Cancel   func()
	Color    core.Color // accent for the title and the selected item
}

// NewMenu creates a menu with the first item selected.
func NewMenu(title string, items ...Item) *Menu {
	return &Menu{
		Title: title,
		Items: items,
		Color: core.ColorCyan,
	}
}

// Up moves the selection one item up.
func (m *Menu) Up() {
	if m.Selected > 0 {
		m.Selected--
	}
}

// Down moves the selection one item down.
func (m *Menu) Down() {
	if m.Selected < len(m.Items)-1 {
		m.Selected++
	}
}

// Current returns the selected item.
func (m *Menu) Current() (Item, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return Item{}, false
	}
	return m.Items[m.Selected], true
}

// Update applies the frame's key presses. Only fresh presses count, so a
// held key acts once.
func (m *Menu) Update(in core.Input) {
	switch {
	case in.Pressed(core.KeyEscape):
		if m.Cancel != nil {
			m.Cancel()
		}
	case in.Pressed(core.KeyUp):
		m.Up()
	case in.Pressed(core.KeyDown):
		m.Down()
	case in.Pressed(core.KeyReturn):
		if it, ok := m.Current(); ok && it.Action != nil {
			it.Action()
		}
	}
}

// Render draws the title, the info lines and the items centered on dst.
func (m *Menu) Render(dst *core.Screen) {
	rows := 2 + len(m.Lines) + 1 + len(m.Items)
	y := (dst.Height() - rows) / 2
	if y < 0 {
		y = 0
	}

	dst.SetPen(m.Color)
	dst.DrawTextCentered(y, m.Title)
	y += 2

	dst.SetPen(core.ColorDefault)
	for _, line := range m.Lines {
		dst.DrawTextCentered(y, line)
		y++
	}
	y++

	for i, it := range m.Items {
		text := "  " + it.Text() + "  "
		if i == m.Selected {
			dst.SetPen(m.Color)
			text = "> " + it.Text() + " <"
		} else {
			dst.SetPen(core.ColorDefault)
		}
		dst.DrawTextCentered(y, text)
		y++
	}
	dst.SetPen(core.ColorDefault)
}
