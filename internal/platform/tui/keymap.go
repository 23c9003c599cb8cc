package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// DefaultHold is how long a key counts as held after its last key event.
// Terminals report presses and auto-repeats but no releases.
const DefaultHold = 200 * time.Millisecond

// DefaultLatch is how long a confirm or cancel key stays latched after its
// last event. It outlasts common auto-repeat delays (250 to 660 ms), so
// holding Enter fires once instead of again when repeats start.
const DefaultLatch = 700 * time.Millisecond

// LatchedKeys are the keys whose presses are read through the latch window.
// Movement keys are left out so quick taps in menus still register.
var LatchedKeys = []core.Key{core.KeyReturn, core.KeyEscape, core.KeyCheat}

// KeyMap binds terminal keys to the abstract keys the scenes read.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Return     key.Binding
	Escape     key.Binding
	W          key.Binding
	A          key.Binding
	S          key.Binding
	D          key.Binding
	Cheat      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Return:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back/pause")),
		W:          key.NewBinding(key.WithKeys("w", "W")),
		A:          key.NewBinding(key.WithKeys("a", "A")),
		S:          key.NewBinding(key.WithKeys("s", "S")),
		D:          key.NewBinding(key.WithKeys("d", "D")),
		Cheat:      key.NewBinding(key.WithKeys("p", "P")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// Resolve maps a key message to its abstract key.
// Returns false for keys no scene understands.
func (km KeyMap) Resolve(msg tea.KeyMsg) (core.Key, bool) {
	bindings := []struct {
		binding key.Binding
		key     core.Key
	}{
		{km.Up, core.KeyUp},
		{km.Down, core.KeyDown},
		{km.Left, core.KeyLeft},
		{km.Right, core.KeyRight},
		{km.Return, core.KeyReturn},
		{km.Escape, core.KeyEscape},
		{km.W, core.KeyW},
		{km.A, core.KeyA},
		{km.S, core.KeyS},
		{km.D, core.KeyD},
		{km.Cheat, core.KeyCheat},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.key, true
		}
	}
	return "", false
}

// KeyTracker turns the stream of key events into a held set. A key stays
// held for the hold window after its most recent event, so auto-repeat
// keeps it down and silence releases it. Latched keys also stay in the
// edge set for the longer latch window, bridging the gap before
// auto-repeat kicks in.
type KeyTracker struct {
	hold    time.Duration
	latch   time.Duration
	latched map[core.Key]bool
	last    map[core.Key]time.Time
}

// NewKeyTracker creates a tracker. Non-positive windows use DefaultHold.
// LatchedKeys use DefaultLatch, or the hold window if that is longer.
func NewKeyTracker(hold time.Duration) *KeyTracker {
	if hold <= 0 {
		hold = DefaultHold
	}
	t := &KeyTracker{hold: hold, last: make(map[core.Key]time.Time)}
	t.SetLatch(DefaultLatch, LatchedKeys...)
	return t
}

// SetLatch replaces the latch window and the keys it applies to. A window
// shorter than the hold window is raised to it.
func (t *KeyTracker) SetLatch(d time.Duration, keys ...core.Key) {
	t.latch = max(d, t.hold)
	t.latched = make(map[core.Key]bool, len(keys))
	for _, k := range keys {
		t.latched[k] = true
	}
}

// Press records an event for k at now.
func (t *KeyTracker) Press(k core.Key, now time.Time) {
	t.last[k] = now
}

// Held returns the keys still inside their hold window at now.
func (t *KeyTracker) Held(now time.Time) core.KeySet {
	held, _ := t.Sample(now)
	return held
}

// Sample returns the keys inside their hold window and the keys to detect
// presses on at now, and forgets keys past every window.
func (t *KeyTracker) Sample(now time.Time) (held, edges core.KeySet) {
	held, edges = core.NewKeySet(), core.NewKeySet()
	for k, at := range t.last {
		age := now.Sub(at)
		if age < t.hold {
			held.Set(k)
		}
		window := t.hold
		if t.latched[k] {
			window = t.latch
		}
		switch {
		case age < window:
			edges.Set(k)
		case age >= t.latch:
			delete(t.last, k)
		}
	}
	return held, edges
}

// Reset releases every key.
func (t *KeyTracker) Reset() {
	clear(t.last)
}
