package core

import "sort"

// Key is an abstract key name, decoupled from the terminal's key events.
// The platform layer maps raw events to these names.
type Key string

// Abstract keys understood by the scenes.
const (
	KeyUp     Key = "UP"
	KeyDown   Key = "DOWN"
	KeyLeft   Key = "LEFT"
	KeyRight  Key = "RIGHT"
	KeyReturn Key = "RETURN"
	KeyEscape Key = "ESCAPE"

	// Secondary player (WASD).
	KeyW Key = "w"
	KeyA Key = "a"
	KeyS Key = "s"
	KeyD Key = "d"

	// KeyCheat forces a win when cheats are enabled.
	KeyCheat Key = "p"
)

// KeySet is the set of keys held down during one frame.
type KeySet map[Key]bool

// NewKeySet creates a key set holding the given keys.
func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = true
	}
	return s
}

// Has returns true if k is held. Empty keys are never held, which lets
// optional keybinds stay unbound.
func (s KeySet) Has(k Key) bool {
	if k == "" || s == nil {
		return false
	}
	return s[k]
}

// Set marks a key as held.
func (s KeySet) Set(k Key) {
	s[k] = true
}

// Clone creates a copy of this key set.
func (s KeySet) Clone() KeySet {
	clone := make(KeySet, len(s))
	for k, v := range s {
		if v {
			clone[k] = true
		}
	}
	return clone
}

// Keys returns the held keys in sorted order.
func (s KeySet) Keys() []Key {
	keys := make([]Key, 0, len(s))
	for k, v := range s {
		if v {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Input is the per-frame input snapshot handed to the active scene.
// "Just pressed" is computed from the previous frame, so a key held across
// frames triggers an action exactly once.
type Input struct {
	Held    KeySet
	pressed KeySet
}

// NewInput builds a snapshot from the previous and current held sets.
func NewInput(prev, held KeySet) Input {
	if held == nil {
		held = KeySet{}
	}
	return Input{Held: held, pressed: newlyDown(prev, held)}
}

func newlyDown(prev, now KeySet) KeySet {
	pressed := KeySet{}
	for k, v := range now {
		if v && !prev.Has(k) {
			pressed[k] = true
		}
	}
	return pressed
}

// Pressed returns true if k went down this frame.
func (in Input) Pressed(k Key) bool {
	return in.pressed.Has(k)
}

// Down returns true if k is held this frame.
func (in Input) Down(k Key) bool {
	return in.Held.Has(k)
}

// InputTracker produces consecutive snapshots from a stream of held sets.
type InputTracker struct {
	prev KeySet
}

// Next returns the snapshot for this frame and remembers held for the next one.
func (t *InputTracker) Next(held KeySet) Input {
	return t.NextLatched(held, held)
}

// NextLatched is Next with presses detected on a separate set. A key stays
// in latched across gaps where it no longer counts as held, so it does not
// go down a second time when the gap ends.
func (t *InputTracker) NextLatched(held, latched KeySet) Input {
	latched = latched.Clone()
	in := Input{Held: held.Clone(), pressed: newlyDown(t.prev, latched)}
	t.prev = latched
	return in
}
