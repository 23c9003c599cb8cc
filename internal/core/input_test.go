package core

import (
	"reflect"
	"testing"
)

func TestKeySetHas(t *testing.T) {
	s := NewKeySet(KeyUp, KeyW)

	if !s.Has(KeyUp) || !s.Has(KeyW) {
		t.Error("Has() should report held keys")
	}
	if s.Has(KeyDown) {
		t.Error("Has() should not report keys that are not held")
	}
	if s.Has("") {
		t.Error("the empty key is never held")
	}

	var nilSet KeySet
	if nilSet.Has(KeyUp) {
		t.Error("nil set holds nothing")
	}
}

func TestKeySetKeysSorted(t *testing.T) {
	s := NewKeySet(KeyW, KeyDown, KeyReturn)
	want := []Key{KeyDown, KeyReturn, KeyW}
	if got := s.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, expected %v", got, want)
	}
}

func TestInputPressedIsEdgeTriggered(t *testing.T) {
	var tracker InputTracker

	frames := []struct {
		held    KeySet
		pressed bool
	}{
		{NewKeySet(), false},
		{NewKeySet(KeyReturn), true},  // goes down
		{NewKeySet(KeyReturn), false}, // still held
		{NewKeySet(KeyReturn), false},
		{NewKeySet(), false},          // released
		{NewKeySet(KeyReturn), true},  // down again
	}

	for i, f := range frames {
		in := tracker.Next(f.held)
		if got := in.Pressed(KeyReturn); got != f.pressed {
			t.Errorf("frame %d: Pressed(RETURN) = %v, expected %v", i, got, f.pressed)
		}
		if got := in.Down(KeyReturn); got != f.held.Has(KeyReturn) {
			t.Errorf("frame %d: Down(RETURN) = %v, expected %v", i, got, f.held.Has(KeyReturn))
		}
	}
}

func TestInputTrackerCopiesHeldSet(t *testing.T) {
	var tracker InputTracker
	held := NewKeySet(KeyUp)

	tracker.Next(held)
	held.Set(KeyDown) // caller reuses its map

	in := tracker.Next(held)
	if !in.Pressed(KeyDown) {
		t.Error("DOWN should be a fresh press even though the caller mutated its map")
	}
	if in.Pressed(KeyUp) {
		t.Error("UP was already held in the previous frame")
	}
}

func TestInputTrackerLatchedPressSurvivesHeldGap(t *testing.T) {
	var tracker InputTracker

	frames := []struct {
		held, latched KeySet
		pressed, down bool
	}{
		{NewKeySet(KeyReturn), NewKeySet(KeyReturn), true, true},
		{NewKeySet(), NewKeySet(KeyReturn), false, false}, // waiting for key repeat
		{NewKeySet(KeyReturn), NewKeySet(KeyReturn), false, true},
		{NewKeySet(), NewKeySet(), false, false},
		{NewKeySet(KeyReturn), NewKeySet(KeyReturn), true, true},
	}

	for i, f := range frames {
		in := tracker.NextLatched(f.held, f.latched)
		if got := in.Pressed(KeyReturn); got != f.pressed {
			t.Errorf("frame %d: Pressed(RETURN) = %v, expected %v", i, got, f.pressed)
		}
		if got := in.Down(KeyReturn); got != f.down {
			t.Errorf("frame %d: Down(RETURN) = %v, expected %v", i, got, f.down)
		}
	}
}
