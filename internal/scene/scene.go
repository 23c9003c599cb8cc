// Package scene provides the scene stack that drives the arcade's state
// machine and the selection-list widget shared by all menus.
package scene

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// Scene is one entry of the stack. Only the top scene is updated and
// rendered each frame.
type Scene interface {
	Update(in core.Input)
	Render(dst *core.Screen)
}

// Enterer is implemented by scenes with one-time setup. Enter runs once,
// when the scene is pushed, and never again when a pop exposes it.
type Enterer interface {
	Enter()
}

// Namer lets a scene choose the name used in logs.
type Namer interface {
	Name() string
}

// Name returns a printable name for a scene.
func Name(s Scene) string {
	if n, ok := s.(Namer); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", s)
}

// Stack is an ordered sequence of scenes that is never empty once the
// root has been pushed.
type Stack struct {
	scenes []Scene
	logger *log.Logger
}

// NewStack creates a stack with root as its bottom scene.
func NewStack(root Scene, logger *log.Logger) *Stack {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Stack{logger: logger}
	s.Push(root)
	return s
}

// Push enters a scene and makes it the top.
func (s *Stack) Push(sc Scene) {
	s.scenes = append(s.scenes, sc)
	if e, ok := sc.(Enterer); ok {
		e.Enter()
	}
	s.logger.Debug("push", "scene", Name(sc), "stack", s.names())
}

// Pop exits the top scene. Popping the last scene is a no-op that
// returns false.
func (s *Stack) Pop() bool {
	if len(s.scenes) <= 1 {
		s.logger.Debug("pop ignored on the last scene")
		return false
	}
	top := s.scenes[len(s.scenes)-1]
	s.scenes[len(s.scenes)-1] = nil
	s.scenes = s.scenes[:len(s.scenes)-1]
	s.logger.Debug("pop", "scene", Name(top), "stack", s.names())
	return true
}

// PopToRoot pops every scene above the root.
func (s *Stack) PopToRoot() {
	for s.Pop() {
	}
}

// Top returns the active scene.
func (s *Stack) Top() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	return s.scenes[len(s.scenes)-1]
}

// Len returns the number of scenes on the stack.
func (s *Stack) Len() int {
	return len(s.scenes)
}

// Update forwards the frame's input to the top scene.
func (s *Stack) Update(in core.Input) {
	if top := s.Top(); top != nil {
		top.Update(in)
	}
}

// Render draws the top scene.
func (s *Stack) Render(dst *core.Screen) {
	if top := s.Top(); top != nil {
		top.Render(dst)
	}
}

func (s *Stack) names() []string {
	names := make([]string, len(s.scenes))
	for i, sc := range s.scenes {
		names[i] = Name(sc)
	}
	return names
}
