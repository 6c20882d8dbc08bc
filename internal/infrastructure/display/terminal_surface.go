package display

import (
	"context"
	"maps"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/teampw/themestore/internal/application/port"
	"github.com/teampw/themestore/internal/domain/entity"
)

// Compile-time interface check.
var _ port.DisplaySurface = (*TerminalSurface)(nil)

// TerminalSurface applies the theme to lipgloss rendering in this process.
// Listeners are called after each apply so views can rebuild their styles.
type TerminalSurface struct {
	mu          sync.RWMutex
	state       port.DisplayState
	transitions bool
	listeners   map[int]func(port.DisplayState)
	nextID      int
}

// NewTerminalSurface creates a terminal surface.
func NewTerminalSurface() *TerminalSurface {
	return &TerminalSurface{listeners: make(map[int]func(port.DisplayState))}
}

// Apply implements port.DisplaySurface.
func (s *TerminalSurface) Apply(_ context.Context, state port.DisplayState) error {
	lipgloss.SetHasDarkBackground(state.PrefersDark)

	state.Palette = maps.Clone(state.Palette)
	s.mu.Lock()
	s.state = state
	listeners := make([]func(port.DisplayState), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
	return nil
}

// ApplyMinimal implements port.DisplaySurface. Only the dark-background flag changes.
func (s *TerminalSurface) ApplyMinimal(_ context.Context, theme entity.Theme) error {
	lipgloss.SetHasDarkBackground(theme.IsDark())

	s.mu.Lock()
	s.state.Theme = theme
	s.state.PrefersDark = theme.IsDark()
	s.mu.Unlock()
	return nil
}

// SetTransitions implements port.DisplaySurface.
// Terminals redraw instantly; the flag is only recorded.
func (s *TerminalSurface) SetTransitions(_ context.Context, enabled bool) error {
	s.mu.Lock()
	s.transitions = enabled
	s.mu.Unlock()
	return nil
}

func (s *TerminalSurface) snapshot() port.DisplayState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.state
	state.Palette = maps.Clone(s.state.Palette)
	return state
}

func (s *TerminalSurface) transitionsEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transitions
}

// OnApply registers a listener called after every full apply,
// including palette-only reapplies. Returns a function to unregister it.
func (s *TerminalSurface) OnApply(listener func(port.DisplayState)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = listener

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
