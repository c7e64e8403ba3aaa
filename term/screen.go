// Package term owns the tcell screen lifecycle: initialization, mouse
// capability negotiation, the crash restore hook, and the event pump.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/core"
	"github.com/averden/folio/theme"
)

// Screen wraps the tcell screen with the capabilities resolved at init
type Screen struct {
	tcell.Screen
	mouse bool
}

// New initializes the terminal, applies the theme backdrop, and enables
// mouse tracking when requested and the terminal supports it
func New(th *theme.Theme, wantMouse bool) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	s.SetStyle(tcell.StyleDefault.Foreground(th.Fg).Background(th.Bg))

	mouse := false
	if wantMouse && s.HasMouse() {
		s.EnableMouse(tcell.MouseButtonEvents | tcell.MouseMotionEvents)
		mouse = true
	}
	s.Clear()

	// Panics anywhere in the process restore the terminal through Fini,
	// which tcell guards against double finalization
	core.SetResetFunc(s.Fini)

	return &Screen{Screen: s, mouse: mouse}, nil
}

// MouseEnabled reports whether mouse tracking is active
func (s *Screen) MouseEnabled() bool {
	return s.mouse
}

// Pump forwards terminal events to a channel from a crash-safe goroutine.
// The channel closes when the screen shuts down.
func (s *Screen) Pump(buf int) <-chan tcell.Event {
	ch := make(chan tcell.Event, buf)
	core.Go(func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(ch)
				return
			}
			ch <- ev
		}
	})
	return ch
}
