package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/engine"
	"github.com/averden/folio/render"
	"github.com/averden/folio/ui"
)

// StatusRenderer owns the screen before content exists: a spinner while
// the document loads, and the terminal failure notice when it cannot.
// There is no retry path; a failed load only offers quitting.
type StatusRenderer struct {
	app *engine.App
}

// NewStatusRenderer creates the load status stage
func NewStatusRenderer(app *engine.App) *StatusRenderer {
	return &StatusRenderer{app: app}
}

// IsVisible implements VisibilityToggle
func (s *StatusRenderer) IsVisible() bool {
	return s.app.Load != engine.LoadReady
}

// Render implements Renderer
func (s *StatusRenderer) Render(f render.Frame, buf *render.Buffer) {
	th := s.app.Th
	reg := buf.Region()
	midY := f.Height / 2

	if s.app.Load == engine.LoadFailed {
		errStyle := tcell.StyleDefault.Foreground(th.Error).Background(th.Bg).Bold(true)
		dimStyle := tcell.StyleDefault.Foreground(th.FgDim).Background(th.Bg)

		reg.TextCenter(midY-1, "Could not load portfolio data", errStyle)
		if err := s.app.LoadErr; err != nil {
			reg.TextCenter(midY+1, ui.Truncate(err.Error(), f.Width-4), dimStyle)
		}
		reg.TextCenter(midY+3, "press q to quit", dimStyle)
		return
	}

	st := tcell.StyleDefault.Foreground(th.Accent).Background(th.Bg)
	msg := "loading portfolio…"
	x := (f.Width - ui.StringWidth(msg) - 2) / 2
	if x < 0 {
		x = 0
	}
	reg.Spinner(x, midY, f.Count/2, st.Bold(true))
	reg.Text(x+2, midY, msg, tcell.StyleDefault.Foreground(th.FgDim).Background(th.Bg))
}
