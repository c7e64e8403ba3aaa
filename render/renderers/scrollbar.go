package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/constants"
	"github.com/averden/folio/engine"
	"github.com/averden/folio/render"
)

// ScrollbarRenderer draws a thin position indicator along the right edge
// of the content viewport
type ScrollbarRenderer struct {
	app *engine.App
}

// NewScrollbarRenderer creates the scrollbar stage
func NewScrollbarRenderer(app *engine.App) *ScrollbarRenderer {
	return &ScrollbarRenderer{app: app}
}

// IsVisible implements VisibilityToggle
func (s *ScrollbarRenderer) IsVisible() bool {
	return s.app.Load == engine.LoadReady && s.app.Page != nil && s.app.Scroll.MaxOffset() > 0
}

// Render implements Renderer
func (s *ScrollbarRenderer) Render(f render.Frame, buf *render.Buffer) {
	if f.ViewH < 2 {
		return
	}
	th := s.app.Th
	scroll := s.app.Scroll
	reg := buf.Region()
	x := f.Width - 1

	thumbH := f.ViewH * scroll.Visible / scroll.Total
	if thumbH < 1 {
		thumbH = 1
	}
	thumbTop := int(scroll.Ratio()*float64(f.ViewH-thumbH) + 0.5)

	trackSt := tcell.StyleDefault.Foreground(th.Border).Background(th.Bg)
	thumbSt := tcell.StyleDefault.Foreground(th.FgDim).Background(th.Bg)
	for i := 0; i < f.ViewH; i++ {
		y := constants.NavbarHeight + i
		if i >= thumbTop && i < thumbTop+thumbH {
			reg.Set(x, y, '┃', thumbSt)
		} else {
			reg.Set(x, y, '│', trackSt)
		}
	}
}
