package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/engine"
	"github.com/averden/folio/page"
	"github.com/averden/folio/render"
	"github.com/averden/folio/ui"
)

// MenuRenderer draws the narrow-mode navigation dropdown under the navbar
type MenuRenderer struct {
	app *engine.App
}

// NewMenuRenderer creates the dropdown stage
func NewMenuRenderer(app *engine.App) *MenuRenderer {
	return &MenuRenderer{app: app}
}

// IsVisible implements VisibilityToggle
func (m *MenuRenderer) IsVisible() bool {
	return m.app.MenuOpen && m.app.Load == engine.LoadReady && m.app.Doc != nil && m.app.Doc.Nav != nil
}

// Render implements Renderer
func (m *MenuRenderer) Render(f render.Frame, buf *render.Buffer) {
	app := m.app
	th := app.Th
	nav := app.Doc.Nav

	x, y, w, h := page.MenuBoxRect(nav, f.Width)
	if w == 0 {
		return
	}

	box := buf.Region().Sub(x, y, w, h)
	box.BoxFilled(ui.LineRounded,
		tcell.StyleDefault.Foreground(th.Border).Background(th.NavBg),
		tcell.StyleDefault.Foreground(th.NavFg).Background(th.NavBg))

	active := app.ActiveSectionID()
	inner := box.Inset(1)
	for i, slot := range page.MenuSlots(nav) {
		st := tcell.StyleDefault.Foreground(th.NavFg).Background(th.NavBg)
		if slot.Target == active {
			st = st.Foreground(th.NavActive).Bold(true)
		}
		inner.Text(1, i, slot.Label, st)
	}
}
