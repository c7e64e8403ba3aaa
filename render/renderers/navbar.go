package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/engine"
	"github.com/averden/folio/page"
	"github.com/averden/folio/render"
	"github.com/averden/folio/ui"
)

// NavbarRenderer draws the sticky navigation bar over the top rows.
// Wide layouts get the item row; narrow layouts get a menu toggle.
type NavbarRenderer struct {
	app *engine.App
}

// NewNavbarRenderer creates the navbar stage
func NewNavbarRenderer(app *engine.App) *NavbarRenderer {
	return &NavbarRenderer{app: app}
}

// IsVisible implements VisibilityToggle
func (n *NavbarRenderer) IsVisible() bool {
	return n.app.Load == engine.LoadReady && n.app.Doc != nil
}

// Render implements Renderer
func (n *NavbarRenderer) Render(f render.Frame, buf *render.Buffer) {
	app := n.app
	th := app.Th
	reg := buf.Region()

	barStyle := tcell.StyleDefault.Foreground(th.NavFg).Background(th.NavBg)
	reg.Sub(0, 0, f.Width, 1).Fill(barStyle)

	if brand := app.Doc.Brand(); brand != "" {
		reg.Text(2, 0, brand, barStyle.Bold(true).Foreground(th.FgBright))
	}

	narrow := app.Page != nil && app.Page.Narrow
	if narrow {
		x, w := page.MenuButtonRect(f.Width)
		st := barStyle
		if app.MenuOpen {
			st = st.Foreground(th.NavActive).Bold(true)
		}
		reg.Text(x+(w-1)/2, 0, "≡", st)
	} else if app.Doc.Nav != nil {
		active := app.ActiveSectionID()
		for _, slot := range page.NavSlots(app.Doc.Nav, f.Width, false) {
			st := barStyle
			if slot.Target == active {
				st = st.Foreground(th.NavActive).Bold(true).Underline(true)
			}
			reg.Text(slot.X+1, 0, slot.Label, st)
		}
	}

	// Hairline separating the bar from scrolling content
	ruleStyle := tcell.StyleDefault.Foreground(th.Border).Background(th.Bg)
	reg.HLine(1, ui.LineSingle, ruleStyle)
}
