package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/constants"
	"github.com/averden/folio/engine"
	"github.com/averden/folio/render"
	"github.com/averden/folio/systems"
	"github.com/averden/folio/ui"
)

// RoleRenderer draws the typed role line in the hero with a blinking
// block cursor riding the insertion point
type RoleRenderer struct {
	app    *engine.App
	cycler *systems.RoleCycler
	reveal *systems.Revealer
}

// NewRoleRenderer creates the typed-role stage
func NewRoleRenderer(app *engine.App, cycler *systems.RoleCycler, reveal *systems.Revealer) *RoleRenderer {
	return &RoleRenderer{app: app, cycler: cycler, reveal: reveal}
}

// IsVisible implements VisibilityToggle
func (r *RoleRenderer) IsVisible() bool {
	return r.app.Load == engine.LoadReady && r.app.Page != nil && r.cycler.Active()
}

// Render implements Renderer
func (r *RoleRenderer) Render(f render.Frame, buf *render.Buffer) {
	p := r.app.Page
	hero := p.Section("hero")
	if hero == nil || hero.RoleRow < 0 || !r.reveal.Revealed(hero.ID) {
		return
	}

	y, ok := f.RowToScreen(hero.Top + hero.RoleRow)
	if !ok {
		return
	}
	th := r.app.Th
	reg := buf.Region()
	x := p.Left + hero.RoleX

	text := r.cycler.Text()
	st := tcell.StyleDefault.Foreground(th.Accent).Background(th.Bg).Bold(true)
	if t := r.reveal.FadeT(hero.ID, f.Count); t < 1 {
		st = fadeStyle(st, th.Bg, t)
	}
	reg.Text(x, y, text, st)

	// Block cursor after the typed text, blinking on a fixed frame period
	if f.Count%constants.CursorBlinkFrames < constants.CursorBlinkFrames/2 {
		reg.Set(x+ui.StringWidth(text), y, ' ', tcell.StyleDefault.Background(th.Accent))
	}
}
