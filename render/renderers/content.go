// Package renderers holds the concrete render pipeline stages. Each
// renderer owns one visual concern and reads app and coordinator state
// it was wired with at startup.
package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/engine"
	"github.com/averden/folio/render"
	"github.com/averden/folio/systems"
	"github.com/averden/folio/theme"
)

// ContentRenderer draws the static page rows, fading each section in
// once the revealer fires for it
type ContentRenderer struct {
	app    *engine.App
	reveal *systems.Revealer
}

// NewContentRenderer creates the static content stage
func NewContentRenderer(app *engine.App, reveal *systems.Revealer) *ContentRenderer {
	return &ContentRenderer{app: app, reveal: reveal}
}

// IsVisible implements VisibilityToggle
func (c *ContentRenderer) IsVisible() bool {
	return c.app.Load == engine.LoadReady && c.app.Page != nil
}

// Render implements Renderer
func (c *ContentRenderer) Render(f render.Frame, buf *render.Buffer) {
	p := c.app.Page
	reg := buf.Region()

	for _, s := range p.Sections {
		if !c.reveal.Revealed(s.ID) {
			continue
		}
		if s.Bottom() < f.Scroll || s.Top >= f.Scroll+f.ViewH {
			continue
		}
		t := c.reveal.FadeT(s.ID, f.Count)

		for i, row := range s.Rows {
			y, ok := f.RowToScreen(s.Top + i)
			if !ok {
				continue
			}
			for _, seg := range row {
				st := seg.Style
				if t < 1 {
					st = fadeStyle(st, c.app.Th.Bg, t)
				}
				reg.Text(p.Left+seg.X, y, seg.Text, st)
			}
		}
	}
}

// fadeStyle blends a style's colors toward the backdrop; t=1 is unfaded
func fadeStyle(st tcell.Style, bg tcell.Color, t float64) tcell.Style {
	fg, sbg, _ := st.Decompose()
	if fg != tcell.ColorDefault {
		st = st.Foreground(theme.Fade(fg, bg, t))
	}
	if sbg != tcell.ColorDefault {
		st = st.Background(theme.Fade(sbg, bg, t))
	}
	return st
}
