package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/engine"
	"github.com/averden/folio/render"
	"github.com/averden/folio/systems"
	"github.com/averden/folio/theme"
)

// FollowerRenderer paints the trailing pointer glow: a tinted core cell
// with a soft falloff on its four neighbors
type FollowerRenderer struct {
	app      *engine.App
	follower *systems.Follower
}

// NewFollowerRenderer creates the pointer glow stage
func NewFollowerRenderer(app *engine.App, follower *systems.Follower) *FollowerRenderer {
	return &FollowerRenderer{app: app, follower: follower}
}

// IsVisible implements VisibilityToggle
func (fr *FollowerRenderer) IsVisible() bool {
	return fr.follower.Enabled()
}

// Render implements Renderer
func (fr *FollowerRenderer) Render(f render.Frame, buf *render.Buffer) {
	x, y, ok := fr.follower.Pos()
	if !ok {
		return
	}
	th := fr.app.Th
	color := th.Accent
	if fr.follower.Hover() {
		color = th.HoverAccent
	}

	tintCell(buf, x, y, color, 0.55)
	tintCell(buf, x-1, y, color, 0.22)
	tintCell(buf, x+1, y, color, 0.22)
	tintCell(buf, x, y-1, color, 0.14)
	tintCell(buf, x, y+1, color, 0.14)
}

// tintCell blends a glow color into an existing cell's background,
// keeping its rune and foreground readable
func tintCell(buf *render.Buffer, x, y int, color tcell.Color, t float64) {
	w, h := buf.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	c := buf.CellAt(x, y)
	if c.Rune == 0 {
		return
	}
	_, bg, _ := c.Style.Decompose()
	buf.Region().Set(x, y, c.Rune, c.Style.Background(theme.Blend(bg, color, t)))
}
