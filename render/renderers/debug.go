package renderers

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/engine"
	"github.com/averden/folio/render"
)

// DebugRenderer prints frame metrics in the bottom-right corner
type DebugRenderer struct {
	app *engine.App

	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewDebugRenderer creates the debug overlay stage
func NewDebugRenderer(app *engine.App) *DebugRenderer {
	return &DebugRenderer{
		app:           app,
		lastFpsUpdate: time.Now(),
	}
}

// IsVisible implements VisibilityToggle
func (d *DebugRenderer) IsVisible() bool {
	return d.app.Cfg.Debug
}

// Render implements Renderer
func (d *DebugRenderer) Render(f render.Frame, buf *render.Buffer) {
	d.frameCount++
	now := time.Now()
	if now.Sub(d.lastFpsUpdate) >= time.Second {
		d.currentFps = d.frameCount
		d.frameCount = 0
		d.lastFpsUpdate = now
	}

	total := 0
	if d.app.Page != nil {
		total = d.app.Page.Total
	}
	line := fmt.Sprintf(" fps:%d frame:%d scroll:%d/%d ", d.currentFps, f.Count, f.Scroll, total)

	th := d.app.Th
	st := tcell.StyleDefault.Foreground(th.FgDim).Background(th.NavBg)
	reg := buf.Region()
	reg.Sub(0, f.Height-1, f.Width, 1).TextRight(0, line, st)
}
