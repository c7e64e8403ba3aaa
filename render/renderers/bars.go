package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/engine"
	"github.com/averden/folio/render"
	"github.com/averden/folio/systems"
)

// BarsRenderer draws the animated skill bar fills over their page anchors
type BarsRenderer struct {
	app  *engine.App
	bars *systems.SkillBars
}

// NewBarsRenderer creates the skill bar stage
func NewBarsRenderer(app *engine.App, bars *systems.SkillBars) *BarsRenderer {
	return &BarsRenderer{app: app, bars: bars}
}

// IsVisible implements VisibilityToggle
func (b *BarsRenderer) IsVisible() bool {
	return b.app.Load == engine.LoadReady && b.app.Page != nil
}

// Render implements Renderer
func (b *BarsRenderer) Render(f render.Frame, buf *render.Buffer) {
	p := b.app.Page
	skills := p.Section("skills")
	if skills == nil {
		return
	}
	th := b.app.Th
	reg := buf.Region()

	for i, bar := range skills.Bars {
		y, ok := f.RowToScreen(skills.Top + bar.Row)
		if !ok {
			continue
		}
		pct := b.bars.Fraction(i, f.Now)
		reg.Progress(p.Left+bar.X, y, bar.W, pct, th.BarFrom, th.BarTo, th.BarRail, th.Bg)

		// Percentage readout settles in beside the finished bar
		if pct > 0 {
			label := fmt.Sprintf("%d%%", int(pct*100+0.5))
			st := tcell.StyleDefault.Foreground(th.FgDim).Background(th.Bg)
			reg.Text(p.Left+bar.X+bar.W+1, y, label, st)
		}
	}
}
