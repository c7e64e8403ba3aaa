package systems

import (
	"github.com/averden/folio/constants"
	"github.com/averden/folio/core"
	"github.com/averden/folio/page"
)

// Revealer flips a one-shot revealed flag per section as it scrolls into
// view. Flags are keyed by section id and never clear, so a reveal
// survives scrolling away and page reflows.
type Revealer struct {
	revealed map[string]bool
	since    map[string]int64 // frame the reveal fired, drives the fade-in
	started  bool
}

// NewRevealer creates an inactive revealer
func NewRevealer() *Revealer {
	return &Revealer{
		revealed: make(map[string]bool),
		since:    make(map[string]int64),
	}
}

// Start begins observation; before this no section reveals
func (rv *Revealer) Start() {
	rv.started = true
}

// Observe tests every unrevealed section against the viewport
// [scroll, scroll+viewH) inset by the reveal margin, firing those whose
// visible fraction meets the threshold. Returns the ids fired this call.
func (rv *Revealer) Observe(p *page.Page, scroll, viewH int, frame int64) []string {
	if !rv.started || p == nil || viewH <= 0 {
		return nil
	}

	top := scroll + constants.RevealMarginRows
	bottom := scroll + viewH - constants.RevealMarginRows // exclusive

	var fired []string
	for _, s := range p.Sections {
		if rv.revealed[s.ID] || s.Height <= 0 {
			continue
		}
		lo := max(s.Top, top)
		hi := min(s.Bottom()+1, bottom)
		visible := hi - lo
		if visible <= 0 {
			continue
		}
		frac := float64(visible) / float64(s.Height)
		// Sections taller than the viewport reveal once they fill it
		if frac >= constants.RevealThreshold || visible >= bottom-top {
			rv.revealed[s.ID] = true
			rv.since[s.ID] = frame
			fired = append(fired, s.ID)
		}
	}
	return fired
}

// Revealed reports whether a section has ever been revealed
func (rv *Revealer) Revealed(id string) bool {
	return rv.revealed[id]
}

// FadeT returns the fade-in progress for a section in [0,1].
// Unrevealed sections are fully faded at 0.
func (rv *Revealer) FadeT(id string, frame int64) float64 {
	if !rv.revealed[id] {
		return 0
	}
	elapsed := frame - rv.since[id]
	return core.ClampF(float64(elapsed)/float64(constants.RevealFadeFrames), 0, 1)
}
