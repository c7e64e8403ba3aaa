package systems

import (
	"time"

	"github.com/averden/folio/constants"
	"github.com/averden/folio/core"
	"github.com/averden/folio/engine"
	"github.com/averden/folio/page"
)

// SkillBars drives the width transition of every skill bar. Bars stay at
// zero until the skills section reveals; after a settle delay they ease
// toward their targets together.
type SkillBars struct {
	clock   engine.Clock
	targets []float64

	armed   bool
	beginAt time.Time // transition start, settle delay past the reveal
}

// NewSkillBars creates an unarmed animator
func NewSkillBars(clock engine.Clock) *SkillBars {
	return &SkillBars{clock: clock}
}

// Bind captures bar targets from the built page. Safe to call again on
// reflow; arming state is kept.
func (sb *SkillBars) Bind(sec *page.Section) {
	sb.targets = sb.targets[:0]
	if sec == nil {
		return
	}
	for _, b := range sec.Bars {
		sb.targets = append(sb.targets, core.ClampF(b.Level, 0, 1))
	}
}

// OnReveal arms the transition the first time the skills section reveals
func (sb *SkillBars) OnReveal(now time.Time) {
	if sb.armed {
		return
	}
	sb.armed = true
	sb.beginAt = now.Add(constants.SettleDelay)
}

// Armed reports whether the reveal has fired
func (sb *SkillBars) Armed() bool {
	return sb.armed
}

// Fraction returns bar i's current fill in [0,1]. Zero before the reveal
// settles; the target exactly once the transition window has passed.
func (sb *SkillBars) Fraction(i int, now time.Time) float64 {
	if i < 0 || i >= len(sb.targets) {
		return 0
	}
	if !sb.armed || now.Before(sb.beginAt) {
		return 0
	}
	t := float64(now.Sub(sb.beginAt)) / float64(constants.BarTransition)
	return sb.targets[i] * core.EaseOutCubic(t)
}
