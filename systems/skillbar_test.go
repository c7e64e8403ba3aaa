package systems

import (
	"testing"
	"time"

	"github.com/averden/folio/constants"
	"github.com/averden/folio/engine"
	"github.com/averden/folio/page"
)

func testBars(t *testing.T) (*SkillBars, *engine.ManualClock) {
	t.Helper()
	clock := engine.NewManualClock(time.Unix(0, 0))
	sb := NewSkillBars(clock)
	sb.Bind(&page.Section{Bars: []page.Bar{
		{Label: "Go", Level: 0.9},
		{Label: "SQL", Level: 0.5},
	}})
	return sb, clock
}

func TestBarsZeroBeforeReveal(t *testing.T) {
	sb, clock := testBars(t)

	clock.Advance(time.Hour)
	for i := 0; i < 2; i++ {
		if got := sb.Fraction(i, clock.Now()); got != 0 {
			t.Fatalf("bar %d has width %f before reveal", i, got)
		}
	}
}

func TestBarsZeroDuringSettleDelay(t *testing.T) {
	sb, clock := testBars(t)
	sb.OnReveal(clock.Now())

	clock.Advance(constants.SettleDelay - time.Millisecond)
	if got := sb.Fraction(0, clock.Now()); got != 0 {
		t.Fatalf("bar moved during settle delay: %f", got)
	}
}

func TestBarsEaseTowardTarget(t *testing.T) {
	sb, clock := testBars(t)
	sb.OnReveal(clock.Now())
	clock.Advance(constants.SettleDelay)

	prev := 0.0
	for step := 0; step < 9; step++ {
		clock.Advance(constants.BarTransition / 10)
		got := sb.Fraction(0, clock.Now())
		if got <= prev {
			t.Fatalf("bar not growing: %f after %f", got, prev)
		}
		if got > 0.9 {
			t.Fatalf("bar overshot target: %f", got)
		}
		prev = got
	}

	clock.Advance(constants.BarTransition)
	if got := sb.Fraction(0, clock.Now()); got != 0.9 {
		t.Fatalf("bar did not land on target: %f", got)
	}
	if got := sb.Fraction(1, clock.Now()); got != 0.5 {
		t.Fatalf("second bar = %f", got)
	}
}

func TestRevealArmsOnlyOnce(t *testing.T) {
	sb, clock := testBars(t)
	sb.OnReveal(clock.Now())
	begin := sb.beginAt

	clock.Advance(time.Minute)
	sb.OnReveal(clock.Now())
	if !sb.beginAt.Equal(begin) {
		t.Fatalf("second reveal rescheduled the transition")
	}
}

func TestBindSurvivesReflow(t *testing.T) {
	sb, clock := testBars(t)
	sb.OnReveal(clock.Now())
	clock.Advance(constants.SettleDelay + constants.BarTransition)

	// Reflow rebinds the same logical bars; arming state must persist
	sb.Bind(&page.Section{Bars: []page.Bar{
		{Label: "Go", Level: 0.9},
		{Label: "SQL", Level: 0.5},
	}})
	if !sb.Armed() {
		t.Fatalf("rebind lost the armed state")
	}
	if got := sb.Fraction(0, clock.Now()); got != 0.9 {
		t.Fatalf("bar reset by rebind: %f", got)
	}
}

func TestFractionOutOfRangeIndex(t *testing.T) {
	sb, clock := testBars(t)
	sb.OnReveal(clock.Now())
	clock.Advance(time.Hour)

	if sb.Fraction(-1, clock.Now()) != 0 || sb.Fraction(99, clock.Now()) != 0 {
		t.Fatalf("out-of-range bar index returned width")
	}
}

func TestBindNilSection(t *testing.T) {
	clock := engine.NewManualClock(time.Unix(0, 0))
	sb := NewSkillBars(clock)
	sb.Bind(nil)
	if sb.Fraction(0, clock.Now()) != 0 {
		t.Fatalf("nil section produced bars")
	}
}
