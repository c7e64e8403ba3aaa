package systems

import (
	"math"

	"github.com/averden/folio/constants"
)

// Follower trails the mouse pointer with exponential smoothing, the
// terminal version of a cursor glow. Disabled entirely when the terminal
// has no mouse support, in which case it draws nothing and costs nothing.
type Follower struct {
	enabled   bool
	hasTarget bool

	targetX, targetY float64
	lagX, lagY       float64
	hover            bool
}

// NewFollower creates a follower; enabled only when the terminal
// reported pointer capability
func NewFollower(enabled bool) *Follower {
	return &Follower{enabled: enabled}
}

// Enabled reports whether the follower participates at all
func (f *Follower) Enabled() bool {
	return f.enabled
}

// SetTarget records the pointer cell. The first sighting snaps the lag
// onto the pointer so the trail never sweeps in from the origin.
func (f *Follower) SetTarget(x, y int, hover bool) {
	if !f.enabled {
		return
	}
	f.targetX, f.targetY = float64(x), float64(y)
	f.hover = hover
	if !f.hasTarget {
		f.lagX, f.lagY = f.targetX, f.targetY
		f.hasTarget = true
	}
}

// Update advances the lag one smoothing step toward the target.
// Called once per frame.
func (f *Follower) Update() {
	if !f.enabled || !f.hasTarget {
		return
	}
	f.lagX += (f.targetX - f.lagX) * constants.SmoothingFactor
	f.lagY += (f.targetY - f.lagY) * constants.SmoothingFactor
}

// Pos returns the follower cell, rounded, and whether it should draw
func (f *Follower) Pos() (int, int, bool) {
	if !f.enabled || !f.hasTarget {
		return 0, 0, false
	}
	return int(math.Round(f.lagX)), int(math.Round(f.lagY)), true
}

// Hover reports whether the pointer sits on an interactive element
func (f *Follower) Hover() bool {
	return f.enabled && f.hover
}

// Distance returns the straight-line cell distance between lag and target
func (f *Follower) Distance() float64 {
	dx := f.targetX - f.lagX
	dy := f.targetY - f.lagY
	return math.Hypot(dx, dy)
}
