// Package systems holds the page coordinators: typing animation, scroll
// reveal, skill bar transitions, pointer follower, contact form, and
// toast notifications. Each owns its state and is advanced by the frame
// loop; renderers only read.
package systems

import (
	"time"

	"github.com/averden/folio/constants"
	"github.com/averden/folio/engine"
)

// rolePhase is the typing state machine position
type rolePhase uint8

const (
	phaseTyping rolePhase = iota
	phaseHolding
	phaseDeleting
	phasePaused
)

// RoleCycler types, holds, deletes, and advances through the hero roles
// in document order, wrapping at the end. With no roles it stays inert.
type RoleCycler struct {
	clock engine.Clock
	roles []string

	idx        int
	ln         int // visible rune count of the current role
	phase      rolePhase
	next       time.Time
	started    bool
	onComplete func()
}

// NewRoleCycler creates a cycler over the given roles
func NewRoleCycler(clock engine.Clock, roles []string) *RoleCycler {
	return &RoleCycler{clock: clock, roles: roles}
}

// OnComplete installs a hook fired each time a role finishes typing
func (rc *RoleCycler) OnComplete(fn func()) {
	rc.onComplete = fn
}

// SetRoles replaces the role list. Ignored once the cycler is running;
// construction happens before the document arrives, so the list lands
// here when the load finishes.
func (rc *RoleCycler) SetRoles(roles []string) {
	if rc.started {
		return
	}
	rc.roles = roles
	rc.idx = 0
	rc.ln = 0
}

// Start arms the cycler. No-op without roles or when already running.
func (rc *RoleCycler) Start() {
	if rc.started || len(rc.roles) == 0 {
		return
	}
	rc.started = true
	rc.phase = phaseTyping
	rc.next = rc.clock.Now().Add(constants.TypeInterval)
}

// Stop freezes the cycler in place
func (rc *RoleCycler) Stop() {
	rc.started = false
}

// Active reports whether the cycler is running
func (rc *RoleCycler) Active() bool {
	return rc.started
}

// Index returns the current role position
func (rc *RoleCycler) Index() int {
	return rc.idx
}

// Text returns the visible prefix of the current role
func (rc *RoleCycler) Text() string {
	if len(rc.roles) == 0 {
		return ""
	}
	role := []rune(rc.roles[rc.idx])
	n := rc.ln
	if n > len(role) {
		n = len(role)
	}
	return string(role[:n])
}

// Update advances the state machine when its deadline has passed.
// Called once per frame.
func (rc *RoleCycler) Update(now time.Time) {
	if !rc.started || len(rc.roles) == 0 {
		return
	}
	if now.Before(rc.next) {
		return
	}
	rc.step(now)
}

func (rc *RoleCycler) step(now time.Time) {
	switch rc.phase {
	case phaseTyping:
		role := []rune(rc.roles[rc.idx])
		if rc.ln < len(role) {
			rc.ln++
		}
		if rc.ln >= len(role) {
			rc.phase = phaseHolding
			rc.next = now.Add(constants.HoldFull)
			if rc.onComplete != nil {
				rc.onComplete()
			}
		} else {
			rc.next = now.Add(constants.TypeInterval)
		}
	case phaseHolding:
		rc.phase = phaseDeleting
		rc.next = now.Add(constants.DeleteInterval)
	case phaseDeleting:
		if rc.ln > 0 {
			rc.ln--
		}
		if rc.ln == 0 {
			rc.phase = phasePaused
			rc.next = now.Add(constants.HoldEmpty)
		} else {
			rc.next = now.Add(constants.DeleteInterval)
		}
	case phasePaused:
		rc.idx = (rc.idx + 1) % len(rc.roles)
		rc.phase = phaseTyping
		rc.next = now.Add(constants.TypeInterval)
	}
}
