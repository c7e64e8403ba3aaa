package systems

import (
	"math"
	"testing"

	"github.com/averden/folio/constants"
)

func TestFollowerDistanceStrictlyDecreases(t *testing.T) {
	f := NewFollower(true)
	f.SetTarget(0, 0, false)
	f.Update()
	f.SetTarget(40, 20, false)

	prev := f.Distance()
	for i := 0; i < 60; i++ {
		f.Update()
		d := f.Distance()
		if d >= prev {
			t.Fatalf("distance did not decrease at step %d: %f -> %f", i, prev, d)
		}
		prev = d
	}
}

func TestFollowerNeverOvershoots(t *testing.T) {
	f := NewFollower(true)
	f.SetTarget(0, 0, false)
	f.Update()
	f.SetTarget(30, 0, false)

	for i := 0; i < 500; i++ {
		f.Update()
		if f.lagX > 30 {
			t.Fatalf("follower overshot: %f", f.lagX)
		}
	}
	// Converges within rounding after plenty of steps
	x, y, ok := f.Pos()
	if !ok || x != 30 || y != 0 {
		t.Fatalf("follower settled at (%d,%d)", x, y)
	}
}

func TestFollowerSmoothingFactor(t *testing.T) {
	f := NewFollower(true)
	f.SetTarget(0, 0, false)
	f.Update()
	f.SetTarget(100, 0, false)
	f.Update()

	want := 100 * constants.SmoothingFactor
	if math.Abs(f.lagX-want) > 1e-9 {
		t.Fatalf("first step = %f, want %f", f.lagX, want)
	}
}

func TestFollowerFirstSightingSnaps(t *testing.T) {
	f := NewFollower(true)
	f.SetTarget(25, 7, false)
	x, y, ok := f.Pos()
	if !ok || x != 25 || y != 7 {
		t.Fatalf("first sighting at (%d,%d,%v)", x, y, ok)
	}
	if f.Distance() != 0 {
		t.Fatalf("lag not snapped, distance %f", f.Distance())
	}
}

func TestFollowerDisabledWithoutMouse(t *testing.T) {
	f := NewFollower(false)
	f.SetTarget(10, 10, true)
	f.Update()

	if _, _, ok := f.Pos(); ok {
		t.Fatalf("disabled follower reported a position")
	}
	if f.Hover() {
		t.Fatalf("disabled follower reported hover")
	}
}

func TestFollowerHoverTracksTarget(t *testing.T) {
	f := NewFollower(true)
	f.SetTarget(5, 5, true)
	if !f.Hover() {
		t.Fatalf("hover lost")
	}
	f.SetTarget(6, 5, false)
	if f.Hover() {
		t.Fatalf("hover retained after leaving")
	}
}
