package core

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{"below", -5, 0, 10, 0},
		{"inside", 7, 0, 10, 7},
		{"above", 15, 0, 10, 10},
		{"at lower", 0, 0, 10, 0},
		{"at upper", 10, 0, 10, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, c.lo, c.hi); got != c.want {
				t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Fatalf("below = %v", got)
	}
	if got := ClampF(0.25, 0, 1); got != 0.25 {
		t.Fatalf("inside = %v", got)
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Fatalf("above = %v", got)
	}
}

func TestEaseOutCubicEndpoints(t *testing.T) {
	if got := EaseOutCubic(0); got != 0 {
		t.Fatalf("ease(0) = %v", got)
	}
	if got := EaseOutCubic(1); got != 1 {
		t.Fatalf("ease(1) = %v", got)
	}
	if got := EaseOutCubic(-2); got != 0 {
		t.Fatalf("ease clamps below: %v", got)
	}
	if got := EaseOutCubic(3); got != 1 {
		t.Fatalf("ease clamps above: %v", got)
	}
}

func TestEaseOutCubicShape(t *testing.T) {
	// Monotonic, and always ahead of linear progress: fast start, soft landing
	prev := 0.0
	for i := 1; i <= 100; i++ {
		tIn := float64(i) / 100
		v := EaseOutCubic(tIn)
		if v < prev {
			t.Fatalf("not monotonic at t=%v: %v < %v", tIn, v, prev)
		}
		if v < tIn {
			t.Fatalf("ease-out fell behind linear at t=%v: %v", tIn, v)
		}
		prev = v
	}
}
