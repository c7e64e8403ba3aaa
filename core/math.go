package core

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampF limits v to [lo, hi]
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EaseOutCubic maps linear progress t in [0,1] to a decelerating curve
// Used for width transitions so bars land softly on their target
func EaseOutCubic(t float64) float64 {
	t = ClampF(t, 0, 1)
	u := 1 - t
	return 1 - u*u*u
}
