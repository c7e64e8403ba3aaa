package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/theme"
)

// Progress bar characters
const (
	progressFull  = '█'
	progressEmpty = '░'
)

// Spinner frames
var spinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Progress draws a horizontal bar filled to pct with a color ramp from
// `from` to `to` across the full width; the unfilled remainder uses rail
func (r Region) Progress(x, y, w int, pct float64, from, to, rail, bg tcell.Color) {
	if y < 0 || y >= r.H || w <= 0 {
		return
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(float64(w)*pct + 0.5)
	railSt := tcell.StyleDefault.Foreground(rail).Background(bg)
	for i := 0; i < w; i++ {
		if x+i >= r.W {
			break
		}
		if i < filled {
			fg := theme.Gradient(from, to, i, w)
			r.Set(x+i, y, progressFull, tcell.StyleDefault.Foreground(fg).Background(bg))
		} else {
			r.Set(x+i, y, progressEmpty, railSt)
		}
	}
}

// SpinnerFrame returns the spinner rune for a frame counter, for callers
// composing their own strings
func SpinnerFrame(frame int64) rune {
	idx := int(frame % int64(len(spinnerFrames)))
	if idx < 0 {
		idx = -idx
	}
	return spinnerFrames[idx]
}

// Spinner draws a spinner character advanced by the frame counter
func (r Region) Spinner(x, y int, frame int64, st tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.Set(x, y, SpinnerFrame(frame), st)
}
