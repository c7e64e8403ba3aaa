package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell in a render buffer. A zero Rune marks the
// shadowed half of a wide rune and is skipped at flush time.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Region is a rectangular window into a cell buffer. Drawing coordinates
// are relative to the region origin and clipped to its bounds.
type Region struct {
	Cells  []Cell
	TotalW int // Width of the underlying cell buffer
	X, Y   int // Absolute position in the cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// Sub returns a nested region with coordinates relative to the parent,
// clipped to the parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Set writes a single cell with bounds checking. Wide runes claim the
// following cell as continuation.
func (r Region) Set(x, y int, ch rune, st tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y

	if uint(absX) >= uint(r.TotalW) {
		return
	}

	idx := absY*r.TotalW + absX
	if uint(idx) >= uint(len(r.Cells)) {
		return
	}
	r.Cells[idx] = Cell{Rune: ch, Style: st}

	if runewidth.RuneWidth(ch) == 2 && x+1 < r.W && uint(idx+1) < uint(len(r.Cells)) {
		r.Cells[idx+1] = Cell{Rune: 0, Style: st}
	}
}

// Fill paints the entire region with spaces in the given style
func (r Region) Fill(st tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Set(x, y, ' ', st)
		}
	}
}

// Text renders a string at position, clipping at the region edge
func (r Region) Text(x, y int, s string, st tcell.Style) {
	if y < 0 || y >= r.H {
		return
	}
	col := x
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if col+cw > r.W {
			break
		}
		if col >= 0 {
			r.Set(col, y, ch, st)
		}
		col += cw
	}
}

// TextRight renders text right-aligned on a row
func (r Region) TextRight(y int, s string, st tcell.Style) {
	r.Text(r.W-runewidth.StringWidth(s), y, s, st)
}

// TextCenter renders text centered on a row
func (r Region) TextCenter(y int, s string, st tcell.Style) {
	r.Text((r.W-runewidth.StringWidth(s))/2, y, s, st)
}

// Contains reports whether an absolute buffer coordinate falls inside
// the region. Used for mouse hit testing.
func (r Region) Contains(absX, absY int) bool {
	return absX >= r.X && absX < r.X+r.W && absY >= r.Y && absY < r.Y+r.H
}
