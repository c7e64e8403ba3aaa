// Package render owns the frame pipeline: a cell buffer that renderers
// composite into and an orchestrator that runs them in priority order.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/ui"
)

// CellWriter is the subset of tcell.Screen a flush needs
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Buffer is a compositor backed by a ui.Cell array. The backing slice is
// reused across frames and resizes to keep allocation off the frame path.
type Buffer struct {
	cells  []ui.Cell
	width  int
	height int
	fill   tcell.Style
}

// NewBuffer creates a buffer with the specified dimensions, cleared to
// the fill style
func NewBuffer(width, height int, fill tcell.Style) *Buffer {
	b := &Buffer{fill: fill}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only when capacity is
// insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]ui.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets every cell to a fill-styled blank using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = ui.Cell{Rune: ' ', Style: b.fill}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Region returns a drawing window over the whole buffer
func (b *Buffer) Region() ui.Region {
	return ui.NewRegion(b.cells, b.width, 0, 0, b.width, b.height)
}

// CellAt returns the cell at a buffer coordinate, zero value out of bounds
func (b *Buffer) CellAt(x, y int) ui.Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return ui.Cell{}
	}
	return b.cells[y*b.width+x]
}

// Flush writes the buffer to the screen. Zero runes are the shadowed
// halves of wide runes; skipping them lets the writer manage those cells.
func (b *Buffer) Flush(w CellWriter) {
	i := 0
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[i]
			i++
			if c.Rune == 0 {
				continue
			}
			w.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}
