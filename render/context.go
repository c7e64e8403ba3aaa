package render

import (
	"time"

	"github.com/averden/folio/constants"
)

// Frame provides per-frame state for renderers, passed by value
type Frame struct {
	Now   time.Time
	Count int64

	// Terminal dimensions
	Width  int
	Height int

	// Scroll offset of the content viewport, in page rows
	Scroll int

	// Content viewport height (terminal rows below the navbar)
	ViewH int
}

// RowToScreen converts a page row to a terminal row.
// Returns false when the row is scrolled out of the viewport.
func (f Frame) RowToScreen(row int) (int, bool) {
	y := row - f.Scroll
	if y < 0 || y >= f.ViewH {
		return 0, false
	}
	return y + constants.NavbarHeight, true
}
