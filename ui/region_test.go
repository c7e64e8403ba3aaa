package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/theme"
)

func testTheme() *theme.Theme {
	return &theme.Default
}

func newTestRegion(w, h int) (Region, []Cell) {
	cells := make([]Cell, w*h)
	return NewRegion(cells, w, 0, 0, w, h), cells
}

func cellAt(cells []Cell, totalW, x, y int) Cell {
	return cells[y*totalW+x]
}

func TestRegionSetAndClip(t *testing.T) {
	r, cells := newTestRegion(10, 4)
	st := tcell.StyleDefault

	r.Set(3, 2, 'x', st)
	if got := cellAt(cells, 10, 3, 2).Rune; got != 'x' {
		t.Fatalf("cell = %q", got)
	}

	// Out-of-bounds writes are dropped
	r.Set(-1, 0, 'y', st)
	r.Set(10, 0, 'y', st)
	r.Set(0, 4, 'y', st)
	for i, c := range cells {
		if c.Rune == 'y' {
			t.Fatalf("out-of-bounds write landed at %d", i)
		}
	}
}

func TestRegionSubClipsToParent(t *testing.T) {
	r, cells := newTestRegion(10, 10)
	sub := r.Sub(4, 4, 20, 20)
	if sub.W != 6 || sub.H != 6 {
		t.Fatalf("sub dims = %dx%d", sub.W, sub.H)
	}

	sub.Set(0, 0, 'a', tcell.StyleDefault)
	if got := cellAt(cells, 10, 4, 4).Rune; got != 'a' {
		t.Fatalf("sub origin wrong, cell = %q", got)
	}

	neg := r.Sub(-3, -3, 5, 5)
	if neg.X != 0 || neg.Y != 0 || neg.W != 2 || neg.H != 2 {
		t.Fatalf("negative sub = %+v", neg)
	}
}

func TestRegionTextClipsAtEdge(t *testing.T) {
	r, cells := newTestRegion(5, 1)
	r.Text(0, 0, "abcdefgh", tcell.StyleDefault)
	if got := cellAt(cells, 5, 4, 0).Rune; got != 'e' {
		t.Fatalf("last cell = %q", got)
	}
}

func TestRegionWideRuneClaimsTwoCells(t *testing.T) {
	r, cells := newTestRegion(6, 1)
	r.Text(0, 0, "日x", tcell.StyleDefault)
	if cellAt(cells, 6, 0, 0).Rune != '日' {
		t.Fatalf("wide rune not written")
	}
	if cellAt(cells, 6, 1, 0).Rune != 0 {
		t.Fatalf("continuation cell not marked")
	}
	if cellAt(cells, 6, 2, 0).Rune != 'x' {
		t.Fatalf("following rune misplaced: %q", cellAt(cells, 6, 2, 0).Rune)
	}
}

func TestRegionContains(t *testing.T) {
	r, _ := newTestRegion(20, 20)
	sub := r.Sub(5, 5, 4, 3)
	if !sub.Contains(5, 5) || !sub.Contains(8, 7) {
		t.Fatalf("inner points not contained")
	}
	if sub.Contains(9, 5) || sub.Contains(5, 8) || sub.Contains(4, 5) {
		t.Fatalf("outer points contained")
	}
}

func TestProgressFillCount(t *testing.T) {
	r, cells := newTestRegion(10, 1)
	r.Progress(0, 0, 10, 0.5, tcell.ColorRed, tcell.ColorBlue, tcell.ColorGray, tcell.ColorBlack)

	full := 0
	for x := 0; x < 10; x++ {
		switch cellAt(cells, 10, x, 0).Rune {
		case progressFull:
			full++
		case progressEmpty:
		default:
			t.Fatalf("unexpected rune at %d", x)
		}
	}
	if full != 5 {
		t.Fatalf("filled cells = %d", full)
	}
}

func TestToastAnchorsTopRight(t *testing.T) {
	r, _ := newTestRegion(40, 10)
	box := r.Toast(ToastOpts{Message: "saved", Severity: ToastSuccess}, testTheme())
	if box.W == 0 || box.H != 3 {
		t.Fatalf("toast box = %+v", box)
	}
	if box.X+box.W != 40 {
		t.Fatalf("toast not flush right: x=%d w=%d", box.X, box.W)
	}
	if box.Y != 0 {
		t.Fatalf("toast not at top: y=%d", box.Y)
	}
}

func TestToastEmptyMessageDrawsNothing(t *testing.T) {
	r, cells := newTestRegion(40, 10)
	box := r.Toast(ToastOpts{Message: ""}, testTheme())
	if box.W != 0 {
		t.Fatalf("empty toast occupied %+v", box)
	}
	for i, c := range cells {
		if c.Rune != 0 {
			t.Fatalf("empty toast drew at %d", i)
		}
	}
}
