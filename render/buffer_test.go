package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

type flushedCell struct {
	x, y int
	r    rune
	st   tcell.Style
}

type recordingWriter struct {
	cells []flushedCell
}

func (w *recordingWriter) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	w.cells = append(w.cells, flushedCell{x, y, primary, style})
}

func TestBufferClearFillsEverything(t *testing.T) {
	fill := tcell.StyleDefault.Background(tcell.ColorNavy)
	b := NewBuffer(7, 3, fill)

	for y := 0; y < 3; y++ {
		for x := 0; x < 7; x++ {
			c := b.CellAt(x, y)
			if c.Rune != ' ' || c.Style != fill {
				t.Fatalf("cell (%d,%d) not cleared: %+v", x, y, c)
			}
		}
	}
}

func TestBufferRegionWrites(t *testing.T) {
	b := NewBuffer(10, 4, tcell.StyleDefault)
	st := tcell.StyleDefault.Bold(true)

	b.Region().Text(2, 1, "hi", st)

	if c := b.CellAt(2, 1); c.Rune != 'h' || c.Style != st {
		t.Fatalf("region write missed buffer: %+v", c)
	}
	if c := b.CellAt(3, 1); c.Rune != 'i' {
		t.Fatalf("second rune missing: %+v", c)
	}
}

func TestBufferResizeReusesAndClears(t *testing.T) {
	b := NewBuffer(10, 10, tcell.StyleDefault)
	b.Region().Text(0, 0, "junk", tcell.StyleDefault)

	b.Resize(4, 4)
	w, h := b.Size()
	if w != 4 || h != 4 {
		t.Fatalf("Size() = %d,%d after resize", w, h)
	}
	if c := b.CellAt(0, 0); c.Rune != ' ' {
		t.Fatalf("resize must clear, found %q", c.Rune)
	}

	b.Resize(12, 3)
	if c := b.CellAt(11, 2); c.Rune != ' ' {
		t.Fatal("grown buffer not fully cleared")
	}
}

func TestFlushSkipsWideRuneShadow(t *testing.T) {
	b := NewBuffer(6, 1, tcell.StyleDefault)
	b.Region().Set(0, 0, '界', tcell.StyleDefault)

	var w recordingWriter
	b.Flush(&w)

	for _, c := range w.cells {
		if c.x == 1 && c.y == 0 {
			if c.r != '界' && c.r != ' ' {
				t.Fatalf("unexpected rune at shadow cell: %q", c.r)
			}
			if c.r == ' ' {
				t.Fatal("shadow cell was flushed; wide rune will be clipped")
			}
		}
	}

	found := false
	for _, c := range w.cells {
		if c.x == 0 && c.y == 0 && c.r == '界' {
			found = true
		}
	}
	if !found {
		t.Fatal("wide rune never flushed")
	}
}

func TestFlushCoversWholeBuffer(t *testing.T) {
	b := NewBuffer(5, 2, tcell.StyleDefault)
	var w recordingWriter
	b.Flush(&w)

	if len(w.cells) != 10 {
		t.Fatalf("flushed %d cells, want 10", len(w.cells))
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	b := NewBuffer(3, 3, tcell.StyleDefault)
	if c := b.CellAt(-1, 0); c.Rune != 0 {
		t.Fatal("out-of-bounds CellAt must return the zero cell")
	}
	if c := b.CellAt(3, 3); c.Rune != 0 {
		t.Fatal("out-of-bounds CellAt must return the zero cell")
	}
}
