package ui

import "testing"

func TestScrollClampsToContent(t *testing.T) {
	s := NewScrollState(100, 20)

	s.ScrollBy(1000)
	if s.Offset != 80 {
		t.Fatalf("offset past bottom: %d", s.Offset)
	}
	if !s.AtBottom() {
		t.Fatalf("expected AtBottom")
	}

	s.ScrollBy(-1000)
	if s.Offset != 0 {
		t.Fatalf("offset past top: %d", s.Offset)
	}
	if !s.AtTop() {
		t.Fatalf("expected AtTop")
	}
}

func TestScrollShortContentNeverScrolls(t *testing.T) {
	s := NewScrollState(5, 20)
	s.ScrollBy(3)
	if s.Offset != 0 {
		t.Fatalf("short content scrolled: %d", s.Offset)
	}
	if !s.AtTop() || !s.AtBottom() {
		t.Fatalf("short content should be at top and bottom")
	}
}

func TestEnsureVisible(t *testing.T) {
	s := NewScrollState(100, 10)

	s.EnsureVisible(50)
	if 50 < s.Offset || 50 >= s.Offset+s.Visible {
		t.Fatalf("row 50 not visible at offset %d", s.Offset)
	}

	s.EnsureVisible(0)
	if s.Offset != 0 {
		t.Fatalf("expected scroll back to top, offset %d", s.Offset)
	}
}

func TestSetVisibleReclamps(t *testing.T) {
	s := NewScrollState(100, 20)
	s.ScrollTo(80)
	s.SetVisible(50)
	if s.Offset != 50 {
		t.Fatalf("offset not reclamped after resize: %d", s.Offset)
	}
}

func TestScrollRatio(t *testing.T) {
	s := NewScrollState(100, 20)
	if s.Ratio() != 0 {
		t.Fatalf("ratio at top: %f", s.Ratio())
	}
	s.ScrollTo(80)
	if s.Ratio() != 1 {
		t.Fatalf("ratio at bottom: %f", s.Ratio())
	}

	short := NewScrollState(5, 20)
	if short.Ratio() != 0 {
		t.Fatalf("ratio of unscrollable content: %f", short.Ratio())
	}
}

func TestPageNavigation(t *testing.T) {
	s := NewScrollState(100, 20)
	s.PageDown()
	if s.Offset != 10 {
		t.Fatalf("page down = %d", s.Offset)
	}
	s.PageUp()
	if s.Offset != 0 {
		t.Fatalf("page up = %d", s.Offset)
	}
}
