package ui

// ScrollState tracks vertical scroll position for a scrollable column
type ScrollState struct {
	Offset  int // First visible row index
	Total   int // Total content rows
	Visible int // Viewport height in rows
}

// NewScrollState creates initialized scroll state
func NewScrollState(total, visible int) *ScrollState {
	return &ScrollState{Total: total, Visible: visible}
}

// ScrollBy adjusts offset by delta, clamping to valid range
func (s *ScrollState) ScrollBy(delta int) {
	s.Offset += delta
	s.Clamp()
}

// ScrollTo sets offset to a specific row
func (s *ScrollState) ScrollTo(row int) {
	s.Offset = row
	s.Clamp()
}

// EnsureVisible adjusts offset so the given row is on screen
func (s *ScrollState) EnsureVisible(row int) {
	if row < s.Offset {
		s.Offset = row
	} else if row >= s.Offset+s.Visible {
		s.Offset = row - s.Visible + 1
	}
	s.Clamp()
}

// PageUp scrolls up by half the viewport
func (s *ScrollState) PageUp() {
	s.ScrollBy(-pageDelta(s.Visible))
}

// PageDown scrolls down by half the viewport
func (s *ScrollState) PageDown() {
	s.ScrollBy(pageDelta(s.Visible))
}

// SetTotal updates content height and reclamps
func (s *ScrollState) SetTotal(total int) {
	s.Total = total
	s.Clamp()
}

// SetVisible updates viewport height and reclamps
func (s *ScrollState) SetVisible(visible int) {
	s.Visible = visible
	s.Clamp()
}

// MaxOffset returns the largest valid offset
func (s *ScrollState) MaxOffset() int {
	m := s.Total - s.Visible
	if m < 0 {
		m = 0
	}
	return m
}

// Clamp forces offset into the valid range
func (s *ScrollState) Clamp() {
	if s.Offset > s.MaxOffset() {
		s.Offset = s.MaxOffset()
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
}

// AtTop reports whether the view is scrolled to the top
func (s *ScrollState) AtTop() bool {
	return s.Offset == 0
}

// AtBottom reports whether the view is scrolled to the bottom
func (s *ScrollState) AtBottom() bool {
	return s.Offset >= s.MaxOffset()
}

// Ratio returns scroll progress in [0,1]
func (s *ScrollState) Ratio() float64 {
	m := s.MaxOffset()
	if m == 0 {
		return 0
	}
	return float64(s.Offset) / float64(m)
}

func pageDelta(visible int) int {
	d := visible / 2
	if d < 1 {
		d = 1
	}
	return d
}
