package page

// HitKind classifies what sits under a screen cell
type HitKind uint8

const (
	HitNone HitKind = iota
	HitLink
	HitField
	HitButton
)

// Hit describes the interactive element at a screen coordinate
type Hit struct {
	Kind    HitKind
	Section *Section
	Link    *Link
	Field   *Field
	Button  *Button
}

// Interactive reports whether the hit should read as clickable
func (h Hit) Interactive() bool {
	return h.Kind != HitNone
}

// HitTest resolves the interactive element at a screen coordinate.
// navH is the sticky navbar height, scroll the current page offset.
func (p *Page) HitTest(screenX, screenY, scroll, navH int) Hit {
	if screenY < navH {
		return Hit{}
	}
	row := screenY - navH + scroll
	x := screenX - p.Left
	if x < 0 || x >= p.Width {
		return Hit{}
	}

	s := p.SectionAt(row)
	if s == nil || row > s.Bottom() {
		return Hit{}
	}
	rel := row - s.Top

	for i := range s.Links {
		l := &s.Links[i]
		if l.Row == rel && x >= l.X && x < l.X+l.W {
			return Hit{Kind: HitLink, Section: s, Link: l}
		}
	}
	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Row == rel && x >= f.X && x < f.X+f.W {
			return Hit{Kind: HitField, Section: s, Field: f}
		}
	}
	if b := s.Button; b != nil && b.Row == rel && x >= b.X && x < b.X+b.W {
		return Hit{Kind: HitButton, Section: s, Button: b}
	}
	return Hit{Section: s}
}
