// Package page lays a portfolio document out as a column of rows divided
// into named sections. The layout is geometry plus static text; animated
// elements (typed role, skill bars, form fields) are located by anchors
// and drawn live by their renderers.
package page

import "github.com/gdamore/tcell/v2"

// Kind identifies a section's layout family
type Kind uint8

const (
	KindHero Kind = iota
	KindAbout
	KindSkills
	KindProjects
	KindContact
	KindFooter
)

// Segment is a pre-styled run of text within a row, X relative to the
// content column
type Segment struct {
	X     int
	Text  string
	Style tcell.Style
}

// Row is the static content of one page row
type Row []Segment

// Bar anchors one skill bar. Level is the target fill in [0,1]; the
// animated fraction lives in the bar animator, not here.
type Bar struct {
	Row   int // row offset within the section
	X, W  int
	Level float64
	Label string
}

// FieldKind tags a form input with its validation role
type FieldKind uint8

const (
	FieldName FieldKind = iota
	FieldEmail
	FieldMessage
)

// Field anchors one form input row
type Field struct {
	Row         int // row offset of the input row within the section
	X, W        int
	Kind        FieldKind
	Label       string
	Placeholder string
}

// Button anchors a clickable button
type Button struct {
	Row   int
	X, W  int
	Label string
}

// Link anchors a clickable external reference
type Link struct {
	Row  int
	X, W int
	Text string
	URL  string
}

// Section is one named region of the page column
type Section struct {
	ID     string
	Kind   Kind
	Title  string
	Top    int // absolute first row in page coordinates
	Height int

	Rows []Row // static rows, len == Height

	// Dynamic anchors, row offsets relative to Top
	RoleRow int // typed role line, -1 when absent
	RoleX   int
	Bars    []Bar
	Fields  []Field
	Button  *Button
	Links   []Link
}

// Bottom returns the absolute last row of the section
func (s *Section) Bottom() int {
	return s.Top + s.Height - 1
}

// Page is the laid-out document
type Page struct {
	Width    int  // content column width in cells
	Left     int  // left edge of the content column on screen
	Total    int  // total page rows
	Narrow   bool // laid out under the narrow breakpoint
	Sections []*Section
}

// Section returns the section with the given id, nil when the document
// had no data for it
func (p *Page) Section(id string) *Section {
	for _, s := range p.Sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// SectionAt returns the section containing the given page row, or the
// nearest section above it for rows falling in a gap. Nil above the
// first section.
func (p *Page) SectionAt(row int) *Section {
	var above *Section
	for _, s := range p.Sections {
		if row >= s.Top && row <= s.Bottom() {
			return s
		}
		if s.Top <= row {
			above = s
		}
	}
	return above
}
