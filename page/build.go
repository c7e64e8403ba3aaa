package page

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/constants"
	"github.com/averden/folio/core"
	"github.com/averden/folio/document"
	"github.com/averden/folio/theme"
	"github.com/averden/folio/ui"
)

// Build lays the document out at the given terminal width. Sections with
// no data in the document are skipped entirely; a sparse document yields
// a short page, never an error.
func Build(doc *document.Document, th *theme.Theme, termW int) *Page {
	width := core.Clamp(termW-2*constants.ContentMargin, 16, constants.ContentMaxWidth)
	left := (termW - width) / 2
	if left < 0 {
		left = 0
	}

	p := &Page{
		Width:  width,
		Left:   left,
		Total:  1,
		Narrow: termW < constants.NarrowBreakpoint,
	}
	if doc == nil {
		return p
	}

	cursor := 1
	place := func(s *Section) {
		if s == nil {
			return
		}
		s.Top = cursor
		cursor += s.Height + constants.SectionGap
		p.Sections = append(p.Sections, s)
	}

	place(buildHero(doc, th, width, p.Narrow))
	place(buildAbout(doc.About, th, width))
	place(buildSkills(doc.Skills, th, width, p.Narrow))
	place(buildProjects(doc.Projects, th, width))
	place(buildContact(doc.Contact, th, width))
	place(buildFooter(doc.Footer, th, width))

	p.Total = cursor
	return p
}

// builder accumulates rows for one section
type builder struct {
	sec *Section
	th  *theme.Theme
	w   int
}

func newBuilder(id string, kind Kind, title string, th *theme.Theme, w int) *builder {
	return &builder{
		sec: &Section{ID: id, Kind: kind, Title: title, RoleRow: -1},
		th:  th,
		w:   w,
	}
}

func (b *builder) fg(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c).Background(b.th.Bg)
}

func (b *builder) row(segs ...Segment) int {
	b.sec.Rows = append(b.sec.Rows, Row(segs))
	return len(b.sec.Rows) - 1
}

func (b *builder) text(x int, s string, st tcell.Style) int {
	return b.row(Segment{X: x, Text: s, Style: st})
}

func (b *builder) blank() int {
	b.sec.Rows = append(b.sec.Rows, nil)
	return len(b.sec.Rows) - 1
}

func (b *builder) wrapped(x int, s string, st tcell.Style) {
	for _, line := range ui.Wrap(s, b.w-x) {
		b.text(x, line, st)
	}
}

// heading writes the section title and its rule
func (b *builder) heading() {
	if b.sec.Title == "" {
		return
	}
	b.text(0, b.sec.Title, b.fg(b.th.HeadingFg).Bold(true))
	rule := min(b.w, ui.StringWidth(b.sec.Title)+10)
	b.text(0, strings.Repeat("─", rule), b.fg(b.th.Border))
	b.blank()
}

func (b *builder) done() *Section {
	b.sec.Height = len(b.sec.Rows)
	return b.sec
}

func buildHero(doc *document.Document, th *theme.Theme, w int, narrow bool) *Section {
	h := doc.Hero
	if h == nil && len(doc.Socials) == 0 {
		return nil
	}
	b := newBuilder("hero", KindHero, "", th, w)
	b.blank()

	if h != nil {
		if h.Greeting != "" {
			b.text(0, h.Greeting, b.fg(th.FgDim).Italic(true))
		}
		if name := doc.DisplayName(); name != "" {
			display := name
			if !narrow {
				if spaced := letterspace(name); ui.StringWidth(spaced) <= w {
					display = spaced
				}
			}
			b.text(0, ui.Truncate(display, w), b.fg(th.FgBright).Bold(true))
		}
		if len(h.Roles) > 0 {
			b.blank()
			b.sec.RoleRow = b.text(0, "$ ", b.fg(th.FgDim))
			b.sec.RoleX = 2
		}
		if h.Summary != "" {
			b.blank()
			b.wrapped(0, h.Summary, b.fg(th.Fg))
		}
	}

	if len(doc.Socials) > 0 {
		b.blank()
		row := len(b.sec.Rows)
		x := 0
		var segs []Segment
		for _, s := range doc.Socials {
			if s.Label == "" || s.URL == "" {
				continue
			}
			text := s.Label + " ↗"
			tw := ui.StringWidth(text)
			if x+tw > w {
				break
			}
			segs = append(segs, Segment{X: x, Text: text, Style: b.fg(th.Accent).Underline(true)})
			b.sec.Links = append(b.sec.Links, Link{Row: row, X: x, W: tw, Text: text, URL: s.URL})
			x += tw + 3
		}
		if len(segs) > 0 {
			b.row(segs...)
		}
	}

	b.blank()
	return b.done()
}

// letterspace spreads a name into a banner-style row
func letterspace(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func buildAbout(a *document.About, th *theme.Theme, w int) *Section {
	if a == nil {
		return nil
	}
	title := a.Heading
	if title == "" {
		title = "About"
	}
	b := newBuilder("about", KindAbout, title, th, w)
	b.heading()

	for i, para := range a.Paragraphs {
		if i > 0 {
			b.blank()
		}
		b.wrapped(0, para, b.fg(th.Fg))
	}

	if len(a.Highlights) > 0 {
		if len(a.Paragraphs) > 0 {
			b.blank()
		}
		for _, hl := range a.Highlights {
			if hl.Label == "" && hl.Value == "" {
				continue
			}
			segs := []Segment{
				{X: 0, Text: "▸ ", Style: b.fg(th.Accent)},
				{X: 2, Text: hl.Label, Style: b.fg(th.AccentAlt).Bold(true)},
			}
			if hl.Value != "" {
				segs = append(segs, Segment{
					X:     2 + ui.StringWidth(hl.Label) + 2,
					Text:  hl.Value,
					Style: b.fg(th.Fg),
				})
			}
			b.row(segs...)
		}
	}
	return b.done()
}

func buildSkills(groups []document.SkillGroup, th *theme.Theme, w int, narrow bool) *Section {
	total := 0
	for _, g := range groups {
		total += len(g.Skills)
	}
	if total == 0 {
		return nil
	}

	b := newBuilder("skills", KindSkills, "Skills", th, w)
	b.heading()

	labelW := 0
	for _, g := range groups {
		for _, s := range g.Skills {
			if lw := ui.StringWidth(s.Name); lw > labelW {
				labelW = lw
			}
		}
	}
	labelW = min(labelW, 18, w/3)

	first := true
	for _, g := range groups {
		if len(g.Skills) == 0 {
			continue
		}
		if !first {
			b.blank()
		}
		first = false
		if g.Name != "" {
			b.text(0, g.Name, b.fg(th.Accent).Bold(true))
		}
		for _, s := range g.Skills {
			level := core.ClampF(float64(s.Level)/100, 0, 1)
			name := ui.Truncate(s.Name, labelW)
			if narrow {
				b.text(0, name, b.fg(th.Fg))
				row := b.blank()
				barW := max(3, min(constants.SkillBarWidth, w-8))
				b.sec.Bars = append(b.sec.Bars, Bar{Row: row, X: 2, W: barW, Level: level, Label: s.Name})
			} else {
				row := b.text(0, name, b.fg(th.Fg))
				barW := max(3, min(constants.SkillBarWidth, w-labelW-8))
				b.sec.Bars = append(b.sec.Bars, Bar{Row: row, X: labelW + 2, W: barW, Level: level, Label: s.Name})
			}
		}
	}
	return b.done()
}

func buildProjects(projects []document.Project, th *theme.Theme, w int) *Section {
	if len(projects) == 0 {
		return nil
	}
	b := newBuilder("projects", KindProjects, "Projects", th, w)
	b.heading()

	for i, pr := range projects {
		if i > 0 {
			b.blank()
		}
		title := pr.Title
		if title == "" {
			title = "Untitled"
		}
		b.row(
			Segment{X: 0, Text: "▪ ", Style: b.fg(th.Accent)},
			Segment{X: 2, Text: ui.Truncate(title, w-2), Style: b.fg(th.FgBright).Bold(true)},
		)
		if pr.Description != "" {
			b.wrapped(2, pr.Description, b.fg(th.Fg))
		}
		if chips := tagChips(pr.Tags); chips != "" {
			b.text(2, ui.Truncate(chips, w-2), b.fg(th.AccentAlt))
		}

		row := len(b.sec.Rows)
		x := 2
		var segs []Segment
		addLink := func(text, url string) {
			if url == "" {
				return
			}
			tw := ui.StringWidth(text)
			if x+tw > w {
				return
			}
			segs = append(segs, Segment{X: x, Text: text, Style: b.fg(th.Accent).Underline(true)})
			b.sec.Links = append(b.sec.Links, Link{Row: row, X: x, W: tw, Text: text, URL: url})
			x += tw + 3
		}
		addLink("source ↗", pr.Repo)
		addLink("visit ↗", pr.Link)
		if len(segs) > 0 {
			b.row(segs...)
		}
	}
	return b.done()
}

func tagChips(tags []string) string {
	var sb strings.Builder
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("[" + tag + "]")
	}
	return sb.String()
}

func buildContact(c *document.Contact, th *theme.Theme, w int) *Section {
	if c == nil {
		return nil
	}
	title := c.Heading
	if title == "" {
		title = "Get In Touch"
	}
	b := newBuilder("contact", KindContact, title, th, w)
	b.heading()

	if c.Blurb != "" {
		b.wrapped(0, c.Blurb, b.fg(th.Fg))
		b.blank()
	}
	if c.Email != "" {
		row := len(b.sec.Rows)
		text := "✉ " + c.Email
		b.text(0, ui.Truncate(text, w), b.fg(th.Accent))
		b.sec.Links = append(b.sec.Links, Link{
			Row: row, X: 0, W: ui.StringWidth(text), Text: c.Email, URL: "mailto:" + c.Email,
		})
	}
	if c.Location != "" {
		b.text(0, ui.Truncate("⌂ "+c.Location, w), b.fg(th.FgDim))
	}
	if c.Email != "" || c.Location != "" {
		b.blank()
	}

	fw := min(48, w)
	addField := func(kind FieldKind, label, placeholder string) {
		b.text(0, label, b.fg(th.FgDim))
		row := b.blank()
		b.sec.Fields = append(b.sec.Fields, Field{
			Row: row, X: 0, W: fw, Kind: kind, Label: label, Placeholder: placeholder,
		})
		b.blank()
	}
	addField(FieldName, "Name", "Your name")
	addField(FieldEmail, "Email", "you@example.com")
	addField(FieldMessage, "Message", "What would you like to build?")

	label := "[ Send Message ]"
	row := b.blank()
	b.sec.Button = &Button{Row: row, X: 0, W: ui.StringWidth(label), Label: label}
	return b.done()
}

func buildFooter(f *document.Footer, th *theme.Theme, w int) *Section {
	if f == nil || f.Text == "" {
		return nil
	}
	b := newBuilder("footer", KindFooter, "", th, w)
	b.text(0, strings.Repeat("─", w), b.fg(th.Border))
	b.blank()
	for _, line := range ui.Wrap(f.Text, w) {
		b.text(max(0, (w-ui.StringWidth(line))/2), line, b.fg(th.FgDim))
	}
	b.blank()
	return b.done()
}
