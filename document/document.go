// Package document defines the portfolio data document and its loader.
// Every section and field is optional: renderers skip what is absent,
// so a sparse document still produces a working page.
package document

// Document is the complete portfolio data bundle
type Document struct {
	Meta     *Meta        `json:"meta,omitempty"`
	Nav      *Nav         `json:"nav,omitempty"`
	Hero     *Hero        `json:"hero,omitempty"`
	About    *About       `json:"about,omitempty"`
	Skills   []SkillGroup `json:"skills,omitempty"`
	Projects []Project    `json:"projects,omitempty"`
	Contact  *Contact     `json:"contact,omitempty"`
	Footer   *Footer      `json:"footer,omitempty"`
	Socials  []Social     `json:"socials,omitempty"`
}

// Meta carries page identification
type Meta struct {
	Title   string `json:"title,omitempty"`
	Name    string `json:"name,omitempty"`
	Tagline string `json:"tagline,omitempty"`
}

// Nav lists the navbar entries
type Nav struct {
	Brand string    `json:"brand,omitempty"`
	Items []NavItem `json:"items,omitempty"`
}

// NavItem labels a jump target; Target names a section id
// (about, skills, projects, contact)
type NavItem struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

// Hero is the introduction block
type Hero struct {
	Greeting string   `json:"greeting,omitempty"`
	Name     string   `json:"name,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	Summary  string   `json:"summary,omitempty"`
}

// About is the biography section
type About struct {
	Heading    string      `json:"heading,omitempty"`
	Paragraphs []string    `json:"paragraphs,omitempty"`
	Highlights []Highlight `json:"highlights,omitempty"`
}

// Highlight is a label/value pair shown beside the biography
type Highlight struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SkillGroup names a category of skills
type SkillGroup struct {
	Name   string  `json:"name,omitempty"`
	Skills []Skill `json:"skills,omitempty"`
}

// Skill carries a proficiency level in [0,100]
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Project is one portfolio entry
type Project struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Repo        string   `json:"repo,omitempty"`
	Link        string   `json:"link,omitempty"`
}

// Contact holds the contact-section copy
type Contact struct {
	Heading  string `json:"heading,omitempty"`
	Blurb    string `json:"blurb,omitempty"`
	Email    string `json:"email,omitempty"`
	Location string `json:"location,omitempty"`
}

// Footer is the closing line
type Footer struct {
	Text string `json:"text,omitempty"`
}

// Social is an external profile link
type Social struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// DisplayName picks the best available name for the hero block
func (d *Document) DisplayName() string {
	if d == nil {
		return ""
	}
	if d.Hero != nil && d.Hero.Name != "" {
		return d.Hero.Name
	}
	if d.Meta != nil && d.Meta.Name != "" {
		return d.Meta.Name
	}
	return ""
}

// Brand picks the navbar brand text, falling back to the page name
func (d *Document) Brand() string {
	if d == nil {
		return ""
	}
	if d.Nav != nil && d.Nav.Brand != "" {
		return d.Nav.Brand
	}
	return d.DisplayName()
}
