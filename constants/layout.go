package constants

// Page layout
const (
	// NavbarHeight is the sticky navbar row count, always at the top
	NavbarHeight = 2

	// ContentMaxWidth caps the text column on wide terminals
	ContentMaxWidth = 100

	// ContentMargin is the minimum horizontal margin around the content column
	ContentMargin = 2

	// SectionGap is the blank rows between sections
	SectionGap = 2

	// NarrowBreakpoint collapses the navbar into the menu button below this width
	NarrowBreakpoint = 64

	// SkillBarWidth is the drawn width of a skill bar at full terminal width
	SkillBarWidth = 28

	// ScrollStep is the row delta for arrow/wheel scrolling
	ScrollStep = 2
)

// Reveal observation
const (
	// RevealMarginRows insets the viewport before the visibility test,
	// the terminal analog of an intersection root margin
	RevealMarginRows = 1

	// RevealThreshold is the fraction of a target's rows that must be
	// inside the inset viewport to fire its reveal
	RevealThreshold = 0.25
)

// Form limits
const (
	NameMaxLen    = 60
	EmailMaxLen   = 80
	MessageMaxLen = 400
)
