package render

// Priority determines render order. Lower values render first
type Priority int

const (
	PriorityBackdrop Priority = iota
	PriorityContent
	PriorityRole
	PriorityBars
	PriorityForm
	PriorityScrollbar
	PriorityNavbar
	PriorityMenu
	PriorityStatus
	PriorityToasts
	PriorityFollower
	PriorityDebug
)
