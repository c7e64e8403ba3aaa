package render

// Renderer is implemented by anything with visual output
type Renderer interface {
	Render(f Frame, buf *Buffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
