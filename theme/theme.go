// Package theme defines the semantic palette and the color math used by
// reveal fades, skill-bar gradients, and hover accents.
package theme

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines semantic colors for every page element. Renderers never
// hardcode colors; the visual effect of a presentation state lives here.
type Theme struct {
	Bg       tcell.Color
	Fg       tcell.Color
	FgDim    tcell.Color
	FgBright tcell.Color

	Accent      tcell.Color // brand, links, active nav item
	AccentAlt   tcell.Color // typed role text, bar heads
	HoverAccent tcell.Color // follower + target while over interactive cells

	NavBg     tcell.Color
	NavFg     tcell.Color
	NavActive tcell.Color

	HeadingFg tcell.Color
	Border    tcell.Color

	BarFrom tcell.Color // skill bar gradient start
	BarTo   tcell.Color // skill bar gradient end
	BarRail tcell.Color // unfilled bar track

	FieldBg       tcell.Color
	FieldFg       tcell.Color
	FieldCursorBg tcell.Color
	PlaceholderFg tcell.Color

	Info    tcell.Color
	Success tcell.Color
	Warning tcell.Color
	Error   tcell.Color
}

// Default is the stock palette, dark blue-black with cyan accents
var Default = Theme{
	Bg:       tcell.NewRGBColor(26, 27, 38),
	Fg:       tcell.NewRGBColor(192, 202, 245),
	FgDim:    tcell.NewRGBColor(86, 95, 137),
	FgBright: tcell.NewRGBColor(237, 239, 250),

	Accent:      tcell.NewRGBColor(125, 207, 255),
	AccentAlt:   tcell.NewRGBColor(158, 206, 106),
	HoverAccent: tcell.NewRGBColor(255, 158, 100),

	NavBg:     tcell.NewRGBColor(22, 22, 30),
	NavFg:     tcell.NewRGBColor(169, 177, 214),
	NavActive: tcell.NewRGBColor(125, 207, 255),

	HeadingFg: tcell.NewRGBColor(187, 154, 247),
	Border:    tcell.NewRGBColor(59, 66, 97),

	BarFrom: tcell.NewRGBColor(61, 89, 161),
	BarTo:   tcell.NewRGBColor(125, 207, 255),
	BarRail: tcell.NewRGBColor(41, 46, 66),

	FieldBg:       tcell.NewRGBColor(32, 34, 48),
	FieldFg:       tcell.NewRGBColor(192, 202, 245),
	FieldCursorBg: tcell.NewRGBColor(192, 202, 245),
	PlaceholderFg: tcell.NewRGBColor(86, 95, 137),

	Info:    tcell.NewRGBColor(125, 207, 255),
	Success: tcell.NewRGBColor(158, 206, 106),
	Warning: tcell.NewRGBColor(224, 175, 104),
	Error:   tcell.NewRGBColor(247, 118, 142),
}

// toColorful converts a tcell RGB color to a colorful.Color
func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// fromColorful converts back, clamping to displayable range
func fromColorful(c colorful.Color) tcell.Color {
	c = c.Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Blend mixes a toward b by t in [0,1] in RGB space.
// t=0 returns a, t=1 returns b.
func Blend(a, b tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return fromColorful(toColorful(a).BlendRgb(toColorful(b), t))
}

// Fade blends fg toward bg; t=0 is fully faded (invisible against bg),
// t=1 is the plain foreground. Drives the reveal fade-in.
func Fade(fg, bg tcell.Color, t float64) tcell.Color {
	return Blend(bg, fg, t)
}

// Gradient returns the color at position i of n along from→to.
// Single-cell bars get the end color.
func Gradient(from, to tcell.Color, i, n int) tcell.Color {
	if n <= 1 {
		return to
	}
	return Blend(from, to, float64(i)/float64(n-1))
}
