package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/theme"
)

// ToastSeverity defines message type for styling
type ToastSeverity uint8

const (
	ToastInfo    ToastSeverity = iota // Neutral
	ToastSuccess                      // Positive
	ToastWarning                      // Caution
	ToastError                        // Failure
)

// toastIcons indexed by severity
var toastIcons = [...]rune{'ℹ', '✓', '⚠', '✗'}

// ToastOpts configures toast rendering
type ToastOpts struct {
	Message  string
	Severity ToastSeverity
	MaxWidth int // 0 = region width
}

// toastAccent resolves the severity accent color from the theme
func toastAccent(sev ToastSeverity, th *theme.Theme) tcell.Color {
	switch sev {
	case ToastSuccess:
		return th.Success
	case ToastWarning:
		return th.Warning
	case ToastError:
		return th.Error
	default:
		return th.Info
	}
}

// ToastWidth computes the box width Toast will occupy for a message,
// capped at maxW. Shared with mouse hit testing.
func ToastWidth(message string, maxW int) int {
	// icon + space + message + padding + border
	w := 2 + StringWidth(message) + 2 + 2
	if w > maxW {
		w = maxW
	}
	return w
}

// Toast draws one bordered toast anchored at the region's top-right
// corner and returns the occupied sub-region for stacking and hit tests
func (r Region) Toast(opts ToastOpts, th *theme.Theme) Region {
	if r.W < 8 || r.H < 3 || opts.Message == "" {
		return Region{}
	}

	accent := toastAccent(opts.Severity, th)
	bg := theme.Blend(th.Bg, accent, 0.18)
	fg := th.FgBright

	maxW := opts.MaxWidth
	if maxW == 0 || maxW > r.W {
		maxW = r.W
	}

	w := ToastWidth(opts.Message, maxW)

	box := r.Sub(r.W-w, 0, w, 3)
	box.BoxFilled(LineRounded,
		tcell.StyleDefault.Foreground(accent).Background(bg),
		tcell.StyleDefault.Foreground(fg).Background(bg))

	inner := box.Inset(1)
	inner.Set(1, 0, toastIcons[opts.Severity], tcell.StyleDefault.Foreground(accent).Background(bg).Bold(true))
	inner.Text(3, 0, Truncate(opts.Message, inner.W-4), tcell.StyleDefault.Foreground(fg).Background(bg))

	return box
}
