package renderers

import (
	"github.com/averden/folio/constants"
	"github.com/averden/folio/engine"
	"github.com/averden/folio/render"
	"github.com/averden/folio/systems"
	"github.com/averden/folio/ui"
)

// toastMaxWidth caps toast boxes regardless of terminal size
const toastMaxWidth = 44

// ToastRect returns the screen rectangle of the i-th toast in the stack.
// Shared with mouse routing for click-to-dismiss.
func ToastRect(i int, msg string, screenW int) (x, y, w, h int) {
	maxW := toastMaxWidth
	if maxW > screenW-4 {
		maxW = screenW - 4
	}
	w = ui.ToastWidth(msg, maxW)
	x = screenW - 1 - w
	y = constants.NavbarHeight + 1 + i*4
	return x, y, w, 3
}

// ToastsRenderer stacks active notifications below the navbar at the
// right edge, oldest on top
type ToastsRenderer struct {
	app    *engine.App
	notify *systems.Notifier
}

// NewToastsRenderer creates the notification stage
func NewToastsRenderer(app *engine.App, notify *systems.Notifier) *ToastsRenderer {
	return &ToastsRenderer{app: app, notify: notify}
}

// Render implements Renderer
func (t *ToastsRenderer) Render(f render.Frame, buf *render.Buffer) {
	th := t.app.Th
	for i, toast := range t.notify.Active() {
		x, y, w, h := ToastRect(i, toast.Text, f.Width)
		band := buf.Region().Sub(x, y, w, h)
		band.Toast(ui.ToastOpts{
			Message:  toast.Text,
			Severity: toast.Severity,
			MaxWidth: w,
		}, th)
	}
}
