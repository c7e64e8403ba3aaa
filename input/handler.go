// Package input routes terminal events into app state and the page
// coordinators. One handler instance serves the whole session.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/constants"
	"github.com/averden/folio/engine"
	"github.com/averden/folio/page"
	"github.com/averden/folio/render/renderers"
	"github.com/averden/folio/systems"
	"github.com/averden/folio/ui"
)

// Handler translates terminal events into scrolling, focus, navigation,
// and form actions
type Handler struct {
	app      *engine.App
	form     *systems.FormController
	notify   *systems.Notifier
	follower *systems.Follower

	// Click is press-edge detection over the reported button mask
	lastButtons tcell.ButtonMask
}

// NewHandler wires the handler to the state it drives
func NewHandler(app *engine.App, form *systems.FormController, notify *systems.Notifier, follower *systems.Follower) *Handler {
	return &Handler{
		app:      app,
		form:     form,
		notify:   notify,
		follower: follower,
	}
}

// HandleEvent processes one terminal event. Returns false to quit.
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, ht := ev.Size()
		h.app.HandleResize(w, ht)
		return true
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		return h.handleMouse(ev)
	}
	return true
}

func (h *Handler) handleKey(ev *tcell.EventKey) bool {
	// Ctrl-C quits regardless of focus
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	if h.app.Load == engine.LoadFailed {
		// Failed screen accepts only exits; there is no retry
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyEnter ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		return true
	}

	if h.form.Focused() {
		h.form.HandleKey(ev)
		return true
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		if h.app.MenuOpen {
			h.app.MenuOpen = false
			return true
		}
		return false
	case tcell.KeyUp:
		h.scrollBy(-constants.ScrollStep)
		return true
	case tcell.KeyDown:
		h.scrollBy(constants.ScrollStep)
		return true
	case tcell.KeyPgUp:
		h.app.Scroll.PageUp()
		return true
	case tcell.KeyPgDn:
		h.app.Scroll.PageDown()
		return true
	case tcell.KeyHome:
		h.app.Scroll.ScrollTo(0)
		return true
	case tcell.KeyEnd:
		h.app.Scroll.ScrollTo(h.app.Scroll.MaxOffset())
		return true
	case tcell.KeyTab:
		h.focusForm()
		return true
	}

	if ev.Key() != tcell.KeyRune {
		return true
	}
	switch ev.Rune() {
	case 'q':
		return false
	case 'j':
		h.scrollBy(constants.ScrollStep)
	case 'k':
		h.scrollBy(-constants.ScrollStep)
	case 'g':
		h.app.Scroll.ScrollTo(0)
	case 'G':
		h.app.Scroll.ScrollTo(h.app.Scroll.MaxOffset())
	case 'm':
		if h.app.Page != nil && h.app.Page.Narrow {
			h.app.MenuOpen = !h.app.MenuOpen
		}
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		h.jumpToNavIndex(int(ev.Rune() - '1'))
	}
	return true
}

// scrollBy moves the viewport and collapses the menu, which only makes
// sense anchored to the navbar
func (h *Handler) scrollBy(delta int) {
	h.app.Scroll.ScrollBy(delta)
	h.app.MenuOpen = false
}

// focusForm brings the contact form into view and focuses its first field
func (h *Handler) focusForm() {
	if h.app.Page == nil || h.app.Page.Section("contact") == nil {
		return
	}
	h.app.JumpTo("contact")
	h.form.SetFocus(systems.FocusName)
}

func (h *Handler) jumpToNavIndex(i int) {
	doc := h.app.Doc
	if doc == nil || doc.Nav == nil || i < 0 || i >= len(doc.Nav.Items) {
		return
	}
	h.app.JumpTo(doc.Nav.Items[i].Target)
	h.app.MenuOpen = false
}

func (h *Handler) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		h.scrollBy(-constants.ScrollStep)
	case buttons&tcell.WheelDown != 0:
		h.scrollBy(constants.ScrollStep)
	}

	hit := h.hitTest(x, y)
	h.app.Hover = hit
	h.follower.SetTarget(x, y, hit.Interactive())

	// Act on the press edge of the primary button
	pressed := buttons&tcell.Button1 != 0 && h.lastButtons&tcell.Button1 == 0
	h.lastButtons = buttons
	if pressed {
		h.handleClick(x, y, hit)
	}
	return true
}

// hitTest resolves the page element under the pointer; navbar and
// overlay zones resolve to nothing
func (h *Handler) hitTest(x, y int) page.Hit {
	if h.app.Page == nil || h.app.Load != engine.LoadReady {
		return page.Hit{}
	}
	return h.app.Page.HitTest(x, y, h.app.Scroll.Offset, constants.NavbarHeight)
}

func (h *Handler) handleClick(x, y int, hit page.Hit) {
	app := h.app
	if app.Load != engine.LoadReady || app.Doc == nil {
		return
	}

	// Toast stack: click dismisses
	for i, toast := range h.notify.Active() {
		tx, ty, tw, tht := renderers.ToastRect(i, toast.Text, app.Width)
		if x >= tx && x < tx+tw && y >= ty && y < ty+tht {
			h.notify.DismissAt(i)
			return
		}
	}

	// Open dropdown captures clicks before anything else
	if app.MenuOpen {
		if h.clickMenu(x, y) {
			return
		}
		app.MenuOpen = false
		return
	}

	// Navbar row
	if y < constants.NavbarHeight {
		h.clickNavbar(x, y)
		return
	}

	h.clickPage(hit)
}

func (h *Handler) clickMenu(x, y int) bool {
	nav := h.app.Doc.Nav
	bx, by, bw, bh := page.MenuBoxRect(nav, h.app.Width)
	if bw == 0 || x < bx || x >= bx+bw || y < by || y >= by+bh {
		return false
	}
	row := y - by - 1
	slots := page.MenuSlots(nav)
	if row >= 0 && row < len(slots) {
		h.app.JumpTo(slots[row].Target)
	}
	h.app.MenuOpen = false
	return true
}

func (h *Handler) clickNavbar(x, y int) {
	if y != 0 {
		return
	}
	app := h.app
	if app.Page != nil && app.Page.Narrow {
		bx, bw := page.MenuButtonRect(app.Width)
		if x >= bx && x < bx+bw {
			app.MenuOpen = !app.MenuOpen
		}
		return
	}
	for _, slot := range page.NavSlots(app.Doc.Nav, app.Width, false) {
		if x >= slot.X && x < slot.X+slot.W {
			app.JumpTo(slot.Target)
			return
		}
	}
}

func (h *Handler) clickPage(hit page.Hit) {
	switch hit.Kind {
	case page.HitLink:
		h.notify.Push(ui.ToastInfo, hit.Link.URL)
	case page.HitField:
		h.form.SetFocus(slotForField(hit.Field.Kind))
	case page.HitButton:
		h.form.SetFocus(systems.FocusSubmit)
		h.form.Submit()
	default:
		h.form.SetFocus(systems.FocusNone)
	}
}

func slotForField(k page.FieldKind) int {
	switch k {
	case page.FieldName:
		return systems.FocusName
	case page.FieldEmail:
		return systems.FocusEmail
	case page.FieldMessage:
		return systems.FocusMessage
	}
	return systems.FocusNone
}
