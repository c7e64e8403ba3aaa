package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/engine"
	"github.com/averden/folio/page"
	"github.com/averden/folio/render"
	"github.com/averden/folio/systems"
	"github.com/averden/folio/ui"
)

// FormRenderer draws the live contact form state over its page anchors:
// input boxes, focus, and the submit button with its in-flight spinner
type FormRenderer struct {
	app  *engine.App
	form *systems.FormController
}

// NewFormRenderer creates the contact form stage
func NewFormRenderer(app *engine.App, form *systems.FormController) *FormRenderer {
	return &FormRenderer{app: app, form: form}
}

// IsVisible implements VisibilityToggle
func (fr *FormRenderer) IsVisible() bool {
	return fr.app.Load == engine.LoadReady && fr.app.Page != nil
}

func slotForKind(k page.FieldKind) int {
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

// Render implements Renderer
func (fr *FormRenderer) Render(f render.Frame, buf *render.Buffer) {
	p := fr.app.Page
	contact := p.Section("contact")
	if contact == nil {
		return
	}
	th := fr.app.Th
	reg := buf.Region()
	hover := fr.app.Hover

	for i := range contact.Fields {
		fld := &contact.Fields[i]
		y, ok := f.RowToScreen(contact.Top + fld.Row)
		if !ok {
			continue
		}
		focused := fr.form.Focus() == slotForKind(fld.Kind)
		state := fr.form.FieldByKind(fld.Kind)
		if state == nil {
			continue
		}

		box := reg.Sub(p.Left+fld.X, y, fld.W, 1)
		box.Field(state, fld.Placeholder, focused, th)

		// Focused fields get their label re-lit on the row above
		if focused {
			if ly, ok := f.RowToScreen(contact.Top + fld.Row - 1); ok {
				reg.Text(p.Left+fld.X, ly, fld.Label, tcell.StyleDefault.Foreground(th.Accent).Background(th.Bg).Bold(true))
			}
		}
	}

	btn := contact.Button
	if btn == nil {
		return
	}
	y, ok := f.RowToScreen(contact.Top + btn.Row)
	if !ok {
		return
	}

	st := tcell.StyleDefault.Foreground(th.Accent).Background(th.Bg).Bold(true)
	switch {
	case fr.form.Submitting():
		st = tcell.StyleDefault.Foreground(th.FgDim).Background(th.Bg)
		reg.Text(p.Left+btn.X, y, "[ "+string(ui.SpinnerFrame(f.Count))+" Sending… ]", st)
		return
	case fr.form.Focus() == systems.FocusSubmit:
		st = st.Reverse(true)
	case hover.Kind == page.HitButton:
		st = st.Foreground(th.HoverAccent).Underline(true)
	}
	reg.Text(p.Left+btn.X, y, btn.Label, st)
}
