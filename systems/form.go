package systems

import (
	"net/mail"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/averden/folio/constants"
	"github.com/averden/folio/engine"
	"github.com/averden/folio/page"
	"github.com/averden/folio/ui"
)

// Form focus slots, field order matches the page layout
const (
	FocusNone    = -1
	FocusName    = 0
	FocusEmail   = 1
	FocusMessage = 2
	FocusSubmit  = 3
)

// FormController owns the contact form: field contents, focus, validation,
// and the simulated submission. Nothing leaves the process; a valid submit
// waits out a delay and then confirms.
type FormController struct {
	tasks  *engine.Scheduler
	notify func(ui.ToastSeverity, string)

	Name    *ui.TextFieldState
	Email   *ui.TextFieldState
	Message *ui.TextFieldState

	focus      int
	submitting bool
	sent       int
}

// NewForm creates an unfocused form feeding results to notify
func NewForm(tasks *engine.Scheduler, notify func(ui.ToastSeverity, string)) *FormController {
	name := ui.NewTextFieldState("")
	name.Limit = constants.NameMaxLen
	email := ui.NewTextFieldState("")
	email.Limit = constants.EmailMaxLen
	message := ui.NewTextFieldState("")
	message.Limit = constants.MessageMaxLen

	return &FormController{
		tasks:   tasks,
		notify:  notify,
		Name:    name,
		Email:   email,
		Message: message,
		focus:   FocusNone,
	}
}

// Field returns the state for a focus slot, nil for the submit slot
func (f *FormController) Field(slot int) *ui.TextFieldState {
	switch slot {
	case FocusName:
		return f.Name
	case FocusEmail:
		return f.Email
	case FocusMessage:
		return f.Message
	}
	return nil
}

// FieldByKind maps a page field anchor to its state
func (f *FormController) FieldByKind(k page.FieldKind) *ui.TextFieldState {
	switch k {
	case page.FieldName:
		return f.Name
	case page.FieldEmail:
		return f.Email
	case page.FieldMessage:
		return f.Message
	}
	return nil
}

// Focus returns the focused slot, FocusNone when blurred
func (f *FormController) Focus() int {
	return f.focus
}

// SetFocus moves focus; FocusNone blurs the form
func (f *FormController) SetFocus(slot int) {
	if slot < FocusNone || slot > FocusSubmit {
		slot = FocusNone
	}
	f.focus = slot
}

// Focused reports whether the form is capturing keyboard input
func (f *FormController) Focused() bool {
	return f.focus != FocusNone
}

// FocusNext cycles name → email → message → submit → name
func (f *FormController) FocusNext() {
	f.focus = (f.focus + 1) % (FocusSubmit + 1)
}

// FocusPrev cycles in reverse
func (f *FormController) FocusPrev() {
	f.focus--
	if f.focus < FocusName {
		f.focus = FocusSubmit
	}
}

// Submitting reports whether a send is in flight
func (f *FormController) Submitting() bool {
	return f.submitting
}

// Sent returns the count of successful submissions
func (f *FormController) Sent() int {
	return f.sent
}

// HandleKey routes keyboard input while the form is focused.
// Returns true when the event was consumed.
func (f *FormController) HandleKey(ev *tcell.EventKey) bool {
	if f.focus == FocusNone {
		return false
	}
	switch ev.Key() {
	case tcell.KeyTab:
		f.FocusNext()
		return true
	case tcell.KeyBacktab:
		f.FocusPrev()
		return true
	case tcell.KeyEnter:
		if f.focus == FocusSubmit {
			f.Submit()
		} else {
			f.FocusNext()
		}
		return true
	case tcell.KeyEscape:
		f.SetFocus(FocusNone)
		return true
	}
	if fld := f.Field(f.focus); fld != nil {
		return fld.HandleKey(ev)
	}
	return false
}

// Submit validates and, when everything passes, simulates a send that
// confirms and clears the fields after a delay. Invalid input reports
// the problem and leaves every field untouched.
func (f *FormController) Submit() {
	if f.submitting {
		return
	}
	if f.Name.Empty() || f.Email.Empty() || f.Message.Empty() {
		f.notify(ui.ToastWarning, "Please fill in every field")
		return
	}
	if !ValidEmail(f.Email.Value()) {
		f.notify(ui.ToastError, "That email address doesn't look right")
		return
	}

	f.submitting = true
	f.notify(ui.ToastInfo, "Sending…")
	f.tasks.After(constants.SubmitDelay, func(time.Time) {
		f.submitting = false
		f.sent++
		f.Name.Clear()
		f.Email.Clear()
		f.Message.Clear()
		f.notify(ui.ToastSuccess, "Message sent. Thanks for reaching out!")
	}).Start()
}

// ValidEmail applies the address grammar plus a dotted-domain rule, so
// bare local parts and hosts without a TLD are rejected
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	domain := s[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	return !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
