package systems

import (
	"github.com/averden/folio/constants"
	"github.com/averden/folio/ui"
)

// Toast is one queued notification
type Toast struct {
	Text     string
	Severity ui.ToastSeverity
	Left     int // frames until auto-dismissal
}

// Notifier owns the toast stack. Toasts expire on a frame countdown and
// the stack is capped, evicting the oldest first.
type Notifier struct {
	toasts []Toast
}

// NewNotifier creates an empty notifier
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Push queues a toast. Empty messages are dropped.
func (n *Notifier) Push(sev ui.ToastSeverity, text string) {
	if text == "" {
		return
	}
	n.toasts = append(n.toasts, Toast{Text: text, Severity: sev, Left: constants.ToastFrames})
	if len(n.toasts) > constants.MaxToasts {
		n.toasts = n.toasts[len(n.toasts)-constants.MaxToasts:]
	}
}

// Tick counts every toast down one frame and drops the expired.
// Called once per frame.
func (n *Notifier) Tick() {
	kept := n.toasts[:0]
	for _, t := range n.toasts {
		t.Left--
		if t.Left > 0 {
			kept = append(kept, t)
		}
	}
	n.toasts = kept
}

// Active returns the live toasts, oldest first
func (n *Notifier) Active() []Toast {
	return n.toasts
}

// DismissAt drops the toast at index i, for click-to-dismiss
func (n *Notifier) DismissAt(i int) {
	if i < 0 || i >= len(n.toasts) {
		return
	}
	n.toasts = append(n.toasts[:i], n.toasts[i+1:]...)
}
