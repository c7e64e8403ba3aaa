package page

import (
	"github.com/mattn/go-runewidth"

	"github.com/averden/folio/constants"
	"github.com/averden/folio/document"
)

// NavSlot places one navbar entry on screen. Width includes the one-cell
// padding on each side of the label.
type NavSlot struct {
	Label  string
	Target string
	X, W   int
}

// NavSlots lays the nav items out right-aligned on the navbar row.
// Returns nil in narrow mode, where the items live in the menu instead.
// Items that no longer fit beside the brand are dropped from the right.
func NavSlots(nav *document.Nav, width int, narrow bool) []NavSlot {
	if nav == nil || len(nav.Items) == 0 || narrow {
		return nil
	}

	brandW := runewidth.StringWidth(nav.Brand) + 4
	slots := make([]NavSlot, 0, len(nav.Items))

	x := width - 1
	for i := len(nav.Items) - 1; i >= 0; i-- {
		item := nav.Items[i]
		w := runewidth.StringWidth(item.Label) + 2
		x -= w
		if x < brandW {
			break
		}
		slots = append(slots, NavSlot{
			Label:  item.Label,
			Target: item.Target,
			X:      x,
			W:      w,
		})
	}

	// Built right to left, present left to right
	for i, j := 0, len(slots)-1; i < j; i, j = i+1, j-1 {
		slots[i], slots[j] = slots[j], slots[i]
	}
	return slots
}

// MenuSlots lays the nav items out as dropdown rows for narrow mode.
// Slot X/W are relative to the menu box interior; the row is the index.
func MenuSlots(nav *document.Nav) []NavSlot {
	if nav == nil {
		return nil
	}
	slots := make([]NavSlot, 0, len(nav.Items))
	for _, item := range nav.Items {
		slots = append(slots, NavSlot{
			Label:  item.Label,
			Target: item.Target,
			X:      0,
			W:      runewidth.StringWidth(item.Label) + 4,
		})
	}
	return slots
}

// MenuWidth returns the dropdown box width needed for the widest item
func MenuWidth(nav *document.Nav) int {
	w := 0
	for _, s := range MenuSlots(nav) {
		if s.W > w {
			w = s.W
		}
	}
	return w + 2
}

// MenuButtonRect returns the hamburger toggle zone on the navbar row,
// present only in narrow mode
func MenuButtonRect(width int) (x, w int) {
	w = 5
	x = width - w
	if x < 0 {
		x = 0
	}
	return x, w
}

// MenuBoxRect places the narrow-mode dropdown under the navbar's right
// edge, bordered box included. Zero-size when there is nothing to list.
func MenuBoxRect(nav *document.Nav, screenW int) (x, y, w, h int) {
	if nav == nil || len(nav.Items) == 0 {
		return 0, 0, 0, 0
	}
	w = MenuWidth(nav)
	if w > screenW {
		w = screenW
	}
	h = len(nav.Items) + 2
	x = screenW - w - 1
	if x < 0 {
		x = 0
	}
	y = constants.NavbarHeight
	return x, y, w, h
}
