package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/averden/folio/theme"
)

// isWordChar returns true for word-constituent characters
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// TextFieldState holds editable single-line text field state
type TextFieldState struct {
	Text   []rune
	Cursor int // Position before which the cursor sits (0 = before first char)
	Scroll int // First visible rune index
	Limit  int // Maximum rune count, 0 = unlimited
}

// NewTextFieldState creates initialized text field state
func NewTextFieldState(initial string) *TextFieldState {
	runes := []rune(initial)
	return &TextFieldState{
		Text:   runes,
		Cursor: len(runes),
	}
}

// Value returns current text as string
func (t *TextFieldState) Value() string {
	return string(t.Text)
}

// SetValue replaces text and moves cursor to end
func (t *TextFieldState) SetValue(s string) {
	t.Text = []rune(s)
	t.Cursor = len(t.Text)
	t.Scroll = 0
}

// Clear empties the field
func (t *TextFieldState) Clear() {
	t.Text = nil
	t.Cursor = 0
	t.Scroll = 0
}

// Empty reports whether the field holds no text
func (t *TextFieldState) Empty() bool {
	return len(t.Text) == 0
}

// Insert adds a rune at the cursor position, honoring Limit
func (t *TextFieldState) Insert(r rune) {
	if t.Limit > 0 && len(t.Text) >= t.Limit {
		return
	}
	t.Text = append(t.Text[:t.Cursor], append([]rune{r}, t.Text[t.Cursor:]...)...)
	t.Cursor++
}

// DeleteBackward removes the rune before the cursor
func (t *TextFieldState) DeleteBackward() bool {
	if t.Cursor > 0 {
		t.Text = append(t.Text[:t.Cursor-1], t.Text[t.Cursor:]...)
		t.Cursor--
		return true
	}
	return false
}

// DeleteForward removes the rune at the cursor
func (t *TextFieldState) DeleteForward() bool {
	if t.Cursor < len(t.Text) {
		t.Text = append(t.Text[:t.Cursor], t.Text[t.Cursor+1:]...)
		return true
	}
	return false
}

// DeleteWordBackward removes the word before the cursor
func (t *TextFieldState) DeleteWordBackward() bool {
	if t.Cursor == 0 {
		return false
	}
	end := t.Cursor
	for end > 0 && !isWordChar(t.Text[end-1]) {
		end--
	}
	start := end
	for start > 0 && isWordChar(t.Text[start-1]) {
		start--
	}
	if start == t.Cursor {
		start = t.Cursor - 1
	}
	t.Text = append(t.Text[:start], t.Text[t.Cursor:]...)
	t.Cursor = start
	return true
}

// DeleteToEnd removes from cursor to end
func (t *TextFieldState) DeleteToEnd() bool {
	if t.Cursor < len(t.Text) {
		t.Text = t.Text[:t.Cursor]
		return true
	}
	return false
}

// DeleteToStart removes from start to cursor
func (t *TextFieldState) DeleteToStart() bool {
	if t.Cursor > 0 {
		t.Text = t.Text[t.Cursor:]
		t.Cursor = 0
		t.Scroll = 0
		return true
	}
	return false
}

// MoveLeft moves cursor left
func (t *TextFieldState) MoveLeft() {
	if t.Cursor > 0 {
		t.Cursor--
	}
}

// MoveRight moves cursor right
func (t *TextFieldState) MoveRight() {
	if t.Cursor < len(t.Text) {
		t.Cursor++
	}
}

// MoveWordLeft moves cursor to the previous word boundary
func (t *TextFieldState) MoveWordLeft() {
	for t.Cursor > 0 && !isWordChar(t.Text[t.Cursor-1]) {
		t.Cursor--
	}
	for t.Cursor > 0 && isWordChar(t.Text[t.Cursor-1]) {
		t.Cursor--
	}
}

// MoveWordRight moves cursor to the next word boundary
func (t *TextFieldState) MoveWordRight() {
	for t.Cursor < len(t.Text) && isWordChar(t.Text[t.Cursor]) {
		t.Cursor++
	}
	for t.Cursor < len(t.Text) && !isWordChar(t.Text[t.Cursor]) {
		t.Cursor++
	}
}

// MoveToStart moves cursor to the beginning
func (t *TextFieldState) MoveToStart() {
	t.Cursor = 0
}

// MoveToEnd moves cursor to the end
func (t *TextFieldState) MoveToEnd() {
	t.Cursor = len(t.Text)
}

// AdjustScroll updates scroll so the cursor stays inside viewportW cells
func (t *TextFieldState) AdjustScroll(viewportW int) {
	if viewportW <= 0 {
		return
	}
	if t.Cursor < t.Scroll {
		t.Scroll = t.Cursor
	}
	if t.Cursor >= t.Scroll+viewportW {
		t.Scroll = t.Cursor - viewportW + 1
	}
	if t.Scroll < 0 {
		t.Scroll = 0
	}
}

// HandleKey processes keyboard input, returns true if state changed
func (t *TextFieldState) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			t.MoveWordLeft()
		} else {
			t.MoveLeft()
		}
		return true
	case tcell.KeyRight:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			t.MoveWordRight()
		} else {
			t.MoveRight()
		}
		return true
	case tcell.KeyHome, tcell.KeyCtrlA:
		t.MoveToStart()
		return true
	case tcell.KeyEnd, tcell.KeyCtrlE:
		t.MoveToEnd()
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return t.DeleteWordBackward()
		}
		return t.DeleteBackward()
	case tcell.KeyDelete:
		return t.DeleteForward()
	case tcell.KeyCtrlK:
		return t.DeleteToEnd()
	case tcell.KeyCtrlU:
		return t.DeleteToStart()
	case tcell.KeyCtrlW:
		return t.DeleteWordBackward()
	case tcell.KeyRune:
		if r := ev.Rune(); r >= 32 {
			t.Insert(r)
			return true
		}
	}
	return false
}

// Field draws the editable value row of a text field into the region's
// first row. Placeholder shows while the field is empty; the cursor cell
// renders inverted when focused.
func (r Region) Field(t *TextFieldState, placeholder string, focused bool, th *theme.Theme) {
	if r.W < 1 || r.H < 1 {
		return
	}
	valueSt := tcell.StyleDefault.Foreground(th.FieldFg).Background(th.FieldBg)
	r.Sub(0, 0, r.W, 1).Fill(valueSt)

	if t.Empty() {
		phSt := tcell.StyleDefault.Foreground(th.PlaceholderFg).Background(th.FieldBg).Italic(true)
		r.Text(0, 0, Truncate(placeholder, r.W), phSt)
		if focused {
			r.Set(0, 0, firstRune(placeholder), tcell.StyleDefault.Foreground(th.FieldBg).Background(th.FieldCursorBg))
		}
		return
	}

	t.AdjustScroll(r.W)
	r.Text(0, 0, Truncate(string(t.Text[t.Scroll:]), r.W), valueSt)

	if focused {
		cx := 0
		for _, ch := range t.Text[t.Scroll:t.Cursor] {
			cx += runewidth.RuneWidth(ch)
		}
		under := ' '
		if t.Cursor < len(t.Text) {
			under = t.Text[t.Cursor]
		}
		r.Set(cx, 0, under, tcell.StyleDefault.Foreground(th.FieldBg).Background(th.FieldCursorBg))
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
