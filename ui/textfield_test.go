package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTextFieldInsertAndDelete(t *testing.T) {
	f := NewTextFieldState("")
	for _, r := range "hello" {
		f.Insert(r)
	}
	if f.Value() != "hello" {
		t.Fatalf("value = %q", f.Value())
	}
	if f.Cursor != 5 {
		t.Fatalf("cursor = %d", f.Cursor)
	}

	f.DeleteBackward()
	if f.Value() != "hell" {
		t.Fatalf("after backspace = %q", f.Value())
	}

	f.MoveToStart()
	f.DeleteForward()
	if f.Value() != "ell" {
		t.Fatalf("after delete = %q", f.Value())
	}
}

func TestTextFieldInsertMidString(t *testing.T) {
	f := NewTextFieldState("ac")
	f.MoveLeft()
	f.Insert('b')
	if f.Value() != "abc" {
		t.Fatalf("value = %q", f.Value())
	}
	if f.Cursor != 2 {
		t.Fatalf("cursor = %d", f.Cursor)
	}
}

func TestTextFieldLimit(t *testing.T) {
	f := NewTextFieldState("")
	f.Limit = 3
	for _, r := range "abcdef" {
		f.Insert(r)
	}
	if f.Value() != "abc" {
		t.Fatalf("limit ignored: %q", f.Value())
	}
}

func TestTextFieldWordOps(t *testing.T) {
	f := NewTextFieldState("one two three")

	f.DeleteWordBackward()
	if f.Value() != "one two " {
		t.Fatalf("delete word = %q", f.Value())
	}

	f.MoveWordLeft()
	if f.Cursor != 4 {
		t.Fatalf("word left cursor = %d", f.Cursor)
	}

	f.MoveWordRight()
	if f.Cursor != 8 {
		t.Fatalf("word right cursor = %d", f.Cursor)
	}
}

func TestTextFieldClear(t *testing.T) {
	f := NewTextFieldState("something")
	f.Clear()
	if !f.Empty() || f.Cursor != 0 || f.Scroll != 0 {
		t.Fatalf("clear left state: %q cursor=%d scroll=%d", f.Value(), f.Cursor, f.Scroll)
	}
}

func TestTextFieldScrollFollowsCursor(t *testing.T) {
	f := NewTextFieldState("abcdefghij")
	f.AdjustScroll(5)
	if f.Cursor-f.Scroll >= 5 {
		t.Fatalf("cursor outside viewport: cursor=%d scroll=%d", f.Cursor, f.Scroll)
	}

	f.MoveToStart()
	f.AdjustScroll(5)
	if f.Scroll != 0 {
		t.Fatalf("scroll did not follow cursor home: %d", f.Scroll)
	}
}

func TestTextFieldHandleKey(t *testing.T) {
	f := NewTextFieldState("")

	if !f.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Fatalf("rune key not handled")
	}
	if f.Value() != "x" {
		t.Fatalf("value = %q", f.Value())
	}

	if !f.HandleKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)) {
		t.Fatalf("backspace not handled")
	}
	if f.Value() != "" {
		t.Fatalf("value after backspace = %q", f.Value())
	}

	// Control runes below space are ignored
	if f.HandleKey(tcell.NewEventKey(tcell.KeyRune, 0x07, tcell.ModNone)) {
		t.Fatalf("control rune handled")
	}

	f.SetValue("abc")
	if !f.HandleKey(tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModNone)) {
		t.Fatalf("ctrl-u not handled")
	}
	if f.Value() != "" {
		t.Fatalf("ctrl-u left %q", f.Value())
	}
}
