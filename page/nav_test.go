package page

import (
	"testing"

	"github.com/averden/folio/constants"
	"github.com/averden/folio/document"
)

func testNav() *document.Nav {
	return &document.Nav{
		Brand: "avery.dev",
		Items: []document.NavItem{
			{Label: "About", Target: "about"},
			{Label: "Skills", Target: "skills"},
			{Label: "Contact", Target: "contact"},
		},
	}
}

func TestNavSlotsRightAligned(t *testing.T) {
	slots := NavSlots(testNav(), 100, false)
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(slots))
	}
	if slots[0].Target != "about" || slots[2].Target != "contact" {
		t.Fatalf("slot order wrong: %+v", slots)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].X <= slots[i-1].X {
			t.Fatalf("slots not laid out left to right: %+v", slots)
		}
	}
	last := slots[len(slots)-1]
	if last.X+last.W != 99 {
		t.Fatalf("last slot should end one cell from the edge, ends at %d", last.X+last.W)
	}
}

func TestNavSlotsNilInNarrowMode(t *testing.T) {
	if NavSlots(testNav(), 100, true) != nil {
		t.Fatal("narrow mode must not lay out navbar items")
	}
	if NavSlots(nil, 100, false) != nil {
		t.Fatal("nil nav must not lay out items")
	}
}

func TestNavSlotsDropOverflow(t *testing.T) {
	slots := NavSlots(testNav(), 30, false)
	if len(slots) >= 3 {
		t.Fatalf("tight width should drop items, kept %d", len(slots))
	}
	for _, s := range slots {
		if s.X < 0 {
			t.Fatalf("slot pushed off screen: %+v", s)
		}
	}
}

func TestMenuBoxRect(t *testing.T) {
	nav := testNav()
	x, y, w, h := MenuBoxRect(nav, 50)
	if w == 0 || h != len(nav.Items)+2 {
		t.Fatalf("unexpected box size %dx%d", w, h)
	}
	if y != constants.NavbarHeight {
		t.Fatalf("menu should hang below the navbar, y = %d", y)
	}
	if x+w > 50 {
		t.Fatalf("menu overflows the screen: x=%d w=%d", x, w)
	}

	if _, _, w, _ := MenuBoxRect(nil, 50); w != 0 {
		t.Fatal("nil nav should produce a zero box")
	}
}

func TestMenuButtonRect(t *testing.T) {
	x, w := MenuButtonRect(50)
	if x+w != 50 {
		t.Fatalf("toggle should hug the right edge: x=%d w=%d", x, w)
	}
	x, _ = MenuButtonRect(3)
	if x < 0 {
		t.Fatal("tiny screens must not produce negative origins")
	}
}
