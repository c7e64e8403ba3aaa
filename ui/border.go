package ui

import "github.com/gdamore/tcell/v2"

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Box draws a border around the region edge
func (r Region) Box(line LineType, st tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	r.Set(0, 0, chars[boxTL], st)
	r.Set(r.W-1, 0, chars[boxTR], st)
	r.Set(0, r.H-1, chars[boxBL], st)
	r.Set(r.W-1, r.H-1, chars[boxBR], st)

	for x := 1; x < r.W-1; x++ {
		r.Set(x, 0, chars[boxH], st)
		r.Set(x, r.H-1, chars[boxH], st)
	}
	for y := 1; y < r.H-1; y++ {
		r.Set(0, y, chars[boxV], st)
		r.Set(r.W-1, y, chars[boxV], st)
	}
}

// BoxFilled draws a border and fills the interior
func (r Region) BoxFilled(line LineType, border, fill tcell.Style) {
	for y := 1; y < r.H-1; y++ {
		for x := 1; x < r.W-1; x++ {
			r.Set(x, y, ' ', fill)
		}
	}
	r.Box(line, border)
}

// HLine draws a horizontal line across the region at row y
func (r Region) HLine(y int, line LineType, st tcell.Style) {
	if y < 0 || y >= r.H {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	ch := boxChars[line][boxH]
	for x := 0; x < r.W; x++ {
		r.Set(x, y, ch, st)
	}
}

