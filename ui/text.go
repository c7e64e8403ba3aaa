package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// StringWidth returns the display width of a string in terminal cells
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens a string to maxW display cells with an … suffix
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxW {
		return s
	}
	if maxW == 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxW, "…")
}

// Wrap breaks text into lines no wider than width display cells,
// wrapping at word boundaries. Words wider than the column are hard-split.
// Always returns at least one line.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapLine(para, width)...)
	}
	return lines
}

func wrapLine(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var cur strings.Builder
	curW := 0

	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
	}

	for _, word := range words {
		ww := runewidth.StringWidth(word)
		if curW > 0 {
			if curW+1+ww <= width {
				cur.WriteByte(' ')
				cur.WriteString(word)
				curW += 1 + ww
				continue
			}
			flush()
		}
		for ww > width {
			head, rest := splitWidth(word, width)
			lines = append(lines, head)
			word = rest
			ww = runewidth.StringWidth(word)
		}
		cur.WriteString(word)
		curW = ww
	}
	if curW > 0 {
		flush()
	}
	return lines
}

// splitWidth cuts s at the last rune fitting in w cells
func splitWidth(s string, w int) (string, string) {
	cw := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if cw+rw > w {
			if i == 0 {
				i = utf8.RuneLen(r)
			}
			return s[:i], s[i:]
		}
		cw += rw
	}
	return s, ""
}

