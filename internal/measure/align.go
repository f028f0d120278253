package measure

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Measure returns the display width of plain text.
// Emoji and wide characters (e.g., CJK) count as two cells.
func Measure(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most width cells, appending tail when anything was removed.
// The tail counts towards width.
func Truncate(s string, width int, tail string) string {
	if Measure(s) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	tailWidth := Measure(tail)
	if tailWidth >= width {
		tail, tailWidth = "", 0
	}

	var b strings.Builder
	currentWidth := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if currentWidth+rw > width-tailWidth {
			break
		}
		b.WriteRune(r)
		currentWidth += rw
	}
	return b.String() + tail
}
