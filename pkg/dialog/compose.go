package dialog

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// placeAt paints fg over bg with its top-left corner at (x, y). Background
// lines are padded to width first so content can land past their end. Both
// strings may carry ANSI styling.
func placeAt(bg, fg string, x, y, width int) string {
	x = max(0, x)
	y = max(0, y)

	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	for len(bgLines) < y+len(fgLines) {
		bgLines = append(bgLines, "")
	}

	for i, line := range fgLines {
		bgLines[y+i] = spliceLine(bgLines[y+i], line, x, width)
	}
	return strings.Join(bgLines, "\n")
}

// spliceLine replaces the cells [x, x+width(fg)) of bg with fg.
func spliceLine(bg, fg string, x, width int) string {
	if w := ansi.StringWidth(bg); w < width {
		bg += strings.Repeat(" ", width-w)
	}
	if w := ansi.StringWidth(bg); w < x {
		bg += strings.Repeat(" ", x-w)
	}

	fgWidth := ansi.StringWidth(fg)
	left := ansi.Truncate(bg, x, "")
	right := ansi.TruncateLeft(bg, x+fgWidth, "")
	return left + fg + right
}
