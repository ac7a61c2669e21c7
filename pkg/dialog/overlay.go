package dialog

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// HitTarget is what a click landed on.
type HitTarget int

const (
	// TargetNone means the click missed the dialog entirely.
	TargetNone HitTarget = iota
	// TargetOverlay means the click landed on the backdrop itself.
	TargetOverlay
	// TargetContent means the click landed on the dialog's content.
	TargetContent
)

func (t HitTarget) String() string {
	switch t {
	case TargetOverlay:
		return "overlay"
	case TargetContent:
		return "content"
	default:
		return "none"
	}
}

// OverlayProps are passed through to the overlay untouched.
type OverlayProps struct {
	// TestID identifies the overlay in tests and debug output.
	TestID string
	// Style paints the backdrop. The zero style leaves it blank.
	Style lipgloss.Style
	// Attrs carries arbitrary caller attributes.
	Attrs map[string]string
}

// Overlay is the passive backdrop behind a dialog's content. It only
// remembers where it drew itself so clicks can be attributed later.
type Overlay struct {
	props   OverlayProps
	bounds  Rect
	content Rect
}

// NewOverlay creates an overlay with the given passthrough props.
func NewOverlay(props OverlayProps) *Overlay {
	return &Overlay{props: props}
}

// Props returns the passthrough props.
func (o *Overlay) Props() OverlayProps {
	return o.props
}

// Render fills a width×height backdrop and centers content on it.
func (o *Overlay) Render(width, height int, content string) string {
	o.bounds = Rect{Width: width, Height: height}
	o.content = centered(width, height, lipgloss.Width(content), lipgloss.Height(content))

	if width <= 0 || height <= 0 {
		return content
	}

	line := o.props.Style.Render(strings.Repeat(" ", width))
	rows := make([]string, height)
	for i := range rows {
		rows[i] = line
	}
	backdrop := strings.Join(rows, "\n")

	return placeAt(backdrop, content, o.content.X, o.content.Y, width)
}

// Bounds returns the area covered by the backdrop at the last Render.
func (o *Overlay) Bounds() Rect {
	return o.bounds
}

// ContentBounds returns where the content was drawn at the last Render.
func (o *Overlay) ContentBounds() Rect {
	return o.content
}

// Target reports what a click at (x, y) hit. Clicks on the content are
// attributed to the content, never to the overlay behind it.
func (o *Overlay) Target(x, y int) HitTarget {
	switch {
	case o.content.Contains(x, y):
		return TargetContent
	case o.bounds.Contains(x, y):
		return TargetOverlay
	default:
		return TargetNone
	}
}
