package dialog

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestOverlay_RenderCentersContent(t *testing.T) {
	o := NewOverlay(OverlayProps{TestID: "overlay"})

	view := ansi.Strip(o.Render(7, 3, "ab"))

	assert.Equal(t, []string{"       ", "  ab   ", "       "}, strings.Split(view, "\n"))
	assert.Equal(t, Rect{Width: 7, Height: 3}, o.Bounds())
	assert.Equal(t, Rect{X: 2, Y: 1, Width: 2, Height: 1}, o.ContentBounds())
	assert.Equal(t, "overlay", o.Props().TestID)
}

func TestOverlay_Target(t *testing.T) {
	o := NewOverlay(OverlayProps{})
	o.Render(7, 3, "ab")

	tests := []struct {
		name string
		x, y int
		want HitTarget
	}{
		{"corner", 0, 0, TargetOverlay},
		{"left of content", 1, 1, TargetOverlay},
		{"content start", 2, 1, TargetContent},
		{"content end", 3, 1, TargetContent},
		{"right of content", 4, 1, TargetOverlay},
		{"outside", 7, 0, TargetNone},
		{"below", 0, 3, TargetNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, o.Target(tt.x, tt.y))
		})
	}
}

func TestOverlay_StyledBackdropKeepsWidth(t *testing.T) {
	o := NewOverlay(OverlayProps{Style: lipgloss.NewStyle().Background(lipgloss.Color("1"))})

	view := o.Render(10, 2, "x")

	for _, line := range strings.Split(view, "\n") {
		assert.Equal(t, 10, ansi.StringWidth(line))
	}
}

func TestOverlay_ContentLargerThanViewport(t *testing.T) {
	o := NewOverlay(OverlayProps{})
	o.Render(2, 1, "wide")

	assert.Equal(t, Rect{X: 0, Y: 0, Width: 4, Height: 1}, o.ContentBounds())
	assert.Equal(t, TargetContent, o.Target(3, 0))
}

func TestHitTarget_String(t *testing.T) {
	assert.Equal(t, "none", TargetNone.String())
	assert.Equal(t, "overlay", TargetOverlay.String())
	assert.Equal(t, "content", TargetContent.String())
}

func TestPlaceAt(t *testing.T) {
	tests := []struct {
		name  string
		bg    string
		fg    string
		x, y  int
		width int
		want  string
	}{
		{"overwrite middle", "abcdef", "XY", 2, 0, 6, "abXYef"},
		{"past end pads", "ab", "X", 4, 0, 0, "ab  X"},
		{"pads to width", "ab", "X", 0, 0, 4, "Xb  "},
		{"adds lines", "a", "X", 0, 2, 0, "a\n\nX"},
		{"multi line", "aaa\nbbb\nccc", "1\n2", 1, 1, 3, "aaa\nb1b\nc2c"},
		{"negative clamps", "abc", "X", -3, -1, 0, "Xbc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, placeAt(tt.bg, tt.fg, tt.x, tt.y, tt.width))
		})
	}
}

func TestPlaceAt_KeepsStyledBackground(t *testing.T) {
	bg := lipgloss.NewStyle().Bold(true).Render("abcdef")
	got := placeAt(bg, "XY", 2, 0, 6)
	assert.Equal(t, "abXYef", ansi.Strip(got))
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 1, Y: 1, Width: 2, Height: 2}
	assert.True(t, r.Contains(1, 1))
	assert.True(t, r.Contains(2, 2))
	assert.False(t, r.Contains(3, 1))
	assert.False(t, r.Contains(0, 1))
	assert.False(t, Rect{}.Contains(0, 0))
}
