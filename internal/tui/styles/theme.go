package styles

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Semantic color names for consistency
type Theme struct {
	Name   string
	IsDark bool

	// Brand colors
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color

	// Background colors
	BgBase    color.Color
	BgSubtle  color.Color
	BgOverlay color.Color

	// Foreground colors
	FgBase     color.Color
	FgMuted    color.Color
	FgSubtle   color.Color
	FgInverted color.Color

	// Border colors
	Border      color.Color
	BorderFocus color.Color

	// Semantic colors
	Success color.Color
	Error   color.Color
	Warning color.Color
	Info    color.Color

	styles *Styles
}

// Styles are the lipgloss styles the demo renders with.
type Styles struct {
	Base   lipgloss.Style
	Title  lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// Dialog chrome
	Dialog        lipgloss.Style
	DialogTitle   lipgloss.Style
	Overlay       lipgloss.Style
	OverlayStrong lipgloss.Style

	Panel lipgloss.Style
	Help  lipgloss.Style
}

func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().
		Foreground(t.FgBase)

	return &Styles{
		Base: base,

		Title: base.
			Foreground(t.Accent).
			Bold(true),

		Text: base,

		Muted: base.Foreground(t.FgMuted),

		Subtle: base.Foreground(t.FgSubtle),

		Success: base.Foreground(t.Success),

		Error: base.Foreground(t.Error),

		Warning: base.Foreground(t.Warning),

		Info: base.Foreground(t.Info),

		Button: base.
			Background(t.BgSubtle).
			Foreground(t.FgBase).
			Padding(0, 2),

		ButtonFocused: base.
			Background(t.Primary).
			Foreground(t.FgInverted).
			Bold(true).
			Padding(0, 2),

		Dialog: base.
			Background(t.BgBase).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			BorderBackground(t.BgBase).
			Padding(1, 2),

		DialogTitle: base.
			Background(t.BgBase).
			Foreground(t.Secondary).
			Bold(true),

		Overlay: lipgloss.NewStyle().
			Background(Darken(t.BgOverlay, 40)),

		// Styled overlay for the "example styles" toggle
		OverlayStrong: lipgloss.NewStyle().
			Background(Blend(t.BgOverlay, t.Primary, 0.35)),

		Panel: base.
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		Help: base.Foreground(t.FgSubtle),
	}
}

// Manager handles theme switching and registration
type Manager struct {
	themes  map[string]*Theme
	current *Theme
}

var defaultManager *Manager

func SetDefaultManager(m *Manager) {
	defaultManager = m
}

func DefaultManager() *Manager {
	if defaultManager == nil {
		defaultManager = NewManager("fire")
	}
	return defaultManager
}

func CurrentTheme() *Theme {
	return DefaultManager().Current()
}

// NewManager registers the built-in themes and selects defaultTheme, falling
// back to fire for unknown names.
func NewManager(defaultTheme string) *Manager {
	m := &Manager{
		themes: make(map[string]*Theme),
	}

	m.Register(NewFireTheme())
	m.Register(NewOceanTheme())
	m.Register(NewAuroraTheme())

	m.current = m.themes[defaultTheme]
	if m.current == nil {
		m.current = m.themes["fire"]
	}

	return m
}

func (m *Manager) Register(theme *Theme) {
	m.themes[theme.Name] = theme
}

func (m *Manager) Current() *Theme {
	return m.current
}

func (m *Manager) SetTheme(name string) error {
	if theme, ok := m.themes[name]; ok {
		m.current = theme
		return nil
	}
	return fmt.Errorf("theme %s not found", name)
}

// List returns the registered theme names in sorted order.
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Next switches to the theme after the current one, wrapping around.
func (m *Manager) Next() *Theme {
	names := m.List()
	i := slices.Index(names, m.current.Name)
	m.current = m.themes[names[(i+1)%len(names)]]
	return m.current
}

// Color utility functions

// ParseHex converts hex string to color
func ParseHex(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return c
}

// Darken makes a color darker by percentage (0-100)
func Darken(c color.Color, percent float64) color.Color {
	r, g, b, a := c.RGBA()
	factor := 1.0 - percent/100.0
	return color.RGBA{
		R: uint8(float64(r>>8) * factor),
		G: uint8(float64(g>>8) * factor),
		B: uint8(float64(b>>8) * factor),
		A: uint8(a >> 8),
	}
}

// Blend mixes two colors in HCL space; t=0 is c1, t=1 is c2.
func Blend(c1, c2 color.Color, t float64) color.Color {
	a, _ := colorful.MakeColor(c1)
	b, _ := colorful.MakeColor(c2)
	return a.BlendHcl(b, t).Clamped()
}

// ApplyGradient renders text with a horizontal gradient
func ApplyGradient(text string, color1, color2 color.Color, bold bool) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	var output strings.Builder
	colors := blendColors(len(clusters), color1, color2)
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(colors[i]).Bold(bold)
		output.WriteString(style.Render(cluster))
	}

	return output.String()
}

// RenderThemeGradient renders text with the current theme's brand gradient
func RenderThemeGradient(text string, bold bool) string {
	t := CurrentTheme()
	return ApplyGradient(text, t.Primary, t.Secondary, bold)
}

// blendColors creates a gradient between colors
func blendColors(steps int, color1, color2 color.Color) []color.Color {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []color.Color{color1}
	}

	colors := make([]color.Color, steps)
	for i := 0; i < steps; i++ {
		colors[i] = Blend(color1, color2, float64(i)/float64(steps-1))
	}
	return colors
}

// colorToHex converts color to hex string
func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
