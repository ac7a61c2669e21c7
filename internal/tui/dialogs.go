package tui

import (
	"fmt"
	"strings"

	"github.com/billie-coop/dialogstack/internal/tui/styles"
	"github.com/billie-coop/dialogstack/pkg/dialog"
	"github.com/charmbracelet/lipgloss/v2"
)

// DialogID identifies the demo's dialogs.
type DialogID string

const (
	BasicDialog   DialogID = "basic"
	ConfirmDialog DialogID = "confirm"
	AboutDialog   DialogID = "about"
)

// Option keys of the settings list.
const (
	optExampleStyles = "example_styles"
	optCloseOnEsc    = "close_on_esc"
	optCloseOnClick  = "close_on_overlay_click"
	optShowOverlay   = "show_overlay"
)

const aboutMarkdown = `# dialogstack

Dialogs are registered with a **stack**. Opening one pushes it on top,
closing it removes it wherever it is.

- ` + "`esc`" + ` closes the topmost dialog when it allows it
- clicking the overlay closes the dialog it belongs to
- ` + "`CloseAtIndex(0)`" + ` closes everything from the bottom up

This dialog is driven declaratively: its ` + "`IsOpen`" + ` prop follows the
` + "`?`" + ` key and is reset when the dialog closes.
`

// props builds the current props of id from the option list.
func (m *Model) props(id DialogID) dialog.Props[DialogID] {
	theme := styles.CurrentTheme().S()

	p := dialog.NewProps(id, m.renderer(id))
	p.CloseOnEsc = m.options.Value(optCloseOnEsc)
	p.CloseOnOverlayClick = m.options.Value(optCloseOnClick)
	p.ShowOverlay = m.options.Value(optShowOverlay)
	p.Overlay = dialog.OverlayProps{
		TestID: string(id) + "-overlay",
		Style:  theme.Overlay,
		Attrs:  map[string]string{"dialog": string(id), "role": "presentation"},
	}
	if m.options.Value(optExampleStyles) {
		p.Overlay.Style = theme.OverlayStrong
	}

	p.OnOpen = func() {
		m.logger.Info("dialog opened", "id", id)
	}
	p.OnClose = func() {
		m.logger.Info("dialog closed", "id", id)
		if id == AboutDialog {
			m.showAbout = false
		}
	}
	p.OnEscPress = func() {
		m.escPresses++
	}
	p.OnOverlayClick = func() {
		m.overlayClicks++
		if d, ok := m.dialogs[id]; ok {
			o := d.Overlay().Props()
			m.logger.Debug("overlay clicked", "overlay", o.TestID, "attrs", o.Attrs)
		}
	}

	// The confirm dialog always honors esc so the nested flow can be left.
	if id == ConfirmDialog {
		p.CloseOnEsc = true
	}
	if id == AboutDialog {
		p.IsOpen = m.showAbout
	}
	return p
}

// renderer draws the content of id for the given viewport.
func (m *Model) renderer(id DialogID) dialog.Renderer {
	return func(width, height int) string {
		w := min(max(width*2/5, 40), max(width-4, 1))
		switch id {
		case BasicDialog:
			return m.frame("Dialog title",
				"Dialog content…\n\n"+
					fmt.Sprintf("Stack depth %d. Open the nested dialog to stack another one on top.", len(m.stack.Manager().OpenStack())),
				w, dialogKeys{m.keys.Dismiss, m.keys.Nested, m.stack.KeyMap().Close})
		case ConfirmDialog:
			return m.frame("Are you sure?",
				"This dialog sits on top of the basic one. Closing all empties the stack.",
				w, dialogKeys{m.keys.Confirm, m.keys.Back, m.keys.CloseAll})
		case AboutDialog:
			return m.frame("", m.markdown(w-6), w, dialogKeys{m.keys.About, m.stack.KeyMap().Close})
		default:
			return ""
		}
	}
}

// frame lays out a dialog box, styled or bare depending on the example
// styles option.
func (m *Model) frame(title, body string, width int, keys dialogKeys) string {
	help := m.help.View(keys)
	if !m.options.Value(optExampleStyles) {
		parts := []string{body, help}
		if title != "" {
			parts = append([]string{title}, parts...)
		}
		return dialog.Frame.Render(strings.Join(parts, "\n\n"))
	}

	s := styles.CurrentTheme().S()
	inner := width - 6
	block := lipgloss.NewStyle().Width(inner)
	parts := []string{block.Render(body), s.Help.Render(help)}
	if title != "" {
		parts = append([]string{s.DialogTitle.Render(title)}, parts...)
	}
	return s.Dialog.Width(width).Render(strings.Join(parts, "\n\n"))
}

// markdown renders the about text, cached per width and style.
func (m *Model) markdown(width int) string {
	style := m.cfg.UI.MarkdownStyle
	key := fmt.Sprintf("%s:%s:%d", style, styles.CurrentTheme().Name, width)
	if out, ok := m.mdCache[key]; ok {
		return out
	}
	out := strings.TrimSpace(styles.RenderMarkdown(style, width, aboutMarkdown))
	m.mdCache[key] = out
	return out
}
