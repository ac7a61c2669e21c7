// Package status renders the one-line status bar at the bottom of the demo.
package status

import (
	"time"

	"github.com/billie-coop/dialogstack/internal/tui/components/core"
	"github.com/billie-coop/dialogstack/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// MessageType represents the type of status message
type MessageType int

const (
	Info MessageType = iota
	Warning
	Error
	Success
)

// Message represents a status bar message
type Message struct {
	Content   string
	Type      MessageType
	Timestamp time.Time
}

// Component implements a status bar with a fixed left part and temporary
// messages on the right.
type Component struct {
	core.SizeableBase

	message *Message
	left    string

	// Messages are cleared after this long
	clearAfter time.Duration
}

// New creates a new status bar component
func New() *Component {
	return &Component{
		clearAfter: 4 * time.Second,
	}
}

// SetMessage sets a status message and returns the command that clears it.
func (c *Component) SetMessage(content string, msgType MessageType) tea.Cmd {
	stamp := time.Now()
	c.message = &Message{
		Content:   content,
		Type:      msgType,
		Timestamp: stamp,
	}

	return tea.Tick(c.clearAfter, func(time.Time) tea.Msg {
		return clearMessageMsg{timestamp: stamp}
	})
}

// ShowInfo shows an info message
func (c *Component) ShowInfo(message string) tea.Cmd {
	return c.SetMessage(message, Info)
}

// ShowWarning shows a warning message
func (c *Component) ShowWarning(message string) tea.Cmd {
	return c.SetMessage(message, Warning)
}

// ShowSuccess shows a success message
func (c *Component) ShowSuccess(message string) tea.Cmd {
	return c.SetMessage(message, Success)
}

// Message returns the message on display, if any.
func (c *Component) Message() (Message, bool) {
	if c.message == nil {
		return Message{}, false
	}
	return *c.message, true
}

// SetLeft sets the left side content
func (c *Component) SetLeft(content string) {
	c.left = content
}

// clearMessageMsg is sent when a status message should be cleared
type clearMessageMsg struct {
	timestamp time.Time
}

var (
	_ core.Component = (*Component)(nil)
	_ core.Sizeable  = (*Component)(nil)
)

// Init implements core.Component.
func (c *Component) Init() tea.Cmd {
	return nil
}

// Update implements core.Component.
func (c *Component) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(clearMessageMsg); ok {
		// Only clear if this is for the current message
		if c.message != nil && msg.timestamp.Equal(c.message.Timestamp) {
			c.message = nil
		}
	}
	return c, nil
}

// View implements core.Component.
func (c *Component) View() string {
	if c.Width == 0 {
		return ""
	}

	theme := styles.CurrentTheme()
	bar := lipgloss.NewStyle().
		Width(c.Width).
		Background(theme.BgSubtle).
		Foreground(theme.FgBase).
		Padding(0, 1)

	available := max(0, c.Width-2)
	right := c.formatMessage()
	right = ansi.Truncate(right, available/2, "…")
	left := ansi.Truncate(c.left, max(0, available-ansi.StringWidth(right)-1), "…")

	gap := available - ansi.StringWidth(left) - ansi.StringWidth(right)
	content := left
	if gap > 0 {
		content += lipgloss.NewStyle().Width(gap).Render("")
	}
	content += right

	return bar.Render(content)
}

// formatMessage formats the status message with appropriate styling
func (c *Component) formatMessage() string {
	if c.message == nil {
		return ""
	}

	s := styles.CurrentTheme().S()
	switch c.message.Type {
	case Success:
		return s.Success.Render(styles.CheckIcon + " " + c.message.Content)
	case Warning:
		return s.Warning.Render(styles.WarningIcon + " " + c.message.Content)
	case Error:
		return s.Error.Render(styles.ErrorIcon + " " + c.message.Content)
	default:
		return c.message.Content
	}
}
