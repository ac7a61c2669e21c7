// Package tui is the interactive demo of the dialog stack.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/billie-coop/dialogstack/internal/config"
	"github.com/billie-coop/dialogstack/internal/tui/components/eventlog"
	"github.com/billie-coop/dialogstack/internal/tui/components/options"
	"github.com/billie-coop/dialogstack/internal/tui/components/status"
	"github.com/billie-coop/dialogstack/internal/tui/styles"
	"github.com/billie-coop/dialogstack/pkg/dialog"
	"github.com/billie-coop/dialogstack/pkg/events"
	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Model is the demo application: a settings panel, an event log and three
// dialogs managed by one stack.
type Model struct {
	width  int
	height int

	cfg    *config.Config
	logger *slog.Logger

	// Dialog stack
	stack   *dialog.Stack[DialogID]
	dialogs map[DialogID]*dialog.Dialog[DialogID]

	// Event system
	eventBroker *events.Broker
	eventSub    <-chan events.Event

	// Components
	options   *options.Model
	eventLog  *eventlog.Model
	statusBar *status.Component
	help      help.Model
	keys      KeyMap

	// UI state only
	showAbout     bool
	escPresses    int
	overlayClicks int
	mdCache       map[string]string
}

// ConfigReloadedMsg carries the config after it changed on disk. Err is set
// when the new file could not be loaded.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// New creates the demo model from cfg. A nil logger discards output.
func New(cfg *config.Config, logger *slog.Logger) (*Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	styles.SetDefaultManager(styles.NewManager(cfg.UI.Theme))

	trigger, err := dialog.ParseEscapeTrigger(cfg.Stack.EscapeTrigger)
	if err != nil {
		return nil, fmt.Errorf("stack config: %w", err)
	}

	broker := events.NewBroker()
	stack := dialog.NewStack[DialogID](
		dialog.WithPortalTarget(cfg.Stack.PortalTarget),
		dialog.WithEscapeTrigger(trigger),
		dialog.WithBroker(broker),
		dialog.WithLogger(logger.With("component", "dialog")),
	)

	m := &Model{
		cfg:         cfg,
		logger:      logger,
		stack:       stack,
		dialogs:     make(map[DialogID]*dialog.Dialog[DialogID]),
		eventBroker: broker,
		eventLog:    eventlog.New(),
		statusBar:   status.New(),
		help:        help.New(),
		keys:        DefaultKeyMap(),
		mdCache:     make(map[string]string),
		options: options.New(
			options.Option{Key: optExampleStyles, Label: "Enable example styles", On: true},
			options.Option{Key: optCloseOnEsc, Label: "Close on ESC press", On: cfg.Dialog.CloseOnEsc},
			options.Option{Key: optCloseOnClick, Label: "Close on overlay click", On: cfg.Dialog.CloseOnOverlayClick},
			options.Option{Key: optShowOverlay, Label: "Show overlay", On: cfg.Dialog.ShowOverlay},
		),
	}

	// Subscribe before mounting so registrations show up in the log
	m.eventSub = broker.Subscribe()

	for _, id := range []DialogID{BasicDialog, ConfirmDialog, AboutDialog} {
		m.dialogs[id] = dialog.Mount(stack, m.props(id))
	}

	return m, nil
}

// Stack returns the dialog stack the demo runs on.
func (m *Model) Stack() *dialog.Stack[DialogID] {
	return m.stack
}

// Init starts listening for dialog events.
func (m *Model) Init() tea.Cmd {
	return events.Listen(m.eventSub)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.stack.Handle(msg)
		cmds = append(cmds, m.resizeComponents())

	case events.Event:
		m.eventLog.Add(msg)
		cmds = append(cmds, events.Listen(m.eventSub))

	case ConfigReloadedMsg:
		cmds = append(cmds, m.applyConfig(msg))

	case options.ChangedMsg:
		m.syncDialogs()
		state := "off"
		if msg.Option.On {
			state = "on"
		}
		cmds = append(cmds, m.statusBar.ShowInfo(fmt.Sprintf("%s %s", msg.Option.Label, state)))

	case tea.KeyPressMsg:
		if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		if m.stack.Handle(msg) {
			break
		}
		cmds = append(cmds, m.handleKey(msg))

	default:
		if m.stack.Handle(msg) {
			break
		}
		_, cmd := m.statusBar.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.syncAbout()
	m.updateStatus()
	return m, tea.Batch(cmds...)
}

// handleKey routes a key press to the topmost dialog, or to the main screen
// when no dialog is open.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	dialogs := m.stack.Dialogs()

	if current, ok := dialogs.Current(); ok {
		switch current {
		case BasicDialog:
			switch {
			case key.Matches(msg, m.keys.Dismiss):
				dialogs.CloseCurrent()
			case key.Matches(msg, m.keys.Nested):
				return dialog.Open(ConfirmDialog)
			}
		case ConfirmDialog:
			switch {
			case key.Matches(msg, m.keys.Confirm):
				dialogs.CloseAll()
				return m.statusBar.ShowSuccess("closed all dialogs")
			case key.Matches(msg, m.keys.Back):
				return dialog.CloseCurrent()
			case key.Matches(msg, m.keys.CloseAll):
				return dialog.CloseAtIndex(0)
			}
		case AboutDialog:
			if key.Matches(msg, m.keys.About) {
				m.showAbout = false
			}
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Open):
		dialogs.Open(BasicDialog)
		return nil
	case key.Matches(msg, m.keys.About):
		m.showAbout = true
		return nil
	case key.Matches(msg, m.keys.Theme):
		theme := styles.DefaultManager().Next()
		m.syncDialogs()
		return m.statusBar.ShowInfo("theme " + theme.Name)
	}

	_, cmd := m.options.Update(msg)
	return cmd
}

// applyConfig takes over the dialog defaults, the theme and the escape
// trigger of a reloaded config. Toggles made in the demo are overwritten.
func (m *Model) applyConfig(msg ConfigReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		m.logger.Warn("config reload failed", "error", msg.Err)
		return m.statusBar.ShowWarning("config not reloaded: " + msg.Err.Error())
	}

	cfg := msg.Config
	trigger, err := dialog.ParseEscapeTrigger(cfg.Stack.EscapeTrigger)
	if err != nil {
		m.logger.Warn("config reload failed", "error", err)
		return m.statusBar.ShowWarning("config not reloaded: " + err.Error())
	}

	m.cfg = cfg
	m.stack.SetEscapeTrigger(trigger)
	m.options.Set(optCloseOnEsc, cfg.Dialog.CloseOnEsc)
	m.options.Set(optCloseOnClick, cfg.Dialog.CloseOnOverlayClick)
	m.options.Set(optShowOverlay, cfg.Dialog.ShowOverlay)
	if err := styles.DefaultManager().SetTheme(cfg.UI.Theme); err != nil {
		m.logger.Warn("unknown theme in config", "theme", cfg.UI.Theme)
	}
	m.syncDialogs()

	m.logger.Info("config reloaded", "escape_trigger", trigger)
	return m.statusBar.ShowInfo("config reloaded")
}

func (m *Model) quit() tea.Cmd {
	for _, d := range m.dialogs {
		d.Unmount()
	}
	m.stack.Close()
	m.eventBroker.Clear()
	return tea.Quit
}

// syncDialogs pushes the current options into every dialog.
func (m *Model) syncDialogs() {
	for id, d := range m.dialogs {
		d.Sync(m.props(id))
	}
}

// syncAbout reconciles the about dialog with showAbout.
func (m *Model) syncAbout() {
	d, ok := m.dialogs[AboutDialog]
	if !ok || d.Props().IsOpen == m.showAbout {
		return
	}
	d.Sync(m.props(AboutDialog))
}

func (m *Model) updateStatus() {
	open := m.stack.Manager().OpenStack()
	parts := []string{fmt.Sprintf("%s depth %d", styles.StackIcon, len(open))}
	if current, ok := m.stack.Dialogs().Current(); ok {
		parts = append(parts, fmt.Sprintf("%s top %s", styles.OpenIcon, current))
	} else {
		parts = append(parts, styles.ClosedIcon+" no dialog")
	}
	parts = append(parts,
		fmt.Sprintf("esc %d", m.escPresses),
		fmt.Sprintf("overlay clicks %d", m.overlayClicks),
	)
	m.statusBar.SetLeft(strings.Join(parts, " · "))
}

func (m *Model) resizeComponents() tea.Cmd {
	logHeight := max(3, m.height-22)
	return tea.Batch(
		m.options.SetSize(m.width, 4),
		m.eventLog.SetSize(max(0, m.width-4), logHeight),
		m.statusBar.SetSize(m.width, 1),
	)
}

// View renders the UI
func (m *Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("Initializing...")
	}
	return tea.NewView(m.Render())
}

// Render composes the main screen with the open dialogs on top.
func (m *Model) Render() string {
	return m.stack.View(m.background())
}

func (m *Model) background() string {
	theme := styles.CurrentTheme()
	s := theme.S()

	title := styles.RenderThemeGradient("dialogstack", true)
	intro := s.Muted.Width(min(m.width, 72)).Render(
		"A headless dialog stack for Bubble Tea. Toggle the options, then open a dialog and stack another one on top of it.")

	settings := s.Panel.Render(
		s.Title.Render("Basic options") + "\n" + m.options.View())

	button := s.ButtonFocused.Render("Open dialog")

	log := s.Panel.Width(max(0, m.width-2)).Render(
		s.Title.Render("Events") + "\n" + m.eventLog.View())

	var helpView string
	if _, ok := m.stack.Dialogs().Current(); !ok {
		helpView = s.Help.Render(m.help.View(mainKeys{
			KeyMap: m.keys,
			toggle: m.options.KeyMap().Toggle,
		}))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title, "", intro, "", settings, "", button, "", log, helpView)

	main := lipgloss.NewStyle().
		Width(m.width).
		Height(max(0, m.height-1)).
		MaxHeight(max(0, m.height-1)).
		Padding(0, 1).
		Render(body)

	return main + "\n" + m.statusBar.View()
}
