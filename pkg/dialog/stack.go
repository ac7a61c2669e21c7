package dialog

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/billie-coop/dialogstack/internal/csync"
	"github.com/billie-coop/dialogstack/pkg/events"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// DefaultPortalTarget is the insertion point dialogs render into unless the
// stack or the dialog names another one.
const DefaultPortalTarget = "body"

// EscapeTrigger selects which key event closes the topmost dialog.
type EscapeTrigger int

const (
	// EscapeOnRelease reacts to the key release. Terminals only report
	// releases when keyboard enhancements are enabled.
	EscapeOnRelease EscapeTrigger = iota
	// EscapeOnPress reacts to the key press.
	EscapeOnPress
)

func (t EscapeTrigger) String() string {
	if t == EscapeOnPress {
		return "press"
	}
	return "release"
}

// ParseEscapeTrigger parses "release" or "press".
func ParseEscapeTrigger(s string) (EscapeTrigger, error) {
	switch s {
	case "release", "":
		return EscapeOnRelease, nil
	case "press":
		return EscapeOnPress, nil
	default:
		return EscapeOnRelease, fmt.Errorf("unknown escape trigger %q (want release or press)", s)
	}
}

// StackOption configures a Stack.
type StackOption func(*stackOptions)

type stackOptions struct {
	portalTarget string
	trigger      EscapeTrigger
	keys         KeyMap
	broker       *events.Broker
	logger       *slog.Logger
}

// WithPortalTarget sets the default insertion point of the stack's dialogs.
func WithPortalTarget(target string) StackOption {
	return func(o *stackOptions) {
		if target != "" {
			o.portalTarget = target
		}
	}
}

// WithEscapeTrigger selects whether ESC acts on key release or key press.
func WithEscapeTrigger(t EscapeTrigger) StackOption {
	return func(o *stackOptions) {
		o.trigger = t
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) StackOption {
	return func(o *stackOptions) {
		o.keys = k
	}
}

// WithBroker publishes the stack's events on b instead of a private broker.
func WithBroker(b *events.Broker) StackOption {
	return func(o *stackOptions) {
		if b != nil {
			o.broker = b
		}
	}
}

// WithLogger sets the logger used by the stack and its manager.
func WithLogger(l *slog.Logger) StackOption {
	return func(o *stackOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Stack is one dialog stacking scope: the manager, the registry of mounted
// controllers, the ESC listener and the portal composition.
type Stack[K comparable] struct {
	manager *Manager[K]
	mounted *csync.Map[K, *Dialog[K]]
	broker  *events.Broker
	logger  *slog.Logger
	keys    KeyMap

	portalTarget string
	trigger      EscapeTrigger
	escAttached  atomic.Bool

	width  int
	height int
}

// NewStack creates a stack scope with its ESC listener attached.
func NewStack[K comparable](opts ...StackOption) *Stack[K] {
	o := stackOptions{
		portalTarget: DefaultPortalTarget,
		trigger:      EscapeOnRelease,
		keys:         DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.broker == nil {
		o.broker = events.NewBroker()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	s := &Stack[K]{
		manager:      NewManager[K](o.broker, o.logger),
		mounted:      csync.NewMap[K, *Dialog[K]](),
		broker:       o.broker,
		logger:       o.logger,
		keys:         o.keys,
		portalTarget: o.portalTarget,
		trigger:      o.trigger,
	}
	s.escAttached.Store(true)
	s.logger.Debug("dialog stack created", "portal_target", s.portalTarget, "escape_trigger", s.trigger)
	return s
}

// Manager returns the stack's manager.
func (s *Stack[K]) Manager() *Manager[K] {
	return s.manager
}

// Dialogs returns the restricted accessor for consumers.
func (s *Stack[K]) Dialogs() Dialogs[K] {
	return Dialogs[K]{manager: s.manager}
}

// Events returns the broker the manager publishes on.
func (s *Stack[K]) Events() *events.Broker {
	return s.broker
}

// KeyMap returns the stack's key bindings.
func (s *Stack[K]) KeyMap() KeyMap {
	return s.keys
}

// PortalTarget returns the stack's default insertion point.
func (s *Stack[K]) PortalTarget() string {
	return s.portalTarget
}

// EscapeTrigger returns which key event closes the topmost dialog.
func (s *Stack[K]) EscapeTrigger() EscapeTrigger {
	return s.trigger
}

// SetEscapeTrigger switches between closing on key release and key press.
// Like Handle it must be called from the goroutine that runs Update.
func (s *Stack[K]) SetEscapeTrigger(t EscapeTrigger) {
	if s.trigger == t {
		return
	}
	s.logger.Debug("escape trigger changed", "from", s.trigger, "to", t)
	s.trigger = t
}

// Lookup returns the controller mounted under id.
func (s *Stack[K]) Lookup(id K) (*Dialog[K], bool) {
	return s.mounted.Get(id)
}

// Mounted returns how many controllers are mounted.
func (s *Stack[K]) Mounted() int {
	return s.mounted.Len()
}

// SetSize sets the viewport used by View.
func (s *Stack[K]) SetSize(width, height int) tea.Cmd {
	s.width = width
	s.height = height
	return nil
}

// Init implements tea.Model.
func (s *Stack[K]) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *Stack[K]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s.Handle(msg)
	return s, nil
}

// Handle applies msg to the stack and reports whether it was consumed, so
// the host can stop routing it further.
func (s *Stack[K]) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return false

	case tea.KeyReleaseMsg:
		if s.trigger != EscapeOnRelease {
			return false
		}
		return s.handleKey(msg)

	case tea.KeyPressMsg:
		if s.trigger != EscapeOnPress {
			return false
		}
		return s.handleKey(msg)

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return false
		}
		return s.routeClick(msg.X, msg.Y)

	case OpenMsg[K]:
		s.manager.Open(msg.ID)
		return true

	case CloseMsg[K]:
		s.manager.Close(msg.ID)
		return true

	case CloseAllMsg:
		s.manager.CloseAll()
		return true

	case CloseCurrentMsg:
		s.manager.CloseCurrent()
		return true

	case CloseAtIndexMsg:
		s.manager.CloseAtIndex(msg.Index)
		return true
	}

	return false
}

// Render paints the open dialogs that target the given portal over
// background, oldest first so the topmost dialog ends up on top.
func (s *Stack[K]) Render(target, background string, width, height int) string {
	view := background
	for _, id := range s.manager.OpenStack() {
		d, ok := s.mounted.Get(id)
		if !ok || d.Target() != target {
			continue
		}

		content := d.View(width, height)
		if content == "" {
			continue
		}

		if d.props.ShowOverlay {
			view = placeAt(view, content, 0, 0, width)
			continue
		}
		frame := d.Frame()
		view = placeAt(view, content, frame.X, frame.Y, width)
	}
	return view
}

// View renders the default portal target over background at the size set
// by the last SetSize or tea.WindowSizeMsg.
func (s *Stack[K]) View(background string) string {
	return s.Render(s.portalTarget, background, s.width, s.height)
}

// Close tears the scope down by detaching the ESC listener. Dialogs are
// expected to have unmounted already.
func (s *Stack[K]) Close() {
	if !s.escAttached.Swap(false) {
		return
	}
	if ids := s.mounted.Keys(); len(ids) > 0 {
		s.logger.Warn("dialog stack closed with mounted dialogs", "count", len(ids), "ids", ids)
	}
	s.logger.Debug("dialog stack closed")
}

// Attached reports whether the ESC listener is still attached.
func (s *Stack[K]) Attached() bool {
	return s.escAttached.Load()
}

func (s *Stack[K]) handleKey(msg tea.KeyMsg) bool {
	if !s.escAttached.Load() || !key.Matches(msg, s.keys.Close) {
		return false
	}
	return s.manager.HandleEscape()
}

// routeClick offers the click to open dialogs from the top down. A dialog
// without an overlay lets clicks outside its content fall through.
func (s *Stack[K]) routeClick(x, y int) bool {
	open := s.manager.OpenStack()
	for i := len(open) - 1; i >= 0; i-- {
		d, ok := s.mounted.Get(open[i])
		if !ok {
			continue
		}
		if d.HandleClick(x, y) {
			return true
		}
	}
	return false
}

func (s *Stack[K]) mount(d *Dialog[K]) {
	s.mounted.Set(d.props.ID, d)
}

func (s *Stack[K]) unmount(d *Dialog[K]) {
	s.mounted.DeleteFunc(d.props.ID, func(v *Dialog[K]) bool { return v == d })
}
