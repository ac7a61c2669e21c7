package dialog

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/billie-coop/dialogstack/pkg/events"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	escRelease = tea.KeyReleaseMsg{Code: tea.KeyEscape}
	escPress   = tea.KeyPressMsg{Code: tea.KeyEscape}
)

func TestParseEscapeTrigger(t *testing.T) {
	tests := []struct {
		in      string
		want    EscapeTrigger
		wantErr bool
	}{
		{"release", EscapeOnRelease, false},
		{"", EscapeOnRelease, false},
		{"press", EscapeOnPress, false},
		{"keyup", EscapeOnRelease, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEscapeTrigger(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) EscapeTrigger {
	t.Helper()
	tr, err := ParseEscapeTrigger(s)
	require.NoError(t, err)
	return tr
}

func TestStack_EscapeClosesTopmostOnly(t *testing.T) {
	s := NewStack[string]()
	var bottom, top callbacks
	pb := bottom.wire(NewProps("bottom", Static("b")))
	pb.IsOpen = true
	pt := top.wire(NewProps("top", Static("t")))
	pt.IsOpen = true
	Mount(s, pb)
	Mount(s, pt)

	assert.True(t, s.Handle(escRelease))

	assert.Equal(t, 1, top.esc)
	assert.Equal(t, 1, top.closed)
	assert.Equal(t, 0, bottom.esc)
	assert.Equal(t, 0, bottom.closed)
	assert.Equal(t, []string{"bottom"}, s.Manager().OpenStack())
}

func TestStack_EscapeScenario(t *testing.T) {
	s := NewStack[string]()
	s.Manager().Register("d1", true, nil)
	s.Dialogs().Open("d1")

	state := s.Dialogs().State()
	assert.Equal(t, Record{Active: true, CloseOnEsc: true}, state["d1"])
	cur, ok := s.Dialogs().Current()
	require.True(t, ok)
	assert.Equal(t, "d1", cur)

	s.Update(escRelease)

	assert.False(t, s.Dialogs().State()["d1"].Active)
	_, ok = s.Dialogs().Current()
	assert.False(t, ok)
}

func TestStack_EscapeTriggerSelectsEvent(t *testing.T) {
	release := NewStack[string]()
	release.Dialogs().Open("a")
	release.Manager().Register("a", true, nil)
	assert.False(t, release.Handle(escPress))
	assert.True(t, release.Manager().IsActive("a"))

	press := NewStack[string](WithEscapeTrigger(EscapeOnPress))
	press.Manager().Register("a", true, nil)
	press.Dialogs().Open("a")
	assert.False(t, press.Handle(escRelease))
	assert.True(t, press.Handle(escPress))
	assert.False(t, press.Manager().IsActive("a"))
}

func TestStack_SetEscapeTrigger(t *testing.T) {
	s := NewStack[string]()
	assert.Equal(t, EscapeOnRelease, s.EscapeTrigger())
	s.Manager().Register("a", true, nil)
	s.Dialogs().Open("a")

	s.SetEscapeTrigger(EscapeOnPress)
	assert.Equal(t, EscapeOnPress, s.EscapeTrigger())
	assert.False(t, s.Handle(escRelease))
	assert.True(t, s.Handle(escPress))
	assert.False(t, s.Manager().IsActive("a"))
}

func TestStack_EscapeIgnoresOtherKeys(t *testing.T) {
	s := NewStack[string]()
	s.Manager().Register("a", true, nil)
	s.Dialogs().Open("a")

	assert.False(t, s.Handle(tea.KeyReleaseMsg{Code: 'q', Text: "q"}))
	assert.True(t, s.Manager().IsActive("a"))
}

func TestStack_EscapeRespectsCloseOnEsc(t *testing.T) {
	s := NewStack[string]()
	var cb callbacks
	p := cb.wire(NewProps("sticky", Static("s")))
	p.IsOpen = true
	p.CloseOnEsc = false
	Mount(s, p)

	assert.False(t, s.Handle(escRelease))
	assert.Equal(t, 0, cb.esc)
	assert.True(t, s.Manager().IsActive("sticky"))
}

func TestStack_CloseDetachesEscape(t *testing.T) {
	s := NewStack[string]()
	require.True(t, s.Attached())
	s.Manager().Register("a", true, nil)
	s.Dialogs().Open("a")

	s.Close()
	s.Close()

	assert.False(t, s.Attached())
	assert.False(t, s.Handle(escRelease))
	assert.True(t, s.Manager().IsActive("a"))
}

func TestStack_CloseWarnsAboutMountedDialogs(t *testing.T) {
	var buf strings.Builder
	s := NewStack[string](WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	Mount(s, NewProps("left", Static("l")))

	s.Close()

	out := buf.String()
	assert.Contains(t, out, "dialog stack closed with mounted dialogs")
	assert.Contains(t, out, "count=1")
	assert.Contains(t, out, "left")
}

func TestStack_CustomKeyMap(t *testing.T) {
	keys := DefaultKeyMap()
	keys.Close.SetKeys("ctrl+w")
	s := NewStack[string](WithKeyMap(keys))
	s.Manager().Register("a", true, nil)
	s.Dialogs().Open("a")

	assert.False(t, s.Handle(escRelease))
	assert.True(t, s.Handle(tea.KeyReleaseMsg{Code: 'w', Mod: tea.ModCtrl}))
	assert.False(t, s.Manager().IsActive("a"))
}

func TestStack_AppliesMessages(t *testing.T) {
	s := NewStack[string]()

	for _, cmd := range []tea.Cmd{Open("a"), Open("b"), Open("c"), Open("d")} {
		assert.True(t, s.Handle(cmd()))
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.Manager().OpenStack())

	assert.True(t, s.Handle(CloseCurrent()()))
	assert.Equal(t, []string{"a", "b", "c"}, s.Manager().OpenStack())

	assert.True(t, s.Handle(Close("a")()))
	assert.Equal(t, []string{"b", "c"}, s.Manager().OpenStack())

	assert.True(t, s.Handle(CloseAtIndex(1)()))
	assert.Equal(t, []string{"b"}, s.Manager().OpenStack())

	assert.True(t, s.Handle(CloseAll()()))
	assert.Empty(t, s.Manager().OpenStack())
}

func TestStack_IgnoresMessagesForOtherIdentifierTypes(t *testing.T) {
	s := NewStack[string]()
	assert.False(t, s.Handle(OpenMsg[int]{ID: 1}))
	assert.Empty(t, s.Manager().OpenStack())
}

func TestStack_WindowSizeIsNotConsumed(t *testing.T) {
	s := NewStack[string]()
	assert.False(t, s.Handle(tea.WindowSizeMsg{Width: 30, Height: 6}))

	p := NewProps("a", Static("x"))
	p.IsOpen = true
	p.ShowOverlay = false
	Mount(s, p)

	lines := strings.Split(s.View(""), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat(" ", 14)+"x"+strings.Repeat(" ", 15), lines[2])
}

func TestStack_ClickRoutesToTopmost(t *testing.T) {
	s := NewStack[string]()
	var bottom, top callbacks
	pb := bottom.wire(NewProps("bottom", Static("b")))
	pb.IsOpen = true
	pt := top.wire(NewProps("top", Static("t")))
	pt.IsOpen = true
	Mount(s, pb)
	Mount(s, pt)
	s.SetSize(20, 5)
	s.View("")

	assert.True(t, s.Handle(tea.MouseClickMsg{X: 0, Y: 0, Button: tea.MouseLeft}))

	assert.Equal(t, 1, top.overlay)
	assert.Equal(t, 0, bottom.overlay)
	assert.Equal(t, []string{"bottom"}, s.Manager().OpenStack())
}

func TestStack_RightClickIgnored(t *testing.T) {
	s := NewStack[string]()
	p := NewProps("a", Static("a"))
	p.IsOpen = true
	Mount(s, p)
	s.SetSize(20, 5)
	s.View("")

	assert.False(t, s.Handle(tea.MouseClickMsg{X: 0, Y: 0, Button: tea.MouseRight}))
	assert.True(t, s.Manager().IsActive("a"))
}

func TestStack_RenderStacksOverlays(t *testing.T) {
	s := NewStack[string]()
	first := NewProps("first", Static("one"))
	first.IsOpen = true
	first.Overlay = OverlayProps{}
	second := NewProps("second", Static("2"))
	second.IsOpen = true
	second.Overlay = OverlayProps{}
	Mount(s, first)
	Mount(s, second)

	view := ansi.Strip(s.Render(DefaultPortalTarget, "background", 9, 3))
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 3)
	// The second overlay covers the first dialog's content.
	assert.Equal(t, "    2    ", lines[1])
	assert.NotContains(t, view, "background")
}

func TestStack_RenderFiltersByPortalTarget(t *testing.T) {
	s := NewStack[string]()
	main := NewProps("main", Static("M"))
	main.IsOpen = true
	main.ShowOverlay = false
	side := NewProps("side", Static("S"))
	side.IsOpen = true
	side.ShowOverlay = false
	side.PortalTarget = "sidebar"
	Mount(s, main)
	Mount(s, side)

	body := s.Render(DefaultPortalTarget, "", 3, 1)
	assert.Contains(t, body, "M")
	assert.NotContains(t, body, "S")

	sidebar := s.Render("sidebar", "", 3, 1)
	assert.Contains(t, sidebar, "S")
	assert.NotContains(t, sidebar, "M")
}

func TestStack_RenderWithoutOpenDialogsReturnsBackground(t *testing.T) {
	s := NewStack[string]()
	Mount(s, NewProps("a", Static("a")))
	assert.Equal(t, "bg", s.Render(DefaultPortalTarget, "bg", 10, 3))
}

func TestStack_SharedBrokerAndLogger(t *testing.T) {
	b := events.NewBroker()
	s := NewStack[string](WithBroker(b), WithLogger(slog.New(slog.DiscardHandler)))
	assert.Same(t, b, s.Events())

	ch := b.Subscribe(events.DialogOpenedEvent)
	s.Dialogs().Open("a")
	require.Len(t, ch, 1)
	assert.Equal(t, "a", (<-ch).Payload.(events.DialogPayload).DialogID)
}

func TestStack_UpdateReturnsItself(t *testing.T) {
	s := NewStack[string]()
	assert.Nil(t, s.Init())
	m, cmd := s.Update(Open("a")())
	assert.Same(t, s, m)
	assert.Nil(t, cmd)
	assert.True(t, s.Manager().IsActive("a"))
}
