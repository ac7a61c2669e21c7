package options

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestList() *Model {
	return New(
		Option{Key: "esc", Label: "Close on ESC", On: true},
		Option{Key: "overlay", Label: "Show overlay"},
	)
}

func TestToggleEmitsChange(t *testing.T) {
	m := newTestList()

	_, cmd := m.Update(press(tea.KeyDown))
	assert.Nil(t, cmd)
	_, cmd = m.Update(press(tea.KeySpace))
	require.NotNil(t, cmd)

	msg, ok := cmd().(ChangedMsg)
	require.True(t, ok)
	assert.Equal(t, "overlay", msg.Option.Key)
	assert.True(t, msg.Option.On)
	assert.True(t, m.Value("overlay"))
	assert.True(t, m.Value("esc"))
	assert.False(t, m.Value("missing"))
}

func TestCursorWraps(t *testing.T) {
	m := newTestList()

	m.Update(press(tea.KeyUp))
	_, cmd := m.Update(press(tea.KeySpace))
	require.NotNil(t, cmd)
	assert.Equal(t, "overlay", cmd().(ChangedMsg).Option.Key)
}

func TestBlurredIgnoresKeys(t *testing.T) {
	m := newTestList()
	m.Blur()

	_, cmd := m.Update(press(tea.KeySpace))
	assert.Nil(t, cmd)
	assert.True(t, m.Value("esc"))
}

func TestIgnoresNonPressMessages(t *testing.T) {
	m := newTestList()

	for _, msg := range []tea.Msg{
		tea.WindowSizeMsg{Width: 80, Height: 24},
		tea.KeyReleaseMsg{Code: tea.KeySpace},
		tea.MouseClickMsg{X: 1, Y: 1, Button: tea.MouseLeft},
	} {
		_, cmd := m.Update(msg)
		assert.Nil(t, cmd)
	}
	assert.True(t, m.Value("esc"))

	// The list still reacts to presses afterwards.
	_, cmd := m.Update(press(tea.KeySpace))
	require.NotNil(t, cmd)
	assert.False(t, m.Value("esc"))
}

func TestView(t *testing.T) {
	view := ansi.Strip(newTestList().View())
	assert.Equal(t, "> [x] Close on ESC\n  [ ] Show overlay", view)
}

func TestSet(t *testing.T) {
	m := newTestList()

	assert.True(t, m.Set("overlay", true))
	assert.True(t, m.Value("overlay"))
	assert.False(t, m.Set("missing", true))
	assert.Len(t, m.Options(), 2)
}
