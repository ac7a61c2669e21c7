package dialog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type screen int

const (
	settingsScreen screen = iota
	confirmScreen
)

func TestUseDialogs_OutsideStack(t *testing.T) {
	_, err := UseDialogs[string](context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoStack)
}

func TestUseDialogs_WrongIdentifierType(t *testing.T) {
	ctx := WithStack(context.Background(), NewStack[string]())

	_, err := UseDialogs[screen](ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStackType)
	assert.NotErrorIs(t, err, ErrNoStack)
}

func TestUseDialogs_ControlsEnclosingStack(t *testing.T) {
	s := NewStack[screen]()
	ctx := WithStack(context.Background(), s)

	dialogs, err := UseDialogs[screen](ctx)
	require.NoError(t, err)

	dialogs.Open(settingsScreen)
	dialogs.Open(confirmScreen)
	cur, ok := dialogs.Current()
	require.True(t, ok)
	assert.Equal(t, confirmScreen, cur)

	dialogs.CloseAtIndex(1)
	assert.Equal(t, []screen{settingsScreen}, s.Manager().OpenStack())

	dialogs.CloseCurrent()
	assert.False(t, dialogs.State()[settingsScreen].Active)

	dialogs.Open(settingsScreen)
	dialogs.Close(settingsScreen)
	dialogs.Open(confirmScreen)
	dialogs.CloseAll()
	assert.Empty(t, s.Manager().OpenStack())
}

func TestFromContext_InnermostStackWins(t *testing.T) {
	outer := NewStack[string]()
	inner := NewStack[string]()
	ctx := WithStack(WithStack(context.Background(), outer), inner)

	got, err := FromContext[string](ctx)
	require.NoError(t, err)
	assert.Same(t, inner, got)
}
