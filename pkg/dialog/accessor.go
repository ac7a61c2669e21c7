package dialog

import (
	"context"
	"fmt"
)

// Dialogs is the view of a stack handed to arbitrary consumers. It can open
// and close dialogs and read state, but not register or unregister them.
type Dialogs[K comparable] struct {
	manager *Manager[K]
}

// Open opens id on top of the stack.
func (d Dialogs[K]) Open(id K) { d.manager.Open(id) }

// Close closes id.
func (d Dialogs[K]) Close(id K) { d.manager.Close(id) }

// CloseAll closes every dialog.
func (d Dialogs[K]) CloseAll() { d.manager.CloseAll() }

// CloseCurrent closes the topmost dialog.
func (d Dialogs[K]) CloseCurrent() { d.manager.CloseCurrent() }

// CloseAtIndex closes every dialog from index upwards.
func (d Dialogs[K]) CloseAtIndex(index int) { d.manager.CloseAtIndex(index) }

// State returns a snapshot of every registered dialog.
func (d Dialogs[K]) State() map[K]Record { return d.manager.State() }

// Current returns the topmost open dialog.
func (d Dialogs[K]) Current() (K, bool) { return d.manager.Current() }

type stackKey struct{}

// WithStack returns a copy of ctx carrying s as the enclosing stack scope.
func WithStack[K comparable](ctx context.Context, s *Stack[K]) context.Context {
	return context.WithValue(ctx, stackKey{}, s)
}

// FromContext returns the stack scope carried by ctx.
func FromContext[K comparable](ctx context.Context) (*Stack[K], error) {
	v := ctx.Value(stackKey{})
	if v == nil {
		return nil, ErrNoStack
	}
	s, ok := v.(*Stack[K])
	if !ok {
		var zero K
		return nil, fmt.Errorf("%w: context holds %T, want identifier type %T", ErrStackType, v, zero)
	}
	return s, nil
}

// UseDialogs returns the accessor of the stack scope carried by ctx. Using
// it outside a scope is a programming error reported as ErrNoStack.
func UseDialogs[K comparable](ctx context.Context) (Dialogs[K], error) {
	s, err := FromContext[K](ctx)
	if err != nil {
		return Dialogs[K]{}, fmt.Errorf("use dialogs: %w", err)
	}
	return s.Dialogs(), nil
}
