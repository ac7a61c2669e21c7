package dialog

import "errors"

var (
	// ErrNoStack is returned when the accessor is requested from a context
	// that was never given a stack scope.
	ErrNoStack = errors.New("dialog: no stack in context")

	// ErrStackType is returned when the context holds a stack whose
	// identifier type differs from the requested one.
	ErrStackType = errors.New("dialog: stack identifier type mismatch")
)
