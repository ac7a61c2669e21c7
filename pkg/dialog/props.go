package dialog

// Renderer draws a dialog's content for a viewport of the given size.
type Renderer func(width, height int) string

// Text renders s inside the default Frame.
func Text(s string) Renderer {
	return func(int, int) string {
		return Frame.Render(s)
	}
}

// Static renders s as-is.
func Static(s string) Renderer {
	return func(int, int) string {
		return s
	}
}

// Props configures a Dialog. Start from NewProps to get the defaults.
type Props[K comparable] struct {
	// ID identifies the dialog within its stack.
	ID K
	// IsOpen is the caller's desired state. Changes are reconciled into the
	// manager by Sync.
	IsOpen bool

	// OnOpen runs when the dialog becomes active.
	OnOpen func()
	// OnClose runs when the dialog stops being active, provided it was
	// open at least once.
	OnClose func()

	// CloseOnEsc lets ESC close the dialog while it is topmost.
	CloseOnEsc bool
	// OnEscPress runs right before an ESC-triggered close.
	OnEscPress func()

	// CloseOnOverlayClick closes the dialog when its overlay is clicked.
	CloseOnOverlayClick bool
	// OnOverlayClick runs right before an overlay-triggered close.
	OnOverlayClick func()

	// ShowOverlay wraps the content in an Overlay.
	ShowOverlay bool
	// Overlay is passed through to the overlay when ShowOverlay is set.
	Overlay OverlayProps

	// PortalTarget overrides the stack's insertion point for this dialog.
	PortalTarget string

	// Content draws the dialog body.
	Content Renderer
}

// NewProps returns props with CloseOnEsc, CloseOnOverlayClick and
// ShowOverlay enabled and the default backdrop style.
func NewProps[K comparable](id K, content Renderer) Props[K] {
	return Props[K]{
		ID:                  id,
		CloseOnEsc:          true,
		CloseOnOverlayClick: true,
		ShowOverlay:         true,
		Overlay:             OverlayProps{Style: OverlayBackdrop},
		Content:             content,
	}
}

func (p Props[K]) render(width, height int) string {
	if p.Content == nil {
		return ""
	}
	return p.Content(width, height)
}
