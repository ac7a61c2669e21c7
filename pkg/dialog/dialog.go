package dialog

import (
	"context"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/qmuntal/stateless"
)

type lifecycleState string

const (
	stateUnregistered lifecycleState = "unregistered"
	stateClosed       lifecycleState = "closed"
	stateOpen         lifecycleState = "open"
)

type lifecycleTrigger string

const (
	triggerRegister   lifecycleTrigger = "register"
	triggerActivate   lifecycleTrigger = "activate"
	triggerDeactivate lifecycleTrigger = "deactivate"
	triggerUnregister lifecycleTrigger = "unregister"
)

// Dialog is the controller of one dialog in a Stack. It registers itself on
// Mount, unregisters on Unmount, reconciles Props.IsOpen into the manager and
// fires OnOpen/OnClose when the manager flips its active state.
type Dialog[K comparable] struct {
	stack   *Stack[K]
	props   Props[K]
	overlay *Overlay
	frame   Rect

	// Transitions fired from inside a callback are queued, so the lifecycle
	// state can lag behind the manager. registered and active track what
	// has been fired so far and are what observe compares against.
	lifecycle  *stateless.StateMachine
	registered bool
	active     bool

	// opened is set the first time the dialog becomes active and never
	// cleared; OnClose and IsOpen=false closes both depend on it.
	opened  bool
	mounted bool
	token   int
}

// Mount registers a dialog described by props in s. An initial IsOpen of
// true opens it right away.
func Mount[K comparable](s *Stack[K], props Props[K]) *Dialog[K] {
	d := &Dialog[K]{
		stack:   s,
		props:   props,
		overlay: NewOverlay(props.Overlay),
	}
	d.lifecycle = d.newLifecycle()
	d.mounted = true
	d.token = s.manager.watch(d.observe)

	s.mount(d)
	d.register()

	if props.IsOpen {
		s.manager.Open(props.ID)
	}
	return d
}

// Sync reconciles new props against the previous ones. A changed ID or
// CloseOnEsc re-registers the dialog. A changed IsOpen opens it, or closes
// it when it has been open before.
func (d *Dialog[K]) Sync(props Props[K]) {
	if !d.mounted {
		return
	}

	prev := d.props
	moved := prev.ID != props.ID
	reregister := moved || prev.CloseOnEsc != props.CloseOnEsc
	if moved {
		d.stack.unmount(d)
		d.unregister()
	}

	d.props = props
	d.overlay.props = props.Overlay

	if moved {
		d.stack.mount(d)
	}
	if reregister {
		// Same id: Register keeps an open dialog active and in place.
		d.register()
	}

	if prev.IsOpen != props.IsOpen {
		d.applyIsOpen()
	}
}

// Unmount unregisters the dialog. No lifecycle callback runs afterwards.
func (d *Dialog[K]) Unmount() {
	if !d.mounted {
		return
	}
	d.mounted = false
	d.stack.manager.unwatch(d.token)
	d.stack.unmount(d)
	d.stack.manager.Unregister(d.props.ID)
	d.registered = false
	d.active = false
	d.fire(triggerUnregister)
}

// ID returns the identifier the dialog is registered under.
func (d *Dialog[K]) ID() K {
	return d.props.ID
}

// Props returns the props from the last Mount or Sync.
func (d *Dialog[K]) Props() Props[K] {
	return d.props
}

// IsOpen reports whether the manager considers the dialog active.
func (d *Dialog[K]) IsOpen() bool {
	return d.stack.manager.IsActive(d.props.ID)
}

// HasBeenOpen reports whether the dialog was ever active since Mount.
func (d *Dialog[K]) HasBeenOpen() bool {
	return d.opened
}

// Overlay returns the dialog's overlay.
func (d *Dialog[K]) Overlay() *Overlay {
	return d.overlay
}

// Frame returns where the content was drawn at the last View.
func (d *Dialog[K]) Frame() Rect {
	return d.frame
}

// Target returns the portal target the dialog renders into.
func (d *Dialog[K]) Target() string {
	if d.props.PortalTarget != "" {
		return d.props.PortalTarget
	}
	return d.stack.PortalTarget()
}

// View renders the dialog for a width×height viewport. It returns "" while
// the dialog is not active.
func (d *Dialog[K]) View(width, height int) string {
	if !d.IsOpen() {
		return ""
	}

	content := d.props.render(width, height)
	if d.props.ShowOverlay {
		view := d.overlay.Render(width, height, content)
		d.frame = d.overlay.ContentBounds()
		return view
	}

	d.frame = centered(width, height, lipgloss.Width(content), lipgloss.Height(content))
	return content
}

// HandleClick applies the overlay click policy to a click at (x, y) and
// reports whether the dialog consumed it. Clicks on the content are consumed
// but never dismiss the dialog.
func (d *Dialog[K]) HandleClick(x, y int) bool {
	switch d.hit(x, y) {
	case TargetContent:
		return true
	case TargetOverlay:
		if d.props.CloseOnOverlayClick {
			if d.props.OnOverlayClick != nil {
				d.props.OnOverlayClick()
			}
			d.stack.manager.Close(d.props.ID)
		}
		return true
	default:
		return false
	}
}

func (d *Dialog[K]) hit(x, y int) HitTarget {
	if !d.IsOpen() {
		return TargetNone
	}
	if d.props.ShowOverlay {
		return d.overlay.Target(x, y)
	}
	if d.frame.Contains(x, y) {
		return TargetContent
	}
	return TargetNone
}

func (d *Dialog[K]) register() {
	d.stack.manager.Register(d.props.ID, d.props.CloseOnEsc, d.props.OnEscPress)
	if !d.registered {
		d.registered = true
		d.fire(triggerRegister)
	}
	d.observe()
}

// unregister drops the registration. An open dialog is closed by the
// manager first, which fires OnClose through observe.
func (d *Dialog[K]) unregister() {
	d.stack.manager.Unregister(d.props.ID)
	d.registered = false
	d.active = false
	d.fire(triggerUnregister)
}

func (d *Dialog[K]) applyIsOpen() {
	if d.props.IsOpen {
		d.stack.manager.Open(d.props.ID)
		return
	}
	if !d.opened {
		return
	}
	d.stack.manager.Close(d.props.ID)
}

// observe runs after every manager change and moves the lifecycle to match
// the record's active flag. It may run from inside OnOpen or OnClose.
func (d *Dialog[K]) observe() {
	if !d.mounted || !d.registered {
		return
	}

	active := d.IsOpen()
	if active == d.active {
		return
	}
	d.active = active
	if active {
		d.opened = true
		d.fire(triggerActivate)
		return
	}
	d.fire(triggerDeactivate)
}

func (d *Dialog[K]) state() lifecycleState {
	return d.lifecycle.MustState().(lifecycleState)
}

func (d *Dialog[K]) fire(trigger lifecycleTrigger) {
	if err := d.lifecycle.Fire(trigger); err != nil {
		d.stack.logger.Warn("dialog lifecycle transition failed",
			"id", d.props.ID,
			"state", d.state(),
			"trigger", trigger,
			"error", err)
	}
}

func (d *Dialog[K]) newLifecycle() *stateless.StateMachine {
	sm := stateless.NewStateMachine(stateUnregistered)

	sm.Configure(stateUnregistered).
		Permit(triggerRegister, stateClosed).
		Ignore(triggerActivate).
		Ignore(triggerDeactivate).
		Ignore(triggerUnregister)

	sm.Configure(stateClosed).
		Permit(triggerActivate, stateOpen).
		Permit(triggerUnregister, stateUnregistered).
		Ignore(triggerRegister).
		Ignore(triggerDeactivate).
		OnEntryFrom(triggerDeactivate, func(context.Context, ...any) error {
			if d.mounted && d.props.OnClose != nil {
				d.props.OnClose()
			}
			return nil
		})

	sm.Configure(stateOpen).
		Permit(triggerDeactivate, stateClosed).
		Permit(triggerUnregister, stateUnregistered).
		Ignore(triggerRegister).
		Ignore(triggerActivate).
		OnEntry(func(context.Context, ...any) error {
			if d.mounted && d.props.OnOpen != nil {
				d.props.OnOpen()
			}
			return nil
		})

	return sm
}
