// Package dialog coordinates a stack of modal dialogs inside a Bubble Tea
// program.
//
// A Stack is one stacking scope. It owns a Manager, the single source of
// truth for which dialogs are registered, which are open and in what order.
// Dialog controllers mount into a Stack, register themselves by identifier
// and reconcile a declarative IsOpen flag into Manager state. Everything else
// in the program talks to the stack through the restricted Dialogs accessor.
//
// # Quick Start
//
//	stack := dialog.NewStack[string](dialog.WithEscapeTrigger(dialog.EscapeOnPress))
//	confirm := dialog.Mount(stack, dialog.NewProps("confirm", dialog.Text("Delete?")))
//
//	// In Update():
//	if stack.Handle(msg) {
//	    return m, nil
//	}
//	case "d":
//	    stack.Dialogs().Open("confirm")
//
//	// In View():
//	content := stack.View(background)
//
// # Stacking
//
// Opening a dialog puts it on top of the open stack. ESC closes the topmost
// dialog when it was registered with CloseOnEsc. A click on a dialog's
// overlay (and not on its content) closes that dialog when
// CloseOnOverlayClick is set.
//
// # Notifications
//
// Controllers get OnOpen/OnClose callbacks synchronously. Every Manager
// mutation is also published on the stack's events.Broker for consumers that
// prefer channels or tea commands.
package dialog
