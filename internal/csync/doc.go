// Package csync provides small thread-safe generic collections.
//
// The dialog stack keeps its registry of mounted dialog controllers in a Map,
// and the event broker keeps its bounded event history in a Slice. Both are
// touched from the tea update loop and from command goroutines, so every
// operation takes the collection's RWMutex.
//
// Example usage:
//
//	mounted := csync.NewMap[string, *Controller]()
//	mounted.Set("confirm", c)
//	if c, ok := mounted.Get("confirm"); ok {
//		// use c
//	}
//
//	history := csync.NewSlice[Event]()
//	history.Append(ev)
//	history.TrimFront(history.Len() - 100)
package csync
