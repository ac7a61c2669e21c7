// Package watcher reports file system changes with debouncing.
//
// # Overview
//
// Editors rarely write a file once. They truncate, write, rename a swap
// file over it and touch it again. FileWatcher collects those bursts and
// reports the changed paths once things have been quiet for the debounce
// delay.
//
// # Key Features
//
//   - fsnotify backed watching of single files or whole directories
//   - Debounced change detection (configurable delay)
//   - Path filtering (editor swap files, temp files, hidden files)
//   - Stop is safe to call more than once
//
// # Usage in dialogstack
//
// The demo watches its config file and applies edits while it runs:
//
//	w, err := watcher.New(300*time.Millisecond, func(paths []string) {
//	    program.Send(reloadConfig())
//	})
//	if err != nil {
//	    return err
//	}
//	defer w.Stop()
//	_ = w.Watch(configPath)
package watcher
