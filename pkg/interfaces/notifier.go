package interfaces

import "github.com/twinpane/dirwatch/pkg/types"

// Sink receives one drained batch of change notifications. It is always
// invoked on the reactor goroutine.
type Sink func(changed types.PathSet)

// Notifier is the change-notification source capability. The native
// variant wraps the OS primitive; the no-op variant never reports events
// so the controller behaves identically on unsupported platforms.
type Notifier interface {
	// Open acquires the notification resource and starts delivering
	// drained batches to sink. Fails when the platform lacks the
	// primitive or resource creation fails; the caller treats any
	// error as "unavailable" and degrades, never as fatal.
	Open(sink Sink) error

	// AddWatch begins monitoring one directory for entry creation,
	// deletion, renames in and out, deletion of the directory itself
	// and attribute changes. A failure is recoverable: the affected
	// pane is simply left unwatched.
	AddWatch(path string) (types.WatchHandle, error)

	// RemoveWatch stops monitoring. Best effort: the returned error is
	// discardable and callers are expected to ignore it.
	RemoveWatch(handle types.WatchHandle) error

	// Close releases the resource. Safe to call when not open.
	Close()
}
