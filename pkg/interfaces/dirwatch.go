package interfaces

// DirWatcher is the public surface of the change-notification and
// debounced-refresh subsystem. None of the operations return errors:
// every internal failure degrades to fewer automatic refreshes instead of
// surfacing to the user.
//
// All methods must be called on the reactor goroutine. The implementation
// holds no locks and is not safe for concurrent use.
type DirWatcher interface {
	// SetEnabled turns the whole subsystem on or off. Idempotent;
	// enabling while already enabled re-synchronizes every pane's
	// watch instead.
	SetEnabled(enabled bool)

	// SetQuiet suppresses or resumes flushing around bulk operations.
	// Collection continues while quiet; leaving quiet mode with
	// pending changes flushes synchronously.
	SetQuiet(quiet bool)

	// PaneDirChanged must be called whenever a pane's displayed
	// directory changes so its watch stays in sync.
	PaneDirChanged(pane Pane)
}
