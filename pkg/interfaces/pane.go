package interfaces

import "github.com/twinpane/dirwatch/pkg/types"

// Pane is one displayed directory view of the hosting file manager. The
// subsystem never owns panes; it only queries their current state and asks
// them to reload. All methods are invoked synchronously on the reactor
// goroutine and must not block.
type Pane interface {
	// DisplayKind reports what the pane is currently showing.
	DisplayKind() types.DisplayKind

	// CurrentPath returns the local filesystem path backing the pane's
	// listing. ok is false when the pane shows a remote, archival or
	// otherwise virtual location, or no directory at all.
	CurrentPath() (path string, ok bool)

	// Reload re-reads the pane's directory contents. Bounded and
	// non-blocking by contract.
	Reload()
}
