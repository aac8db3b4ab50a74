package dirwatch

import (
	"path/filepath"

	"github.com/twinpane/dirwatch/pkg/interfaces"
	"github.com/twinpane/dirwatch/pkg/types"
)

func (c *Controller) refreshAll(sess *session) {
	for _, s := range sess.slots {
		c.refreshSlot(sess, s)
	}
}

// refreshSlot idempotently synchronizes one pane's slot against what the
// pane currently displays.
func (c *Controller) refreshSlot(sess *session, s *slot) {
	path, watchable := paneWatchPath(s.pane)

	if !watchable {
		c.clearSlot(sess, s)
		return
	}

	if s.handle != types.NoWatch && s.path == path {
		return
	}

	c.clearSlot(sess, s)

	handle, err := sess.notifier.AddWatch(path)
	if err != nil {
		// Recoverable: the pane stays unwatched and the add is
		// retried the next time its directory changes.
		c.log.Debugw("Failed to install a watch, pane left unwatched.",
			"path", path,
			"error", err,
		)
		return
	}

	s.path = path
	s.handle = handle
}

// clearSlot drops the slot's watch, keeping the shared kernel watch alive
// when another pane still uses the same handle.
func (c *Controller) clearSlot(sess *session, s *slot) {
	if s.handle != types.NoWatch && !handleShared(sess, s) {
		// Best effort; the watch may already be gone.
		_ = sess.notifier.RemoveWatch(s.handle)
	}

	s.path = ""
	s.handle = types.NoWatch
}

func handleShared(sess *session, s *slot) bool {
	for _, other := range sess.slots {
		if other != s && other.handle == s.handle {
			return true
		}
	}
	return false
}

// paneWatchPath decides watchability: only a plain listing of a local
// directory can be watched. Panelized, info, tree and quick-view panes,
// and any remote or archival location, are not.
func paneWatchPath(p interfaces.Pane) (string, bool) {
	if p.DisplayKind() != types.DisplayKindListing {
		return "", false
	}

	path, ok := p.CurrentPath()
	if !ok || path == "" {
		return "", false
	}

	// Panes are free to report trailing slashes; watch state and event
	// matching both need the canonical form.
	return filepath.Clean(path), true
}

// affects reports whether a drained batch touches the watched directory:
// either an entry inside it changed or the directory itself did.
func affects(changed types.PathSet, dir string) bool {
	if changed.Contains(dir) {
		return true
	}

	for p := range changed {
		if filepath.Dir(p) == dir {
			return true
		}
	}
	return false
}
