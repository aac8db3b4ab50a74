package dirwatch

import (
	"github.com/twinpane/dirwatch/pkg/interfaces"
)

// SetEnabled turns the subsystem on or off. Idempotent: enabling while
// already enabled re-synchronizes every pane's watch against its current
// directory instead, which covers external state drift.
//
// Enabling never fails from the caller's point of view. When the
// change-notification resource cannot be acquired the subsystem silently
// stays inert for the rest of the session.
func (c *Controller) SetEnabled(enabled bool) {
	if enabled == (c.sess != nil) {
		if enabled {
			c.refreshAll(c.sess)
		}
		return
	}

	if !enabled {
		c.teardown()
		return
	}

	c.startup()
}

// SetQuiet suppresses or resumes flushing. While quiet, change collection
// continues but no reload or repaint happens. Leaving quiet mode with
// pending changes flushes them synchronously before returning. No-op
// while disabled or when the value does not change.
func (c *Controller) SetQuiet(quiet bool) {
	sess := c.sess
	if sess == nil || sess.quiet == quiet {
		return
	}

	sess.quiet = quiet

	c.log.Debugw("Quiet gate toggled.",
		"quiet", quiet,
		"pending", len(sess.pending),
	)

	if !quiet && len(sess.pending) > 0 {
		c.flush(sess)
	}
}

// PaneDirChanged re-synchronizes the watch of one pane after its
// displayed directory changed. No-op while disabled.
func (c *Controller) PaneDirChanged(pane interfaces.Pane) {
	sess := c.sess
	if sess == nil {
		return
	}

	for _, s := range sess.slots {
		if s.pane != pane {
			continue
		}

		c.refreshSlot(sess, s)
		return
	}

	c.log.Debugw("Directory change reported for an unknown pane.")
}
