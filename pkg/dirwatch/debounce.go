package dirwatch

import "time"

// arm starts or restarts the quiescence timer at the full configured
// interval, regardless of whether it was already running. Debounce is
// trailing-edge: a stream of events spaced closer than the interval
// keeps pushing the flush out until the stream stops.
func (c *Controller) arm(sess *session) {
	d := c.cfg.DebounceInterval()

	if sess.timer != nil {
		sess.timer.Stop()
	}

	// A fire that already made it onto the reactor queue cannot be
	// stopped anymore; bumping the generation makes onTimer discard
	// it.
	sess.armGen++
	gen := sess.armGen

	sess.timer = time.AfterFunc(d, func() {
		// Hop back onto the reactor goroutine.
		c.reactor.Submit(func() {
			c.onTimer(sess, gen)
		})
	})
	sess.armed = true
}

func (c *Controller) disarm(sess *session) {
	if sess.timer != nil {
		sess.timer.Stop()
	}
	sess.armGen++
	sess.armed = false
}

func (c *Controller) onTimer(sess *session, gen uint64) {
	// Drop fires that lost the race with a disable, a disarm or a
	// rearm.
	if c.sess != sess || gen != sess.armGen || !sess.armed {
		return
	}

	sess.armed = false

	if sess.quiet {
		// Keep the pending set; it is applied when quiet mode
		// ends.
		return
	}

	c.flush(sess)
}

// flush reloads every pending pane, then repaints once. Runs on timer
// fire when the quiet gate is open, and synchronously when the gate
// closes with changes pending.
func (c *Controller) flush(sess *session) {
	if len(sess.pending) == 0 {
		c.disarm(sess)
		return
	}

	reloaded := 0
	for _, s := range sess.slots {
		if _, ok := sess.pending[s]; !ok {
			continue
		}

		s.pane.Reload()
		reloaded++
	}
	clear(sess.pending)

	c.repaint()
	c.disarm(sess)

	c.log.Debugw("Flushed pending reloads.",
		"panes", reloaded,
	)
}
