package dirwatch

import (
	"time"

	"github.com/twinpane/dirwatch/pkg/interfaces"
	"github.com/twinpane/dirwatch/pkg/types"
)

// session is everything the subsystem owns while enabled. It is created
// by SetEnabled(true) and dropped whole by SetEnabled(false); only the
// configuration survives a disable/enable cycle.
type session struct {
	notifier interfaces.Notifier
	slots    []*slot
	pending  map[*slot]struct{}

	// One one-shot timer models the global quiescence window. Each arm
	// replaces the timer and bumps the generation; a fire carrying a
	// stale generation is discarded in onTimer, so activity processed
	// after a fire was queued always gets the full interval.
	timer  *time.Timer
	armGen uint64
	armed  bool

	quiet bool
}

// slot tracks the watch state of one pane. Invariant: handle is set iff
// path is set.
type slot struct {
	pane   interfaces.Pane
	path   string
	handle types.WatchHandle
}

func (c *Controller) startup() {
	sess := &session{
		notifier: c.notifier,
		pending:  map[*slot]struct{}{},
	}
	for _, p := range c.panes {
		sess.slots = append(sess.slots, &slot{pane: p})
	}

	// The sink closure pins this session: batches submitted around a
	// disable are recognized as stale and dropped in onBatch.
	err := sess.notifier.Open(func(changed types.PathSet) {
		c.onBatch(sess, changed)
	})
	if err != nil {
		// Non-fatal by design. The feature stays inert and the
		// caller is not informed.
		c.log.Infow("Change notification unavailable, dynamic refresh disabled.",
			"error", err,
		)
		return
	}

	c.sess = sess
	c.refreshAll(sess)

	c.log.Debugw("Dirwatch enabled.")
}

func (c *Controller) teardown() {
	sess := c.sess
	c.sess = nil

	for _, s := range sess.slots {
		c.clearSlot(sess, s)
	}
	sess.notifier.Close()
	c.disarm(sess)
	clear(sess.pending)

	c.log.Debugw("Dirwatch disabled.")
}

// onBatch runs on the reactor goroutine for every drained batch. It only
// marks panes and rearms the timer; reloading waits for quiescence.
func (c *Controller) onBatch(sess *session, changed types.PathSet) {
	if c.sess != sess {
		return
	}

	for _, s := range sess.slots {
		// Each slot is tested independently: the notifier may hand
		// the same handle to both panes when they watch identical
		// paths, and one kernel event must mark both pending.
		if s.handle == types.NoWatch {
			continue
		}
		if !affects(changed, s.path) {
			continue
		}

		sess.pending[s] = struct{}{}
	}

	if len(sess.pending) > 0 {
		c.arm(sess)
	}
}
