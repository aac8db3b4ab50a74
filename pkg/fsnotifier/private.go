package fsnotifier

import (
	"github.com/fsnotify/fsnotify"
	"github.com/twinpane/dirwatch/pkg/interfaces"
	"github.com/twinpane/dirwatch/pkg/types"
)

// listingOps are the operations that can change what a directory listing
// shows. Plain content writes are deliberately excluded so that a long
// running download does not thrash the pane.
const listingOps = fsnotify.Create |
	fsnotify.Remove |
	fsnotify.Rename |
	fsnotify.Chmod

// pump runs on its own goroutine for the lifetime of one open watcher.
// Each wakeup drains every immediately available event into a single
// batch before handing it to the reactor, so a burst of kernel events
// costs one callback, not one per event.
func (n *Notifier) pump(w *fsnotify.Watcher, sink interfaces.Sink) {
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}

			batch := types.PathSet{}
			n.collect(batch, ev)
			if !n.drain(w, batch) {
				return
			}

			n.deliver(batch, sink)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}

			n.log.Debugw("Filesystem notifier backend error.",
				"error", err,
			)
		}
	}
}

// drain keeps reading until no more events are available. Reports false
// when the watcher has been closed under us.
func (n *Notifier) drain(w *fsnotify.Watcher, batch types.PathSet) bool {
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return false
			}

			n.collect(batch, ev)

		case err, ok := <-w.Errors:
			if !ok {
				return false
			}

			n.log.Debugw("Filesystem notifier backend error.",
				"error", err,
			)

		default:
			return true
		}
	}
}

func (n *Notifier) collect(batch types.PathSet, ev fsnotify.Event) {
	if ev.Op&listingOps == 0 {
		return
	}

	batch.Add(ev.Name)
}

func (n *Notifier) deliver(batch types.PathSet, sink interfaces.Sink) {
	if len(batch) == 0 {
		return
	}

	n.log.Debugw("Change batch drained.",
		"paths", len(batch),
	)

	n.reactor.Submit(func() {
		sink(batch)
	})
}
