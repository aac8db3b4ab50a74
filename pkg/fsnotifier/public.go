package fsnotifier

import (
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/fsnotify/fsnotify"
	"github.com/twinpane/dirwatch/pkg/interfaces"
	"github.com/twinpane/dirwatch/pkg/types"
)

func (n *Notifier) Open(sink interfaces.Sink) (err error) {
	defer Wrap(&err, "open filesystem notifier")

	if n.w != nil {
		err = ErrAlreadyOpen
		return
	}

	var w *fsnotify.Watcher
	w, err = fsnotify.NewWatcher()
	if err != nil {
		return
	}

	n.w = w

	go n.pump(w, sink)

	n.log.Debugw("Filesystem notifier opened.")

	return
}

func (n *Notifier) AddWatch(path string) (handle types.WatchHandle, err error) {
	defer Wrap(&err, "add watch")

	if n.w == nil {
		err = ErrNotOpen
		return
	}

	err = n.w.Add(path)
	if err != nil {
		return
	}

	// fsnotify keys subscriptions by path, so the path doubles as the
	// watch handle. Two panes on the same directory therefore share
	// one handle, exactly like inotify descriptors.
	handle = types.WatchHandle(path)

	n.log.Debugw("Watch installed.",
		"path", path,
	)

	return
}

func (n *Notifier) RemoveWatch(handle types.WatchHandle) (err error) {
	defer Wrap(&err, "remove watch")

	if n.w == nil || handle == types.NoWatch {
		return
	}

	// Best effort: the directory may already be gone, taking the
	// kernel watch with it.
	err = n.w.Remove(string(handle))
	return
}

func (n *Notifier) Close() {
	if n.w == nil {
		return
	}

	// Closing the watcher closes its channels, which stops the pump.
	err := n.w.Close()
	if err != nil {
		n.log.Debugw("Closing the filesystem notifier failed.",
			"error", err,
		)
	}
	n.w = nil

	n.log.Debugw("Filesystem notifier closed.")
}
