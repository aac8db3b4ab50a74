package fsnotifier

import (
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/fsnotify/fsnotify"
	"github.com/twinpane/dirwatch/pkg/interfaces"
	"go.uber.org/zap"
)

// Notifier is the native change-notification source. It wraps fsnotify
// and turns its raw event stream into deduplicated batches delivered on
// the reactor goroutine.
//
// Open, AddWatch, RemoveWatch and Close must all be called on the reactor
// goroutine.
type Notifier struct {
	reactor interfaces.Reactor
	log     *zap.SugaredLogger

	w *fsnotify.Watcher
}

var _ interfaces.Notifier = (*Notifier)(nil)

func New(opts ...Opt) (ret *Notifier, err error) {
	defer Wrap(&err, "create filesystem notifier")

	n := &Notifier{}
	for i := range opts {
		n, err = opts[i](n)
		if err != nil {
			return
		}
	}

	if n.reactor == nil {
		err = ErrReactorMissing
		return
	}

	if n.log == nil {
		n.log = zap.NewNop().Sugar()
	}

	ret = n

	n.log.Debugw("Create a new filesystem notifier.")

	return
}

type Opt func(n *Notifier) (ret *Notifier, err error)

func WithReactor(r interfaces.Reactor) Opt {
	return func(n *Notifier) (ret *Notifier, err error) {
		if r == nil {
			err = ErrReactorMissing
			return
		}

		n.reactor = r
		ret = n
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(n *Notifier) (ret *Notifier, err error) {
		n.log = log
		ret = n
		return
	}
}
