package dirwatch

import (
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/twinpane/dirwatch/pkg/dirwatch/config"
	"github.com/twinpane/dirwatch/pkg/fsnotifier"
	"github.com/twinpane/dirwatch/pkg/interfaces"
	"go.uber.org/zap"
)

// Controller is the entry point of the change-notification and
// debounced-refresh subsystem. It keeps each displayed pane's watch in
// sync with the directory it shows, coalesces bursts of raw events into
// one deferred reload per pane, and withholds reloads while a bulk
// operation asked for quiet.
//
// Every method must be called on the reactor goroutine. The controller
// holds no locks; the single reactor goroutine is the only thing that
// ever touches its state.
type Controller struct {
	cfg      *config.Config
	reactor  interfaces.Reactor
	notifier interfaces.Notifier
	repaint  func()
	panes    []interfaces.Pane
	log      *zap.SugaredLogger

	// sess is nil exactly while the subsystem is disabled. Everything
	// the subsystem owns lives in the session, so disable is a single
	// pointer drop after teardown.
	sess *session
}

var _ interfaces.DirWatcher = (*Controller)(nil)

type Opt func(c *Controller) (ret *Controller, err error)

func New(opts ...Opt) (ret *Controller, err error) {
	defer Wrap(&err, "create dirwatch controller")

	c := &Controller{}
	for i := range opts {
		c, err = opts[i](c)
		if err != nil {
			return
		}
	}

	if c.log == nil {
		c.log = zap.NewNop().Sugar()
	}

	if c.cfg == nil {
		err = ErrConfigMissing
		return
	}

	if c.reactor == nil {
		err = ErrReactorMissing
		return
	}

	if c.repaint == nil {
		err = ErrRepaintMissing
		return
	}

	if c.notifier == nil {
		c.notifier, err = fsnotifier.New(
			fsnotifier.WithReactor(c.reactor),
			fsnotifier.WithLogger(c.log),
		)
		if err != nil {
			return
		}
	}

	ret = c

	c.log.Debugw("Create a new dirwatch controller.",
		"panes", len(c.panes),
	)

	return
}

func WithConfig(cfg *config.Config) Opt {
	return func(c *Controller) (ret *Controller, err error) {
		c.cfg = cfg
		ret = c
		return
	}
}

func WithReactor(r interfaces.Reactor) Opt {
	return func(c *Controller) (ret *Controller, err error) {
		if r == nil {
			err = ErrReactorMissing
			return
		}

		c.reactor = r
		ret = c
		return
	}
}

// WithNotifier overrides the change-notification source. When omitted the
// controller uses the native fsnotify backend.
func WithNotifier(n interfaces.Notifier) Opt {
	return func(c *Controller) (ret *Controller, err error) {
		if n == nil {
			err = ErrNotifierMissing
			return
		}

		c.notifier = n
		ret = c
		return
	}
}

// WithRepaint installs the global repaint trigger invoked once per flush.
func WithRepaint(fn func()) Opt {
	return func(c *Controller) (ret *Controller, err error) {
		if fn == nil {
			err = ErrRepaintMissing
			return
		}

		c.repaint = fn
		ret = c
		return
	}
}

// WithPanes declares the displayed panes the controller keeps watches
// for. Pane values are compared by identity in PaneDirChanged, so the
// caller must pass the same values there.
func WithPanes(panes ...interfaces.Pane) Opt {
	return func(c *Controller) (ret *Controller, err error) {
		for i := range panes {
			if panes[i] == nil {
				err = ErrPaneMissing
				return
			}
		}

		c.panes = panes
		ret = c
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(c *Controller) (ret *Controller, err error) {
		c.log = log
		ret = c
		return
	}
}
