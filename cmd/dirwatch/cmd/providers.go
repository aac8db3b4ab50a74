package cmd

import (
	"context"

	"github.com/google/wire"
	"github.com/twinpane/dirwatch/internal/demo/panes"
	"github.com/twinpane/dirwatch/internal/reactor"
	"github.com/twinpane/dirwatch/pkg/dirwatch"
	"github.com/twinpane/dirwatch/pkg/dirwatch/config"
	"github.com/twinpane/dirwatch/pkg/fsnotifier"
	"github.com/twinpane/dirwatch/pkg/interfaces"
	"go.uber.org/zap"
)

// paneDirs carries the two positional directory arguments into the
// injector.
type paneDirs struct {
	Left  string
	Right string
}

// repaintFunc is the global repaint trigger of the hosting application;
// the demo just logs once per flush.
type repaintFunc func()

func provideReactor(log *zap.SugaredLogger) (*reactor.Reactor, error) {
	return reactor.New(
		reactor.WithLogger(log),
	)
}

func provideNotifier(
	r *reactor.Reactor, log *zap.SugaredLogger,
) (
	interfaces.Notifier, error,
) {
	return fsnotifier.New(
		fsnotifier.WithReactor(r),
		fsnotifier.WithLogger(log),
	)
}

func providePanes(
	dirs paneDirs, log *zap.SugaredLogger,
) (
	ret []interfaces.Pane, err error,
) {
	left, err := panes.New("left", dirs.Left, log)
	if err != nil {
		return
	}

	right, err := panes.New("right", dirs.Right, log)
	if err != nil {
		return
	}

	ret = []interfaces.Pane{left, right}
	return
}

func provideRepaint(log *zap.SugaredLogger) repaintFunc {
	return func() {
		log.Infow("Repaint.")
	}
}

func provideDirWatcher(
	cfg *config.Config,
	r *reactor.Reactor,
	n interfaces.Notifier,
	repaint repaintFunc,
	ps []interfaces.Pane,
	log *zap.SugaredLogger,
) (
	interfaces.DirWatcher, error,
) {
	return dirwatch.New(
		dirwatch.WithConfig(cfg),
		dirwatch.WithReactor(r),
		dirwatch.WithNotifier(n),
		dirwatch.WithRepaint(repaint),
		dirwatch.WithPanes(ps...),
		dirwatch.WithLogger(log),
	)
}

func provideApp(
	cfg *config.Config,
	r *reactor.Reactor,
	w interfaces.DirWatcher,
	log *zap.SugaredLogger,
) *app {
	ctx, cancel := context.WithCancelCause(context.Background())

	return &app{
		cfg:     cfg,
		reactor: r,
		watcher: w,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}
}

var set = wire.NewSet(
	provideApp,
	provideDirWatcher,
	provideNotifier,
	providePanes,
	provideReactor,
	provideRepaint,
)
