package cmd

import (
	"context"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/sourcegraph/conc/pool"
	"github.com/twinpane/dirwatch/internal/reactor"
	"github.com/twinpane/dirwatch/pkg/dirwatch/config"
	"github.com/twinpane/dirwatch/pkg/interfaces"
	"go.uber.org/zap"
)

// app wires the demo together: one reactor goroutine driving the
// controller over two local-directory panes.
type app struct {
	cfg     *config.Config
	reactor *reactor.Reactor
	watcher interfaces.DirWatcher
	log     *zap.SugaredLogger

	ctx    context.Context
	cancel context.CancelCauseFunc
}

func (a *app) Run() (err error) {
	defer Wrap(&err, "running dirwatch demo")

	p := pool.New().
		WithContext(a.ctx).
		WithCancelOnError()

	p.Go(a.reactor.Run)

	if a.cfg.Enabled {
		a.reactor.Submit(func() {
			a.watcher.SetEnabled(true)
		})
	} else {
		a.log.Infow("Watcher disabled by configuration.")
	}

	err = p.Wait()
	if err == nil {
		return
	}

	// Surface the stop cause (e.g. the signal) instead of the bare
	// context cancellation the reactor reports.
	if cause := context.Cause(a.ctx); cause != nil {
		err = cause
	}

	return
}

// Stop cancels the run with the given cause. Safe to call from any
// goroutine.
func (a *app) Stop(err error) {
	a.cancel(err)
}
