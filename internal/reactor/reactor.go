// Package reactor runs submitted callbacks on one goroutine, in order.
// It is the in-process stand-in for the host application's interactive
// event loop: anything that mutates dirwatch state goes through here.
package reactor

import (
	"context"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/twinpane/dirwatch/pkg/interfaces"
	"go.uber.org/zap"
)

const queueDepth = 64

type Reactor struct {
	queue chan func()
	log   *zap.SugaredLogger
}

var _ interfaces.Reactor = (*Reactor)(nil)

func New(opts ...Opt) (ret *Reactor, err error) {
	defer Wrap(&err, "create reactor")

	r := &Reactor{
		queue: make(chan func(), queueDepth),
	}
	for i := range opts {
		r, err = opts[i](r)
		if err != nil {
			return
		}
	}

	if r.log == nil {
		r.log = zap.NewNop().Sugar()
	}

	ret = r
	return
}

type Opt func(r *Reactor) (ret *Reactor, err error)

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(r *Reactor) (ret *Reactor, err error) {
		r.log = log
		ret = r
		return
	}
}

// Submit enqueues fn to run on the reactor goroutine. Blocks only when
// the queue is full.
func (r *Reactor) Submit(fn func()) {
	r.queue <- fn
}

// Run executes submitted callbacks until ctx is cancelled.
func (r *Reactor) Run(ctx context.Context) (err error) {
	defer Wrap(&err, "running reactor")

	r.log.Debugw("Reactor loop started.")

	for {
		select {
		case fn := <-r.queue:
			fn()
		case <-ctx.Done():
			err = ctx.Err()
			return
		}
	}
}
