package dirwatch_test

import (
	"sync"
	"sync/atomic"

	"github.com/twinpane/dirwatch/pkg/fsnotifier"
	"github.com/twinpane/dirwatch/pkg/interfaces"
	"github.com/twinpane/dirwatch/pkg/types"
)

// fakePane is a pane the specs can steer. Reload runs on the reactor
// goroutine while assertions happen on the test goroutine, hence the
// atomic counter. Kind and path are only mutated through submitted
// callbacks.
type fakePane struct {
	kind    types.DisplayKind
	path    string
	virtual bool

	reloads atomic.Int32
}

var _ interfaces.Pane = (*fakePane)(nil)

func newFakePane(path string) *fakePane {
	return &fakePane{
		kind: types.DisplayKindListing,
		path: path,
	}
}

func (p *fakePane) DisplayKind() types.DisplayKind { return p.kind }

func (p *fakePane) CurrentPath() (string, bool) {
	if p.virtual || p.path == "" {
		return "", false
	}
	return p.path, true
}

func (p *fakePane) Reload() { p.reloads.Add(1) }

func (p *fakePane) Reloads() int32 { return p.reloads.Load() }

// stepReactor queues submitted callbacks until the spec pumps them, so
// a timer fire and the batch that outran it can be interleaved exactly.
// The spec goroutine doubles as the reactor goroutine.
type stepReactor struct {
	mu    sync.Mutex
	queue []func()
}

var _ interfaces.Reactor = (*stepReactor)(nil)

func (r *stepReactor) Submit(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, fn)
}

func (r *stepReactor) pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}

// take removes the oldest queued callback without running it.
func (r *stepReactor) take() func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		return nil
	}
	fn := r.queue[0]
	r.queue = r.queue[1:]
	return fn
}

// pump runs queued callbacks until the queue is momentarily empty.
func (r *stepReactor) pump() {
	for {
		fn := r.take()
		if fn == nil {
			return
		}
		fn()
	}
}

// fakeNotifier records watch traffic and lets the specs inject drained
// batches the way the real pump would: through the reactor.
type fakeNotifier struct {
	reactor interfaces.Reactor

	mu          sync.Mutex
	sink        interfaces.Sink
	opens       int
	closes      int
	adds        []string
	removes     []types.WatchHandle
	failPaths   map[string]bool
	unavailable bool
}

var _ interfaces.Notifier = (*fakeNotifier)(nil)

func newFakeNotifier(r interfaces.Reactor) *fakeNotifier {
	return &fakeNotifier{
		reactor:   r,
		failPaths: map[string]bool{},
	}
}

func (n *fakeNotifier) Open(sink interfaces.Sink) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.unavailable {
		return fsnotifier.ErrUnavailable
	}

	n.sink = sink
	n.opens++
	return nil
}

func (n *fakeNotifier) AddWatch(path string) (types.WatchHandle, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.failPaths[path] {
		return types.NoWatch, fsnotifier.ErrNotOpen
	}

	n.adds = append(n.adds, path)
	return types.WatchHandle(path), nil
}

func (n *fakeNotifier) RemoveWatch(handle types.WatchHandle) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.removes = append(n.removes, handle)
	return nil
}

func (n *fakeNotifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.sink = nil
	n.closes++
}

// emit delivers one drained batch on the reactor goroutine, mirroring
// the real pump. Silently dropped when the notifier is closed.
func (n *fakeNotifier) emit(paths ...string) {
	n.mu.Lock()
	sink := n.sink
	n.mu.Unlock()

	if sink == nil {
		return
	}

	batch := types.PathSet{}
	for i := range paths {
		batch.Add(paths[i])
	}

	n.reactor.Submit(func() {
		sink(batch)
	})
}

func (n *fakeNotifier) Opens() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.opens
}

func (n *fakeNotifier) Closes() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.closes
}

func (n *fakeNotifier) Adds() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.adds...)
}

func (n *fakeNotifier) Removes() []types.WatchHandle {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]types.WatchHandle(nil), n.removes...)
}

func (n *fakeNotifier) failOn(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failPaths[path] = true
}

func (n *fakeNotifier) healPath(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.failPaths, path)
}
