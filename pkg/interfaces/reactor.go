package interfaces

// Reactor is the single-threaded event loop of the hosting application.
// Everything this subsystem does happens on the reactor goroutine: the
// notifier and the debounce timer deliver their callbacks through Submit,
// and the public controller operations must themselves be called on it.
//
// Submit enqueues fn to run on the reactor goroutine. Submitted callbacks
// run in order and must not block.
type Reactor interface {
	Submit(fn func())
}
