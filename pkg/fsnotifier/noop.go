package fsnotifier

import (
	"github.com/twinpane/dirwatch/pkg/interfaces"
	"github.com/twinpane/dirwatch/pkg/types"
)

// Noop is the fallback change-notification source for platforms without
// a usable primitive. Open always fails with ErrUnavailable, so a
// controller built on it simply never refreshes anything, with no other
// behavioral difference.
type Noop struct{}

var _ interfaces.Notifier = Noop{}

func NewNoop() Noop { return Noop{} }

func (Noop) Open(sink interfaces.Sink) error {
	return ErrUnavailable
}

func (Noop) AddWatch(path string) (types.WatchHandle, error) {
	return types.NoWatch, ErrUnavailable
}

func (Noop) RemoveWatch(handle types.WatchHandle) error {
	return nil
}

func (Noop) Close() {}
