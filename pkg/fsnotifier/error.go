package fsnotifier

import "errors"

var (
	ErrReactorMissing = errors.New("reactor is missing.")
	ErrAlreadyOpen    = errors.New("notifier is already open.")
	ErrNotOpen        = errors.New("notifier is not open.")
	ErrUnavailable    = errors.New("change notification is not available on this platform.")
)
