package dirwatch

import "errors"

var (
	ErrConfigMissing   = errors.New("config is missing.")
	ErrReactorMissing  = errors.New("reactor is missing.")
	ErrNotifierMissing = errors.New("notifier is missing.")
	ErrRepaintMissing  = errors.New("repaint trigger is missing.")
	ErrPaneMissing     = errors.New("pane is missing.")
)
