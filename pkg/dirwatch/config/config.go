package config

import "go.uber.org/zap"

type Config struct {
	Version string `yaml:"version" validate:"required,eq=1"`

	// Debounce is how long directory activity must quiesce before the
	// affected panes are reloaded. Every new event restarts the wait.
	Debounce Duration `yaml:"debounce"`
	// Enabled starts the watcher as soon as the application comes up.
	// The subsystem can still be toggled at runtime.
	Enabled bool `yaml:"enabled"`

	log *zap.SugaredLogger `yaml:"-"`
	raw []byte
}
