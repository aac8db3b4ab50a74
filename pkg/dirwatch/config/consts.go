package config

import "time"

const (
	DefaultConfig = `
version: 1
debounce: 1s
enabled: true
`

	// DefaultDebounce is used when the configuration leaves the
	// interval unset.
	DefaultDebounce = Duration(time.Second)

	// MinDebounce is the floor applied to the interval at arm time.
	MinDebounce = time.Millisecond
)
