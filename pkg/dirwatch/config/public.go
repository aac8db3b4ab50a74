package config

import "time"

// DebounceInterval returns the configured debounce interval clamped to
// MinDebounce. Read at arm time, so a future reloadable configuration
// takes effect on the next burst without rearming anything.
func (c *Config) DebounceInterval() time.Duration {
	d := time.Duration(c.Debounce)
	if d < MinDebounce {
		d = MinDebounce
	}
	return d
}
