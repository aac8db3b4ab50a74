package config

import (
	"fmt"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/go-playground/validator/v10"
)

func (c *Config) check() (err error) {
	defer Wrap(&err, "check configuration")

	var validator = validator.New()
	err = validator.Struct(c)
	if err != nil {
		err = fmt.Errorf("validator: %w", err)
		return
	}

	if c.Debounce <= 0 {
		c.Debounce = DefaultDebounce
	}

	if c.Debounce < Duration(MinDebounce) {
		c.log.Warnw("Debounce interval below the minimum, will be clamped.",
			"configured", c.Debounce,
			"minimum", MinDebounce,
		)
	}

	return
}
