package config

import (
	"time"

	. "github.com/black-desk/lib/go/errwrap"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from the usual Go duration
// string ("500ms", "2s", "1m30s").
type Duration time.Duration

var _ yaml.Unmarshaler = (*Duration)(nil)

func (d *Duration) UnmarshalYAML(node *yaml.Node) (err error) {
	defer Wrap(&err, "unmarshal duration")

	var raw string
	err = node.Decode(&raw)
	if err != nil {
		return
	}

	var parsed time.Duration
	parsed, err = time.ParseDuration(raw)
	if err != nil {
		return
	}

	*d = Duration(parsed)
	return
}

func (d Duration) String() string {
	return time.Duration(d).String()
}
