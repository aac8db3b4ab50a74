// Package panes implements just enough of a file-manager pane to drive
// the dirwatch subsystem from the demo binary: a local directory listing
// that re-reads itself on Reload.
package panes

import (
	"os"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/twinpane/dirwatch/pkg/interfaces"
	"github.com/twinpane/dirwatch/pkg/types"
	"go.uber.org/zap"
)

type Pane struct {
	name string
	path string
	log  *zap.SugaredLogger

	entries int
}

var _ interfaces.Pane = (*Pane)(nil)

func New(name, path string, log *zap.SugaredLogger) (ret *Pane, err error) {
	defer Wrap(&err, "create demo pane")

	if log == nil {
		log = zap.NewNop().Sugar()
	}

	p := &Pane{
		name: name,
		path: path,
		log:  log,
	}

	// Fail early on unreadable directories; a real pane would fall
	// back to its previous listing instead.
	entries, err := os.ReadDir(path)
	if err != nil {
		return
	}
	p.entries = len(entries)

	ret = p
	return
}

func (p *Pane) DisplayKind() types.DisplayKind {
	return types.DisplayKindListing
}

func (p *Pane) CurrentPath() (string, bool) {
	return p.path, true
}

func (p *Pane) Reload() {
	entries, err := os.ReadDir(p.path)
	if err != nil {
		p.log.Warnw("Reload failed, keeping previous listing.",
			"pane", p.name,
			"path", p.path,
			"error", err,
		)
		return
	}

	p.entries = len(entries)

	p.log.Infow("Pane reloaded.",
		"pane", p.name,
		"path", p.path,
		"entries", p.entries,
	)
}

// Entries returns the size of the last loaded listing.
func (p *Pane) Entries() int {
	return p.entries
}
