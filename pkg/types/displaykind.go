package types

// DisplayKind describes what a pane is currently showing. Only a plain
// directory listing can be watched; every other kind is either synthetic
// (panelized results, info, tree, quick view) or has no single backing
// directory at all.
type DisplayKind uint8

const (
	DisplayKindListing   DisplayKind = iota // Listing
	DisplayKindPanelized                    // Panelized
	DisplayKindQuickView                    // QuickView
	DisplayKindInfo                         // Info
	DisplayKindTree                         // Tree
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=DisplayKind -linecomment
