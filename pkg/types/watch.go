package types

// WatchHandle is the opaque token identifying one active directory
// subscription. The zero value means "no watch". Handles are comparable
// but carry no other guarantees; in particular the notification backend
// may hand out the same handle to two callers watching the same path.
type WatchHandle string

// NoWatch is the zero WatchHandle.
const NoWatch WatchHandle = ""

// PathSet is one drained batch of change notifications: the set of raw
// event paths that had at least one event since the previous drain. Event
// ordering and subtype are deliberately not represented.
type PathSet map[string]struct{}

// Add records a path in the set.
func (s PathSet) Add(path string) {
	s[path] = struct{}{}
}

// Contains reports whether path is in the set.
func (s PathSet) Contains(path string) bool {
	_, ok := s[path]
	return ok
}
