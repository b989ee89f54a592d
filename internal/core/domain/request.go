package domain

import (
	"maps"
	"slices"
)

// RequestSet is the set of packages an update invocation wants to move,
// mapping each name to the token that selects its target version. The set
// only ever grows: selector parsing seeds it, group expansion and peer
// injection add to it, nothing removes from it. A token that came from an
// explicit selector is never overridden by one introduced by expansion.
type RequestSet struct {
	entries map[string]requestEntry
}

type requestEntry struct {
	token    VersionToken
	explicit bool
}

// NewRequestSet creates an empty request set.
func NewRequestSet() *RequestSet {
	return &RequestSet{entries: make(map[string]requestEntry)}
}

// AddExplicit records a package selected explicitly on the command line.
// An explicit token always wins, including over an earlier explicit one for
// the same name (the last selector on the command line is authoritative).
func (r *RequestSet) AddExplicit(name string, token VersionToken) {
	r.entries[name] = requestEntry{token: token, explicit: true}
}

// Add records a package introduced by expansion. It is a no-op when the name
// is already present.
func (r *RequestSet) Add(name string, token VersionToken) bool {
	if _, ok := r.entries[name]; ok {
		return false
	}
	r.entries[name] = requestEntry{token: token}
	return true
}

// Explicit reports whether the package was selected explicitly on the
// command line, as opposed to being introduced by bulk mode or expansion.
func (r *RequestSet) Explicit(name string) bool {
	return r.entries[name].explicit
}

// Token returns the token selected for a package.
func (r *RequestSet) Token(name string) (VersionToken, bool) {
	entry, ok := r.entries[name]
	return entry.token, ok
}

// Contains reports whether the package is part of the request set.
func (r *RequestSet) Contains(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Len returns the number of requested packages.
func (r *RequestSet) Len() int {
	return len(r.entries)
}

// Names returns the requested package names in sorted order.
func (r *RequestSet) Names() []string {
	names := slices.Collect(maps.Keys(r.entries))
	slices.Sort(names)
	return names
}
