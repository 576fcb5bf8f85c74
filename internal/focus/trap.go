package focus

import "strings"

// Region is a subtree boundary used to scope candidates during a trap
type Region interface {
	Contains(id string) bool
}

// PrefixRegion contains every id starting with the prefix
type PrefixRegion string

// Contains reports whether id has the region prefix
func (p PrefixRegion) Contains(id string) bool {
	return strings.HasPrefix(id, string(p))
}

// IDSet is a region made of explicit ids
type IDSet map[string]struct{}

// NewIDSet builds an IDSet from ids
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set
func (s IDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// RegionFunc adapts a predicate to the Region interface
type RegionFunc func(id string) bool

// Contains calls f(id)
func (f RegionFunc) Contains(id string) bool {
	return f(id)
}

// Trap confines navigation to region and moves focus inside it: the
// region's close control if one is mounted, else its first element in
// registration order. Focus stays put if the region has no elements.
//
// The focus held before the first Trap is saved for Release. Calling Trap
// again while trapped swaps the region but keeps that saved id.
func (e *Engine) Trap(region Region) {
	if region == nil {
		return
	}

	if e.trap == nil {
		e.preTrap = e.focused
	}
	e.trap = region
	e.logger.Debug("trap", "saved", e.preTrap)

	if id, ok := e.trapEntry(); ok {
		e.setFocus(id, "trap")
	}
}

// Release lifts the trap and restores the focus saved by Trap. It is a
// no-op when no trap is active.
func (e *Engine) Release() {
	if e.trap == nil {
		return
	}

	e.trap = nil
	if e.preTrap != "" {
		saved := e.preTrap
		e.preTrap = ""
		e.setFocus(saved, "release")
	}
	e.logger.Debug("release", "focused", e.focused)
}

// Trapped reports whether a trap is active
func (e *Engine) Trapped() bool {
	return e.trap != nil
}

// Reachable reports whether id lies inside the active trap. Everything is
// reachable while untrapped.
func (e *Engine) Reachable(id string) bool {
	return e.trap == nil || e.trap.Contains(id)
}

// trapEntry picks the initial element inside the active trap. Layout may
// not exist yet for a freshly opened modal, so this goes by registration.
func (e *Engine) trapEntry() (string, bool) {
	first := ""
	for _, en := range e.reg.entries {
		if !e.trap.Contains(en.id) {
			continue
		}
		if e.isClose(en.id) {
			return en.id, true
		}
		if first == "" {
			first = en.id
		}
	}
	return first, first != ""
}
