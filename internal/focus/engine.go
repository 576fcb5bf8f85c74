// Package focus implements remote-control style spatial navigation.
//
// An Engine owns the single focused id for a UI. Elements register by id,
// the host feeds directional commands in, and the engine picks the next
// element from the live geometry of everything currently mounted. A trap
// confines navigation to a region while a modal is open and restores the
// previous focus on release.
//
// The engine is synchronous and not safe for concurrent use. Call it from
// the UI event loop only.
package focus

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Scroller brings a newly focused element into view
type Scroller interface {
	ScrollIntoView(id string)
}

// ScrollFunc adapts a function to the Scroller interface
type ScrollFunc func(id string)

// ScrollIntoView calls f(id)
func (f ScrollFunc) ScrollIntoView(id string) {
	f(id)
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used for focus transitions
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithScroller sets the hook called whenever focus changes
func WithScroller(s Scroller) Option {
	return func(e *Engine) {
		e.scroller = s
	}
}

// WithCloseMatcher overrides how Trap recognizes a region's close control
func WithCloseMatcher(match func(id string) bool) Option {
	return func(e *Engine) {
		if match != nil {
			e.isClose = match
		}
	}
}

// DefaultCloseMatcher matches ids following the "...close..." convention
func DefaultCloseMatcher(id string) bool {
	return strings.Contains(id, "close")
}

// Engine owns the focus state of one UI. The empty id means nothing is
// focused.
type Engine struct {
	geometry Geometry
	reg      registry

	focused    string
	trap       Region
	preTrap    string
	navEnabled bool

	scroller Scroller
	isClose  func(string) bool
	logger   *log.Logger
}

// New creates an engine with initialID focused. geometry answers layout
// queries for registered ids; a nil geometry treats every element as hidden.
func New(initialID string, geometry Geometry, opts ...Option) *Engine {
	if geometry == nil {
		geometry = StaticGeometry(nil)
	}

	e := &Engine{
		geometry:   geometry,
		reg:        newRegistry(),
		focused:    initialID,
		navEnabled: true,
		isClose:    DefaultCloseMatcher,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Focused returns the focused id, if any
func (e *Engine) Focused() (string, bool) {
	return e.focused, e.focused != ""
}

// IsFocused reports whether id holds focus
func (e *Engine) IsFocused(id string) bool {
	return id != "" && e.focused == id
}

// Focus unconditionally moves focus to id. The id is not validated and the
// call works while navigation is disabled.
func (e *Engine) Focus(id string) {
	e.setFocus(id, "focus")
}

// SetNavigationEnabled turns directional input on or off. Hosts disable it
// while a text input is being edited.
func (e *Engine) SetNavigationEnabled(enabled bool) {
	if e.navEnabled != enabled {
		e.logger.Debug("navigation toggled", "enabled", enabled)
	}
	e.navEnabled = enabled
}

// NavigationEnabled reports whether directional input is processed
func (e *Engine) NavigationEnabled() bool {
	return e.navEnabled
}

// Move resolves directional input. It returns true if focus changed.
func (e *Engine) Move(dir Direction) bool {
	if !e.navEnabled || !dir.Valid() {
		return false
	}

	scope := e.scope()
	if len(scope) == 0 {
		return false
	}

	cur := -1
	if e.focused != "" {
		for i, c := range scope {
			if c.id == e.focused {
				cur = i
				break
			}
		}
	}

	// Nothing resolvable is focused: start from the first candidate
	if cur < 0 {
		return e.setFocus(scope[0].id, "fallback")
	}

	others := make([]candidate, 0, len(scope)-1)
	others = append(others, scope[:cur]...)
	others = append(others, scope[cur+1:]...)

	best := bestCandidate(scope[cur].rect, others, dir)
	if best < 0 {
		e.logger.Debug("no candidate", "from", e.focused, "dir", dir)
		return false
	}

	return e.setFocus(others[best].id, string(dir))
}

// Activate invokes the handler bound to the focused element. It returns
// false if nothing is focused or the element has no handler.
func (e *Engine) Activate() bool {
	if e.focused == "" {
		return false
	}

	en, ok := e.reg.get(e.focused)
	if !ok || en.onActivate == nil {
		return false
	}

	e.logger.Debug("activate", "id", e.focused)
	en.onActivate()
	return true
}

// Dispatch feeds one command from the host input stream. Commands are
// ignored while navigation is disabled.
func (e *Engine) Dispatch(cmd Command) bool {
	if !e.navEnabled {
		return false
	}

	if cmd == CommandActivate {
		return e.Activate()
	}
	if dir, ok := cmd.Direction(); ok {
		return e.Move(dir)
	}
	return false
}

// IDs returns the mounted ids in registration order
func (e *Engine) IDs() []string {
	return e.reg.ids()
}

// Registered reports whether id is currently mounted
func (e *Engine) Registered(id string) bool {
	_, ok := e.reg.get(id)
	return ok
}

// Bounds returns the live geometry of id
func (e *Engine) Bounds(id string) (Rect, bool) {
	return e.geometry.Bounds(id)
}

// scope returns the visible candidates, honoring an active trap
func (e *Engine) scope() []candidate {
	out := make([]candidate, 0, len(e.reg.entries))
	for _, en := range e.reg.entries {
		if e.trap != nil && !e.trap.Contains(en.id) {
			continue
		}
		r, ok := e.geometry.Bounds(en.id)
		if !ok || !r.Visible() {
			continue
		}
		out = append(out, candidate{id: en.id, rect: r})
	}
	return out
}

// setFocus records the new focus and asks the scroller to reveal it
func (e *Engine) setFocus(id, reason string) bool {
	if id == e.focused {
		return false
	}

	e.logger.Debug("focus", "from", e.focused, "to", id, "reason", reason)
	e.focused = id
	if id != "" && e.scroller != nil {
		e.scroller.ScrollIntoView(id)
	}
	return true
}
