package focus

// Element is the capability set a focusable UI element exposes
type Element interface {
	ID() string
	IsFocused() bool
	Activate()
	BoundingBox() (Rect, bool)
}

var _ Element = (*Focusable)(nil)

// Focusable is the handle returned by Register. It stays valid until
// Unregister, or until the same id is registered again.
type Focusable struct {
	engine *Engine
	id     string
	shape  Shape
	token  uint64
}

// Register mounts an element. onActivate runs on Enter while the element is
// focused and on pointer clicks. Registering an id that is already mounted
// keeps its position and replaces its handler.
func (e *Engine) Register(id string, shape Shape, onActivate func()) *Focusable {
	en := e.reg.add(id, shape, onActivate)
	return &Focusable{engine: e, id: id, shape: shape, token: en.token}
}

// ID returns the element id
func (f *Focusable) ID() string { return f.id }

// Shape returns the shape hint
func (f *Focusable) Shape() Shape { return f.shape }

// IsFocused reports whether the element holds focus
func (f *Focusable) IsFocused() bool {
	return f.engine.IsFocused(f.id)
}

// Mounted reports whether this handle is still the live registration
func (f *Focusable) Mounted() bool {
	en, ok := f.engine.reg.get(f.id)
	return ok && en.token == f.token
}

// Activate marks the element focused and forwards to its handler. Stale
// handles do nothing.
func (f *Focusable) Activate() {
	en, ok := f.engine.reg.get(f.id)
	if !ok || en.token != f.token {
		return
	}

	f.engine.Focus(f.id)
	if en.onActivate != nil {
		en.onActivate()
	}
}

// BoundingBox returns the element's live geometry
func (f *Focusable) BoundingBox() (Rect, bool) {
	return f.engine.geometry.Bounds(f.id)
}

// Unregister unmounts the element. Safe to call more than once.
func (f *Focusable) Unregister() {
	f.engine.reg.remove(f.id, f.token)
}
