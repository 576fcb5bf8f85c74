package focus

// Shape is the cosmetic shape hint of a focusable element
type Shape int

const (
	Rectangle Shape = iota
	Circle
)

// String returns the shape name
func (s Shape) String() string {
	if s == Circle {
		return "circle"
	}
	return "rectangle"
}

// entry is one mounted element. token identifies the registration so a
// stale handle can't unregister a newer element that reused the id.
type entry struct {
	id         string
	shape      Shape
	onActivate func()
	token      uint64
}

// registry keeps mounted elements in registration order
type registry struct {
	entries []*entry
	index   map[string]*entry
	next    uint64
}

func newRegistry() registry {
	return registry{index: make(map[string]*entry)}
}

// add mounts id. An id that is already mounted keeps its position and gets
// the new shape and handler.
func (r *registry) add(id string, shape Shape, onActivate func()) *entry {
	r.next++

	if e, ok := r.index[id]; ok {
		e.shape = shape
		e.onActivate = onActivate
		e.token = r.next
		return e
	}

	e := &entry{id: id, shape: shape, onActivate: onActivate, token: r.next}
	r.entries = append(r.entries, e)
	r.index[id] = e
	return e
}

// remove unmounts id if it still belongs to the registration token
func (r *registry) remove(id string, token uint64) bool {
	e, ok := r.index[id]
	if !ok || e.token != token {
		return false
	}

	delete(r.index, id)
	for i, cur := range r.entries {
		if cur == e {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
	return true
}

func (r *registry) get(id string) (*entry, bool) {
	e, ok := r.index[id]
	return e, ok
}

func (r *registry) ids() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.id
	}
	return out
}
