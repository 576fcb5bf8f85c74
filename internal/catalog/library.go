package catalog

// Library is the personal "My List". It keeps insertion order and holds each
// item id at most once. It lives only as long as the process.
type Library struct {
	items []Item
}

// NewLibrary creates an empty list
func NewLibrary() *Library {
	return &Library{}
}

// Add appends item unless an item with the same id is already saved.
// It returns true if the item was added.
func (l *Library) Add(item Item) bool {
	if l.Contains(item.ID) {
		return false
	}
	l.items = append(l.items, item)
	return true
}

// Remove drops the item with id. It returns true if something was removed.
func (l *Library) Remove(id int) bool {
	for i, it := range l.items {
		if it.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Toggle adds the item if missing, removes it otherwise. It returns whether
// the item is saved afterwards.
func (l *Library) Toggle(item Item) bool {
	if l.Remove(item.ID) {
		return false
	}
	l.items = append(l.items, item)
	return true
}

// Contains reports whether id is saved
func (l *Library) Contains(id int) bool {
	for _, it := range l.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Items returns a copy of the saved items in insertion order
func (l *Library) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of saved items
func (l *Library) Len() int {
	return len(l.items)
}
