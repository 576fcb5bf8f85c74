package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nomadcxx/plura/internal/catalog"
	"github.com/Nomadcxx/plura/internal/focus"
)

// Element ids. Detail ids share a prefix so one region traps the modal.
const (
	welcomeEnterID = "welcome-enter-button"
	searchInputID  = "search-input"
	detailPrefix   = "detail-"
)

func categoryID(cat string) string { return "category-" + cat }
func navID(v catalog.View) string  { return "nav-" + string(v) }

func cardID(cat string, itemID int) string {
	return "card-" + cat + "-" + strconv.Itoa(itemID)
}

func detailID(action string, itemID int) string {
	return detailPrefix + action + "-" + strconv.Itoa(itemID)
}

// element is a focusable block placed during layout. Activating it queues
// msg for the next update.
type element struct {
	id    string
	shape focus.Shape
	msg   tea.Msg
}

// mountSet keeps the engine registry in step with what was last rendered
type mountSet struct {
	engine  *focus.Engine
	order   []string
	handles map[string]*focus.Focusable
}

func newMountSet(e *focus.Engine) *mountSet {
	return &mountSet{engine: e, handles: make(map[string]*focus.Focusable)}
}

// reconcile mounts exactly els, in order. Elements that stay keep their
// registry slot; registration order ends up equal to layout order.
func (ms *mountSet) reconcile(els []element, activate func(tea.Msg)) {
	want := make(map[string]bool, len(els))
	for _, el := range els {
		want[el.id] = true
	}

	// Unmount what is gone
	kept := ms.order[:0]
	for _, id := range ms.order {
		if want[id] {
			kept = append(kept, id)
			continue
		}
		ms.handles[id].Unregister()
		delete(ms.handles, id)
	}

	// Keep the longest prefix already in the right order; anything after it
	// must re-register to move behind the new elements
	prefix := 0
	for prefix < len(kept) && prefix < len(els) && kept[prefix] == els[prefix].id {
		prefix++
	}
	for _, id := range kept[prefix:] {
		ms.handles[id].Unregister()
		delete(ms.handles, id)
	}

	ms.order = make([]string, 0, len(els))
	for _, el := range els {
		msg := el.msg
		var onActivate func()
		if msg != nil {
			onActivate = func() { activate(msg) }
		}
		ms.handles[el.id] = ms.engine.Register(el.id, el.shape, onActivate)
		ms.order = append(ms.order, el.id)
	}
}

// list returns the mounted elements in registration order
func (ms *mountSet) list() []*focus.Focusable {
	out := make([]*focus.Focusable, 0, len(ms.order))
	for _, id := range ms.order {
		out = append(out, ms.handles[id])
	}
	return out
}
