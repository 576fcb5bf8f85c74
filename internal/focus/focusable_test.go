package focus

import (
	"reflect"
	"testing"
)

func TestRegisterOrder(t *testing.T) {
	e := New("", nil)
	e.Register("a", Rectangle, nil)
	e.Register("b", Rectangle, nil)
	e.Register("c", Circle, nil)

	// Re-registering keeps the original position
	e.Register("a", Circle, nil)

	want := []string{"a", "b", "c"}
	if got := e.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestStaleHandleCannotUnregister(t *testing.T) {
	e := New("", nil)
	old := e.Register("card", Rectangle, nil)
	fresh := e.Register("card", Rectangle, nil)

	if old.Mounted() {
		t.Error("expected old handle to be stale")
	}

	old.Unregister()
	if !e.Registered("card") {
		t.Fatal("stale handle removed the newer registration")
	}

	fresh.Unregister()
	fresh.Unregister()
	if e.Registered("card") {
		t.Error("expected card to be unmounted")
	}
}

func TestFocusableActivate(t *testing.T) {
	var order []string
	e := New("other", nil)
	e.Register("other", Rectangle, nil)
	f := e.Register("button", Circle, func() {
		id, _ := e.Focused()
		order = append(order, "handler:"+id)
	})

	f.Activate()
	want := []string{"handler:button"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	if !f.IsFocused() {
		t.Error("expected activated element to hold focus")
	}

	// Stale handle does nothing
	f.Unregister()
	e.Focus("other")
	f.Activate()
	if len(order) != 1 || !e.IsFocused("other") {
		t.Errorf("expected stale activate to be ignored, order=%v", order)
	}
}

func TestFocusableActivateWithoutHandler(t *testing.T) {
	e := New("", nil)
	f := e.Register("plain", Rectangle, nil)
	f.Activate()
	if !f.IsFocused() {
		t.Error("expected focus even without handler")
	}
}

func TestFocusableBoundingBox(t *testing.T) {
	geom := StaticGeometry{"a": {X: 3, Y: 4, W: 5, H: 6}}
	e := New("", geom)
	a := e.Register("a", Rectangle, nil)
	b := e.Register("b", Rectangle, nil)

	if r, ok := a.BoundingBox(); !ok || r != geom["a"] {
		t.Errorf("a: got %+v %v", r, ok)
	}
	if _, ok := b.BoundingBox(); ok {
		t.Error("b: expected no geometry")
	}
	if !geom["a"].Contains(3, 4) || geom["a"].Contains(8, 4) {
		t.Error("Contains bounds wrong")
	}
}

func TestShapeString(t *testing.T) {
	if Circle.String() != "circle" || Rectangle.String() != "rectangle" {
		t.Errorf("unexpected shape names %q %q", Circle, Rectangle)
	}
}
