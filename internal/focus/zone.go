package focus

import (
	zone "github.com/lrstanley/bubblezone"
)

// ZoneGeometry reads layout from a bubblezone manager. Zones are the
// rendered regions marked with the element id. Offset, when set, shifts the
// zone coordinates, e.g. from viewport content space to screen space.
type ZoneGeometry struct {
	Manager *zone.Manager
	Offset  func() (dx, dy int)
	// Active gates the whole layer, e.g. while its content isn't on screen
	Active func() bool
	// Clip, when set, cuts zones to the visible area of a scrolled layer
	Clip func() Rect
}

// Bounds converts the zone registered under id into a Rect
func (g ZoneGeometry) Bounds(id string) (Rect, bool) {
	if g.Manager == nil {
		return Rect{}, false
	}
	if g.Active != nil && !g.Active() {
		return Rect{}, false
	}

	z := g.Manager.Get(id)
	if z == nil || z.IsZero() {
		return Rect{}, false
	}

	r := zoneRect(z.StartX, z.StartY, z.EndX, z.EndY)
	if g.Offset != nil {
		dx, dy := g.Offset()
		r = r.Translate(dx, dy)
	}
	if g.Clip != nil {
		r = r.Intersect(g.Clip())
		if !r.Visible() {
			return Rect{}, false
		}
	}
	return r, true
}

// zoneRect converts inclusive zone corners into a Rect
func zoneRect(startX, startY, endX, endY int) Rect {
	return Rect{
		X: startX,
		Y: startY,
		W: endX - startX + 1,
		H: endY - startY + 1,
	}
}
