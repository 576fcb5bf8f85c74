package focus

// Rect is a bounding box in terminal cells
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// Visible reports whether the rect has a non-zero rendered size
func (r Rect) Visible() bool {
	return r.W > 0 && r.H > 0
}

// Center returns the center point of the rectangle.
// Kept in float64 so odd sizes don't lose the half cell.
func (r Rect) Center() (cx, cy float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// Contains reports whether the cell (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Translate returns the rect shifted by (dx, dy)
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersect returns the overlap of r and o. The result is not Visible when
// they don't overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Geometry answers layout queries for registered ids.
// Bounds returns false when the id has no known layout (not rendered).
type Geometry interface {
	Bounds(id string) (Rect, bool)
}

// GeometryFunc adapts a function to the Geometry interface
type GeometryFunc func(id string) (Rect, bool)

// Bounds calls f(id)
func (f GeometryFunc) Bounds(id string) (Rect, bool) {
	return f(id)
}

// StaticGeometry is a fixed id -> rect table
type StaticGeometry map[string]Rect

// Bounds looks the id up in the table
func (g StaticGeometry) Bounds(id string) (Rect, bool) {
	r, ok := g[id]
	return r, ok
}

// Layers queries each geometry source in order; the first one that knows
// the id wins.
type Layers []Geometry

// Bounds returns the first known rect for id
func (l Layers) Bounds(id string) (Rect, bool) {
	for _, g := range l {
		if g == nil {
			continue
		}
		if r, ok := g.Bounds(id); ok {
			return r, true
		}
	}
	return Rect{}, false
}
