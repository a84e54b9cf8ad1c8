// Package geom provides the rectangle and clamping primitives used by the
// simulation and its renderers.
package geom

// Size holds playfield dimensions in logical units.
type Size struct {
	W, H float64
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}

// Rect is an axis-aligned bounding box with a visibility flag.
// Visible doubles as the soft-delete marker: entities flip it to false when
// they die and are purged at the end of the tick.
type Rect struct {
	X, Y    float64
	W, H    float64
	Visible bool
}

// NewRect creates a visible rectangle at (x, y) with the given dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h, Visible: true}
}

// Overlaps reports whether both rectangles are visible and their areas
// intersect. Edges that merely touch do not count as an overlap.
func (r Rect) Overlaps(o Rect) bool {
	if !r.Visible || !o.Visible {
		return false
	}
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Center returns the midpoint of the rectangle, used as the spawn anchor for
// explosions and floating texts.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Outside reports whether the rectangle lies fully outside a w×h playfield,
// allowing margin units of slack on every edge.
func (r Rect) Outside(w, h, margin float64) bool {
	return r.X+r.W < -margin || r.X > w+margin ||
		r.Y+r.H < -margin || r.Y > h+margin
}

// Clamp restricts v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt restricts v to the inclusive range [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
