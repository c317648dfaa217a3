// Package utils provides small shared helpers: geometry, input sampling and
// text drawing.
package utils

// Rect is an axis-aligned rectangle with a top-left origin, in field
// coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the x coordinate of the center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the y coordinate of the center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether the two rectangles intersect. Touching edges
// count as an overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Right() >= o.X &&
		r.X <= o.Right() &&
		r.Bottom() >= o.Y &&
		r.Y <= o.Bottom()
}

// Inflate grows the rectangle by dw and dh in total (half on each side),
// keeping the center fixed. Negative values shrink it.
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{
		X: r.X - dw/2,
		Y: r.Y - dh/2,
		W: r.W + dw,
		H: r.H + dh,
	}
}

// Contains reports whether the point lies inside the rectangle, edges
// included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}
