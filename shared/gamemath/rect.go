// Package gamemath holds pure geometry helpers for the simulation.
// World space is y-up: Top is greater than Bottom.
package gamemath

// Rect is an axis-aligned box given by its left and bottom edges and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectFromTopLeft builds a rect from its left and top edges.
func RectFromTopLeft(left, top, w, h float64) Rect {
	return Rect{X: left, Y: top - h, W: w, H: h}
}

// RectFromCenter builds a rect centred on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y }
func (r Rect) Top() float64     { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports strict intersection. Rects that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Top() && r.Top() > o.Y
}

// Grow returns r expanded by m on every side.
func (r Rect) Grow(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// ContainsPoint reports whether (x, y) lies inside r or on its edge.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Top()
}
