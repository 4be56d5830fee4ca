package geom2d

import "math"

// Rect represents an axis-aligned rectangle.
// Min holds the minimum coordinates and Max the maximum coordinates.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Extend returns the smallest rectangle containing r and p.
func (r Rect) Extend(p Point) Rect {
	return r.Union(Rect{Min: p, Max: p})
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Inset returns r shrunk by d on every side. A negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X + d, Y: r.Min.Y + d},
		Max: Point{X: r.Max.X - d, Y: r.Max.Y - d},
	}
}

// Verify returns a copy of r with its corners ordered and any zero extent
// pushed apart by eps on both sides. Intersection routines assume a
// verified rectangle.
func (r Rect) Verify(eps float64) Rect {
	v := NewRect(r.Min, r.Max)
	if v.Max.X-v.Min.X <= 0 {
		v.Min.X -= eps
		v.Max.X += eps
	}
	if v.Max.Y-v.Min.Y <= 0 {
		v.Min.Y -= eps
		v.Max.Y += eps
	}
	return v
}

// Edges returns the four boundary segments in the order bottom, right,
// top, left. Consecutive edges share an endpoint and the loop closes.
func (r Rect) Edges() [4]Segment {
	bl := r.Min
	br := Pt(r.Max.X, r.Min.Y)
	tr := r.Max
	tl := Pt(r.Min.X, r.Max.Y)
	return [4]Segment{
		{A: bl, B: br},
		{A: br, B: tr},
		{A: tr, B: tl},
		{A: tl, B: bl},
	}
}

// Segment is a straight line segment from A to B.
type Segment struct {
	A, B Point
}

// Seg is a convenience function to create a Segment.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Eval evaluates the segment at parameter t (0 to 1).
func (s Segment) Eval(t float64) Point {
	return s.A.Lerp(s.B, t)
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Bounds returns the bounding rectangle of the segment.
func (s Segment) Bounds() Rect {
	return NewRect(s.A, s.B)
}
