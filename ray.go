package geom2d

import "math"

// unitTolerance is how far |Direction|^2 may stray from 1 before Eval
// rescales the requested distance.
const unitTolerance = 1e-12

// Ray is a half-line starting at Origin and extending along Direction.
//
// Direction is kept at unit length by every constructor and setter. A
// zero-length input direction stays zero; such a ray never intersects
// anything and Eval always returns its origin.
//
// Ray is a small value type and is passed by value into every
// intersection routine.
type Ray struct {
	Origin    Point
	Direction Point
}

// NewRay creates a ray from an origin and a direction. The direction is
// normalized.
func NewRay(origin, direction Point) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// RayFromPoints creates a ray starting at origin and pointing toward
// destination. Coincident points produce a degenerate ray.
func RayFromPoints(origin, destination Point) Ray {
	return NewRay(origin, destination.Sub(origin))
}

// Set replaces the origin and direction. The direction is normalized.
func (r *Ray) Set(origin, direction Point) {
	r.Origin = origin
	r.Direction = direction.Normalize()
}

// LookAt re-aims the ray from its current origin toward target.
func (r *Ray) LookAt(target Point) {
	r.Direction = target.Sub(r.Origin).Normalize()
}

// IsDegenerate reports whether the ray has a zero-length direction.
func (r Ray) IsDegenerate() bool {
	return r.Direction.IsZero()
}

// Eval returns the point at arc length t along the ray.
//
// t is a Euclidean distance regardless of the magnitude stored in
// Direction. For t <= 0, or when Direction has zero length, Eval returns
// the origin: a ray is never extrapolated backwards.
func (r Ray) Eval(t float64) Point {
	if t <= 0 {
		return r.Origin
	}
	lenSq := r.Direction.LengthSquared()
	if lenSq == 0 {
		return r.Origin
	}
	if math.Abs(lenSq-1) > unitTolerance {
		t /= math.Sqrt(lenSq)
	}
	return r.Origin.Add(r.Direction.Mul(t))
}

// Ray3 stores a 3D origin and direction. No intersection routines operate
// on it; it exists so that callers carrying 3D picking rays can round-trip
// them through the same value conventions as Ray.
type Ray3 struct {
	Origin    [3]float64
	Direction [3]float64
}

// NewRay3 creates a 3D ray. The direction is normalized; a zero direction
// stays zero.
func NewRay3(origin, direction [3]float64) Ray3 {
	l := math.Sqrt(direction[0]*direction[0] + direction[1]*direction[1] + direction[2]*direction[2])
	if l != 0 {
		direction = [3]float64{direction[0] / l, direction[1] / l, direction[2] / l}
	}
	return Ray3{Origin: origin, Direction: direction}
}

// XY projects the ray onto the XY plane.
func (r Ray3) XY() Ray {
	return NewRay(Pt(r.Origin[0], r.Origin[1]), Pt(r.Direction[0], r.Direction[1]))
}
