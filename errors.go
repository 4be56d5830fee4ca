package geom2d

import (
	"errors"
	"fmt"
	"math"
)

// Intersection queries never fail: degenerate input simply produces no
// hits. These errors let callers tell degenerate input apart from a clean
// miss by validating before they query.
var (
	// ErrDegenerateRay indicates a ray with a zero-length or non-finite direction.
	ErrDegenerateRay = errors.New("geom2d: degenerate ray direction")

	// ErrInvalidRadius indicates a circle radius that is not a positive finite number.
	ErrInvalidRadius = errors.New("geom2d: circle radius must be positive")

	// ErrDegenerateRect indicates a rectangle with a zero or negative extent.
	ErrDegenerateRect = errors.New("geom2d: rectangle has no area")

	// ErrDegenerateSegment indicates a segment whose endpoints coincide.
	ErrDegenerateSegment = errors.New("geom2d: segment has zero length")

	// ErrShortFace indicates a mesh face with fewer than two vertices.
	ErrShortFace = errors.New("geom2d: face needs at least two vertices")

	// ErrFaceIndex indicates a mesh face referring to a missing vertex.
	ErrFaceIndex = errors.New("geom2d: face vertex index out of range")

	// ErrSingularTransform indicates an entity transform that cannot be inverted.
	ErrSingularTransform = errors.New("geom2d: transform is not invertible")
)

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ValidateRay reports whether r can hit anything.
func ValidateRay(r Ray) error {
	d := r.Direction
	if !isFinite(d.X) || !isFinite(d.Y) || d.IsZero() {
		return fmt.Errorf("direction %v: %w", d, ErrDegenerateRay)
	}
	return nil
}

// ValidateCircle reports whether radius describes a usable circle.
func ValidateCircle(radius float64) error {
	if !isFinite(radius) || radius <= 0 {
		return fmt.Errorf("radius %v: %w", radius, ErrInvalidRadius)
	}
	return nil
}

// ValidateRect reports whether box has a positive area with ordered corners.
func ValidateRect(box Rect) error {
	if !(box.Width() > 0) || !(box.Height() > 0) {
		return fmt.Errorf("rect %v-%v: %w", box.Min, box.Max, ErrDegenerateRect)
	}
	return nil
}

// ValidateSegment reports whether a-b has a nonzero length.
func ValidateSegment(a, b Point) error {
	if a == b {
		return fmt.Errorf("segment %v-%v: %w", a, b, ErrDegenerateSegment)
	}
	return nil
}
