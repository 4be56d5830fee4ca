package geom2d

import "math"

// raySegment is the ray/segment primitive every polygonal query is built
// from.
//
// It reports the hit point and its parameter t along a→b when the ray
// crosses the segment strictly in front of its origin. The segment is
// closed: hits at a (t == 0) and b (t == 1) count. A segment parallel to
// the ray, including a collinear overlapping one, is a miss, as is any
// segment tested against a degenerate ray or a zero-length segment.
func raySegment(r Ray, a, b Point) (float64, Point, bool) {
	v1 := b.Sub(a)
	v2 := r.Direction.Perp()
	dot := v1.Dot(v2)
	if dot == 0 {
		return 0, Point{}, false
	}

	v0 := r.Origin.Sub(a)
	t1 := v1.Cross(v0) / dot
	if !(t1 > 0) {
		return 0, Point{}, false
	}
	t2 := v0.Dot(v2) / dot
	if !(t2 >= 0 && t2 <= 1) {
		return 0, Point{}, false
	}
	return t2, a.Lerp(b, t2), true
}

// collectLoop feeds the edges of pts to the primitive. When closed is true
// the last point connects back to the first.
func collectLoop(hs *HitSet, r Ray, pts []Point, closed bool) {
	n := len(pts)
	if n < 2 {
		return
	}
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		if _, p, ok := raySegment(r, pts[i], pts[(i+1)%n]); ok {
			hs.Insert(p)
		}
	}
}

// finish orders the collected hits by distance from origin and applies
// the query options.
func finish(hs *HitSet, origin Point, opts []QueryOption) []Point {
	return buildQueryOptions(opts).apply(origin, hs.Sorted(origin))
}

// IntersectSegment returns the point where r crosses the segment a-b, or
// nil when it does not. The result holds at most one point.
func IntersectSegment(r Ray, a, b Point, opts ...QueryOption) []Point {
	var hs HitSet
	if _, p, ok := raySegment(r, a, b); ok {
		hs.Insert(p)
	}
	return finish(&hs, r.Origin, opts)
}

// IntersectRect returns the points where r crosses the boundary of box,
// nearest first.
//
// The box must have Min strictly below Max on both axes; see Rect.Verify.
// A ray passing exactly through a corner reports that corner once.
func IntersectRect(r Ray, box Rect, opts ...QueryOption) []Point {
	var hs HitSet
	for _, e := range box.Edges() {
		if _, p, ok := raySegment(r, e.A, e.B); ok {
			hs.Insert(p)
		}
	}
	return finish(&hs, r.Origin, opts)
}

// IntersectCircle returns the points where the line through r meets the
// circle, nearest to the ray origin first.
//
// The circle is solved by projecting the center onto the ray: the foot of
// the perpendicular plus and minus the half chord gives both crossings.
// Both crossings are reported even when the origin lies inside or past
// the circle. A tangent ray yields a single point. A degenerate ray
// projects onto its own origin, so it reports the origin when the origin
// is inside the circle and nothing otherwise.
//
// The radius must be positive; see ValidateCircle.
func IntersectCircle(r Ray, center Point, radius float64, opts ...QueryOption) []Point {
	var hs HitSet

	dir := r.Direction.Normalize()
	toCenter := center.Sub(r.Origin)
	proj := toCenter.Dot(dir)
	foot := r.Origin.Add(dir.Mul(proj))

	rejSq := center.DistanceSquared(foot)
	radSq := radius * radius
	if rejSq <= radSq {
		m := math.Sqrt(radSq - rejSq)
		hs.Insert(foot.Sub(dir.Mul(m)))
		hs.Insert(foot.Add(dir.Mul(m)))
	}
	return finish(&hs, r.Origin, opts)
}

// IntersectPolygon returns the points where r crosses the closed polygon
// whose vertices are pts. The last vertex connects back to the first.
func IntersectPolygon(r Ray, pts []Point, opts ...QueryOption) []Point {
	var hs HitSet
	collectLoop(&hs, r, pts, true)
	return finish(&hs, r.Origin, opts)
}

// IntersectPolyline returns the points where r crosses the open chain of
// segments pts[0]-pts[1]-...-pts[n-1].
func IntersectPolyline(r Ray, pts []Point, opts ...QueryOption) []Point {
	var hs HitSet
	collectLoop(&hs, r, pts, false)
	return finish(&hs, r.Origin, opts)
}
