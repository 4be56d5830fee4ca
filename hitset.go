package geom2d

import "slices"

// HitSet collects intersection points for a single query and removes
// exact duplicates.
//
// Points are kept sorted by Compare so that membership is a binary search.
// A corner shared by two edges, or a vertex shared by two faces, is
// reported by both and stored once.
//
// The zero value is an empty set ready to use.
type HitSet struct {
	pts []Point
}

// Insert adds p to the set. It reports whether p was not already present.
func (h *HitSet) Insert(p Point) bool {
	i, found := slices.BinarySearchFunc(h.pts, p, Compare)
	if found {
		return false
	}
	h.pts = slices.Insert(h.pts, i, p)
	return true
}

// Len returns the number of distinct points in the set.
func (h *HitSet) Len() int {
	return len(h.pts)
}

// Points returns the points in Compare order. The slice is shared with the
// set and must not be modified.
func (h *HitSet) Points() []Point {
	return h.pts
}

// Map replaces every point with f(point) and restores the set invariants.
// Distinct inputs that map onto the same output collapse into one point.
func (h *HitSet) Map(f func(Point) Point) {
	if len(h.pts) == 0 {
		return
	}
	for i, p := range h.pts {
		h.pts[i] = f(p)
	}
	slices.SortFunc(h.pts, Compare)
	h.pts = slices.CompactFunc(h.pts, func(a, b Point) bool { return Compare(a, b) == 0 })
}

// Sorted returns a new slice holding the points ordered by ascending
// distance from origin. Equal distances fall back to Compare so that the
// result is fully deterministic. An empty set yields nil.
func (h *HitSet) Sorted(origin Point) []Point {
	if len(h.pts) == 0 {
		return nil
	}
	out := slices.Clone(h.pts)
	slices.SortStableFunc(out, func(a, b Point) int {
		da := a.DistanceSquared(origin)
		db := b.DistanceSquared(origin)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return Compare(a, b)
	})
	return out
}

// Reset empties the set, keeping its storage.
func (h *HitSet) Reset() {
	h.pts = h.pts[:0]
}
