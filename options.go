package geom2d

import "math"

// QueryOption configures an intersection query.
// Use functional options to restrict which hits are returned.
//
// Example:
//
//	// All hits, nearest first
//	hits := geom2d.IntersectRect(r, box)
//
//	// Only the nearest hit within 10 units
//	hits := geom2d.IntersectRect(r, box, geom2d.WithMaxDistance(10), geom2d.WithLimit(1))
type QueryOption func(*queryOptions)

// queryOptions holds optional configuration for a query.
type queryOptions struct {
	maxDistSq float64
	limit     int
}

// defaultQueryOptions returns options that keep every hit.
func defaultQueryOptions() queryOptions {
	return queryOptions{
		maxDistSq: math.Inf(1),
		limit:     0, // unlimited
	}
}

func buildQueryOptions(opts []QueryOption) queryOptions {
	o := defaultQueryOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithMaxDistance drops hits farther than d from the ray origin.
// Negative or NaN values are ignored.
func WithMaxDistance(d float64) QueryOption {
	return func(o *queryOptions) {
		if d >= 0 {
			o.maxDistSq = d * d
		}
	}
}

// WithLimit keeps at most n hits, nearest first. n <= 0 means no limit.
func WithLimit(n int) QueryOption {
	return func(o *queryOptions) {
		o.limit = max(n, 0)
	}
}

// apply filters hits that are already ordered by distance from origin.
func (o queryOptions) apply(origin Point, hits []Point) []Point {
	if !math.IsInf(o.maxDistSq, 1) {
		n := 0
		for n < len(hits) && hits[n].DistanceSquared(origin) <= o.maxDistSq {
			n++
		}
		hits = hits[:n]
	}
	if o.limit > 0 && len(hits) > o.limit {
		hits = hits[:o.limit]
	}
	if len(hits) == 0 {
		return nil
	}
	return hits
}
