// Package cache provides a small, thread-safe LRU cache.
//
// The scene package uses it to memoize entity inverse transforms so that a
// batch of rays tested against the same entity inverts its matrix once:
//
//	inv := cache.New[geom2d.Matrix, geom2d.Matrix](64)
//	m := inv.GetOrCreate(e.Transform, e.Transform.Invert)
//
// Keys must be comparable. Entries beyond the capacity are evicted least
// recently used first.
package cache
