// Package geom2d provides 2D geometry primitives and a ray-intersection
// engine.
//
// # Overview
//
// geom2d computes the exact points where a ray crosses the boundary of a
// rectangle, circle, segment, polygon, or polygonal mesh placed in the
// world by an affine transform.
//
//	import "github.com/gogpu/geom2d"
//
//	r := geom2d.RayFromPoints(geom2d.Pt(-5, 0), geom2d.Pt(0, 0))
//	box := geom2d.NewRect(geom2d.Pt(-1, -1), geom2d.Pt(1, 1))
//
//	for _, p := range geom2d.IntersectRect(r, box) {
//	    fmt.Println(p) // {-1 0}, then {1 0}
//	}
//
// # Results
//
// Every query returns a fresh slice of points ordered by ascending
// distance from the ray origin. A point reached through two edges (a box
// corner, a vertex shared by adjacent faces) appears once. Points at equal
// distance are ordered by Compare, so identical inputs always produce
// identical outputs.
//
// # Degenerate input
//
// Queries never fail. A zero-length ray direction, a zero-length segment,
// a segment parallel to the ray and a singular entity transform all simply
// produce no hits. Callers that need to tell degenerate input apart from a
// clean miss validate first with ValidateRay, ValidateCircle, ValidateRect,
// ValidateSegment, Mesh.Validate or Entity.Validate.
//
// # Coordinate Spaces
//
// Mesh vertices live in local space. An Entity's Transform maps local
// space to world space, where rays and results live. IntersectMesh works
// entirely in local space; IntersectEntity maps the ray in and the hits
// back out.
//
// # Concurrency
//
// All queries are pure functions over their arguments and may run
// concurrently. The package logger (see SetLogger) is the only shared
// state and is replaced atomically.
package geom2d
