package geom2d

import (
	"fmt"
	"log/slog"
)

// Mesh is a set of polygonal faces sharing a vertex array.
//
// Each face is a loop of indices into Vertices; the last index connects
// back to the first. Vertices are expressed in the mesh's local space.
type Mesh struct {
	Vertices []Point
	Faces    [][]int
}

// Validate reports the first face that refers to a vertex outside
// Vertices or has fewer than two vertices.
func (m *Mesh) Validate() error {
	for fi, face := range m.Faces {
		if len(face) < 2 {
			return fmt.Errorf("face %d has %d vertices: %w", fi, len(face), ErrShortFace)
		}
		for _, vi := range face {
			if vi < 0 || vi >= len(m.Vertices) {
				return fmt.Errorf("face %d refers to vertex %d of %d: %w", fi, vi, len(m.Vertices), ErrFaceIndex)
			}
		}
	}
	return nil
}

// Bounds returns the local-space bounding rectangle of the vertices.
// An empty mesh has zero bounds.
func (m *Mesh) Bounds() Rect {
	if len(m.Vertices) == 0 {
		return Rect{}
	}
	b := Rect{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b = b.Extend(v)
	}
	return b
}

// collect adds every face edge crossing of r to hs. r must already be in
// the mesh's local space. Edges touching an out-of-range index are skipped.
func (m *Mesh) collect(hs *HitSet, r Ray) {
	nv := len(m.Vertices)
	for fi, face := range m.Faces {
		n := len(face)
		for i := range n {
			ia, ib := face[i], face[(i+1)%n]
			if ia < 0 || ia >= nv || ib < 0 || ib >= nv {
				Logger().Debug("geom2d: skipping edge with invalid vertex index",
					slog.Int("face", fi), slog.Int("a", ia), slog.Int("b", ib))
				continue
			}
			if _, p, ok := raySegment(r, m.Vertices[ia], m.Vertices[ib]); ok {
				hs.Insert(p)
			}
		}
	}
}

// Entity places one or more meshes in world space.
// Transform maps mesh-local coordinates to world coordinates.
type Entity struct {
	Transform Matrix
	Meshes    []*Mesh
}

// NewEntity creates an entity with the given transform and meshes.
func NewEntity(transform Matrix, meshes ...*Mesh) *Entity {
	return &Entity{Transform: transform, Meshes: meshes}
}

// Validate checks the transform and every mesh of the entity.
func (e *Entity) Validate() error {
	if !e.Transform.IsInvertible() {
		return fmt.Errorf("entity transform %+v: %w", e.Transform, ErrSingularTransform)
	}
	for i, m := range e.Meshes {
		if m == nil {
			continue
		}
		if err := m.Validate(); err != nil {
			return fmt.Errorf("mesh %d: %w", i, err)
		}
	}
	return nil
}

// Bounds returns the world-space bounding rectangle of the entity.
func (e *Entity) Bounds() Rect {
	var b Rect
	first := true
	for _, m := range e.Meshes {
		if m == nil {
			continue
		}
		for _, v := range m.Vertices {
			w := e.Transform.TransformPoint(v)
			if first {
				b = Rect{Min: w, Max: w}
				first = false
				continue
			}
			b = b.Extend(w)
		}
	}
	return b
}

// IntersectMesh returns the points where r crosses any face edge of m,
// nearest first. Both r and the result are in the mesh's local space.
// A vertex shared by adjacent edges or faces is reported once.
func IntersectMesh(r Ray, m *Mesh, opts ...QueryOption) []Point {
	var hs HitSet
	if m != nil {
		m.collect(&hs, r)
	}
	return finish(&hs, r.Origin, opts)
}

// IntersectEntity returns the points where the world-space ray r crosses
// any face edge of the entity's meshes, in world space and nearest first.
//
// The ray is mapped into local space with the inverse transform, every
// mesh is tested against it, and the surviving hits are mapped back. An
// entity with a singular transform is never hit.
func IntersectEntity(r Ray, e *Entity, opts ...QueryOption) []Point {
	if e == nil {
		return nil
	}
	return IntersectEntityInverse(r, e, e.Transform.Invert(), opts...)
}

// IntersectEntityInverse is IntersectEntity with a precomputed inverse of
// e.Transform. Callers issuing many queries against the same entity use it
// to avoid inverting the transform each time.
func IntersectEntityInverse(r Ray, e *Entity, inverse Matrix, opts ...QueryOption) []Point {
	if e == nil {
		return nil
	}
	if !e.Transform.IsInvertible() {
		Logger().Debug("geom2d: entity transform is singular",
			slog.Float64("det", e.Transform.Determinant()))
		return nil
	}

	local := inverse.TransformRay(r)
	var hs HitSet
	for _, m := range e.Meshes {
		if m != nil {
			m.collect(&hs, local)
		}
	}
	hs.Map(e.Transform.TransformPoint)
	return finish(&hs, r.Origin, opts)
}
