package scene

import (
	"math"

	"github.com/gogpu/geom2d"
	"github.com/gogpu/geom2d/internal/cache"
)

// circleSegments is the number of segments used to outline a circle.
const circleSegments = 64

// Shape is the interface for anything a scene ray can be tested against.
// All shapes report their hits in world space and can describe their
// boundary for drawing.
type Shape interface {
	// Name returns the label of the shape within its scene.
	Name() string

	// Intersect returns the hits of r on the shape boundary, nearest first.
	Intersect(r geom2d.Ray, opts ...geom2d.QueryOption) []geom2d.Point

	// Bounds returns the world-space bounding rectangle of the shape.
	Bounds() geom2d.Rect

	// Outline returns the shape boundary as world-space contours.
	Outline() []Contour
}

// Contour is a chain of points. A closed contour connects its last point
// back to the first.
type Contour struct {
	Points []geom2d.Point
	Closed bool
}

// RectShape is an axis-aligned rectangle.
type RectShape struct {
	Label string
	Rect  geom2d.Rect
}

// NewRectShape creates a rectangle shape. The corners are normalized.
func NewRectShape(name string, p1, p2 geom2d.Point) *RectShape {
	return &RectShape{Label: name, Rect: geom2d.NewRect(p1, p2)}
}

// Name returns the shape label.
func (s *RectShape) Name() string { return s.Label }

// Intersect returns the hits of r on the rectangle boundary.
func (s *RectShape) Intersect(r geom2d.Ray, opts ...geom2d.QueryOption) []geom2d.Point {
	return geom2d.IntersectRect(r, s.Rect, opts...)
}

// Bounds returns the rectangle itself.
func (s *RectShape) Bounds() geom2d.Rect { return s.Rect }

// Outline returns the four corners as a closed contour.
func (s *RectShape) Outline() []Contour {
	edges := s.Rect.Edges()
	pts := make([]geom2d.Point, 0, len(edges))
	for _, e := range edges {
		pts = append(pts, e.A)
	}
	return []Contour{{Points: pts, Closed: true}}
}

// CircleShape is a circle.
type CircleShape struct {
	Label  string
	Center geom2d.Point
	Radius float64
}

// NewCircleShape creates a circle shape.
func NewCircleShape(name string, center geom2d.Point, radius float64) *CircleShape {
	return &CircleShape{Label: name, Center: center, Radius: radius}
}

// Name returns the shape label.
func (s *CircleShape) Name() string { return s.Label }

// Intersect returns the crossings of the line through r with the circle.
func (s *CircleShape) Intersect(r geom2d.Ray, opts ...geom2d.QueryOption) []geom2d.Point {
	return geom2d.IntersectCircle(r, s.Center, s.Radius, opts...)
}

// Bounds returns the bounding square of the circle.
func (s *CircleShape) Bounds() geom2d.Rect {
	d := geom2d.Pt(s.Radius, s.Radius)
	return geom2d.NewRect(s.Center.Sub(d), s.Center.Add(d))
}

// Outline approximates the circle with a closed polygon.
func (s *CircleShape) Outline() []Contour {
	pts := make([]geom2d.Point, circleSegments)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		pts[i] = s.Center.Add(geom2d.Pt(cos, sin).Mul(s.Radius))
	}
	return []Contour{{Points: pts, Closed: true}}
}

// SegmentShape is a single line segment.
type SegmentShape struct {
	Label string
	Seg   geom2d.Segment
}

// NewSegmentShape creates a segment shape.
func NewSegmentShape(name string, a, b geom2d.Point) *SegmentShape {
	return &SegmentShape{Label: name, Seg: geom2d.Seg(a, b)}
}

// Name returns the shape label.
func (s *SegmentShape) Name() string { return s.Label }

// Intersect returns the crossing of r with the segment, if any.
func (s *SegmentShape) Intersect(r geom2d.Ray, opts ...geom2d.QueryOption) []geom2d.Point {
	return geom2d.IntersectSegment(r, s.Seg.A, s.Seg.B, opts...)
}

// Bounds returns the bounding rectangle of the segment.
func (s *SegmentShape) Bounds() geom2d.Rect { return s.Seg.Bounds() }

// Outline returns the segment as an open contour.
func (s *SegmentShape) Outline() []Contour {
	return []Contour{{Points: []geom2d.Point{s.Seg.A, s.Seg.B}}}
}

// PolygonShape is a closed polygon or an open polyline.
type PolygonShape struct {
	Label  string
	Points []geom2d.Point
	Closed bool
}

// NewPolygonShape creates a closed polygon shape.
func NewPolygonShape(name string, pts ...geom2d.Point) *PolygonShape {
	return &PolygonShape{Label: name, Points: pts, Closed: true}
}

// NewPolylineShape creates an open polyline shape.
func NewPolylineShape(name string, pts ...geom2d.Point) *PolygonShape {
	return &PolygonShape{Label: name, Points: pts}
}

// Name returns the shape label.
func (s *PolygonShape) Name() string { return s.Label }

// Intersect returns the crossings of r with the polygon edges.
func (s *PolygonShape) Intersect(r geom2d.Ray, opts ...geom2d.QueryOption) []geom2d.Point {
	if s.Closed {
		return geom2d.IntersectPolygon(r, s.Points, opts...)
	}
	return geom2d.IntersectPolyline(r, s.Points, opts...)
}

// Bounds returns the bounding rectangle of the vertices.
func (s *PolygonShape) Bounds() geom2d.Rect {
	return boundsOf(s.Points)
}

// Outline returns the vertices as a single contour.
func (s *PolygonShape) Outline() []Contour {
	return []Contour{{Points: s.Points, Closed: s.Closed}}
}

// inverses memoizes entity inverse transforms. Instanced entities share a
// transform, and scenes are often rebuilt from the same file.
var inverses = cache.New[geom2d.Matrix, geom2d.Matrix](256)

// EntityShape places meshes in the world through an affine transform.
// The entity may be moved between queries by assigning its Transform.
type EntityShape struct {
	Label  string
	Entity *geom2d.Entity
}

// NewEntityShape creates an entity shape.
func NewEntityShape(name string, e *geom2d.Entity) *EntityShape {
	return &EntityShape{Label: name, Entity: e}
}

// Name returns the shape label.
func (s *EntityShape) Name() string { return s.Label }

// Intersect returns the world-space crossings of r with every face edge.
// The inverse of the current transform comes from a shared cache.
func (s *EntityShape) Intersect(r geom2d.Ray, opts ...geom2d.QueryOption) []geom2d.Point {
	m := s.Entity.Transform
	return geom2d.IntersectEntityInverse(r, s.Entity, inverses.GetOrCreate(m, m.Invert), opts...)
}

// Bounds returns the world-space bounds of the entity.
func (s *EntityShape) Bounds() geom2d.Rect { return s.Entity.Bounds() }

// Outline returns every mesh face as a closed world-space contour.
func (s *EntityShape) Outline() []Contour {
	var out []Contour
	for _, m := range s.Entity.Meshes {
		if m == nil {
			continue
		}
		for _, face := range m.Faces {
			pts := make([]geom2d.Point, 0, len(face))
			for _, vi := range face {
				if vi >= 0 && vi < len(m.Vertices) {
					pts = append(pts, s.Entity.Transform.TransformPoint(m.Vertices[vi]))
				}
			}
			out = append(out, Contour{Points: pts, Closed: true})
		}
	}
	return out
}

func boundsOf(pts []geom2d.Point) geom2d.Rect {
	if len(pts) == 0 {
		return geom2d.Rect{}
	}
	b := geom2d.Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.Extend(p)
	}
	return b
}
