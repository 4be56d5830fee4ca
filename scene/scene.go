package scene

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/geom2d"
)

// NamedRay is a ray with a label.
type NamedRay struct {
	Name string
	Ray  geom2d.Ray
}

// Result holds the hits of one ray on one shape.
type Result struct {
	RayIndex   int
	Ray        string
	ShapeIndex int
	Shape      string
	Hits       []geom2d.Point
}

// Nearest returns the hit closest to the ray origin. Circle crossings
// behind the origin count too; see the package-level Nearest for a
// forward-only reduction.
func (r Result) Nearest() (geom2d.Point, bool) {
	if len(r.Hits) == 0 {
		return geom2d.Point{}, false
	}
	return r.Hits[0], true
}

// Scene is a fixed set of rays and shapes queried together.
//
// A Scene is immutable after construction and safe for concurrent use.
type Scene struct {
	rays   []NamedRay
	shapes []Shape
	opts   []geom2d.QueryOption
}

// New creates a scene. opts are applied to every query in addition to the
// options passed to Query.
func New(rays []NamedRay, shapes []Shape, opts ...geom2d.QueryOption) *Scene {
	return &Scene{rays: rays, shapes: shapes, opts: opts}
}

// Rays returns the rays of the scene.
func (s *Scene) Rays() []NamedRay { return s.rays }

// Shapes returns the shapes of the scene.
func (s *Scene) Shapes() []Shape { return s.shapes }

// Bounds returns the smallest rectangle containing every shape and every
// ray origin.
func (s *Scene) Bounds() geom2d.Rect {
	var b geom2d.Rect
	first := true
	extend := func(r geom2d.Rect) {
		if first {
			b = r
			first = false
			return
		}
		b = b.Union(r)
	}
	for _, sh := range s.shapes {
		extend(sh.Bounds())
	}
	for _, r := range s.rays {
		extend(geom2d.Rect{Min: r.Ray.Origin, Max: r.Ray.Origin})
	}
	return b
}

// Query tests every ray against every shape.
//
// Pairs are evaluated concurrently, at most GOMAXPROCS at a time. The
// results are ordered by ray, then by shape, regardless of scheduling. Query
// stops early and returns ctx.Err() when ctx is cancelled.
func (s *Scene) Query(ctx context.Context, opts ...geom2d.QueryOption) ([]Result, error) {
	start := time.Now()
	all := make([]geom2d.QueryOption, 0, len(s.opts)+len(opts))
	all = append(all, s.opts...)
	all = append(all, opts...)

	ns := len(s.shapes)
	results := make([]Result, len(s.rays)*ns)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for ri, r := range s.rays {
		for si, sh := range s.shapes {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[ri*ns+si] = Result{
					RayIndex:   ri,
					Ray:        r.Name,
					ShapeIndex: si,
					Shape:      sh.Name(),
					Hits:       sh.Intersect(r.Ray, all...),
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	geom2d.Logger().Info("scene: query complete",
		slog.Int("rays", len(s.rays)),
		slog.Int("shapes", ns),
		slog.Duration("elapsed", time.Since(start)))
	return results, nil
}

// Nearest returns, for each ray, the closest hit ahead of the ray over all
// shapes. Hits behind the origin, which circles report when the origin
// lies inside them, are ignored. A ray that hits nothing ahead gets a
// Result with no hits and ShapeIndex -1.
func Nearest(rays []NamedRay, results []Result) []Result {
	best := make([]Result, len(rays))
	for i, r := range rays {
		best[i] = Result{RayIndex: i, Ray: r.Name, ShapeIndex: -1}
	}
	for _, res := range results {
		ray := rays[res.RayIndex].Ray
		p, ok := firstAhead(ray, res.Hits)
		if !ok {
			continue
		}
		cur := &best[res.RayIndex]
		origin := ray.Origin
		if q, ok := cur.Nearest(); ok && q.DistanceSquared(origin) <= p.DistanceSquared(origin) {
			continue
		}
		*cur = Result{
			RayIndex:   res.RayIndex,
			Ray:        res.Ray,
			ShapeIndex: res.ShapeIndex,
			Shape:      res.Shape,
			Hits:       []geom2d.Point{p},
		}
	}
	return best
}

// firstAhead returns the first of the ordered hits that does not lie
// behind the ray origin.
func firstAhead(r geom2d.Ray, hits []geom2d.Point) (geom2d.Point, bool) {
	for _, h := range hits {
		if h.Sub(r.Origin).Dot(r.Direction) >= 0 {
			return h, true
		}
	}
	return geom2d.Point{}, false
}
