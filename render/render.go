package render

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/geom2d"
	"github.com/gogpu/geom2d/scene"
)

// minExtent is the smallest world extent fitted to the image, so that a
// scene with a single point or a flat row of shapes still gets a finite
// scale.
const minExtent = 1.0

// Render draws the shapes and rays of s and marks every hit in results.
//
// Rays are drawn from their origin to the image edge. When labels are
// enabled, the nearest hit of each result is labelled with the shape name.
func Render(s *scene.Scene, results []scene.Result, opts ...Option) *image.RGBA {
	o := buildOptions(opts)
	c := NewCanvas(o.width, o.height)
	c.Clear(o.palette.Background)

	view := fit(s.Bounds(), o)
	shapes := 0
	for _, sh := range s.Shapes() {
		for _, ct := range sh.Outline() {
			pts := make([]geom2d.Point, len(ct.Points))
			for i, p := range ct.Points {
				pts[i] = view.TransformPoint(p)
			}
			c.StrokePolyline(pts, ct.Closed, o.lineWidth, o.palette.Shape)
			shapes++
		}
	}

	edge := c.Bounds()
	for _, r := range s.Rays() {
		if a, b, ok := rayExtent(view.TransformRay(r.Ray), edge); ok {
			c.StrokeLine(a, b, o.lineWidth, o.palette.Ray)
		}
	}

	hits := 0
	for _, res := range results {
		for i, p := range res.Hits {
			pp := view.TransformPoint(p)
			c.FillSquare(pp, o.markerSize, o.palette.Hit)
			if o.labels && i == 0 {
				c.Text(pp.Add(geom2d.Pt(o.markerSize, -o.markerSize)), res.Shape, o.palette.Label)
			}
			hits++
		}
	}

	geom2d.Logger().Debug("render: scene drawn",
		slog.Int("width", o.width),
		slog.Int("height", o.height),
		slog.Int("contours", shapes),
		slog.Int("hits", hits))
	return c.Image()
}

// rayExtent returns the visible part of r within edge. A ray starting
// inside runs from its origin to the exit point; a ray starting outside
// runs from the entry point to the exit point.
func rayExtent(r geom2d.Ray, edge geom2d.Rect) (geom2d.Point, geom2d.Point, bool) {
	hits := geom2d.IntersectRect(r, edge)
	if edge.Contains(r.Origin) {
		if len(hits) == 0 {
			return r.Origin, r.Origin, false
		}
		return r.Origin, hits[len(hits)-1], true
	}
	if len(hits) < 2 {
		return r.Origin, r.Origin, false
	}
	return hits[0], hits[len(hits)-1], true
}

// fit returns the world-to-pixel transform that centers b in the image,
// scaled uniformly to fill the padded area, with +Y pointing up.
func fit(b geom2d.Rect, o options) geom2d.Matrix {
	w := float64(o.width - 2*o.padding)
	h := float64(o.height - 2*o.padding)
	if w <= 0 || h <= 0 {
		w, h = float64(o.width), float64(o.height)
	}
	s := min(w/max(b.Width(), minExtent), h/max(b.Height(), minExtent))
	c := b.Center()
	return geom2d.Translate(float64(o.width)/2, float64(o.height)/2).
		Multiply(geom2d.Scale(s, -s)).
		Multiply(geom2d.Translate(-c.X, -c.Y))
}

// Encode writes img to w in PNG format.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to the file at path in PNG format.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Encode(bw, img); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
