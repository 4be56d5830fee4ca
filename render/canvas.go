package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/geom2d"
)

// Canvas is a CPU-backed RGBA drawing surface. Coordinates are in pixels
// with the origin at the top-left corner.
//
// Example:
//
//	c := render.NewCanvas(800, 600)
//	c.Clear(color.Black)
//	c.StrokePolyline(pts, true, 2, color.White)
//	img := c.Image()
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewCanvas creates a transparent canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Bounds returns the canvas area as a rectangle.
func (c *Canvas) Bounds() geom2d.Rect {
	return geom2d.NewRect(geom2d.Pt(0, 0), geom2d.Pt(float64(c.Width()), float64(c.Height())))
}

// Image returns the underlying image. It shares memory with the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the entire canvas with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// StrokePolyline strokes the chain pts with the given width. A closed chain
// also strokes the edge from the last point back to the first.
func (c *Canvas) StrokePolyline(pts []geom2d.Point, closed bool, width float64, col color.Color) {
	if len(pts) < 2 {
		return
	}
	c.begin()
	for i := 1; i < len(pts); i++ {
		c.quad(pts[i-1], pts[i], width)
	}
	if closed && len(pts) > 2 {
		c.quad(pts[len(pts)-1], pts[0], width)
	}
	c.fill(col)
}

// StrokeLine strokes the segment from a to b.
func (c *Canvas) StrokeLine(a, b geom2d.Point, width float64, col color.Color) {
	c.StrokePolyline([]geom2d.Point{a, b}, false, width, col)
}

// FillSquare fills an axis-aligned square of the given side centered at p.
func (c *Canvas) FillSquare(p geom2d.Point, side float64, col color.Color) {
	h := side / 2
	c.begin()
	c.moveTo(geom2d.Pt(p.X-h, p.Y-h))
	c.lineTo(geom2d.Pt(p.X+h, p.Y-h))
	c.lineTo(geom2d.Pt(p.X+h, p.Y+h))
	c.lineTo(geom2d.Pt(p.X-h, p.Y+h))
	c.z.ClosePath()
	c.fill(col)
}

// Text draws s with its baseline starting at p.
func (c *Canvas) Text(p geom2d.Point, s string, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(p.X), int(p.Y)),
	}
	d.DrawString(s)
}

// TextWidth returns the advance of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

func (c *Canvas) begin() {
	c.z.Reset(c.Width(), c.Height())
	c.z.DrawOp = draw.Over
}

// quad adds the rectangle covering segment a-b, widened by w and extended
// by w/2 past each end. The segment is first clipped to the canvas grown
// by w, so far-away endpoints never reach the rasterizer.
func (c *Canvas) quad(a, b geom2d.Point, w float64) {
	a, b, ok := clipSegment(a, b, c.Bounds().Inset(-w))
	if !ok {
		return
	}
	d := b.Sub(a).Normalize()
	if d.IsZero() {
		return
	}
	h := w / 2
	n := d.Perp().Mul(h)
	a = a.Sub(d.Mul(h))
	b = b.Add(d.Mul(h))
	c.moveTo(a.Add(n))
	c.lineTo(b.Add(n))
	c.lineTo(b.Sub(n))
	c.lineTo(a.Sub(n))
	c.z.ClosePath()
}

func (c *Canvas) moveTo(p geom2d.Point) {
	c.z.MoveTo(float32(p.X), float32(p.Y))
}

func (c *Canvas) lineTo(p geom2d.Point) {
	c.z.LineTo(float32(p.X), float32(p.Y))
}

func (c *Canvas) fill(col color.Color) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// clipSegment returns the part of a-b inside r (Liang-Barsky).
func clipSegment(a, b geom2d.Point, r geom2d.Rect) (geom2d.Point, geom2d.Point, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-d.X, a.X - r.Min.X},
		{d.X, r.Max.X - a.X},
		{-d.Y, a.Y - r.Min.Y},
		{d.Y, r.Max.Y - a.Y},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = min(t1, t)
		}
	}
	return a.Add(d.Mul(t0)), a.Add(d.Mul(t1)), true
}
