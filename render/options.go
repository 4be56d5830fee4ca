package render

import "image/color"

// Option configures Render.
//
// Example:
//
//	// Default 800x600 image
//	img := render.Render(s, results)
//
//	// Larger image without labels
//	img := render.Render(s, results, render.WithSize(1600, 1200), render.WithLabels(false))
type Option func(*options)

// Palette holds the colors used by Render.
type Palette struct {
	Background color.Color
	Shape      color.Color
	Ray        color.Color
	Hit        color.Color
	Label      color.Color
}

// DefaultPalette is a light-on-dark color scheme.
var DefaultPalette = Palette{
	Background: color.RGBA{R: 0x1e, G: 0x22, B: 0x2a, A: 0xff},
	Shape:      color.RGBA{R: 0x8f, G: 0xbc, B: 0xbb, A: 0xff},
	Ray:        color.RGBA{R: 0xeb, G: 0xcb, B: 0x8b, A: 0xc0},
	Hit:        color.RGBA{R: 0xbf, G: 0x61, B: 0x6a, A: 0xff},
	Label:      color.RGBA{R: 0xe5, G: 0xe9, B: 0xf0, A: 0xff},
}

type options struct {
	width, height int
	padding       int
	lineWidth     float64
	markerSize    float64
	labels        bool
	palette       Palette
}

func defaultOptions() options {
	return options{
		width:      800,
		height:     600,
		padding:    24,
		lineWidth:  1.5,
		markerSize: 6,
		labels:     true,
		palette:    DefaultPalette,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithSize sets the image size in pixels. Non-positive values keep the
// default.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithPadding sets the margin in pixels between the scene and the image
// edge.
func WithPadding(px int) Option {
	return func(o *options) {
		o.padding = max(px, 0)
	}
}

// WithLineWidth sets the stroke width in pixels for outlines and rays.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithMarkerSize sets the side length in pixels of hit markers.
func WithMarkerSize(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.markerSize = px
		}
	}
}

// WithLabels enables or disables hit labels.
func WithLabels(on bool) Option {
	return func(o *options) {
		o.labels = on
	}
}

// WithPalette replaces the colors. Nil fields keep the default color.
func WithPalette(p Palette) Option {
	return func(o *options) {
		if p.Background != nil {
			o.palette.Background = p.Background
		}
		if p.Shape != nil {
			o.palette.Shape = p.Shape
		}
		if p.Ray != nil {
			o.palette.Ray = p.Ray
		}
		if p.Hit != nil {
			o.palette.Hit = p.Hit
		}
		if p.Label != nil {
			o.palette.Label = p.Label
		}
	}
}
