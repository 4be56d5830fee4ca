// Package render draws a scene and its query results to an image.
//
// Rendering is CPU only. Shape outlines and rays are stroked with an
// anti-aliasing rasterizer, every hit is marked with a small square, and
// markers may be labelled with the name of the shape that was hit.
//
// # Usage
//
//	results, err := s.Query(ctx)
//	if err != nil {
//	    return err
//	}
//	img := render.Render(s, results, render.WithSize(1024, 768))
//	if err := render.SavePNG("hits.png", img); err != nil {
//	    return err
//	}
//
// # Coordinate Spaces
//
// The scene is drawn y-up: world +Y points to the top of the image. The
// scene bounds are fitted to the image, preserving aspect ratio, with a
// margin on every side (see WithPadding).
package render
