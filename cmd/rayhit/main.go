// Command rayhit loads a scene file, casts every ray against every shape and
// prints the hits.
//
// Usage:
//
//	rayhit [flags] scene.{yaml,yml,toml}
//
// With -png the scene and its hits are also drawn to an image.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/geom2d"
	"github.com/gogpu/geom2d/render"
	"github.com/gogpu/geom2d/scene"
)

type options struct {
	png     string
	width   int
	height  int
	maxDist float64
	limit   int
}

func main() {
	var (
		output  = flag.String("png", "", "write a rendering of the scene to this file")
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		maxDist = flag.Float64("max-dist", 0, "ignore hits farther than this from the ray origin (0 = no limit)")
		limit   = flag.Int("limit", 0, "report at most this many hits per ray and shape (0 = no limit)")
		verbose = flag.Bool("v", false, "log progress to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: rayhit [flags] scene.{yaml,yml,toml}\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		geom2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := options{png: *output, width: *width, height: *height, maxDist: *maxDist, limit: *limit}
	if err := run(ctx, flag.Arg(0), opts, os.Stdout); err != nil {
		log.Fatalf("rayhit: %v", err)
	}
}

func run(ctx context.Context, path string, o options, w io.Writer) error {
	cfg, err := scene.LoadFile(path)
	if err != nil {
		return err
	}
	s, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var qopts []geom2d.QueryOption
	if o.maxDist > 0 {
		qopts = append(qopts, geom2d.WithMaxDistance(o.maxDist))
	}
	if o.limit > 0 {
		qopts = append(qopts, geom2d.WithLimit(o.limit))
	}

	results, err := s.Query(ctx, qopts...)
	if err != nil {
		return err
	}
	report(w, s.Rays(), results)

	if o.png == "" {
		return nil
	}
	img := render.Render(s, results, render.WithSize(o.width, o.height))
	if err := render.SavePNG(o.png, img); err != nil {
		return err
	}
	log.Printf("Rendering saved to %s (%dx%d)\n", o.png, o.width, o.height)
	return nil
}

// report prints the hits of every ray, grouped by ray, followed by the
// nearest hit over all shapes.
func report(w io.Writer, rays []scene.NamedRay, results []scene.Result) {
	p := message.NewPrinter(language.English)
	best := scene.Nearest(rays, results)

	for ri, r := range rays {
		p.Fprintf(w, "ray %s from (%.3f, %.3f) toward (%.3f, %.3f)\n",
			r.Name, r.Ray.Origin.X, r.Ray.Origin.Y, r.Ray.Direction.X, r.Ray.Direction.Y)

		for _, res := range results {
			if res.RayIndex != ri || len(res.Hits) == 0 {
				continue
			}
			p.Fprintf(w, "  %-12s %d hit(s)\n", res.Shape, len(res.Hits))
			for _, h := range res.Hits {
				p.Fprintf(w, "    (%.3f, %.3f)  distance %.3f\n", h.X, h.Y, h.Distance(r.Ray.Origin))
			}
		}

		if h, ok := best[ri].Nearest(); ok {
			p.Fprintf(w, "  nearest: %s at (%.3f, %.3f)\n", best[ri].Shape, h.X, h.Y)
		} else {
			p.Fprintf(w, "  nearest: none\n")
		}
	}
}
