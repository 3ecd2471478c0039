// Command tridemo renders TOML triangle scenes with the tilerast software
// rasterizer.
//
// Usage:
//
//	tridemo [flags] [scene.toml ...]
//
// Without scene files a built-in demo scene is rendered. Scenes are
// rendered concurrently; each one is written to the file named by its
// "output" key, or next to the scene file with the chosen format's
// extension.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/tilerast"
	"github.com/gogpu/tilerast/internal/raster"
)

func main() {
	var (
		format   = flag.String("format", "png", "output format: png or bmp")
		workers  = flag.Int("workers", 0, "rasterization workers per scene (0 = GOMAXPROCS)")
		parallel = flag.Int("parallel", 2, "scenes rendered at the same time")
		output   = flag.String("output", "", "output file for the built-in demo scene")
		verbose  = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		tilerast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *format != "png" && *format != "bmp" {
		log.Fatalf("unknown format %q", *format)
	}

	var extra []tilerast.Option
	if *workers > 0 {
		extra = append(extra, tilerast.WithWorkers(*workers))
	}

	jobs, err := loadJobs(flag.Args(), *format, *output)
	if err != nil {
		log.Fatal(err)
	}

	p := message.NewPrinter(language.English)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*parallel, 1))
	for _, j := range jobs {
		g.Go(func() error {
			img, stats, err := j.scene.Render(ctx, extra...)
			if err != nil {
				return fmt.Errorf("%s: %w", j.name, err)
			}
			if err := writeImage(j.output, img); err != nil {
				return fmt.Errorf("%s: %w", j.name, err)
			}
			p.Println(report(p, j, stats))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

type job struct {
	name   string
	output string
	scene  *Scene
}

func loadJobs(paths []string, format, output string) ([]job, error) {
	if len(paths) == 0 {
		if output == "" {
			output = "demo." + format
		}
		return []job{{name: "demo", output: output, scene: demoScene()}}, nil
	}

	jobs := make([]job, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		s, err := LoadScene(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		out := s.Output
		if out == "" {
			out = strings.TrimSuffix(path, filepath.Ext(path)) + "." + format
		} else if !filepath.IsAbs(out) {
			out = filepath.Join(filepath.Dir(path), out)
		}
		jobs = append(jobs, job{name: path, output: out, scene: s})
	}
	return jobs, nil
}

func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		err = bmp.Encode(f, img)
	} else {
		err = png.Encode(f, img)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func report(p *message.Printer, j job, s tilerast.Stats) string {
	return p.Sprintf("%s -> %s: %d triangles (%d culled, %d discarded), %d tile commands (%d whole), %d partial blocks, %d masked quads",
		j.name, j.output, s.Submitted, s.Culled, s.Discarded, s.Commands, s.WholeTiles,
		s.Block(raster.ClassPartial), s.ShadeMasked)
}
