package tilerast

import (
	"image"
	"image/color"
	"runtime"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/tilerast/internal/setup"
)

// Option configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Default: GOMAXPROCS workers, no culling, transparent canvas
//	r, err := tilerast.New(800, 600)
//
//	// Back-face culling on two workers
//	r, err := tilerast.New(800, 600,
//		tilerast.WithWorkers(2),
//		tilerast.WithCullMode(gputypes.CullModeBack))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	workers int
	clear   color.RGBA
	setup   setup.Config
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		workers: runtime.GOMAXPROCS(0),
		setup: setup.Config{
			CullMode:  gputypes.CullModeNone,
			FrontFace: gputypes.FrontFaceCCW,
		},
	}
}

// WithWorkers sets the number of rasterization workers.
// Values <= 0 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithCullMode selects which faces are discarded during setup.
func WithCullMode(m gputypes.CullMode) Option {
	return func(o *options) {
		o.setup.CullMode = m
	}
}

// WithFrontFace selects the winding, as seen on screen, of front-facing
// triangles.
func WithFrontFace(f gputypes.FrontFace) Option {
	return func(o *options) {
		o.setup.FrontFace = f
	}
}

// WithScissor restricts all drawing to r. An empty rectangle disables
// scissoring.
func WithScissor(r image.Rectangle) Option {
	return func(o *options) {
		o.setup.Scissor = r
	}
}

// WithClipPlanes adds user clip half-planes. A pixel (x, y) is drawn only
// if A*x + B*y + C > 0 for every plane. At most four planes are allowed,
// and a scissor cutting into a triangle counts against the same limit.
func WithClipPlanes(planes ...ClipPlane) Option {
	return func(o *options) {
		o.setup.ClipPlanes = append(o.setup.ClipPlanes, planes...)
	}
}

// WithClearColor sets the color the canvas is cleared to.
func WithClearColor(c color.RGBA) Option {
	return func(o *options) {
		o.clear = c
	}
}
