package tilerast

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/tilerast/internal/binner"
	"github.com/gogpu/tilerast/internal/parallel"
	"github.com/gogpu/tilerast/internal/raster"
	"github.com/gogpu/tilerast/internal/setup"
)

// TriangleID identifies a triangle submitted with DrawTriangle until the
// next Flush.
type TriangleID uint64

// NoTriangle is returned for triangles that were culled during setup.
const NoTriangle TriangleID = 0

// Stats accumulates rendering statistics across flushes.
type Stats struct {
	raster.Counters

	// Submitted counts DrawTriangle calls that passed validation.
	Submitted uint64

	// Culled counts triangles discarded by setup.
	Culled uint64

	// Discarded counts triangles removed with Discard.
	Discarded uint64

	// Commands counts binned per-tile commands, and WholeTiles those that
	// cover their tile entirely.
	Commands   uint64
	WholeTiles uint64

	// Flushes counts completed Flush calls.
	Flushes uint64
}

// Renderer accumulates triangles and rasterizes them tile by tile on a
// pool of workers.
//
// Triangles are set up and binned by DrawTriangle and drawn by Flush.
// Within a tile, triangles are drawn in submission order.
//
// Renderer is safe for concurrent use; Flush holds the renderer for its
// whole duration, so DrawTriangle and Discard never observe a frame in
// progress.
type Renderer struct {
	mu sync.Mutex

	cfg   setup.Config
	clear color.RGBA

	pr   *parallel.ParallelRasterizer
	bins *binner.Bins

	pending []*raster.Triangle // indexed by id - base - 1
	base    TriangleID

	stats  Stats
	closed bool
}

// New creates a renderer for a width x height canvas cleared to the clear
// color. Both dimensions must be in [1, MaxCoord].
func New(width, height int, opts ...Option) (*Renderer, error) {
	if width <= 0 || height <= 0 || width > MaxCoord || height > MaxCoord {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.setup.Validate(); err != nil {
		return nil, err
	}

	r := &Renderer{
		cfg:   o.setup,
		clear: o.clear,
		pr:    parallel.NewParallelRasterizerWithWorkers(width, height, o.workers),
		bins:  binner.New(width, height),
	}
	r.pr.Clear(r.clear)

	Logger().Debug("tilerast: renderer created",
		"width", width, "height", height, "workers", r.pr.Workers())
	return r, nil
}

// Width returns the canvas width in pixels.
func (r *Renderer) Width() int { return r.pr.Width() }

// Height returns the canvas height in pixels.
func (r *Renderer) Height() int { return r.pr.Height() }

// DrawTriangle submits a triangle filled with c. The triangle is drawn by
// the next Flush.
//
// A triangle removed by setup (zero area, culled face, outside the scissor)
// yields NoTriangle and a nil error. Vertices outside the guard band
// return an error wrapping setup.ErrGuardBand.
func (r *Renderer) DrawTriangle(v0, v1, v2 Vertex, c color.RGBA) (TriangleID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return NoTriangle, ErrClosed
	}

	tri, ok, err := setup.Triangle(&r.cfg, v0, v1, v2, newFill(c))
	if err != nil {
		Logger().Warn("tilerast: triangle rejected", "v0", v0, "v1", v1, "v2", v2, "err", err)
		return NoTriangle, fmt.Errorf("tilerast: draw triangle: %w", err)
	}
	r.stats.Submitted++
	if !ok {
		r.stats.Culled++
		Logger().Debug("tilerast: triangle culled", "v0", v0, "v1", v1, "v2", v2)
		return NoTriangle, nil
	}

	r.bins.Bin(tri)
	r.pending = append(r.pending, tri)
	return r.base + TriangleID(len(r.pending)), nil
}

// Discard removes a triangle submitted since the last Flush. Its binned
// commands stay in place and are skipped when the tiles are drawn.
func (r *Renderer) Discard(id TriangleID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if id <= r.base || id > r.base+TriangleID(len(r.pending)) {
		return fmt.Errorf("%w: %d", ErrUnknownTriangle, id)
	}

	tri := r.pending[id-r.base-1]
	if tri.Disabled {
		return fmt.Errorf("%w: %d already discarded", ErrUnknownTriangle, id)
	}
	tri.Disabled = true
	r.stats.Discarded++
	return nil
}

// Flush draws every pending triangle. It is FlushContext with a background
// context.
func (r *Renderer) Flush() error {
	return r.FlushContext(context.Background())
}

// FlushContext draws every pending triangle into the canvas.
//
// Cancellation is checked between tiles: once ctx is done, tiles not yet
// started are skipped and FlushContext returns ctx.Err(). Pending
// triangles are consumed either way.
func (r *Renderer) FlushContext(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if len(r.pending) == 0 {
		return nil
	}

	grid := r.pr.Grid()
	for ty := range r.bins.TilesY() {
		for tx := range r.bins.TilesX() {
			if len(r.bins.Tile(tx, ty)) > 0 {
				grid.MarkDirty(tx, ty)
			}
		}
	}
	tiles := grid.DirtyTiles()

	counters := make([]raster.Counters, r.pr.Workers())
	err := r.pr.Render(ctx, tiles, func(worker int, t *parallel.Tile) {
		x, y := t.Origin()
		task := raster.NewTask(int32(x), int32(y), newTileShader(t))
		for _, cmd := range r.bins.Tile(t.X, t.Y) {
			raster.Rasterize(task, cmd)
		}
		counters[worker].Merge(&task.Counters)
	})

	for i := range counters {
		r.stats.Counters.Merge(&counters[i])
	}
	r.stats.Commands += uint64(r.bins.Len())
	r.stats.WholeTiles += uint64(r.bins.FullTiles())

	Logger().Debug("tilerast: flush",
		"triangles", len(r.pending), "tiles", len(tiles), "commands", r.bins.Len())

	grid.ClearDirty()
	r.bins.Reset()
	r.base += TriangleID(len(r.pending))
	clear(r.pending)
	r.pending = r.pending[:0]

	if err != nil {
		return fmt.Errorf("tilerast: flush: %w", err)
	}
	r.stats.Flushes++
	return nil
}

// Clear fills the canvas with the clear color. Pending triangles are kept.
func (r *Renderer) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	r.pr.Clear(r.clear)
	return nil
}

// Image returns a copy of the canvas. Triangles not yet flushed are not
// included. Image returns nil after Close.
func (r *Renderer) Image() *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, r.pr.Width(), r.pr.Height()))
	r.pr.Composite(img.Pix, img.Stride)
	return img
}

// Stats returns the statistics accumulated so far.
func (r *Renderer) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Close releases the worker pool and tile buffers. Close is idempotent.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	r.pr.Close()
	r.pending = nil
	return nil
}

// IsGuardBand reports whether err was caused by a vertex outside the guard
// band.
func IsGuardBand(err error) bool {
	return errors.Is(err, setup.ErrGuardBand)
}
