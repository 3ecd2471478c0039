package parallel

import (
	"context"
	"image/color"
	"runtime"
)

// ParallelRasterizer runs per-tile work on a WorkerPool.
//
// It owns the TileGrid holding the canvas pixels and schedules one work item
// per tile, so each tile is processed start to finish by a single worker.
//
// Thread safety: ParallelRasterizer methods must not be called
// concurrently with each other; each method internally fans out to the
// pool and returns once all its tiles are done.
type ParallelRasterizer struct {
	grid   *TileGrid
	pool   *WorkerPool
	width  int
	height int
}

// NewParallelRasterizer creates a parallel rasterizer with GOMAXPROCS workers.
// Returns nil if width or height is <= 0.
func NewParallelRasterizer(width, height int) *ParallelRasterizer {
	return NewParallelRasterizerWithWorkers(width, height, runtime.GOMAXPROCS(0))
}

// NewParallelRasterizerWithWorkers creates a parallel rasterizer with a specific worker count.
// If workers <= 0, GOMAXPROCS is used.
// Returns nil if width or height is <= 0.
func NewParallelRasterizerWithWorkers(width, height, workers int) *ParallelRasterizer {
	if width <= 0 || height <= 0 {
		return nil
	}

	return &ParallelRasterizer{
		grid:   NewTileGrid(width, height),
		pool:   NewWorkerPool(workers),
		width:  width,
		height: height,
	}
}

// Width returns the canvas width in pixels.
func (pr *ParallelRasterizer) Width() int {
	return pr.width
}

// Height returns the canvas height in pixels.
func (pr *ParallelRasterizer) Height() int {
	return pr.height
}

// Workers returns the number of pool workers. Worker ids passed to Render
// callbacks are in [0, Workers()).
func (pr *ParallelRasterizer) Workers() int {
	return pr.pool.Workers()
}

// Grid returns the underlying TileGrid.
func (pr *ParallelRasterizer) Grid() *TileGrid {
	return pr.grid
}

// Clear fills all tiles with the specified color in parallel.
func (pr *ParallelRasterizer) Clear(c color.Color) {
	rgba := ColorToRGBA(c)
	tiles := pr.grid.AllTiles()
	pr.pool.ExecuteAll(len(tiles), func(_, i int) {
		tiles[i].Fill(rgba)
	})
}

// Render calls fn for every tile in tiles, in parallel. fn receives the id
// of the executing worker. Once ctx is cancelled the remaining tiles are
// skipped; a tile already started always runs to completion. Render
// returns ctx.Err() if any tile was skipped.
func (pr *ParallelRasterizer) Render(ctx context.Context, tiles []*Tile, fn func(worker int, t *Tile)) error {
	if len(tiles) == 0 || fn == nil {
		return nil
	}

	skipped := make([]bool, len(tiles))
	pr.pool.ExecuteAll(len(tiles), func(worker, i int) {
		if ctx.Err() != nil {
			skipped[i] = true
			return
		}
		fn(worker, tiles[i])
	})

	for _, s := range skipped {
		if s {
			return ctx.Err()
		}
	}
	return nil
}

// Composite copies all tile data to a destination buffer in row-major RGBA order.
// The dst buffer must be at least height * stride bytes, where stride is
// the number of bytes per row in dst (at least width * 4).
// This operation is performed in parallel across tiles.
func (pr *ParallelRasterizer) Composite(dst []byte, stride int) {
	if stride < pr.width*4 || len(dst) < pr.height*stride {
		return
	}

	tiles := pr.grid.AllTiles()
	pr.pool.ExecuteAll(len(tiles), func(_, i int) {
		compositeTile(tiles[i], dst, stride)
	})
}

// compositeTile copies a single tile's data to the destination buffer.
func compositeTile(t *Tile, dst []byte, dstStride int) {
	tileX, tileY := t.Origin()
	srcStride := t.Stride()

	for row := range t.Height {
		dstOffset := (tileY+row)*dstStride + tileX*4
		srcOffset := row * srcStride
		copy(dst[dstOffset:dstOffset+srcStride], t.Data[srcOffset:srcOffset+srcStride])
	}
}

// Close releases all resources.
// The rasterizer should not be used after Close is called.
func (pr *ParallelRasterizer) Close() {
	pr.pool.Close()
	pr.grid.Close()
}

// ColorToRGBA converts a color.Color to RGBA bytes.
func ColorToRGBA(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{
		byte(r >> 8),
		byte(g >> 8),
		byte(b >> 8),
		byte(a >> 8),
	}
}
