// Package tilerast is a tile-based software triangle rasterizer.
//
// # Overview
//
// tilerast splits the canvas into 64x64 pixel tiles and rasterizes each tile
// independently on a pool of workers. Every triangle is reduced to up to
// seven half-plane tests (three edges, plus scissor and user clip planes)
// and evaluated hierarchically: whole 16x16 blocks and 4x4 sub-blocks are
// accepted or rejected from a handful of corner tests, and only the
// sub-blocks straddling an edge are tested pixel by pixel.
//
// # Quick Start
//
//	import "github.com/gogpu/tilerast"
//
//	r, err := tilerast.New(512, 512)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	r.DrawTriangle(tilerast.Pt(10, 10), tilerast.Pt(500, 40), tilerast.Pt(200, 480),
//		color.RGBA{R: 255, A: 255})
//	r.Flush()
//	img := r.Image()
//
// # Coverage Rules
//
// Vertices are snapped to 1/16 pixel. A pixel is covered when its center
// lies strictly inside the triangle, or exactly on a top or left edge, so
// triangles sharing an edge never overlap and never leave a gap.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Winding ("counter-clockwise") is judged as seen on screen
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, options, Vertex
//   - internal/setup: fixed-point triangle setup, culling, clip planes
//   - internal/binner: per-tile command lists with active plane masks
//   - internal/raster: hierarchical coverage evaluation
//   - internal/parallel: tiles, tile grid and work-stealing worker pool
//
// # Shading
//
// Triangles are filled with a flat color. Later triangles overwrite earlier
// ones within a Flush; there is no blending or depth testing.
package tilerast
