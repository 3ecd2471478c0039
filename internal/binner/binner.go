// Package binner sorts set-up triangles into per-tile command lists.
//
// For every tile a triangle may touch, the binner evaluates each plane at
// the tile corners. A plane that rejects the whole tile removes the tile
// from the triangle's footprint, a plane that accepts the whole tile is
// dropped from the command's plane mask, and a command whose mask ends up
// empty covers its tile entirely.
package binner

import (
	"image"

	"github.com/gogpu/tilerast/internal/raster"
)

// Bins holds one command list per tile of a canvas. Commands keep their
// submission order within each tile.
//
// Bins is not safe for concurrent use while binning. Once binning is
// finished, distinct tiles may be read concurrently.
type Bins struct {
	width, height  int
	tilesX, tilesY int
	bins           [][]raster.Command
	commands       int
	fullTiles      int
}

// New creates bins for a width x height canvas.
func New(width, height int) *Bins {
	if width <= 0 || height <= 0 {
		return &Bins{}
	}
	tilesX := (width + raster.TileSize - 1) / raster.TileSize
	tilesY := (height + raster.TileSize - 1) / raster.TileSize
	return &Bins{
		width:  width,
		height: height,
		tilesX: tilesX,
		tilesY: tilesY,
		bins:   make([][]raster.Command, tilesX*tilesY),
	}
}

// TilesX returns the number of tile columns.
func (b *Bins) TilesX() int { return b.tilesX }

// TilesY returns the number of tile rows.
func (b *Bins) TilesY() int { return b.tilesY }

// Tile returns the commands binned for tile (tx, ty), or nil if the tile
// is out of range.
func (b *Bins) Tile(tx, ty int) []raster.Command {
	if tx < 0 || ty < 0 || tx >= b.tilesX || ty >= b.tilesY {
		return nil
	}
	return b.bins[ty*b.tilesX+tx]
}

// Len returns the number of commands binned since the last Reset.
func (b *Bins) Len() int { return b.commands }

// FullTiles returns how many of those commands cover their whole tile.
func (b *Bins) FullTiles() int { return b.fullTiles }

// Reset empties every bin, keeping the allocated storage.
func (b *Bins) Reset() {
	for i := range b.bins {
		clear(b.bins[i])
		b.bins[i] = b.bins[i][:0]
	}
	b.commands = 0
	b.fullTiles = 0
}

// Bin appends a command for tri to every tile it may cover and returns the
// number of tiles touched.
func (b *Bins) Bin(tri *raster.Triangle) int {
	r := tri.Bounds.Intersect(image.Rect(0, 0, b.width, b.height))
	if r.Empty() {
		return 0
	}

	tx0, ty0 := r.Min.X/raster.TileSize, r.Min.Y/raster.TileSize
	tx1, ty1 := (r.Max.X-1)/raster.TileSize, (r.Max.Y-1)/raster.TileSize

	n := 0
	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			mask, ok := TileMask(tri, int32(tx*raster.TileSize), int32(ty*raster.TileSize))
			if !ok {
				continue
			}
			i := ty*b.tilesX + tx
			b.bins[i] = append(b.bins[i], raster.Command{Tri: tri, PlaneMask: mask})
			if mask == 0 {
				b.fullTiles++
			}
			n++
		}
	}
	b.commands += n
	return n
}

// TileMask classifies tri against the 64x64 tile whose origin is (x, y).
// It returns ok == false if some plane rejects the whole tile. Otherwise
// mask selects the planes that do not accept the whole tile; zero means
// the tile is entirely covered.
func TileMask(tri *raster.Triangle, x, y int32) (mask uint8, ok bool) {
	for j := range tri.NumPlanes {
		p := &tri.Planes[j]
		c := p.At(x, y)
		if c+p.EO*raster.TileSize < 0 {
			return 0, false
		}
		if c+p.EI*raster.TileSize-1 < 0 {
			mask |= 1 << j
		}
	}
	return mask, true
}
