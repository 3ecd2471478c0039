package tilerast

import (
	"image/color"

	"github.com/gogpu/tilerast/internal/parallel"
	"github.com/gogpu/tilerast/internal/raster"
)

// fill is the shading payload of a triangle.
type fill struct {
	rgba [4]byte
}

func newFill(c color.RGBA) *fill {
	return &fill{rgba: [4]byte{c.R, c.G, c.B, c.A}}
}

// tileShader writes flat colors into one tile's pixel buffer. Coverage
// outside the tile's real size (edge tiles) is dropped.
type tileShader struct {
	tile   *parallel.Tile
	ox, oy int32
}

func newTileShader(t *parallel.Tile) *tileShader {
	x, y := t.Origin()
	return &tileShader{tile: t, ox: int32(x), oy: int32(y)}
}

func (s *tileShader) ShadeMasked(_ *raster.Task, inputs any, x, y int32, mask uint16) {
	f := inputs.(*fill)
	lx, ly := int(x-s.ox), int(y-s.oy)
	for it := raster.BitIterator(mask); !it.Done(); {
		i := it.Next()
		s.tile.SetPixel(lx+i&3, ly+i>>2, f.rgba)
	}
}

func (s *tileShader) ShadeAll(_ *raster.Task, inputs any, x, y, size int32) {
	f := inputs.(*fill)
	s.tile.FillRect(int(x-s.ox), int(y-s.oy), int(size), int(size), f.rgba)
}
