// Package parallel provides tile-based parallel rendering infrastructure for
// gogpu/tilerast.
//
// The canvas is divided into 64x64 pixel tiles that are rendered
// independently. Each tile owns its RGBA buffer and is processed start to
// finish by exactly one worker, so tile rendering needs no locking:
//
//   - 64x64 tiles, matching the rasterizer's tile granularity
//   - Tile pooling for memory reuse via sync.Pool
//   - Work-stealing WorkerPool exposing the executing worker id
//
// Thread safety: TileGrid operations are NOT thread-safe by default.
// Use external synchronization or the provided WorkerPool for parallel access.
package parallel

// Tile size constants.
const (
	// TileWidth is the width of a tile in pixels.
	TileWidth = 64

	// TileHeight is the height of a tile in pixels.
	TileHeight = 64

	// TilePixels is the total number of pixels in a full tile.
	TilePixels = TileWidth * TileHeight

	// TileBytes is the size of a full tile in bytes (RGBA = 4 bytes per pixel).
	TileBytes = TilePixels * 4
)

// Tile represents a rectangular region for parallel processing.
//
// Edge tiles may have smaller actual dimensions when the canvas is not
// evenly divisible by the tile size; writes beyond Width or Height are
// dropped.
type Tile struct {
	// X is the tile column index (0-based).
	X int

	// Y is the tile row index (0-based).
	Y int

	// Width is the actual width in pixels (may be < TileWidth for edge tiles).
	Width int

	// Height is the actual height in pixels (may be < TileHeight for edge tiles).
	Height int

	// Dirty indicates whether this tile has pending work.
	Dirty bool

	// Data contains the RGBA pixel data owned by this tile.
	// Length is Width * Height * 4 bytes.
	Data []byte
}

// Reset clears the tile data for reuse.
// This zeros all pixel data and resets the dirty flag.
func (t *Tile) Reset() {
	clear(t.Data)
	t.Dirty = false
}

// Origin returns the canvas-space pixel coordinates of the tile's top-left
// corner.
func (t *Tile) Origin() (x, y int) {
	return t.X * TileWidth, t.Y * TileHeight
}

// Bounds returns the pixel bounds of this tile in canvas space.
// Returns (x, y, width, height) where x,y is the top-left corner.
func (t *Tile) Bounds() (x, y, w, h int) {
	return t.X * TileWidth, t.Y * TileHeight, t.Width, t.Height
}

// PixelOffset returns the byte offset into Data for the given pixel.
// Coordinates px, py are relative to the tile (0,0 is top-left of tile).
// Returns -1 if coordinates are out of bounds.
func (t *Tile) PixelOffset(px, py int) int {
	if px < 0 || px >= t.Width || py < 0 || py >= t.Height {
		return -1
	}
	return (py*t.Width + px) * 4
}

// Contains returns true if the canvas-space pixel (cx, cy) is within this tile.
func (t *Tile) Contains(cx, cy int) bool {
	tileX, tileY := t.Origin()
	return cx >= tileX && cx < tileX+t.Width &&
		cy >= tileY && cy < tileY+t.Height
}

// Stride returns the row stride in bytes.
func (t *Tile) Stride() int {
	return t.Width * 4
}

// SetPixel writes one tile-local pixel. Out-of-bounds writes are ignored.
func (t *Tile) SetPixel(px, py int, rgba [4]byte) {
	if off := t.PixelOffset(px, py); off >= 0 {
		copy(t.Data[off:off+4], rgba[:])
	}
}

// Fill sets every pixel of the tile to rgba.
func (t *Tile) Fill(rgba [4]byte) {
	t.FillRect(0, 0, t.Width, t.Height, rgba)
}

// FillRect fills the tile-local rectangle (px, py, w, h), clipped to the
// tile.
func (t *Tile) FillRect(px, py, w, h int, rgba [4]byte) {
	x1 := max(px, 0)
	y1 := max(py, 0)
	x2 := min(px+w, t.Width)
	y2 := min(py+h, t.Height)
	if x1 >= x2 || y1 >= y2 {
		return
	}

	stride := t.Stride()

	// Fill first row
	first := y1*stride + x1*4
	row := t.Data[first : first+(x2-x1)*4]
	for i := 0; i < len(row); i += 4 {
		copy(row[i:i+4], rgba[:])
	}

	// Copy first row to all other rows
	for y := y1 + 1; y < y2; y++ {
		start := y*stride + x1*4
		copy(t.Data[start:start+len(row)], row)
	}
}
