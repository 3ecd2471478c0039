package parallel

// TileGrid manages a grid of tiles for parallel rendering.
//
// The grid divides a canvas into 64x64 pixel tiles. Edge tiles may have
// smaller dimensions when the canvas is not evenly divisible by the tile size.
// Tiles are stored in a flat slice for cache efficiency, accessed via
// index calculation: index = ty * tilesX + tx.
//
// Thread safety: TileGrid is NOT thread-safe. Use external synchronization
// for concurrent access, or use the provided WorkerPool.
type TileGrid struct {
	tiles  []*Tile
	tilesX int
	tilesY int
	width  int
	height int
	pool   *TilePool
}

// NewTileGrid creates a new tile grid for the given canvas dimensions.
// A grid with non-positive dimensions has no tiles.
func NewTileGrid(width, height int) *TileGrid {
	g := &TileGrid{pool: NewTilePool()}
	if width <= 0 || height <= 0 {
		return g
	}

	g.width = width
	g.height = height
	g.tilesX = (width + TileWidth - 1) / TileWidth
	g.tilesY = (height + TileHeight - 1) / TileHeight
	g.tiles = make([]*Tile, g.tilesX*g.tilesY)

	for ty := range g.tilesY {
		for tx := range g.tilesX {
			tileW := min(TileWidth, width-tx*TileWidth)
			tileH := min(TileHeight, height-ty*TileHeight)

			tile := g.pool.Get(tileW, tileH)
			tile.X = tx
			tile.Y = ty
			g.tiles[ty*g.tilesX+tx] = tile
		}
	}
	return g
}

// TileAt returns the tile at tile coordinates (tx, ty).
// Returns nil if coordinates are out of bounds.
func (g *TileGrid) TileAt(tx, ty int) *Tile {
	if tx < 0 || tx >= g.tilesX || ty < 0 || ty >= g.tilesY {
		return nil
	}
	return g.tiles[ty*g.tilesX+tx]
}

// TileAtPixel returns the tile containing the pixel at canvas coordinates (px, py).
// Returns nil if coordinates are out of bounds.
func (g *TileGrid) TileAtPixel(px, py int) *Tile {
	if px < 0 || px >= g.width || py < 0 || py >= g.height {
		return nil
	}
	return g.tiles[(py/TileHeight)*g.tilesX+px/TileWidth]
}

// MarkDirty marks the tile at tile coordinates (tx, ty) as dirty.
// Does nothing if coordinates are out of bounds.
func (g *TileGrid) MarkDirty(tx, ty int) {
	if tile := g.TileAt(tx, ty); tile != nil {
		tile.Dirty = true
	}
}

// MarkAllDirty marks all tiles as dirty.
func (g *TileGrid) MarkAllDirty() {
	for _, tile := range g.tiles {
		tile.Dirty = true
	}
}

// DirtyTiles returns all tiles that are marked as dirty.
// The returned slice is newly allocated and can be safely modified.
func (g *TileGrid) DirtyTiles() []*Tile {
	result := make([]*Tile, 0, len(g.tiles))
	for _, tile := range g.tiles {
		if tile.Dirty {
			result = append(result, tile)
		}
	}
	return result
}

// ClearDirty resets the dirty flag on all tiles.
func (g *TileGrid) ClearDirty() {
	for _, tile := range g.tiles {
		tile.Dirty = false
	}
}

// TileCount returns the total number of tiles in the grid.
func (g *TileGrid) TileCount() int {
	return len(g.tiles)
}

// TilesX returns the number of tiles horizontally.
func (g *TileGrid) TilesX() int {
	return g.tilesX
}

// TilesY returns the number of tiles vertically.
func (g *TileGrid) TilesY() int {
	return g.tilesY
}

// Width returns the canvas width in pixels.
func (g *TileGrid) Width() int {
	return g.width
}

// Height returns the canvas height in pixels.
func (g *TileGrid) Height() int {
	return g.height
}

// AllTiles returns all tiles in the grid in row-major order.
// The returned slice should not be modified.
func (g *TileGrid) AllTiles() []*Tile {
	return g.tiles
}

// Close releases all tiles back to the pool.
// The grid should not be used after calling Close.
func (g *TileGrid) Close() {
	for i, tile := range g.tiles {
		g.pool.Put(tile)
		g.tiles[i] = nil
	}
	g.tiles = nil
}
