package parallel

import "sync"

// TilePool provides reuse of Tile buffers via sync.Pool.
//
// Full-size tiles are pooled; edge tiles are rare (at most one column and
// one row per canvas) and are allocated directly.
//
// Thread safety: TilePool is safe for concurrent use.
type TilePool struct {
	full sync.Pool
}

// NewTilePool creates a new tile pool.
func NewTilePool() *TilePool {
	p := &TilePool{}
	p.full.New = func() any {
		return &Tile{
			Width:  TileWidth,
			Height: TileHeight,
			Data:   make([]byte, TileBytes),
		}
	}
	return p
}

// Get retrieves a zeroed tile with the specified dimensions.
// Returns nil for non-positive dimensions or dimensions exceeding a full
// tile.
func (p *TilePool) Get(width, height int) *Tile {
	if width <= 0 || height <= 0 || width > TileWidth || height > TileHeight {
		return nil
	}

	if width == TileWidth && height == TileHeight {
		tile := p.full.Get().(*Tile)
		tile.Reset()
		tile.X, tile.Y = 0, 0
		return tile
	}

	return &Tile{
		Width:  width,
		Height: height,
		Data:   make([]byte, width*height*4),
	}
}

// Put returns a tile to the pool for reuse. Edge tiles and nil are
// dropped.
func (p *TilePool) Put(tile *Tile) {
	if tile == nil || tile.Width != TileWidth || tile.Height != TileHeight {
		return
	}
	p.full.Put(tile)
}
