package parallel

import (
	"sync"
	"testing"
)

// =============================================================================
// Tile Tests
// =============================================================================

func TestTile_Constants(t *testing.T) {
	if TileWidth != 64 {
		t.Errorf("TileWidth = %d, want 64", TileWidth)
	}
	if TileHeight != 64 {
		t.Errorf("TileHeight = %d, want 64", TileHeight)
	}
	if TileBytes != 64*64*4 {
		t.Errorf("TileBytes = %d, want %d", TileBytes, 64*64*4)
	}
}

func TestTile_Bounds(t *testing.T) {
	tests := []struct {
		name         string
		tile         Tile
		wantX, wantY int
		wantW, wantH int
	}{
		{
			name:  "first tile",
			tile:  Tile{X: 0, Y: 0, Width: 64, Height: 64},
			wantX: 0, wantY: 0, wantW: 64, wantH: 64,
		},
		{
			name:  "second row first column",
			tile:  Tile{X: 0, Y: 1, Width: 64, Height: 64},
			wantX: 0, wantY: 64, wantW: 64, wantH: 64,
		},
		{
			name:  "edge tile",
			tile:  Tile{X: 2, Y: 3, Width: 32, Height: 16},
			wantX: 128, wantY: 192, wantW: 32, wantH: 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := tt.tile.Bounds()
			if x != tt.wantX || y != tt.wantY || w != tt.wantW || h != tt.wantH {
				t.Errorf("Bounds() = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					x, y, w, h, tt.wantX, tt.wantY, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestTile_PixelOffset(t *testing.T) {
	tile := &Tile{Width: 64, Height: 64, Data: make([]byte, TileBytes)}

	tests := []struct {
		name   string
		px, py int
		want   int
	}{
		{"top-left", 0, 0, 0},
		{"second pixel", 1, 0, 4},
		{"second row", 0, 1, 64 * 4},
		{"middle", 32, 32, (32*64 + 32) * 4},
		{"out of bounds negative x", -1, 0, -1},
		{"out of bounds negative y", 0, -1, -1},
		{"out of bounds x", 64, 0, -1},
		{"out of bounds y", 0, 64, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tile.PixelOffset(tt.px, tt.py); got != tt.want {
				t.Errorf("PixelOffset(%d,%d) = %d, want %d", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestTile_Contains(t *testing.T) {
	tile := &Tile{X: 1, Y: 1, Width: 64, Height: 64}

	tests := []struct {
		name   string
		cx, cy int
		want   bool
	}{
		{"inside", 96, 96, true},
		{"top-left corner", 64, 64, true},
		{"bottom-right inside", 127, 127, true},
		{"outside left", 63, 96, false},
		{"outside right", 128, 96, false},
		{"outside top", 96, 63, false},
		{"outside bottom", 96, 128, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tile.Contains(tt.cx, tt.cy); got != tt.want {
				t.Errorf("Contains(%d,%d) = %v, want %v", tt.cx, tt.cy, got, tt.want)
			}
		})
	}
}

func TestTile_FillRect(t *testing.T) {
	red := [4]byte{255, 0, 0, 255}

	tests := []struct {
		name       string
		x, y, w, h int
		inside     [][2]int
		outside    [][2]int
	}{
		{
			name: "interior", x: 4, y: 8, w: 16, h: 4,
			inside:  [][2]int{{4, 8}, {19, 11}},
			outside: [][2]int{{3, 8}, {20, 8}, {4, 12}},
		},
		{
			name: "clipped at origin", x: -10, y: -10, w: 12, h: 12,
			inside:  [][2]int{{0, 0}, {1, 1}},
			outside: [][2]int{{2, 0}, {0, 2}},
		},
		{
			name: "clipped at edge", x: 30, y: 10, w: 100, h: 1,
			inside:  [][2]int{{30, 10}, {31, 10}},
			outside: [][2]int{{29, 10}, {30, 11}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := &Tile{Width: 32, Height: 32, Data: make([]byte, 32*32*4)}
			tile.FillRect(tt.x, tt.y, tt.w, tt.h, red)

			for _, p := range tt.inside {
				off := tile.PixelOffset(p[0], p[1])
				if [4]byte(tile.Data[off:off+4]) != red {
					t.Errorf("pixel %v not filled", p)
				}
			}
			for _, p := range tt.outside {
				off := tile.PixelOffset(p[0], p[1])
				if off >= 0 && tile.Data[off+3] != 0 {
					t.Errorf("pixel %v filled, want untouched", p)
				}
			}
		})
	}
}

func TestTile_SetPixelOutOfBounds(t *testing.T) {
	tile := &Tile{Width: 16, Height: 16, Data: make([]byte, 16*16*4)}
	tile.SetPixel(16, 0, [4]byte{1, 2, 3, 4})
	tile.SetPixel(-1, 3, [4]byte{1, 2, 3, 4})

	for i, b := range tile.Data {
		if b != 0 {
			t.Fatalf("Data[%d] = %d, want 0", i, b)
		}
	}

	tile.SetPixel(15, 15, [4]byte{1, 2, 3, 4})
	if off := tile.PixelOffset(15, 15); tile.Data[off+3] != 4 {
		t.Error("SetPixel(15, 15) did not write")
	}
}

func TestTile_Reset(t *testing.T) {
	tile := &Tile{Width: 64, Height: 64, Dirty: true, Data: make([]byte, TileBytes)}
	tile.Fill([4]byte{0xFF, 0xFF, 0xFF, 0xFF})

	tile.Reset()

	if tile.Dirty {
		t.Error("Dirty not reset to false")
	}
	for i, b := range tile.Data {
		if b != 0 {
			t.Errorf("Data[%d] = %d, want 0", i, b)
			break
		}
	}
}

// =============================================================================
// TileGrid Tests
// =============================================================================

func TestTileGrid_Create(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		tilesX, tilesY int
	}{
		{"exact", 128, 64, 2, 1},
		{"partial", 130, 65, 3, 2},
		{"single pixel", 1, 1, 1, 1},
		{"empty", 0, 100, 0, 0},
		{"negative", -1, -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewTileGrid(tt.width, tt.height)
			defer g.Close()

			if g.TilesX() != tt.tilesX || g.TilesY() != tt.tilesY {
				t.Errorf("tiles = %dx%d, want %dx%d", g.TilesX(), g.TilesY(), tt.tilesX, tt.tilesY)
			}
			if g.TileCount() != tt.tilesX*tt.tilesY {
				t.Errorf("TileCount() = %d, want %d", g.TileCount(), tt.tilesX*tt.tilesY)
			}
		})
	}
}

func TestTileGrid_EdgeTiles(t *testing.T) {
	g := NewTileGrid(100, 70)
	defer g.Close()

	tests := []struct {
		tx, ty int
		w, h   int
	}{
		{0, 0, 64, 64},
		{1, 0, 36, 64},
		{0, 1, 64, 6},
		{1, 1, 36, 6},
	}

	for _, tt := range tests {
		tile := g.TileAt(tt.tx, tt.ty)
		if tile == nil {
			t.Fatalf("TileAt(%d,%d) = nil", tt.tx, tt.ty)
		}
		if tile.Width != tt.w || tile.Height != tt.h {
			t.Errorf("TileAt(%d,%d) size = %dx%d, want %dx%d", tt.tx, tt.ty, tile.Width, tile.Height, tt.w, tt.h)
		}
		if tile.X != tt.tx || tile.Y != tt.ty {
			t.Errorf("TileAt(%d,%d) index = (%d,%d)", tt.tx, tt.ty, tile.X, tile.Y)
		}
		if len(tile.Data) != tt.w*tt.h*4 {
			t.Errorf("TileAt(%d,%d) data length = %d, want %d", tt.tx, tt.ty, len(tile.Data), tt.w*tt.h*4)
		}
	}
}

func TestTileGrid_TileAtPixel(t *testing.T) {
	g := NewTileGrid(200, 100)
	defer g.Close()

	tests := []struct {
		px, py int
		tx, ty int
		ok     bool
	}{
		{0, 0, 0, 0, true},
		{63, 63, 0, 0, true},
		{64, 0, 1, 0, true},
		{199, 99, 3, 1, true},
		{200, 0, 0, 0, false},
		{-1, 0, 0, 0, false},
	}

	for _, tt := range tests {
		tile := g.TileAtPixel(tt.px, tt.py)
		if !tt.ok {
			if tile != nil {
				t.Errorf("TileAtPixel(%d,%d) = %v, want nil", tt.px, tt.py, tile)
			}
			continue
		}
		if tile == nil || tile.X != tt.tx || tile.Y != tt.ty {
			t.Errorf("TileAtPixel(%d,%d) = %v, want tile (%d,%d)", tt.px, tt.py, tile, tt.tx, tt.ty)
		}
	}
}

func TestTileGrid_Dirty(t *testing.T) {
	g := NewTileGrid(256, 256)
	defer g.Close()

	if n := len(g.DirtyTiles()); n != 0 {
		t.Errorf("new grid has %d dirty tiles, want 0", n)
	}

	g.MarkDirty(1, 2)
	g.MarkDirty(3, 3)
	g.MarkDirty(10, 10) // out of range, ignored

	dirty := g.DirtyTiles()
	if len(dirty) != 2 {
		t.Fatalf("DirtyTiles() = %d tiles, want 2", len(dirty))
	}
	if dirty[0].X != 1 || dirty[0].Y != 2 {
		t.Errorf("first dirty tile = (%d,%d), want (1,2)", dirty[0].X, dirty[0].Y)
	}

	g.ClearDirty()
	if n := len(g.DirtyTiles()); n != 0 {
		t.Errorf("after ClearDirty %d dirty tiles, want 0", n)
	}

	g.MarkAllDirty()
	if n := len(g.DirtyTiles()); n != g.TileCount() {
		t.Errorf("after MarkAllDirty %d dirty tiles, want %d", n, g.TileCount())
	}
}

// =============================================================================
// TilePool Tests
// =============================================================================

func TestTilePool_GetPut(t *testing.T) {
	pool := NewTilePool()

	tile := pool.Get(TileWidth, TileHeight)
	if tile == nil {
		t.Fatal("Get returned nil")
	}
	tile.Fill([4]byte{9, 9, 9, 9})
	tile.Dirty = true
	pool.Put(tile)

	again := pool.Get(TileWidth, TileHeight)
	if again.Dirty {
		t.Error("reused tile is dirty")
	}
	for i, b := range again.Data {
		if b != 0 {
			t.Fatalf("reused tile Data[%d] = %d, want 0", i, b)
		}
	}
}

func TestTilePool_GetInvalid(t *testing.T) {
	pool := NewTilePool()

	tests := []struct{ w, h int }{
		{0, 10}, {10, 0}, {-1, 5}, {TileWidth + 1, 8}, {8, TileHeight + 1},
	}
	for _, tt := range tests {
		if tile := pool.Get(tt.w, tt.h); tile != nil {
			t.Errorf("Get(%d,%d) = %v, want nil", tt.w, tt.h, tile)
		}
	}

	// Should not panic
	pool.Put(nil)
}

func TestTilePool_Concurrent(t *testing.T) {
	pool := NewTilePool()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				tile := pool.Get(TileWidth, TileHeight)
				tile.SetPixel(0, 0, [4]byte{1, 1, 1, 1})
				pool.Put(tile)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkTilePool_GetPut(b *testing.B) {
	pool := NewTilePool()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.Put(pool.Get(TileWidth, TileHeight))
	}
}
