package raster

import (
	"math/bits"
	"math/rand/v2"
	"testing"
)

// recorder is a Shader that accumulates per-pixel hit counts for one tile.
type recorder struct {
	hits   [TileSize * TileSize]uint8
	masked []shadeCall
	all    []shadeCall
	stray  int // pixels shaded outside the tile
}

type shadeCall struct {
	x, y, size int32
	mask       uint16
}

func (r *recorder) hit(t *Task, x, y int32) {
	lx, ly := x-t.X, y-t.Y
	if lx < 0 || ly < 0 || lx >= TileSize || ly >= TileSize {
		r.stray++
		return
	}
	r.hits[ly*TileSize+lx]++
}

func (r *recorder) ShadeMasked(t *Task, _ any, x, y int32, mask uint16) {
	r.masked = append(r.masked, shadeCall{x: x, y: y, size: SubBlockSize, mask: mask})
	for it := BitIterator(mask); !it.Done(); {
		i := int32(it.Next())
		r.hit(t, x+i&3, y+i>>2)
	}
}

func (r *recorder) ShadeAll(t *Task, _ any, x, y, size int32) {
	r.all = append(r.all, shadeCall{x: x, y: y, size: size, mask: MaskAll})
	for dy := range size {
		for dx := range size {
			r.hit(t, x+dx, y+dy)
		}
	}
}

// run rasterizes cmd on the tile at (x, y) and returns the recorder.
func run(t *testing.T, x, y int32, cmd Command) (*recorder, *Task) {
	t.Helper()
	rec := &recorder{}
	task := NewTask(x, y, rec)
	Rasterize(task, cmd)
	return rec, task
}

// oracle evaluates every selected plane at every pixel of the tile in
// 64-bit arithmetic.
func oracle(tri *Triangle, mask uint8, tx, ty int32) [TileSize * TileSize]uint8 {
	var want [TileSize * TileSize]uint8
	for ly := range int32(TileSize) {
		for lx := range int32(TileSize) {
			x, y := int64(tx+lx), int64(ty+ly)
			in := true
			for j := range tri.NumPlanes {
				if mask&(1<<j) == 0 {
					continue
				}
				p := tri.Planes[j]
				if int64(p.C)+int64(p.DCDY)*y-int64(p.DCDX)*x <= 0 {
					in = false
					break
				}
			}
			if in {
				want[ly*TileSize+lx] = 1
			}
		}
	}
	return want
}

// compareCoverage reports every pixel where got differs from want.
func compareCoverage(t *testing.T, name string, got, want *[TileSize * TileSize]uint8) {
	t.Helper()
	bad := 0
	for i := range got {
		if got[i] != want[i] {
			if bad < 5 {
				t.Errorf("%s: pixel (%d,%d) shaded %d times, want %d", name, i%TileSize, i/TileSize, got[i], want[i])
			}
			bad++
		}
	}
	if bad > 5 {
		t.Errorf("%s: %d mismatched pixels in total", name, bad)
	}
}

// triPlanes builds the three edge planes of a triangle with 28.4 vertices,
// pixel centers at +0.5 and the top-left fill rule.
func triPlanes(ax, ay, bx, by, cx, cy int32) []Plane {
	area := int64(bx-ax)*int64(cy-ay) - int64(cx-ax)*int64(by-ay)
	if area < 0 {
		bx, by, cx, cy = cx, cy, bx, by
	}
	vs := [3][2]int32{{ax, ay}, {bx, by}, {cx, cy}}

	planes := make([]Plane, 0, 3)
	for i := range 3 {
		x0, y0 := vs[i][0], vs[i][1]
		x1, y1 := vs[(i+1)%3][0], vs[(i+1)%3][1]
		dcdx, dcdy := y1-y0, x1-x0
		k := int64(dcdy)*int64(int32(FDot4Half)-y0) - int64(dcdx)*int64(int32(FDot4Half)-x0)
		if dcdx < 0 || (dcdx == 0 && dcdy > 0) {
			k++
		}
		planes = append(planes, NewPlane(dcdx, dcdy, int32(CeilDiv16(k))))
	}
	return planes
}

// px converts whole pixels to 28.4.
func px(v int32) int32 { return v << FDot4Shift }

func newTriangle(planes ...Plane) *Triangle {
	tri := &Triangle{NumPlanes: len(planes)}
	copy(tri.Planes[:], planes)
	return tri
}

// randomPlane returns a plane whose edge passes through a random point near
// the tile at (tx, ty).
func randomPlane(rng *rand.Rand, tx, ty int32) Plane {
	dcdx := rng.Int32N(81) - 40
	dcdy := rng.Int32N(81) - 40
	x0 := tx + rng.Int32N(TileSize+32) - 16
	y0 := ty + rng.Int32N(TileSize+32) - 16
	c := dcdx*x0 - dcdy*y0 + rng.Int32N(9) - 4
	return NewPlane(dcdx, dcdy, c)
}

// randomTriangle returns a triangle with n planes near the tile at
// (tx, ty). The first min(n, 3) planes are edges of a real triangle.
func randomTriangle(rng *rand.Rand, n int, tx, ty int32) *Triangle {
	coord := func(o int32) int32 {
		return px(o-48) + rng.Int32N(px(TileSize+96))
	}
	edges := triPlanes(coord(tx), coord(ty), coord(tx), coord(ty), coord(tx), coord(ty))

	planes := edges[:min(n, 3)]
	for len(planes) < n {
		planes = append(planes, randomPlane(rng, tx, ty))
	}
	return newTriangle(planes...)
}

var tileOrigins = [][2]int32{{0, 0}, {64, 0}, {128, 192}, {704, 448}}

func popcount(m uint16) int { return bits.OnesCount16(m) }
