// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "math/bits"

// planeSet is the dense array of active planes for one triangle and tile.
// Each array length is a separate instantiation, so every loop over the
// planes has a length known at compile time.
type planeSet interface {
	[1]Plane | [2]Plane | [3]Plane | [4]Plane | [5]Plane | [6]Plane | [7]Plane
}

// TriangleFn rasterizes the planes of tri selected by mask within the tile
// of t. The mask must select exactly as many planes as the function was
// specialized for.
type TriangleFn func(t *Task, tri *Triangle, mask uint8)

var dispatch = [MaxPlanes]TriangleFn{
	triangleN[[1]Plane],
	triangleN[[2]Plane],
	triangleN[[3]Plane],
	triangleN[[4]Plane],
	triangleN[[5]Plane],
	triangleN[[6]Plane],
	triangleN[[7]Plane],
}

// TriangleFunc returns the entry point specialized for n active planes.
// It returns nil if n is outside [1, MaxPlanes].
func TriangleFunc(n int) TriangleFn {
	if n < 1 || n > MaxPlanes {
		return nil
	}
	return dispatch[n-1]
}

// Rasterize executes one binned command on the tile of t.
//
// Disabled triangles are skipped without touching the shader or the
// counters. A command with an empty plane mask covers the whole tile.
func Rasterize(t *Task, cmd Command) {
	tri := cmd.Tri
	if tri == nil || tri.Disabled {
		return
	}

	mask := cmd.PlaneMask & tri.AllPlanes()
	if mask == 0 {
		ShadeTile(t, tri)
		return
	}
	dispatch[bits.OnesCount8(mask)-1](t, tri, mask)
}

// ShadeTile shades the whole tile of t as sixteen fully covered blocks.
func ShadeTile(t *Task, tri *Triangle) {
	if tri.Disabled {
		return
	}
	t.Counters.FullTiles++
	t.Counters.Blocks[ClassFull] += 16
	for i := range 16 {
		ix, iy := cellOrigin(i, BlockSize)
		t.shadeAll(tri.Inputs, t.X+ix, t.Y+iy, BlockSize)
	}
}

// triangleN classifies the sixteen 16x16 blocks of the tile.
func triangleN[P planeSet](t *Task, tri *Triangle, mask uint8) {
	if tri.Disabled {
		return
	}

	var planes P
	var c [MaxPlanes]int32
	it := BitIterator(mask)
	for j := 0; j < len(planes); j++ {
		p := tri.Planes[it.Next()]
		planes[j] = p
		c[j] = p.At(t.X, t.Y)
	}

	var m Classification
	for j := 0; j < len(planes); j++ {
		p := planes[j]
		buildMasks(c[j], p.EO, p.EI, p.DCDX, p.DCDY, BlockSize, &m.Out, &m.Part)
	}

	t.Counters.Triangles++
	t.classified(t.X, t.Y, TileSize, m)
	if m.Empty() {
		t.Counters.EmptyTiles++
		return
	}
	assertConsistent(m, t.X, t.Y, TileSize)
	countCells(&t.Counters.Blocks, m)

	for it := BitIterator(m.Partial()); !it.Done(); {
		ix, iy := cellOrigin(it.Next(), BlockSize)
		var cc [MaxPlanes]int32
		for j := 0; j < len(planes); j++ {
			cc[j] = Offset(c[j], planes[j].DCDX, planes[j].DCDY, ix, iy)
		}
		block16(t, tri, planes, t.X+ix, t.Y+iy, &cc)
	}

	for it := BitIterator(m.In()); !it.Done(); {
		ix, iy := cellOrigin(it.Next(), BlockSize)
		t.shadeAll(tri.Inputs, t.X+ix, t.Y+iy, BlockSize)
	}
}
