// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

// block16 classifies the sixteen 4x4 sub-blocks of the 16x16 block at
// (x, y), where c holds the plane values at (x, y).
func block16[P planeSet](t *Task, tri *Triangle, planes P, x, y int32, c *[MaxPlanes]int32) {
	var m Classification
	for j := 0; j < len(planes); j++ {
		p := planes[j]
		buildMasks(c[j], p.EO, p.EI, p.DCDX, p.DCDY, SubBlockSize, &m.Out, &m.Part)
	}

	t.classified(x, y, BlockSize, m)
	countCells(&t.Counters.SubBlocks, m)
	if m.Empty() {
		return
	}
	assertConsistent(m, x, y, BlockSize)

	for it := BitIterator(m.Partial()); !it.Done(); {
		ix, iy := cellOrigin(it.Next(), SubBlockSize)
		var cc [MaxPlanes]int32
		for j := 0; j < len(planes); j++ {
			cc[j] = Offset(c[j], planes[j].DCDX, planes[j].DCDY, ix, iy)
		}
		block4(t, tri, planes, x+ix, y+iy, &cc)
	}

	for it := BitIterator(m.In()); !it.Done(); {
		ix, iy := cellOrigin(it.Next(), SubBlockSize)
		t.shadeAll(tri.Inputs, x+ix, y+iy, SubBlockSize)
	}
}

// block4 tests each pixel of the 4x4 sub-block at (x, y) against every
// plane.
func block4[P planeSet](t *Task, tri *Triangle, planes P, x, y int32, c *[MaxPlanes]int32) {
	mask := MaskAll
	for j := 0; j < len(planes); j++ {
		mask &= quadMask(c[j], planes[j].DCDX, planes[j].DCDY)
	}

	if mask == 0 {
		t.Counters.EmptyQuads++
		return
	}
	t.shadeMasked(tri.Inputs, x, y, mask)
}
