// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "github.com/gogpu/tilerast/internal/wide"

// Mask bit layout: bit i of a 16-bit mask addresses cell (i&3, i>>2) of a
// 4x4 grid. A cell is a pixel, a 4x4 sub-block or a 16x16 block depending
// on the level of the hierarchy.
const (
	// MaskAll has every cell of a 4x4 grid set.
	MaskAll uint16 = 0xffff
)

// buildMaskLinear returns a mask with bit i set iff the linear function
// c + (i&3)*dx + (i>>2)*dy is negative.
func buildMaskLinear(c, dx, dy int32) uint16 {
	return wide.RampI32(dx, dy).AddScalar(c).SignMask()
}

// buildMasks classifies the 4x4 cells of size step against one plane whose
// value at the grid origin is c. It ORs into out the cells that lie
// entirely outside the plane and into part the cells that are not entirely
// inside it.
//
// Since eo >= ei, every bit added to out is also added to part.
func buildMasks(c, eo, ei, dcdx, dcdy, step int32, out, part *uint16) {
	ramp := wide.RampI32(-dcdx*step, dcdy*step).AddScalar(c)
	*out |= ramp.AddScalar(eo * step).SignMask()
	*part |= ramp.AddScalar(ei*step - 1).SignMask()
}

// quadMask returns the exact coverage of the 4x4 pixels whose top-left
// pixel has edge function value c: bit i is set iff pixel (i&3, i>>2) is
// strictly inside the plane.
func quadMask(c, dcdx, dcdy int32) uint16 {
	return ^buildMaskLinear(c-1, -dcdx, dcdy)
}

// Classification is the three-way split of a 4x4 grid of cells.
type Classification struct {
	// Out has a bit for every cell rejected by at least one plane.
	Out uint16

	// Part has a bit for every cell not fully accepted by all planes.
	Part uint16
}

// In returns the cells fully covered by every plane.
func (m Classification) In() uint16 {
	return ^m.Part
}

// Partial returns the cells that need testing at a finer level.
func (m Classification) Partial() uint16 {
	return m.Part &^ m.Out
}

// Empty reports whether every cell was rejected.
func (m Classification) Empty() bool {
	return m.Out == MaskAll
}

// Consistent reports whether the classification satisfies the partition
// invariants: rejected cells are never accepted and no cell is both
// partial and fully covered.
func (m Classification) Consistent() bool {
	return m.Out&^m.Part == 0 && m.Partial()&m.In() == 0
}

// Classify computes the combined classification of the 4x4 grid of cells of
// size step whose origin has per-plane values c. planes and c are parallel
// slices.
func Classify(planes []Plane, c []int32, step int32) Classification {
	var m Classification
	for j := range planes {
		p := &planes[j]
		buildMasks(c[j], p.EO, p.EI, p.DCDX, p.DCDY, step, &m.Out, &m.Part)
	}
	return m
}

// Coverage returns the exact per-pixel mask of the 4x4 pixel quad whose
// top-left pixel has per-plane values c, intersected across all planes.
func Coverage(planes []Plane, c []int32) uint16 {
	mask := MaskAll
	for j := range planes {
		mask &= quadMask(c[j], planes[j].DCDX, planes[j].DCDY)
	}
	return mask
}
