// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

// Plane is a half-plane test (edge function) in screen space.
//
// The value of the edge function at pixel (x, y) is
//
//	C + DCDY*y - DCDX*x
//
// and the pixel is inside the half-plane iff that value is strictly
// positive. Pixel center and fill rule adjustments are folded into C by the
// setup stage, so the rasterizer only ever evaluates at integer pixel
// coordinates.
//
// A Plane is immutable once handed to the rasterizer.
type Plane struct {
	// DCDX is the decrease of the edge function per pixel step along +X.
	DCDX int32

	// DCDY is the increase of the edge function per pixel step along +Y.
	DCDY int32

	// C is the edge function value at pixel (0, 0).
	C int32

	// EO is the trivial reject offset: the largest increase of the edge
	// function over a unit square. Scaled by a block size s, C+EO*s bounds
	// the value of every pixel in the block from above.
	EO int32

	// EI is the trivial accept offset: the smallest increase of the edge
	// function over a unit square. Scaled by s, C+EI*s bounds every pixel
	// value in the block from below.
	EI int32
}

// NewPlane builds a Plane from its gradients and origin value, deriving the
// reject and accept offsets.
func NewPlane(dcdx, dcdy, c int32) Plane {
	var eo int32
	if dcdx < 0 {
		eo -= dcdx
	}
	if dcdy > 0 {
		eo += dcdy
	}
	return Plane{
		DCDX: dcdx,
		DCDY: dcdy,
		C:    c,
		EO:   eo,
		EI:   dcdy - dcdx - eo,
	}
}

// At returns the edge function value at pixel (x, y).
func (p Plane) At(x, y int32) int32 {
	return p.C + p.DCDY*y - p.DCDX*x
}

// Inside reports whether pixel (x, y) is inside the half-plane.
func (p Plane) Inside(x, y int32) bool {
	return p.At(x, y) > 0
}

// Valid reports whether the reject offset is at least as extreme as the
// accept offset. A plane violating this makes "rejected" no longer imply
// "not accepted" and breaks mask disjointness.
func (p Plane) Valid() bool {
	return p.EO >= p.EI
}

// Offset moves an edge function value c, known at some origin, to the
// origin displaced by (ix, iy) pixels.
func Offset(c, dcdx, dcdy, ix, iy int32) int32 {
	return c - dcdx*ix + dcdy*iy
}
