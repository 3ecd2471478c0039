// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "image"

// Hierarchy sizes in pixels.
const (
	// TileSize is the edge length of a tile, the unit of work of one task.
	TileSize = 64

	// BlockSize is the edge length of a block; a tile is 4x4 blocks.
	BlockSize = 16

	// SubBlockSize is the edge length of a sub-block; a block is 4x4
	// sub-blocks and a sub-block is 4x4 individually tested pixels.
	SubBlockSize = 4
)

// MaxPlanes is the largest number of half-planes a triangle may carry:
// three edges plus up to four auxiliary planes (scissor or user clip).
const MaxPlanes = 7

// Triangle is a triangle reduced to half-plane constraints.
//
// Triangles are produced by setup, owned by the binner and read
// concurrently by every task whose tile they touch. Nothing may modify a
// Triangle, including Disabled, once rasterization has started.
type Triangle struct {
	// Planes holds NumPlanes valid entries, edges first.
	Planes [MaxPlanes]Plane

	// NumPlanes is the number of valid entries in Planes.
	NumPlanes int

	// Bounds is the pixel bounding box of the covered area.
	Bounds image.Rectangle

	// Inputs is passed to the shader untouched.
	Inputs any

	// Disabled marks a binned triangle that must be skipped.
	Disabled bool
}

// AllPlanes returns the plane mask selecting every plane of t.
func (t *Triangle) AllPlanes() uint8 {
	return uint8(1<<t.NumPlanes - 1)
}

// Inside reports whether pixel (x, y) is inside every plane selected by
// mask. It evaluates each plane directly and is the reference the
// hierarchical path must agree with.
func (t *Triangle) Inside(x, y int32, mask uint8) bool {
	for it := BitIterator(mask & t.AllPlanes()); !it.Done(); {
		if !t.Planes[it.Next()].Inside(x, y) {
			return false
		}
	}
	return true
}

// Command is one binned unit of work: a triangle restricted to one tile.
type Command struct {
	// Tri is the triangle to rasterize.
	Tri *Triangle

	// PlaneMask selects the planes of Tri that still constrain this tile;
	// bit j selects Tri.Planes[j]. Zero means the tile is entirely covered.
	PlaneMask uint8
}
