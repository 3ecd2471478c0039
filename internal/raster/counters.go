// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "math/bits"

// Class is the classification of a block or sub-block against a triangle.
type Class int

const (
	// ClassEmpty means rejected by at least one plane.
	ClassEmpty Class = iota
	// ClassPartial means neither rejected nor fully covered.
	ClassPartial
	// ClassFull means fully covered by every plane.
	ClassFull

	numClasses
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassEmpty:
		return "empty"
	case ClassPartial:
		return "partial"
	case ClassFull:
		return "full"
	default:
		return "unknown"
	}
}

// Counters holds task-local rasterization statistics. Each task owns its
// Counters; the scheduler merges them once all tiles are done.
type Counters struct {
	// Triangles counts triangle commands evaluated hierarchically.
	Triangles uint64

	// FullTiles counts commands covering their whole tile.
	FullTiles uint64

	// EmptyTiles counts triangle commands rejected at tile level.
	EmptyTiles uint64

	// Blocks counts 16x16 blocks by class.
	Blocks [numClasses]uint64

	// SubBlocks counts 4x4 sub-blocks by class.
	SubBlocks [numClasses]uint64

	// EmptyQuads counts partial sub-blocks without any covered pixel.
	EmptyQuads uint64

	// ShadeMasked and ShadeAll count shader invocations.
	ShadeMasked uint64
	ShadeAll    uint64
}

// Block returns the number of 16x16 blocks of class c.
func (s *Counters) Block(c Class) uint64 {
	return s.Blocks[c]
}

// SubBlock returns the number of 4x4 sub-blocks of class c.
func (s *Counters) SubBlock(c Class) uint64 {
	return s.SubBlocks[c]
}

// Merge adds o into s.
func (s *Counters) Merge(o *Counters) {
	s.Triangles += o.Triangles
	s.FullTiles += o.FullTiles
	s.EmptyTiles += o.EmptyTiles
	for i := range s.Blocks {
		s.Blocks[i] += o.Blocks[i]
		s.SubBlocks[i] += o.SubBlocks[i]
	}
	s.EmptyQuads += o.EmptyQuads
	s.ShadeMasked += o.ShadeMasked
	s.ShadeAll += o.ShadeAll
}

// countCells adds the cells of m to the per-class counts in level.
func countCells(level *[numClasses]uint64, m Classification) {
	level[ClassEmpty] += uint64(bits.OnesCount16(m.Out))
	level[ClassPartial] += uint64(bits.OnesCount16(m.Partial()))
	level[ClassFull] += uint64(bits.OnesCount16(m.In()))
}
