// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "math/bits"

// BitIterator enumerates the set bits of a 16-bit mask from lowest to
// highest by repeatedly clearing the lowest set bit.
//
//	for it := BitIterator(mask); !it.Done(); {
//		i := it.Next()
//		...
//	}
type BitIterator uint16

// Done reports whether every set bit has been visited.
func (b BitIterator) Done() bool {
	return b == 0
}

// Next returns the index of the lowest remaining set bit and clears it.
// Next must not be called once Done reports true.
func (b *BitIterator) Next() int {
	i := bits.TrailingZeros16(uint16(*b))
	*b &= *b - 1
	return i
}

// cellOrigin returns the pixel offset of cell i within a 4x4 grid of cells
// of the given size.
func cellOrigin(i int, size int32) (ix, iy int32) {
	return int32(i&3) * size, int32(i>>2) * size
}
