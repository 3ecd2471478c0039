// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "fmt"

// assertConsistent panics on a broken mask partition when built with the
// rastdebug tag. Release builds compile the check away.
func assertConsistent(m Classification, x, y, size int32) {
	if !debugChecks || m.Consistent() {
		return
	}
	panic(fmt.Sprintf("raster: inconsistent %dx%d classification at (%d,%d): out=%#04x part=%#04x",
		size, size, x, y, m.Out, m.Part))
}
