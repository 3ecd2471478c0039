package tilerast

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/tilerast/internal/setup"
)

// Vertex is a screen-space position in 28.4 fixed point.
type Vertex = setup.Vertex

// ClipPlane is a user clip half-plane in pixel units.
type ClipPlane = setup.ClipPlane

// MaxCoord is the largest absolute vertex coordinate, and the largest
// canvas dimension, in pixels.
const MaxCoord = setup.MaxCoord

// Pt returns the vertex at pixel coordinates (x, y), snapped to the
// nearest 1/16 pixel.
func Pt(x, y float32) Vertex {
	return setup.Pt(x, y)
}

// PtFixed returns the vertex at a 26.6 fixed-point position, as produced
// by golang.org/x/image/font and golang.org/x/image/vector users.
func PtFixed(p fixed.Point26_6) Vertex {
	return setup.FromFixed(p)
}
