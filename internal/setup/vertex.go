package setup

import (
	"fmt"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/tilerast/internal/raster"
)

// MaxCoord is the guard band in whole pixels. Vertices must satisfy
// |x|, |y| <= MaxCoord, which keeps every edge function value evaluated at
// a tile origin inside int32.
const MaxCoord = 2048

// Vertex is a screen-space position in 28.4 fixed point.
type Vertex struct {
	X, Y raster.FDot4
}

// Pt returns a vertex at the given float pixel coordinates, rounded to the
// nearest subpixel.
func Pt(x, y float32) Vertex {
	return Vertex{X: raster.FDot4FromFloat32(x), Y: raster.FDot4FromFloat32(y)}
}

// FromFixed converts a 26.6 point to a vertex, rounding to the nearest
// 1/16 pixel.
func FromFixed(p fixed.Point26_6) Vertex {
	return Vertex{X: from26_6(p.X), Y: from26_6(p.Y)}
}

func from26_6(v fixed.Int26_6) raster.FDot4 {
	return raster.FDot4((int32(v) + 2) >> 2)
}

// Fixed returns v as a 26.6 point.
func (v Vertex) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(v.X << 2), Y: fixed.Int26_6(v.Y << 2)}
}

// InGuardBand reports whether v lies within the guard band.
func (v Vertex) InGuardBand() bool {
	const limit = raster.FDot4(MaxCoord) << raster.FDot4Shift
	return v.X >= -limit && v.X <= limit && v.Y >= -limit && v.Y <= limit
}

// String formats v in pixels.
func (v Vertex) String() string {
	return fmt.Sprintf("(%g, %g)", raster.FDot4ToFloat64(v.X), raster.FDot4ToFloat64(v.Y))
}
