package setup

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/tilerast/internal/raster"
)

// Facing classifies the winding of a triangle after culling.
type Facing int

const (
	// FacingFront is a front-facing triangle.
	FacingFront Facing = iota
	// FacingBack is a back-facing triangle.
	FacingBack
)

// Area2 returns twice the signed area of the triangle in 28.4 squared
// units. With y pointing down, a positive value means the vertices appear
// clockwise on screen.
func Area2(v0, v1, v2 Vertex) int64 {
	return int64(v1.X-v0.X)*int64(v2.Y-v0.Y) - int64(v2.X-v0.X)*int64(v1.Y-v0.Y)
}

// Face returns the facing of a triangle with signed area area2 under the
// given front face convention.
func Face(area2 int64, front gputypes.FrontFace) Facing {
	ccw := area2 < 0
	if front == gputypes.FrontFaceCW {
		ccw = !ccw
	}
	if ccw {
		return FacingFront
	}
	return FacingBack
}

// Culled reports whether cull discards a triangle with facing f.
func Culled(f Facing, cull gputypes.CullMode) bool {
	switch cull {
	case gputypes.CullModeFront:
		return f == FacingFront
	case gputypes.CullModeBack:
		return f == FacingBack
	default:
		return false
	}
}

// Triangle sets up the triangle v0, v1, v2.
//
// It returns ok == false without an error when the triangle is culled:
// zero area, discarded by face culling, or entirely outside the scissor
// rectangle. Vertices outside the guard band are an error. cfg must have
// passed Validate.
func Triangle(cfg *Config, v0, v1, v2 Vertex, inputs any) (tri *raster.Triangle, ok bool, err error) {
	for i, v := range [3]Vertex{v0, v1, v2} {
		if !v.InGuardBand() {
			return nil, false, fmt.Errorf("%w: vertex %d at %v", ErrGuardBand, i, v)
		}
	}

	area2 := Area2(v0, v1, v2)
	if area2 == 0 {
		return nil, false, nil
	}
	if Culled(Face(area2, cfg.FrontFace), cfg.CullMode) {
		return nil, false, nil
	}
	if area2 < 0 {
		v1, v2 = v2, v1
	}

	bounds := pixelBounds(v0, v1, v2)
	if !cfg.Scissor.Empty() {
		bounds = bounds.Intersect(cfg.Scissor)
	}
	if bounds.Empty() {
		return nil, false, nil
	}

	tri = &raster.Triangle{Bounds: bounds, Inputs: inputs}
	tri.Planes[0] = EdgePlane(v0, v1)
	tri.Planes[1] = EdgePlane(v1, v2)
	tri.Planes[2] = EdgePlane(v2, v0)
	tri.NumPlanes = 3

	aux := scissorPlanes(cfg.Scissor, pixelBounds(v0, v1, v2))
	for _, p := range cfg.ClipPlanes {
		if !acceptsRect(p, bounds) {
			aux = append(aux, p.Plane())
		}
	}
	if len(aux) > MaxClipPlanes {
		return nil, false, fmt.Errorf("%w: triangle needs %d auxiliary planes", ErrTooManyPlanes, len(aux))
	}
	tri.NumPlanes += copy(tri.Planes[3:], aux)
	return tri, true, nil
}

// EdgePlane returns the plane of the directed edge a -> b for a triangle
// whose interior lies on the positive side, with the pixel center offset
// and the top-left fill rule folded into C.
//
// At pixel (x, y) the exact edge function in 28.4 squared units is
//
//	E = dcdy*(16y + 8 - a.Y) - dcdx*(16x + 8 - a.X)
//	  = 16*(dcdy*y - dcdx*x) + K
//
// Pixels on a top or left edge count as inside, which turns E >= 0 into
// E + 1 > 0 for those edges. Since the first term is a multiple of 16, the
// test E + bias > 0 is equivalent to dcdy*y - dcdx*x + ceil((K+bias)/16) > 0.
func EdgePlane(a, b Vertex) raster.Plane {
	dcdx := int32(b.Y - a.Y)
	dcdy := int32(b.X - a.X)

	k := int64(dcdy)*int64(raster.FDot4Half-a.Y) - int64(dcdx)*int64(raster.FDot4Half-a.X)
	if topLeft(dcdx, dcdy) {
		k++
	}
	return raster.NewPlane(dcdx, dcdy, int32(raster.CeilDiv16(k)))
}

// topLeft reports whether an edge of a positively oriented triangle is a
// left edge (going up) or a top edge (horizontal, going right).
func topLeft(dcdx, dcdy int32) bool {
	return dcdx < 0 || (dcdx == 0 && dcdy > 0)
}

// pixelBounds returns the pixels whose centers may fall inside the
// triangle.
func pixelBounds(v0, v1, v2 Vertex) image.Rectangle {
	minX := min(v0.X, v1.X, v2.X)
	minY := min(v0.Y, v1.Y, v2.Y)
	maxX := max(v0.X, v1.X, v2.X)
	maxY := max(v0.Y, v1.Y, v2.Y)
	return image.Rect(
		raster.FDot4Floor(minX), raster.FDot4Floor(minY),
		raster.FDot4Ceil(maxX), raster.FDot4Ceil(maxY),
	)
}

// scissorPlanes returns a plane for every side of scissor that cuts into
// bounds.
func scissorPlanes(scissor, bounds image.Rectangle) []raster.Plane {
	planes := make([]raster.Plane, 0, raster.MaxPlanes)
	if scissor.Empty() {
		return planes
	}
	if scissor.Min.X > bounds.Min.X {
		planes = append(planes, raster.NewPlane(-1, 0, int32(1-scissor.Min.X)))
	}
	if scissor.Max.X < bounds.Max.X {
		planes = append(planes, raster.NewPlane(1, 0, int32(scissor.Max.X)))
	}
	if scissor.Min.Y > bounds.Min.Y {
		planes = append(planes, raster.NewPlane(0, 1, int32(1-scissor.Min.Y)))
	}
	if scissor.Max.Y < bounds.Max.Y {
		planes = append(planes, raster.NewPlane(0, -1, int32(scissor.Max.Y)))
	}
	return planes
}

// acceptsRect reports whether every pixel of r satisfies p.
func acceptsRect(p ClipPlane, r image.Rectangle) bool {
	pl := p.Plane()
	x0, y0 := int32(r.Min.X), int32(r.Min.Y)
	x1, y1 := int32(r.Max.X-1), int32(r.Max.Y-1)
	return pl.Inside(x0, y0) && pl.Inside(x1, y0) && pl.Inside(x0, y1) && pl.Inside(x1, y1)
}
