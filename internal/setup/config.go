package setup

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/tilerast/internal/raster"
)

var (
	// ErrGuardBand is returned when a vertex lies outside the guard band.
	ErrGuardBand = errors.New("setup: vertex outside guard band")

	// ErrTooManyPlanes is returned when a configuration asks for more
	// auxiliary planes than a triangle can carry.
	ErrTooManyPlanes = errors.New("setup: too many clip planes")

	// ErrClipPlaneRange is returned when clip plane coefficients are too
	// large to evaluate without overflow.
	ErrClipPlaneRange = errors.New("setup: clip plane coefficient out of range")
)

// MaxClipPlanes is the number of auxiliary planes left after the three
// edges.
const MaxClipPlanes = raster.MaxPlanes - 3

// Limits on clip plane coefficients.
const (
	maxClipGradient = 1 << 16
	maxClipConstant = 1 << 27
)

// ClipPlane is a user clip half-plane in pixel units: pixel (x, y) is kept
// iff A*x + B*y + C > 0.
type ClipPlane struct {
	A, B, C int32
}

// Plane returns the rasterizer form of p.
func (p ClipPlane) Plane() raster.Plane {
	return raster.NewPlane(-p.A, p.B, p.C)
}

func (p ClipPlane) valid() bool {
	return abs(p.A) <= maxClipGradient && abs(p.B) <= maxClipGradient && abs(p.C) <= maxClipConstant
}

// Config controls face culling and auxiliary planes.
//
// The zero value culls nothing, treats counter-clockwise triangles as
// front facing and applies no scissor or clip planes.
type Config struct {
	// CullMode selects which faces are discarded.
	CullMode gputypes.CullMode

	// FrontFace selects the winding of front-facing triangles as seen on
	// screen with y pointing down. Any value other than
	// gputypes.FrontFaceCW means counter-clockwise.
	FrontFace gputypes.FrontFace

	// Scissor restricts coverage to a pixel rectangle. The empty rectangle
	// disables scissoring.
	Scissor image.Rectangle

	// ClipPlanes are additional half-planes every covered pixel must
	// satisfy.
	ClipPlanes []ClipPlane
}

// Validate reports configuration errors.
//
// The scissor may add up to four planes, but only for the sides that cut
// a triangle's bounds, so the worst case is checked per triangle.
func (c *Config) Validate() error {
	if len(c.ClipPlanes) > MaxClipPlanes {
		return fmt.Errorf("%w: %d clip planes, at most %d", ErrTooManyPlanes, len(c.ClipPlanes), MaxClipPlanes)
	}
	for i, p := range c.ClipPlanes {
		if !p.valid() {
			return fmt.Errorf("%w: plane %d %+v", ErrClipPlaneRange, i, p)
		}
	}
	return nil
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
