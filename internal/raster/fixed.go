// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

// FDot4 is a 28.4 fixed-point type for vertex coordinates and plane
// gradients. The 4-bit fractional part provides 16 subpixel positions per
// pixel, which keeps tile-level plane arithmetic inside int32 for every
// coordinate within the guard band.
type FDot4 int32

// Fixed-point constants for FDot4 (28.4 format).
const (
	// FDot4Shift is the number of fractional bits in FDot4.
	FDot4Shift = 4
	// FDot4One represents 1.0 in FDot4 format (16).
	FDot4One FDot4 = 1 << FDot4Shift
	// FDot4Half represents 0.5 in FDot4 format, the pixel center offset.
	FDot4Half FDot4 = FDot4One / 2
	// FDot4Mask is used to extract the fractional part.
	FDot4Mask = FDot4One - 1
)

// FDot4FromInt converts an integer pixel coordinate to FDot4.
func FDot4FromInt(n int32) FDot4 {
	return FDot4(n << FDot4Shift)
}

// FDot4FromFloat32 converts a float32 to FDot4, rounding to the nearest
// subpixel position.
func FDot4FromFloat32(f float32) FDot4 {
	return FDot4FromFloat64(float64(f))
}

// FDot4FromFloat64 converts a float64 to FDot4, rounding to the nearest
// subpixel position.
func FDot4FromFloat64(f float64) FDot4 {
	v := f * float64(FDot4One)
	if v < 0 {
		return FDot4(v - 0.5)
	}
	return FDot4(v + 0.5)
}

// FDot4ToFloat64 converts FDot4 to float64.
func FDot4ToFloat64(f FDot4) float64 {
	return float64(f) / float64(FDot4One)
}

// FDot4Floor returns the floor of an FDot4 value as an integer.
func FDot4Floor(f FDot4) int {
	return int(f >> FDot4Shift)
}

// FDot4Ceil returns the ceiling of an FDot4 value as an integer.
func FDot4Ceil(f FDot4) int {
	return int((f + FDot4Mask) >> FDot4Shift)
}

// ceilDiv returns ceil(a / b) for b > 0.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

// CeilDiv16 returns ceil(v / 16), used to bring a product of two FDot4
// values back to FDot4 scale without changing the sign of any pixel test.
func CeilDiv16(v int64) int64 {
	return ceilDiv(v, int64(FDot4One))
}
