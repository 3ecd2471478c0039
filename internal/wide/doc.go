// Package wide provides SIMD-friendly wide types for batch coverage tests.
//
// This package implements I32x16, a 16-lane int32 vector designed to enable
// Go compiler auto-vectorization. By using fixed-size arrays and simple
// loops, the type allows the compiler to generate SIMD instructions on
// supported architectures (SSE, AVX, NEON).
//
// # Lane Layout
//
// The 16 lanes map onto a 4x4 grid in row-major order, matching the bit
// layout of the rasterizer's 16-bit coverage masks: lane i is cell
// (i&3, i>>2) and SignMask sets bit i for a negative lane.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Provide benchmarks to verify SIMD performance gains
//
// # Usage Example
//
//	// Edge function values of a 4x4 pixel quad
//	v := wide.RampI32(-dcdx, dcdy).AddScalar(c - 1)
//	outside := v.SignMask()
package wide
