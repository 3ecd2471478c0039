// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

// Shader is the shading stage invoked once coverage is known.
type Shader interface {
	// ShadeMasked shades the pixels set in mask within the 4x4 region whose
	// top-left pixel is (x, y). Bit i addresses pixel (x+i&3, y+i>>2).
	ShadeMasked(t *Task, inputs any, x, y int32, mask uint16)

	// ShadeAll shades every pixel of the size x size region whose top-left
	// pixel is (x, y).
	ShadeAll(t *Task, inputs any, x, y, size int32)
}

// Task is the per-tile context. A Task is used by one goroutine at a time.
type Task struct {
	// X and Y are the pixel coordinates of the tile origin.
	X, Y int32

	// Shader receives coverage.
	Shader Shader

	// Counters accumulates statistics for this task only.
	Counters Counters

	// OnClassify, if set, observes every tile and block classification.
	OnClassify func(x, y, size int32, m Classification)
}

// NewTask creates a task for the tile whose origin is (x, y).
func NewTask(x, y int32, shader Shader) *Task {
	return &Task{X: x, Y: y, Shader: shader}
}

func (t *Task) classified(x, y, size int32, m Classification) {
	if t.OnClassify != nil {
		t.OnClassify(x, y, size, m)
	}
}

// shadeAll shades a fully covered region and counts it.
func (t *Task) shadeAll(inputs any, x, y, size int32) {
	t.Counters.ShadeAll++
	t.Shader.ShadeAll(t, inputs, x, y, size)
}

// shadeMasked shades a partially covered 4x4 region and counts it.
func (t *Task) shadeMasked(inputs any, x, y int32, mask uint16) {
	t.Counters.ShadeMasked++
	t.Shader.ShadeMasked(t, inputs, x, y, mask)
}
