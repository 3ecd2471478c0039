package wide

// I32x16 represents 16 int32 lanes laid out as a 4x4 grid in row-major
// order: lane i holds the value for cell (i&3, i>>2).
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// This type carries edge function values for one 4x4 group of pixels or
// blocks.
type I32x16 [16]int32

// SplatI32 creates I32x16 with all elements set to n.
func SplatI32(n int32) I32x16 {
	var result I32x16
	for i := range result {
		result[i] = n
	}
	return result
}

// RampI32 creates the linear 4x4 ramp with lane i set to
// (i&3)*dx + (i>>2)*dy.
func RampI32(dx, dy int32) I32x16 {
	var result I32x16
	for i := range result {
		result[i] = int32(i&3)*dx + int32(i>>2)*dy
	}
	return result
}

// Add performs element-wise addition.
func (v I32x16) Add(other I32x16) I32x16 {
	var result I32x16
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// AddScalar adds n to every element.
func (v I32x16) AddScalar(n int32) I32x16 {
	var result I32x16
	for i := range v {
		result[i] = v[i] + n
	}
	return result
}

// SignMask packs the sign bit of every lane into a 16-bit mask.
// Bit i is set iff v[i] < 0.
func (v I32x16) SignMask() uint16 {
	var mask uint16
	for i := range v {
		mask |= uint16(uint32(v[i])>>31) << i
	}
	return mask
}
