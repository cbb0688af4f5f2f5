package common

import "math"

const (
	// PackedSize is the number of bytes one block occupies in a quantized buffer
	PackedSize = 1 + ZoneLen

	// ZoneLen is the number of retained coefficients
	ZoneLen = 2*BlockSize + 2*(BlockSize-2)

	// MaxScale is the largest multiplier a scale byte can carry
	MaxScale = math.MaxInt8

	// MaxCoefficient is the largest coefficient magnitude a block may reach:
	// beyond it the divisor saturates at 128 and values would be clipped
	MaxCoefficient = MaxScale * -math.MinInt8
)

// Zone lists the coefficient indices kept by the encoder, in packing order:
// rows 0 and 1 left to right, then columns 0 and 1 top to bottom from row 2.
// Every other coefficient is dropped and decodes as zero.
var Zone = [ZoneLen]int{
	0, 1, 2, 3, 4, 5, 6, 7,
	8, 9, 10, 11, 12, 13, 14, 15,
	16, 24, 32, 40, 48, 56,
	17, 25, 33, 41, 49, 57,
}

// InZone reports whether the coefficient at index survives packing
func InZone(index int) bool {
	return index/BlockSize < 2 || index%BlockSize < 2
}

// ScaleFactor derives the per-block scale byte from the largest coefficient
// magnitude.
//
// A positive value q is a multiplier: coefficients are stored as trunc(c*q)
// with q = floor(127/maxAbs), clamped to 127 when maxAbs <= 1.
// A negative value -d is a divisor for blocks whose largest coefficient
// exceeds 127: coefficients are stored as trunc(c/d) with d = ceil(maxAbs/127),
// saturating at 128. Zero marks a block without energy.
func ScaleFactor(maxAbs float64) int8 {
	switch {
	case !(maxAbs > 0):
		return 0
	case maxAbs <= 1:
		return MaxScale
	case maxAbs <= MaxScale:
		return int8(MaxScale / maxAbs)
	}

	d := math.Ceil(maxAbs / MaxScale)
	if d > -math.MinInt8 {
		d = -math.MinInt8
	}
	return int8(-d)
}

// Quantize maps a coefficient to its stored value under scale q.
// The result is truncated toward zero and saturated to the int8 range.
func Quantize(coef float64, q int8) int8 {
	var v float64
	switch {
	case q > 0:
		v = coef * float64(q)
	case q < 0:
		v = coef / float64(-int(q))
	default:
		return 0
	}

	v = math.Trunc(v)
	if v > math.MaxInt8 {
		return math.MaxInt8
	}
	if v < math.MinInt8 {
		return math.MinInt8
	}
	return int8(v)
}

// Dequantizer returns the operands that undo scale q when passed to
// MultiplyScaled: stored values are multiplied by mul and divided by div.
func Dequantizer(q int8) (mul, div float64) {
	switch {
	case q > 0:
		return 1, float64(q)
	case q < 0:
		return float64(-int(q)), 1
	default:
		return 0, 1
	}
}
