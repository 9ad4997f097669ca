// Copyright 2026 Aleksandr Demakin. All rights reserved.

package qfixed

import "math"

// Fix16 is a raw fixed-point value in the wide, 16-bit container.
// Its real value is raw / Scale16.
type Fix16 int16

// Wide-container parameters derived from FracBits16.
const (
	// Scale16 is 2^FracBits16, the factor between real and raw values.
	Scale16 = 1 << FracBits16
	// Resolution16 is the smallest positive real increment.
	Resolution16 = 1.0 / Scale16
	// Max16 and Min16 are the raw container boundaries.
	Max16 = Fix16(math.MaxInt16)
	Min16 = Fix16(math.MinInt16)
	// MaxReal16 and MinReal16 are the container boundaries in the real domain.
	MaxReal16 = float64(math.MaxInt16) / Scale16
	MinReal16 = float64(math.MinInt16) / Scale16
)

// FromFloat16 converts v to the wide container, rounding to nearest with
// ties away from zero and saturating at the boundaries.
func FromFloat16(v float64) (Fix16, Status) {
	return toFixed[Fix16](form16, v)
}

// Float64 returns the real value raw / Scale16. The conversion is exact.
func (f Fix16) Float64() float64 {
	return toFloat(form16, f)
}

// Add16 computes a + b in the wide pipeline. The (possibly saturated)
// result is always written to result; the status is ok only if neither
// conversion nor the addition clamped.
func Add16(a, b float64, result *float64) Status {
	return wrap(form16, add[Fix16], a, b, result)
}

// Sub16 computes a - b in the wide pipeline.
func Sub16(a, b float64, result *float64) Status {
	return wrap(form16, sub[Fix16], a, b, result)
}

// Mul16 computes a * b in the wide pipeline.
func Mul16(a, b float64, result *float64) Status {
	return wrap(form16, mul[Fix16], a, b, result)
}

// Div16 computes a / b in the wide pipeline. If b converts to raw zero,
// even from a small nonzero real value, Div16 returns
// StatusDivisionByZero and leaves result untouched.
func Div16(a, b float64, result *float64) Status {
	return wrapDiv[Fix16](form16, a, b, result)
}
