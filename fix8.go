// Copyright 2026 Aleksandr Demakin. All rights reserved.

package qfixed

import "math"

// Fix8 is a raw fixed-point value in the narrow, 8-bit container.
// Its real value is raw / Scale8.
type Fix8 int8

// Narrow-container parameters derived from FracBits8.
const (
	// Scale8 is 2^FracBits8, the factor between real and raw values.
	Scale8 = 1 << FracBits8
	// Resolution8 is the smallest positive real increment.
	Resolution8 = 1.0 / Scale8
	// Max8 and Min8 are the raw container boundaries.
	Max8 = Fix8(math.MaxInt8)
	Min8 = Fix8(math.MinInt8)
	// MaxReal8 and MinReal8 are the container boundaries in the real domain.
	MaxReal8 = float64(math.MaxInt8) / Scale8
	MinReal8 = float64(math.MinInt8) / Scale8
)

// FromFloat8 converts v to the narrow container, rounding to nearest with
// ties away from zero and saturating at the boundaries.
func FromFloat8(v float64) (Fix8, Status) {
	return toFixed[Fix8](form8, v)
}

// Float64 returns the real value raw / Scale8. The conversion is exact.
func (f Fix8) Float64() float64 {
	return toFloat(form8, f)
}

// Add8 computes a + b in the narrow pipeline. The (possibly saturated)
// result is always written to result; the status is ok only if neither
// conversion nor the addition clamped.
func Add8(a, b float64, result *float64) Status {
	return wrap(form8, add[Fix8], a, b, result)
}

// Sub8 computes a - b in the narrow pipeline.
func Sub8(a, b float64, result *float64) Status {
	return wrap(form8, sub[Fix8], a, b, result)
}

// Mul8 computes a * b in the narrow pipeline.
func Mul8(a, b float64, result *float64) Status {
	return wrap(form8, mul[Fix8], a, b, result)
}

// Div8 computes a / b in the narrow pipeline. If b converts to raw zero,
// even from a small nonzero real value, Div8 returns
// StatusDivisionByZero and leaves result untouched.
func Div8(a, b float64, result *float64) Status {
	return wrapDiv[Fix8](form8, a, b, result)
}
