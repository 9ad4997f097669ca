// Copyright 2026 Aleksandr Demakin. All rights reserved.

// Package qfixed implements saturating binary fixed-point arithmetic over
// two signed container widths, narrow (8-bit) and wide (16-bit).
// Real values are converted to a build-time Q-format, the four basic
// operations run entirely in the integer domain, and results are converted
// back, so callers get a floating-point-looking interface on hardware
// where floats are costly or non-deterministic.
//
// Every operation is a pure function of its inputs and safe for arbitrary
// concurrent use.
package qfixed

import (
	"math"

	mu "github.com/avdva/qfixed/internal/mathutil"
)

// raw is the set of fixed-point container types.
type raw interface {
	~int8 | ~int16
}

// form holds the Q-format parameters derived for one container width.
// Intermediate arithmetic is widened to 64 bits, which holds the full
// product of two 16-bit operands and the shifted division numerator with
// room to spare, so overflow is impossible before the final clamp.
type form struct {
	frac  uint
	scale int64
	min   int64
	max   int64
}

var (
	form8  = form{frac: FracBits8, scale: Scale8, min: int64(Min8), max: int64(Max8)}
	form16 = form{frac: FracBits16, scale: Scale16, min: int64(Min16), max: int64(Max16)}
)

// clamp saturates v to f's container range.
func clamp[T raw](f form, v int64) (T, Status) {
	switch {
	case v > f.max:
		return T(f.max), StatusSaturated
	case v < f.min:
		return T(f.min), StatusSaturated
	}
	return T(v), StatusOk
}

// toFixed converts a real value to the container's Q-format, rounding to
// nearest with ties away from zero: the scaled value is biased by half a
// unit in the direction of its sign and truncated, which is symmetric for
// either sign. Values outside the container range clamp to the nearest
// boundary with StatusSaturated; a magnitude under half the resolution
// rounds to zero with StatusOk. NaN converts to raw zero with
// StatusSaturated.
func toFixed[T raw](f form, v float64) (T, Status) {
	if math.IsNaN(v) {
		return 0, StatusSaturated
	}
	scaled := v * float64(f.scale)
	if scaled >= 0 {
		scaled += 0.5
	} else {
		scaled -= 0.5
	}
	// Converting an out-of-range float to an integer type is not defined
	// in Go, so saturation is decided before the conversion. This also
	// covers the infinities.
	if scaled >= float64(f.max)+1 {
		return T(f.max), StatusSaturated
	}
	if scaled <= float64(f.min)-1 {
		return T(f.min), StatusSaturated
	}
	// Truncation toward zero completes the half-away rounding.
	return T(int64(scaled)), StatusOk
}

// toFloat converts a raw fixed value back to its real interpretation,
// raw / scale. The division is exact, there is no failure mode.
func toFloat[T raw](f form, v T) float64 {
	return float64(v) / float64(f.scale)
}

func add[T raw](f form, a, b T) (T, Status) {
	return clamp[T](f, int64(a)+int64(b))
}

func sub[T raw](f form, a, b T) (T, Status) {
	return clamp[T](f, int64(a)-int64(b))
}

// mul multiplies two raw values. The widened product carries 2*frac
// fractional bits; half of the unit about to be discarded is added to the
// product's magnitude before shifting back, so ties round away from zero
// for either sign. With a zero-fraction configuration there is nothing to
// discard and the rounding step is skipped.
func mul[T raw](f form, a, b T) (T, Status) {
	p := int64(a) * int64(b)
	if f.frac > 0 {
		half := int64(1) << (f.frac - 1)
		neg := p < 0
		mag := (mu.Abs64(p) + half) >> f.frac
		if neg {
			mag = -mag
		}
		p = mag
	}
	return clamp[T](f, p)
}

// div divides a by b. The caller guarantees b != 0.
// The numerator magnitude is pre-shifted by frac to keep the fractional
// scale through the integer division, and half the divisor magnitude is
// added so the quotient rounds to nearest, ties away from zero. The sign
// is restored from the operands' sign disagreement.
func div[T raw](f form, a, b T) (T, Status) {
	neg := mu.OppositeSigns(int64(a), int64(b))
	num := uint64(mu.Abs64(int64(a))) << f.frac
	den := uint64(mu.Abs64(int64(b)))
	num += den >> 1
	q := int64(num / den)
	if neg {
		q = -q
	}
	return clamp[T](f, q)
}

// wrap runs one public operation: convert both operands, apply the core
// operation, convert back. The result slot is always written, saturated or
// not, and the overall status is the fold of the three step outcomes.
func wrap[T raw](f form, op func(form, T, T) (T, Status), a, b float64, result *float64) Status {
	if result == nil {
		return StatusMissingOutput
	}
	fa, ca := toFixed[T](f, a)
	fb, cb := toFixed[T](f, b)
	r, core := op(f, fa, fb)
	*result = toFloat(f, r)
	return combine(ca, cb, core)
}

// wrapDiv is wrap for division. The zero check runs on the converted
// divisor, so a real divisor under half the resolution divides as zero.
// On division by zero the result slot is left untouched: no meaningful
// value was computed, which is different from a saturated best effort.
func wrapDiv[T raw](f form, a, b float64, result *float64) Status {
	if result == nil {
		return StatusMissingOutput
	}
	fb, cb := toFixed[T](f, b)
	if fb == 0 {
		return StatusDivisionByZero
	}
	fa, ca := toFixed[T](f, a)
	r, core := div(f, fa, fb)
	*result = toFloat(f, r)
	return combine(ca, cb, core)
}
