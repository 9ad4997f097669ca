// Package mathutil holds two's-complement helpers for the fixed-point core.
package mathutil

// Abs64 returns the absolute value of v.
func Abs64(v int64) int64 {
	mask := v >> 63
	return (v + mask) ^ mask
}

// OppositeSigns reports whether a and b have different sign bits.
func OppositeSigns(a, b int64) bool {
	return (a>>63 ^ b>>63) != 0
}
