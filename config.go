// Copyright 2026 Aleksandr Demakin. All rights reserved.

package qfixed

// Q-format selection. The fractional bit count is fixed at build time per
// container width; scale and the real-domain range follow from it.
// Changing these values changes resolution and numeric range, nothing else.
const (
	// FracBits8 is the number of fractional bits in the narrow container.
	// The default of 4 gives a Q3.4 layout: 1 sign bit, 3 integer bits,
	// 4 fractional bits, real range [-8.0, 7.9375], resolution 0.0625.
	FracBits8 = 4

	// FracBits16 is the number of fractional bits in the wide container.
	// The default of 8 gives a Q7.8 layout: 1 sign bit, 7 integer bits,
	// 8 fractional bits, real range [-128.0, 127.99609375], resolution
	// 0.00390625.
	FracBits16 = 8
)

// The fractional part must fit the container alongside the sign bit.
// Both expressions fail to compile for an out-of-range configuration.
const (
	_ = uint(FracBits8)
	_ = uint(FracBits16)
	_ = uint(7 - FracBits8)
	_ = uint(15 - FracBits16)
)
