// Copyright 2026 Aleksandr Demakin. All rights reserved.

package qfixed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps8 = 1.1 / Scale8

func TestNarrow(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		op       func(a, b float64, result *float64) Status
		x, y     float64
		expected float64
		status   Status
	}{
		{Add8, 2, 3.5, 5.5, StatusOk},
		{Sub8, 4, 6, -2, StatusOk},
		{Mul8, 2, -3.12, -6.24, StatusOk},
		{Mul8, 2, 3.12, 6.24, StatusOk},
		{Div8, 5, 2, 2.5, StatusOk},
		{Div8, 5, -2, -2.5, StatusOk},
		{Div8, 7.9, 2, 3.95, StatusOk},
		{Div8, 1.99, 5.373, 0.3704, StatusOk},

		{Add8, 250, 310, MaxReal8, StatusSaturated},
		{Add8, -250, -310, MinReal8, StatusSaturated},
		{Mul8, 300, 2, MaxReal8, StatusSaturated},
		{Mul8, -300, 2, MinReal8, StatusSaturated},

		{Add8, MaxReal8, 0, MaxReal8, StatusOk},
		{Add8, MinReal8, 0, MinReal8, StatusOk},
		{Add8, MaxReal8, Resolution8, MaxReal8, StatusSaturated},
		{Add8, MinReal8, -Resolution8, MinReal8, StatusSaturated},

		{Add8, 0.5 * Resolution8, 0, Resolution8, StatusOk},
		{Add8, -0.5 * Resolution8, 0, -Resolution8, StatusOk},
		{Add8, 0.49 * Resolution8, 0.49 * Resolution8, 0, StatusOk},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var result float64
			status := test.op(test.x, test.y, &result)
			a.Equal(test.status, status)
			a.InDelta(test.expected, result, eps8)
		})
	}
}

func TestDiv8ByZero(t *testing.T) {
	a := assert.New(t)
	const sentinel = 777.0
	result := sentinel
	a.Equal(StatusDivisionByZero, Div8(5, 0, &result))
	a.Equal(sentinel, result)

	// a divisor below half the narrow resolution underflows to raw zero
	result = sentinel
	a.Equal(StatusDivisionByZero, Div8(5, 0.4*Resolution8, &result))
	a.Equal(sentinel, result)
}

func TestNarrowMissingOutput(t *testing.T) {
	a := assert.New(t)
	a.Equal(StatusMissingOutput, Add8(1, 2, nil))
	a.Equal(StatusMissingOutput, Sub8(1, 2, nil))
	a.Equal(StatusMissingOutput, Mul8(1, 2, nil))
	a.Equal(StatusMissingOutput, Div8(1, 2, nil))
}

// The saturated best-effort value is still written on every non-division
// failure path.
func TestNarrowSaturatedResultWritten(t *testing.T) {
	a := assert.New(t)
	result := -1.0
	a.Equal(StatusSaturated, Add8(250, 310, &result))
	a.Equal(MaxReal8, result)

	result = -1.0
	a.Equal(StatusSaturated, Mul8(-300, 2, &result))
	a.Equal(MinReal8, result)
}
