package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v, abs int64
	}{
		{0, 0},
		{1, 1},
		{-1, 1},
		{-128, 128},
		{32767, 32767},
		{-32768, 32768},
		{math.MaxInt64, math.MaxInt64},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.abs, Abs64(test.v))
		})
	}
}

func TestOppositeSigns(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y     int64
		opposite bool
	}{
		{0, 0, false},
		{1, 1, false},
		{-1, -1, false},
		{1, -1, true},
		{-1, 1, true},
		{0, -1, true},
		{math.MinInt64, math.MaxInt64, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.opposite, OppositeSigns(test.x, test.y))
		})
	}
}
