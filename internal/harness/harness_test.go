package harness

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/qfixed"
)

func TestDefaultSuitePasses(t *testing.T) {
	rep, err := NewRunner(nil).Run(DefaultSuite())
	require.NoError(t, err)
	for _, res := range rep.Results {
		assert.True(t, res.Pass, "%s: %s", res.Vector.Name, res.Reason)
	}
	assert.Equal(t, len(rep.Results), rep.Passed)
	assert.Zero(t, rep.Failed)
}

func TestRunVector(t *testing.T) {
	r := NewRunner(nil)
	tests := []struct {
		v      Vector
		pass   bool
		status qfixed.Status
	}{
		{
			Vector{Name: "pass", Op: OpAdd, Width: Width16, A: 1, B: 2, Expected: 3, Epsilon: eps16, Status: StatusOk},
			true, qfixed.StatusOk,
		},
		{
			Vector{Name: "wrong value", Op: OpAdd, Width: Width16, A: 1, B: 2, Expected: 4, Epsilon: eps16, Status: StatusOk},
			false, qfixed.StatusOk,
		},
		{
			Vector{Name: "wrong status", Op: OpAdd, Width: Width16, A: 1, B: 2, Expected: 3, Epsilon: eps16, Status: StatusSaturated},
			false, qfixed.StatusOk,
		},
		{
			// value outside tolerance is not compared on an expected error
			Vector{Name: "saturated value ignored", Op: OpAdd, Width: Width8, A: 250, B: 310, Expected: 0, Epsilon: eps8, Status: StatusSaturated},
			true, qfixed.StatusSaturated,
		},
		{
			Vector{Name: "div by zero", Op: OpDiv, Width: Width8, A: 5, B: 0, Status: StatusDivByZero},
			true, qfixed.StatusDivisionByZero,
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res := r.runVector(test.v)
			assert.Equal(t, test.pass, res.Pass, res.Reason)
			assert.Equal(t, test.status, res.Status)
		})
	}
}

func TestRunRejectsInvalidVector(t *testing.T) {
	r := NewRunner(nil)
	_, err := r.Run(&Suite{
		Name:    "bad",
		Vectors: []Vector{{Name: "mod is not supported", Op: "mod", Width: Width16, Status: StatusOk}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown operation "mod"`)

	_, err = r.Run(&Suite{
		Name:    "bad width",
		Vectors: []Vector{{Name: "no 32-bit pipeline", Op: OpAdd, Width: 32, Status: StatusOk}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown width 32")
}

func TestLoadSuite(t *testing.T) {
	s, err := LoadSuite("testdata/suite.yaml")
	require.NoError(t, err)
	assert.Equal(t, "sample", s.Name)
	require.Len(t, s.Vectors, 3)

	rep, err := NewRunner(nil).Run(s)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Passed)
	assert.Zero(t, rep.Failed)
}

func TestLoadSuiteErrors(t *testing.T) {
	_, err := LoadSuite("testdata/no_such_file.yaml")
	require.Error(t, err)

	_, err = LoadSuite("testdata/bad_status.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown expected status")
}
