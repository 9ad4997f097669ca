package harness

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/avdva/qfixed"
)

// The report layout is part of the harness contract; golden files catch
// accidental format drift. Regenerate with:
//
//	go test ./internal/harness -update
func TestReportGolden(t *testing.T) {
	suite := &Suite{
		Name: "golden",
		Vectors: []Vector{
			{Name: "wide add near identity", Op: OpAdd, Width: Width16, A: 1.5, B: 2.25, Expected: 3.75, Epsilon: 1.1 / qfixed.Scale16, Status: StatusOk},
			{Name: "narrow mul typical", Op: OpMul, Width: Width8, A: 2, B: 3, Expected: 6, Epsilon: 1.1 / qfixed.Scale8, Status: StatusOk},
			{Name: "narrow div by zero", Op: OpDiv, Width: Width8, A: 5, B: 0, Status: StatusDivByZero},
		},
	}
	rep, err := NewRunner(nil).Run(suite)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report", buf.Bytes())
}
