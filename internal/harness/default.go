package harness

import "github.com/avdva/qfixed"

// Tolerances sit slightly above one least significant bit, allowing for
// quantization of non-representable operands.
const (
	eps16 = 1.1 / qfixed.Scale16
	eps8  = 1.1 / qfixed.Scale8
)

// DefaultSuite returns the built-in vector set: typical arithmetic,
// saturation at both boundaries, exact-boundary representability,
// midpoint rounding, precision underflow and division by zero, for both
// widths. Boundary and rounding vectors are written against the exported
// engine constants and follow a reconfigured Q-format; the typical-range
// vectors are calibrated for the default Q7.8 and Q3.4 layouts, so after
// reconfiguration their failures indicate a changed range, not a defect.
func DefaultSuite() *Suite {
	return &Suite{
		Name:        "default",
		Description: "built-in vectors for the narrow and wide pipelines",
		Vectors: []Vector{
			// wide: typical arithmetic
			{Name: "wide add typical", Op: OpAdd, Width: Width16, A: 100.5, B: 20.22, Expected: 120.72, Epsilon: eps16, Status: StatusOk},
			{Name: "wide sub typical", Op: OpSub, Width: Width16, A: 10, B: 3, Expected: 7, Epsilon: eps16, Status: StatusOk},
			{Name: "wide mul negative factor", Op: OpMul, Width: Width16, A: 2, B: -1.55, Expected: -3.1, Epsilon: eps16, Status: StatusOk},
			{Name: "wide mul typical", Op: OpMul, Width: Width16, A: 2, B: 1.55, Expected: 3.1, Epsilon: eps16, Status: StatusOk},
			{Name: "wide mul exact", Op: OpMul, Width: Width16, A: 13.5, B: 8.5, Expected: 114.75, Epsilon: eps16, Status: StatusOk},
			{Name: "wide div negative divisor", Op: OpDiv, Width: Width16, A: 11.2, B: -7, Expected: -1.6, Epsilon: eps16, Status: StatusOk},
			{Name: "wide div repeating", Op: OpDiv, Width: Width16, A: 8, B: 3, Expected: 2.666, Epsilon: eps16, Status: StatusOk},
			{Name: "wide div small quotient", Op: OpDiv, Width: Width16, A: 1.99, B: 5.373, Expected: 0.3704, Epsilon: eps16, Status: StatusOk},

			// wide: saturation
			{Name: "wide add positive saturation", Op: OpAdd, Width: Width16, A: 20000, B: 20000, Expected: qfixed.MaxReal16, Epsilon: eps16, Status: StatusSaturated},
			{Name: "wide add negative saturation", Op: OpAdd, Width: Width16, A: -20000, B: -20000, Expected: qfixed.MinReal16, Epsilon: eps16, Status: StatusSaturated},
			{Name: "wide mul positive saturation", Op: OpMul, Width: Width16, A: 20000, B: 2, Expected: qfixed.MaxReal16, Epsilon: eps16, Status: StatusSaturated},
			{Name: "wide mul negative saturation", Op: OpMul, Width: Width16, A: -20000, B: 2, Expected: qfixed.MinReal16, Epsilon: eps16, Status: StatusSaturated},

			// wide: exact boundaries, then one resolution unit past them
			{Name: "wide add exact max boundary", Op: OpAdd, Width: Width16, A: qfixed.MaxReal16, B: 0, Expected: qfixed.MaxReal16, Epsilon: eps16, Status: StatusOk},
			{Name: "wide add exact min boundary", Op: OpAdd, Width: Width16, A: qfixed.MinReal16, B: 0, Expected: qfixed.MinReal16, Epsilon: eps16, Status: StatusOk},
			{Name: "wide add max plus one unit", Op: OpAdd, Width: Width16, A: qfixed.MaxReal16, B: qfixed.Resolution16, Expected: qfixed.MaxReal16, Epsilon: eps16, Status: StatusSaturated},
			{Name: "wide add min minus one unit", Op: OpAdd, Width: Width16, A: qfixed.MinReal16, B: -qfixed.Resolution16, Expected: qfixed.MinReal16, Epsilon: eps16, Status: StatusSaturated},

			// wide: midpoint rounding, ties away from zero
			{Name: "wide half unit rounds up", Op: OpAdd, Width: Width16, A: 0.5 * qfixed.Resolution16, B: 0, Expected: qfixed.Resolution16, Epsilon: eps16, Status: StatusOk},
			{Name: "wide negative half unit rounds down", Op: OpAdd, Width: Width16, A: -0.5 * qfixed.Resolution16, B: 0, Expected: -qfixed.Resolution16, Epsilon: eps16, Status: StatusOk},

			// wide: precision underflow
			{Name: "wide below resolution", Op: OpAdd, Width: Width16, A: 0.49 * qfixed.Resolution16, B: 0.49 * qfixed.Resolution16, Expected: 0, Epsilon: eps16, Status: StatusOk},

			// wide: division by zero
			{Name: "wide div by zero", Op: OpDiv, Width: Width16, A: 10, B: 0, Status: StatusDivByZero},

			// narrow: typical arithmetic
			{Name: "narrow add typical", Op: OpAdd, Width: Width8, A: 2, B: 3.5, Expected: 5.5, Epsilon: eps8, Status: StatusOk},
			{Name: "narrow sub typical", Op: OpSub, Width: Width8, A: 4, B: 6, Expected: -2, Epsilon: eps8, Status: StatusOk},
			{Name: "narrow mul negative factor", Op: OpMul, Width: Width8, A: 2, B: -3.12, Expected: -6.24, Epsilon: eps8, Status: StatusOk},
			{Name: "narrow mul typical", Op: OpMul, Width: Width8, A: 2, B: 3.12, Expected: 6.24, Epsilon: eps8, Status: StatusOk},
			{Name: "narrow div typical", Op: OpDiv, Width: Width8, A: 5, B: 2, Expected: 2.5, Epsilon: eps8, Status: StatusOk},
			{Name: "narrow div negative divisor", Op: OpDiv, Width: Width8, A: 5, B: -2, Expected: -2.5, Epsilon: eps8, Status: StatusOk},
			{Name: "narrow div near max", Op: OpDiv, Width: Width8, A: 7.9, B: 2, Expected: 3.95, Epsilon: eps8, Status: StatusOk},
			{Name: "narrow div small quotient", Op: OpDiv, Width: Width8, A: 1.99, B: 5.373, Expected: 0.3704, Epsilon: eps8, Status: StatusOk},

			// narrow: saturation
			{Name: "narrow add positive saturation", Op: OpAdd, Width: Width8, A: 250, B: 310, Expected: qfixed.MaxReal8, Epsilon: eps8, Status: StatusSaturated},
			{Name: "narrow add negative saturation", Op: OpAdd, Width: Width8, A: -250, B: -310, Expected: qfixed.MinReal8, Epsilon: eps8, Status: StatusSaturated},
			{Name: "narrow mul positive saturation", Op: OpMul, Width: Width8, A: 300, B: 2, Expected: qfixed.MaxReal8, Epsilon: eps8, Status: StatusSaturated},
			{Name: "narrow mul negative saturation", Op: OpMul, Width: Width8, A: -300, B: 2, Expected: qfixed.MinReal8, Epsilon: eps8, Status: StatusSaturated},

			// narrow: exact boundaries, then one resolution unit past them
			{Name: "narrow add exact max boundary", Op: OpAdd, Width: Width8, A: qfixed.MaxReal8, B: 0, Expected: qfixed.MaxReal8, Epsilon: eps8, Status: StatusOk},
			{Name: "narrow add exact min boundary", Op: OpAdd, Width: Width8, A: qfixed.MinReal8, B: 0, Expected: qfixed.MinReal8, Epsilon: eps8, Status: StatusOk},
			{Name: "narrow add max plus one unit", Op: OpAdd, Width: Width8, A: qfixed.MaxReal8, B: qfixed.Resolution8, Expected: qfixed.MaxReal8, Epsilon: eps8, Status: StatusSaturated},
			{Name: "narrow add min minus one unit", Op: OpAdd, Width: Width8, A: qfixed.MinReal8, B: -qfixed.Resolution8, Expected: qfixed.MinReal8, Epsilon: eps8, Status: StatusSaturated},

			// narrow: midpoint rounding, ties away from zero
			{Name: "narrow half unit rounds up", Op: OpAdd, Width: Width8, A: 0.5 * qfixed.Resolution8, B: 0, Expected: qfixed.Resolution8, Epsilon: eps8, Status: StatusOk},
			{Name: "narrow negative half unit rounds down", Op: OpAdd, Width: Width8, A: -0.5 * qfixed.Resolution8, B: 0, Expected: -qfixed.Resolution8, Epsilon: eps8, Status: StatusOk},

			// narrow: precision underflow
			{Name: "narrow below resolution", Op: OpAdd, Width: Width8, A: 0.49 * qfixed.Resolution8, B: 0.49 * qfixed.Resolution8, Expected: 0, Epsilon: eps8, Status: StatusOk},

			// narrow: division by zero
			{Name: "narrow div by zero", Op: OpDiv, Width: Width8, A: 5, B: 0, Status: StatusDivByZero},
		},
	}
}
