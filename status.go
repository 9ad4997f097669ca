// Copyright 2026 Aleksandr Demakin. All rights reserved.

package qfixed

// Status reports the outcome of a fixed-point operation.
// Saturated is a normal, designed outcome: the clamped best-effort result
// is still produced, and the caller decides whether it is acceptable.
type Status uint8

const (
	// StatusOk means no clamping happened anywhere in the call chain.
	StatusOk Status = iota
	// StatusSaturated means an input conversion or the core operation
	// clamped an out-of-range value to the nearest container boundary.
	StatusSaturated
	// StatusDivisionByZero means the divisor converted to raw zero.
	// No result is produced.
	StatusDivisionByZero
	// StatusMissingOutput means no result destination was supplied.
	// No computation is performed.
	StatusMissingOutput
)

// IsOk reports whether the operation completed without clamping or failure.
func (s Status) IsOk() bool {
	return s == StatusOk
}

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusSaturated:
		return "saturated"
	case StatusDivisionByZero:
		return "division by zero"
	case StatusMissingOutput:
		return "missing output"
	}
	return "unknown"
}

// combine folds per-step conversion and core outcomes into an overall
// status: ok only if every step was ok. The steps themselves only ever
// produce StatusOk or StatusSaturated.
func combine(statuses ...Status) Status {
	for _, s := range statuses {
		if s != StatusOk {
			return StatusSaturated
		}
	}
	return StatusOk
}
