// Package harness runs literal test vectors against the fixed-point engine
// and reports pass/fail per vector. It is the only consumer of the engine's
// eight public operations; all printing happens here, never in the engine.
package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avdva/qfixed"
)

// Op names an arithmetic operation under test.
type Op string

const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
	OpDiv Op = "div"
)

// Width selects the narrow or wide pipeline.
type Width int

const (
	Width8  Width = 8
	Width16 Width = 16
)

// Expected status values as written in suite files. They match
// qfixed.Status.String(), so results compare by name.
const (
	StatusOk        = "ok"
	StatusSaturated = "saturated"
	StatusDivByZero = "division by zero"
)

// Vector is a single test case: two operands, the operation and width to
// dispatch on, the expected result with an absolute tolerance, and the
// expected status. For a non-ok expected status the numeric result is
// reported but not compared, since a saturated value is a best effort
// rather than a defect.
type Vector struct {
	Name     string  `yaml:"name"`
	Op       Op      `yaml:"op"`
	Width    Width   `yaml:"width"`
	A        float64 `yaml:"a"`
	B        float64 `yaml:"b"`
	Expected float64 `yaml:"expected,omitempty"`
	Epsilon  float64 `yaml:"epsilon,omitempty"`
	Status   string  `yaml:"status"`
}

func (v *Vector) validate() error {
	if _, err := Apply(v.Op, v.Width, 0, 1, new(float64)); err != nil {
		return err
	}
	switch v.Status {
	case StatusOk, StatusSaturated, StatusDivByZero:
		return nil
	}
	return fmt.Errorf("unknown expected status %q", v.Status)
}

// Suite is a named collection of vectors.
type Suite struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Vectors     []Vector `yaml:"vectors"`
}

// LoadSuite reads a YAML suite file. Unknown fields are rejected so typos
// in hand-written suites surface immediately.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Suite
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing suite %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("suite %s has no name", path)
	}
	for i := range s.Vectors {
		if err := s.Vectors[i].validate(); err != nil {
			return nil, fmt.Errorf("suite %s, vector %d: %w", path, i+1, err)
		}
	}
	return &s, nil
}

// Apply dispatches one operation to the matching public wrapper.
func Apply(op Op, w Width, a, b float64, result *float64) (qfixed.Status, error) {
	switch w {
	case Width8:
		switch op {
		case OpAdd:
			return qfixed.Add8(a, b, result), nil
		case OpSub:
			return qfixed.Sub8(a, b, result), nil
		case OpMul:
			return qfixed.Mul8(a, b, result), nil
		case OpDiv:
			return qfixed.Div8(a, b, result), nil
		}
	case Width16:
		switch op {
		case OpAdd:
			return qfixed.Add16(a, b, result), nil
		case OpSub:
			return qfixed.Sub16(a, b, result), nil
		case OpMul:
			return qfixed.Mul16(a, b, result), nil
		case OpDiv:
			return qfixed.Div16(a, b, result), nil
		}
	default:
		return 0, fmt.Errorf("unknown width %d", w)
	}
	return 0, fmt.Errorf("unknown operation %q", op)
}
