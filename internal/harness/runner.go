package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/avdva/qfixed"
)

// Result is the outcome of one vector.
type Result struct {
	Vector Vector
	Got    float64
	Status qfixed.Status
	Pass   bool
	Reason string
}

// Report aggregates the results of one suite run.
type Report struct {
	Suite   string
	Results []Result
	Passed  int
	Failed  int
}

// Runner executes suites against the engine.
type Runner struct {
	logger *slog.Logger
}

// NewRunner returns a runner. A nil logger disables logging.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{logger: logger}
}

// Run validates and executes every vector of the suite.
func (r *Runner) Run(s *Suite) (*Report, error) {
	rep := &Report{Suite: s.Name}
	for i := range s.Vectors {
		v := s.Vectors[i]
		if err := v.validate(); err != nil {
			return nil, fmt.Errorf("vector %d (%s): %w", i+1, v.Name, err)
		}
		res := r.runVector(v)
		rep.Results = append(rep.Results, res)
		if res.Pass {
			rep.Passed++
		} else {
			rep.Failed++
		}
	}
	r.logger.Info("suite finished", "suite", s.Name, "passed", rep.Passed, "failed", rep.Failed)
	return rep, nil
}

func (r *Runner) runVector(v Vector) Result {
	var got float64
	status, _ := Apply(v.Op, v.Width, v.A, v.B, &got)
	r.logger.Debug("vector executed",
		"name", v.Name, "op", string(v.Op), "width", int(v.Width),
		"got", got, "status", status.String())

	res := Result{Vector: v, Got: got, Status: status}
	if status.String() != v.Status {
		res.Reason = fmt.Sprintf("status %s, want %s", status, v.Status)
		return res
	}
	if status == qfixed.StatusOk {
		if d := res.Got - v.Expected; d > v.Epsilon || d < -v.Epsilon {
			res.Reason = fmt.Sprintf("result %v outside %v of %v", res.Got, v.Epsilon, v.Expected)
			return res
		}
	}
	res.Pass = true
	return res
}

// WriteText renders the report as one PASS/FAIL line per vector plus a
// summary.
func (rep *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "--- fixed point report: %s ---\n\n", rep.Suite); err != nil {
		return err
	}
	for i, res := range rep.Results {
		verdict := "PASS"
		if !res.Pass {
			verdict = "FAIL"
		}
		line := fmt.Sprintf("[%s] TC_%02d (%d-bit, %s): a=%8.4f  b=%8.4f  exp=%8.4f  got=%8.4f  status=%s  %s",
			verdict, i+1, res.Vector.Width, res.Vector.Op,
			res.Vector.A, res.Vector.B, res.Vector.Expected, res.Got,
			res.Status, res.Vector.Name)
		if res.Reason != "" {
			line += "  !! " + res.Reason
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\ntotal %d  passed %d  failed %d\n",
		len(rep.Results), rep.Passed, rep.Failed)
	return err
}
