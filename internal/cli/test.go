package cli

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/avdva/qfixed/internal/harness"
)

// VectorResult is one vector outcome in the JSON report.
type VectorResult struct {
	Name   string  `json:"name"`
	Pass   bool    `json:"pass"`
	Got    float64 `json:"got"`
	Status string  `json:"status"`
	Reason string  `json:"reason,omitempty"`
}

// SuiteResult summarizes one suite in the JSON report.
type SuiteResult struct {
	Name    string         `json:"name"`
	Passed  int            `json:"passed"`
	Failed  int            `json:"failed"`
	Vectors []VectorResult `json:"vectors"`
}

// TestResult is the overall JSON report.
type TestResult struct {
	Suites []SuiteResult `json:"suites"`
	Passed int           `json:"passed"`
	Failed int           `json:"failed"`
	Total  int           `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test [suite.yaml ...]",
		Short: "Run fixed-point test vectors",
		Long: `Run test vector suites against the arithmetic engine.

With no arguments the built-in suite, calibrated for the configured
Q-formats, is used. Additional suites can be supplied as YAML files.

Exit codes:
  0 - all vectors passed
  1 - one or more vectors failed
  2 - command error (unreadable suite, invalid vector)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runTest(opts *RootOptions, args []string, cmd *cobra.Command) error {
	var suites []*harness.Suite
	if len(args) == 0 {
		suites = append(suites, harness.DefaultSuite())
	}
	for _, path := range args {
		s, err := harness.LoadSuite(path)
		if err != nil {
			return NewExitError(ExitCommandError, err.Error())
		}
		suites = append(suites, s)
	}

	var logger *slog.Logger
	if opts.Verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	runner := harness.NewRunner(logger)

	var result TestResult
	var reports []*harness.Report
	for _, s := range suites {
		rep, err := runner.Run(s)
		if err != nil {
			return NewExitError(ExitCommandError, err.Error())
		}
		reports = append(reports, rep)
		result.Suites = append(result.Suites, toSuiteResult(rep))
		result.Passed += rep.Passed
		result.Failed += rep.Failed
		result.Total += rep.Passed + rep.Failed
	}

	if opts.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		for _, rep := range reports {
			if err := rep.WriteText(cmd.OutOrStdout()); err != nil {
				return err
			}
		}
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailures, "")
	}
	return nil
}

func toSuiteResult(rep *harness.Report) SuiteResult {
	sr := SuiteResult{
		Name:    rep.Suite,
		Passed:  rep.Passed,
		Failed:  rep.Failed,
		Vectors: make([]VectorResult, 0, len(rep.Results)),
	}
	for _, res := range rep.Results {
		sr.Vectors = append(sr.Vectors, VectorResult{
			Name:   res.Vector.Name,
			Pass:   res.Pass,
			Got:    res.Got,
			Status: res.Status.String(),
			Reason: res.Reason,
		})
	}
	return sr
}
