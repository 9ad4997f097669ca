package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/avdva/qfixed"
	"github.com/avdva/qfixed/internal/harness"
)

// EvalResult is the JSON shape of a single evaluation.
type EvalResult struct {
	Result *float64 `json:"result,omitempty"`
	Status string   `json:"status"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "eval <add|sub|mul|div> <a> <b>",
		Short: "Evaluate one fixed-point operation",
		Long: `Convert two real operands to the selected Q-format, apply one
operation in the integer domain, and print the real-valued result with
its status. A saturated result is still printed; on division by zero no
result is produced.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, width, args, cmd)
		},
	}
	cmd.Flags().IntVar(&width, "width", 16, "container width in bits (8 or 16)")
	return cmd
}

func runEval(opts *RootOptions, width int, args []string, cmd *cobra.Command) error {
	a, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("bad operand %q", args[1]))
	}
	b, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("bad operand %q", args[2]))
	}

	var result float64
	status, err := harness.Apply(harness.Op(args[0]), harness.Width(width), a, b, &result)
	if err != nil {
		return NewExitError(ExitCommandError, err.Error())
	}

	out := EvalResult{Status: status.String()}
	if status != qfixed.StatusDivisionByZero {
		out.Result = &result
	}

	if opts.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		return enc.Encode(out)
	}
	if out.Result != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%v (%s)\n", *out.Result, out.Status)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "no result (%s)\n", out.Status)
	}
	return nil
}
