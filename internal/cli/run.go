// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/envio"
	"code.hybscloud.com/envio/internal/scenario"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Trace bool
	Check bool
	RunID string
}

// Report is the result of running one scenario.
type Report struct {
	Scenario string           `yaml:"scenario"`
	RunID    string           `yaml:"run_id"`
	Outcome  scenario.Outcome `yaml:"outcome"`
	Stats    envio.Stats      `yaml:"stats"`
	Trace    []envio.Event    `yaml:"trace,omitempty"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <scenario>",
		Short: "Interpret one scenario",
		Long: `Interpret one scenario and print its outcome and run statistics.

Examples:
  envio run sum
  envio run nested-environment --trace
  envio run fold --format yaml --check`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "include every interpreter step in the output")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "fail unless the outcome matches the expected one")
	cmd.Flags().StringVar(&opts.RunID, "run-id", "", "run id stamped on trace events (default: a new UUIDv7)")

	return cmd
}

func runScenario(opts *RunOptions, name string, cmd *cobra.Command) error {
	s, err := scenario.Lookup(name)
	if err != nil {
		return err
	}

	return runOne(opts, s, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// runOne executes s, writes its report to stdout and, with --check,
// fails when the outcome differs from the one s declares.
func runOne(opts *RunOptions, s scenario.Scenario, stdout, stderr io.Writer) error {
	report, err := execute(opts, s, stderr)
	if err != nil {
		return err
	}
	if err := writeReport(opts.Format, stdout, report); err != nil {
		return err
	}

	if opts.Check && report.Outcome != s.Want {
		return fmt.Errorf("scenario %s: got %s, want %s", s.Name, report.Outcome, s.Want)
	}
	return nil
}

// execute runs s once with the tracers the options ask for.
func execute(opts *RunOptions, s scenario.Scenario, stderr io.Writer) (*Report, error) {
	report := &Report{Scenario: s.Name, RunID: opts.RunID}
	if report.RunID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("generate run id: %w", err)
		}
		report.RunID = id.String()
	}

	var rec *envio.Recorder
	var tracers []envio.Tracer
	if opts.Trace {
		rec = &envio.Recorder{}
		tracers = append(tracers, rec)
	}
	if logger := newLogger(opts.RootOptions, stderr); logger != nil {
		logger.Info("running scenario", "scenario", s.Name, "run_id", report.RunID)
		tracers = append(tracers, envio.LogTracer(logger))
	}

	report.Outcome = s.Run(
		envio.WithRunID(report.RunID),
		envio.WithStats(&report.Stats),
		envio.WithTracer(envio.MultiTracer(tracers...)),
	)
	if rec != nil {
		report.Trace = rec.Events
	}
	return report, nil
}

func writeReport(format string, w io.Writer, report *Report) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "%s: %s\n", report.Scenario, report.Outcome)
	fmt.Fprintf(w, "run %s: %d steps, max continuation depth %d, max environment depth %d\n",
		report.RunID, report.Stats.Steps, report.Stats.MaxContDepth, report.Stats.MaxEnvDepth)
	if len(report.Trace) == 0 {
		return nil
	}
	rec := envio.Recorder{Events: report.Trace}
	return rec.WriteText(w)
}
