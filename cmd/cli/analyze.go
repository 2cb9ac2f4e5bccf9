package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"smart-task-analyzer/internal/analyzer"
)

func newAnalyzeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Score and rank every task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, opts)
		},
	}
}

func runAnalyze(cmd *cobra.Command, opts *options) error {
	uc, parser, err := newUseCase(cmd, opts)
	if err != nil {
		return err
	}
	input, err := buildInput(cmd, opts, parser)
	if err != nil {
		return err
	}

	out, err := uc.Analyze(cmd.Context(), input)
	if err != nil {
		return err
	}
	if out.Cycle != nil {
		return &analyzer.CycleError{Path: out.Cycle, Errors: out.Errors}
	}

	w := cmd.OutOrStdout()
	switch opts.format {
	case formatTable:
		fmt.Fprintln(w, renderTable(out.Sorted, nil))
		if len(out.Errors) > 0 {
			fmt.Fprintln(w, warnStyle.Render("Skipped: "+strings.Join(out.Errors, "; ")))
		}
		return nil
	default:
		return encode(w, opts.format, newAnalyzeView(out))
	}
}
