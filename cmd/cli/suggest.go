package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smart-task-analyzer/internal/analyzer"
	"smart-task-analyzer/internal/model"
)

func newSuggestCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Show the tasks to work on next",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSuggest(cmd, opts, limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", analyzer.DefaultSuggestLimit, "number of suggestions")
	return cmd
}

func runSuggest(cmd *cobra.Command, opts *options, limit int) error {
	if limit <= 0 {
		return fmt.Errorf("--limit must be positive, got %d", limit)
	}

	uc, parser, err := newUseCase(cmd, opts)
	if err != nil {
		return err
	}
	input, err := buildInput(cmd, opts, parser)
	if err != nil {
		return err
	}

	out, err := uc.Suggest(cmd.Context(), analyzer.SuggestInput{AnalyzeInput: input, Limit: limit})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch opts.format {
	case formatTable:
		tasks := make([]model.ScoredTask, len(out.Suggestions))
		reasons := make([]string, len(out.Suggestions))
		for i, s := range out.Suggestions {
			tasks[i] = s.Task
			reasons[i] = s.Reason
		}
		fmt.Fprintln(w, renderTable(tasks, reasons))
		return nil
	default:
		return encode(w, opts.format, newSuggestView(out))
	}
}
