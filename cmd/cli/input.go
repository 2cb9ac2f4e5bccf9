package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"smart-task-analyzer/internal/analyzer"
	weightRepo "smart-task-analyzer/internal/analyzer/repository/file"
	"smart-task-analyzer/internal/analyzer/usecase"
	"smart-task-analyzer/pkg/datemath"
	"smart-task-analyzer/pkg/log"
)

// newUseCase wires the scorer the same way the API does. Logs go to stderr so
// they never mix with the rendered output.
func newUseCase(cmd *cobra.Command, opts *options) (analyzer.UseCase, *datemath.Parser, error) {
	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	l := log.Init(log.ZapConfig{
		Level:    level,
		Mode:     log.ModeProduction,
		Encoding: log.EncodingConsole,
		Output:   cmd.ErrOrStderr(),
	})

	parser, err := datemath.NewParser(opts.timezone)
	if err != nil {
		return nil, nil, err
	}

	return usecase.New(l, weightRepo.New(l, opts.weights), parser, 0), parser, nil
}

// readRecords decodes the task array from --file or stdin.
func readRecords(cmd *cobra.Command, opts *options) ([]analyzer.Record, error) {
	var r io.Reader = cmd.InOrStdin()
	if opts.file != "" && opts.file != "-" {
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var records []analyzer.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("reading tasks: expected a JSON array of objects: %w", err)
	}
	return records, nil
}

func buildInput(cmd *cobra.Command, opts *options, parser *datemath.Parser) (analyzer.AnalyzeInput, error) {
	records, err := readRecords(cmd, opts)
	if err != nil {
		return analyzer.AnalyzeInput{}, err
	}

	strategy, err := analyzer.ParseStrategy(opts.strategy)
	if err != nil {
		return analyzer.AnalyzeInput{}, fmt.Errorf("%w: %q", err, opts.strategy)
	}

	input := analyzer.AnalyzeInput{Records: records, Strategy: strategy}
	if opts.today != "" {
		today, err := parser.Resolve(opts.today, time.Now())
		if err != nil {
			return analyzer.AnalyzeInput{}, fmt.Errorf("%w: %v", analyzer.ErrInvalidToday, err)
		}
		input.Today = &today
	}
	return input, nil
}
