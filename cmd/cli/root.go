package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// options are the flags shared by every scoring command.
type options struct {
	file     string
	weights  string
	today    string
	strategy string
	format   string
	timezone string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "task-analyzer",
		Short:         "Rank tasks by priority",
		Long:          "task-analyzer scores a batch of tasks by urgency, importance, effort and dependency fan-in, and reports circular dependencies.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "", "JSON file with a task array (default stdin)")
	flags.StringVarP(&opts.weights, "weights", "w", "", "weights file (json, yaml or toml)")
	flags.StringVar(&opts.today, "today", "", "reference date: ISO date or today/tomorrow/\"in 3 days\"/\"next monday\"")
	flags.StringVarP(&opts.strategy, "strategy", "s", "smart", "ordering: smart, fastest, impact or deadline")
	flags.StringVarP(&opts.format, "format", "o", "table", "output format: table, json or yaml")
	flags.StringVar(&opts.timezone, "timezone", "UTC", "IANA timezone used for today")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging on stderr")

	rootCmd.AddCommand(newAnalyzeCmd(opts), newSuggestCmd(opts))
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
