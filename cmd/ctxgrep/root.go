package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/praetorian-inc/ctxgrep/pkg/config"
	"github.com/praetorian-inc/ctxgrep/pkg/grep"
	"github.com/praetorian-inc/ctxgrep/pkg/logging"
	"github.com/praetorian-inc/ctxgrep/pkg/source"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	flagOpts    = config.Defaults()
	configPath  string
	maxFileSize int64
	verbose     bool
	quiet       bool
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "ctxgrep [flags] PATTERN [FILE...]",
	Short: "Search files for lines matching a pattern, with context",
	Long: `ctxgrep prints the lines of each FILE that match PATTERN, together with
optional context lines before and after every match.

Each matching line forms its own group, even when its context overlaps the
previous group. Groups are separated by the group separator when context is
requested. With no FILE, or when FILE is -, standard input is read.

Defaults can be set in a YAML file (--config) and in CTXGREP_* environment
variables; flags given on the command line take precedence.`,
	Args:         cobra.ArbitraryArgs,
	RunE:         runGrep,
	SilenceUsage: true,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&flagOpts.IgnoreCase, "ignore-case", "i", false, "Match case-insensitively")
	f.BoolVar(&flagOpts.NoIgnoreCase, "no-ignore-case", false, "Force case-sensitive matching (overrides --ignore-case)")
	f.BoolVarP(&flagOpts.LineNumber, "line-number", "n", false, "Prefix each output line with its 1-based line number")
	f.IntVarP(&flagOpts.MaxCount, "max-count", "m", config.DefaultMaxCount, "Stop each input after this many match groups (negative = unlimited)")
	f.IntVarP(&flagOpts.BeforeContext, "before-context", "B", 0, "Lines of context before each match")
	f.IntVarP(&flagOpts.AfterContext, "after-context", "A", 0, "Lines of context after each match")
	f.IntVarP(&flagOpts.Context, "context", "C", 0, "Lines of context before and after each match (explicit -B/-A win)")
	f.StringVar(&flagOpts.GroupSeparator, "group-separator", config.DefaultGroupSeparator, "Line printed between match groups")
	f.BoolVar(&flagOpts.NoGroupSeparator, "no-group-separator", false, "Do not print a separator between match groups")
	f.IntVarP(&flagOpts.Jobs, "jobs", "j", config.DefaultJobs, "Number of inputs scanned concurrently (output order is preserved)")
	f.DurationVar(&flagOpts.MatchTimeout, "match-timeout", config.DefaultMatchTimeout, "Per-line regex timeout (0 to disable)")
	f.StringVar(&flagOpts.Color, "color", config.DefaultColor, "Color notices: auto, always, never")
	f.StringVar(&flagOpts.LogFormat, "log-format", config.DefaultLogFormat, "Diagnostic log format: text, json")
	f.StringVar(&configPath, "config", "", "Path to a YAML file with default options")
	f.Int64Var(&maxFileSize, "max-file-size", 0, "Skip inputs larger than this many bytes (0 = unlimited)")
	f.BoolVar(&showVersion, "version", false, "Show version information")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runGrep(cmd *cobra.Command, args []string) error {
	if showVersion {
		return runVersion(cmd, args)
	}
	if len(args) < 1 {
		return errors.New("missing PATTERN")
	}
	pattern, sources := args[0], args[1:]
	if len(sources) == 0 {
		sources = []string{source.StdinName}
	}

	opts, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	applyFlags(cmd.Flags(), &opts)

	run, err := opts.Resolve()
	if err != nil {
		return err
	}

	level := opts.LogLevel
	switch {
	case verbose:
		level = "debug"
	case quiet:
		level = "error"
	}
	logger := logging.New(cmd.ErrOrStderr(), level, logging.Format(opts.LogFormat))

	runner, err := grep.NewRunner(grep.Config{
		Pattern:      pattern,
		Run:          run,
		Jobs:         opts.Jobs,
		MatchTimeout: opts.MatchTimeout,
		Reader:       source.FileReader{Stdin: cmd.InOrStdin(), MaxSize: maxFileSize},
		Out:          cmd.OutOrStdout(),
		Notice:       newNotice(cmd.ErrOrStderr(), colorEnabled(opts.Color, cmd.ErrOrStderr())),
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	_, err = runner.Run(ctx, sources)
	return err
}

// applyFlags copies explicitly set flags over the loaded options.
func applyFlags(fs *pflag.FlagSet, opts *config.Options) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "ignore-case":
			opts.IgnoreCase = flagOpts.IgnoreCase
		case "no-ignore-case":
			opts.NoIgnoreCase = flagOpts.NoIgnoreCase
		case "line-number":
			opts.LineNumber = flagOpts.LineNumber
		case "max-count":
			opts.MaxCount = flagOpts.MaxCount
		case "before-context":
			opts.BeforeContext = flagOpts.BeforeContext
		case "after-context":
			opts.AfterContext = flagOpts.AfterContext
		case "context":
			opts.Context = flagOpts.Context
		case "group-separator":
			opts.GroupSeparator = flagOpts.GroupSeparator
		case "no-group-separator":
			opts.NoGroupSeparator = flagOpts.NoGroupSeparator
		case "jobs":
			opts.Jobs = flagOpts.Jobs
		case "match-timeout":
			opts.MatchTimeout = flagOpts.MatchTimeout
		case "color":
			opts.Color = flagOpts.Color
		case "log-format":
			opts.LogFormat = flagOpts.LogFormat
		}
	})
}
