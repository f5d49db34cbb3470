package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/estreelint/sort-imports/pkg/config"
	"github.com/estreelint/sort-imports/pkg/diag"
	"github.com/estreelint/sort-imports/pkg/errors"
	"github.com/estreelint/sort-imports/pkg/lint"
	"github.com/estreelint/sort-imports/pkg/rules/sortimports"
	"github.com/estreelint/sort-imports/pkg/version"
)

const (
	UseDescription   = "sort-imports [flags] PATH"
	ShortDescription = "Import order linter - checks that import statements and members are sorted"
	LongDescription  = `sort-imports is a command-line linter that checks the ordering of import
statements in parsed JavaScript and TypeScript modules.

It audits three things:
1. Statement kinds follow the configured syntax order (none, all, multiple, single)
2. Statements within the same kind group are sorted by imported name
3. Named members within a declaration are sorted alphabetically

Modules are read as serialized ASTs (ESTree JSON), one unit file per module.

PATH can be either a single unit file or a directory. When a directory is
specified, all unit files in the directory and subdirectories will be
checked recursively.`
)

var (
	configPath            string
	outputFormat          string
	jobs                  int
	ignoreCase            bool
	ignoreDeclarationSort bool
	ignoreMemberSort      bool
	memberSyntaxSortOrder []string
	logLevel              string
	showVersion           bool
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	registerFlags()
}

// registerFlags binds the persistent flags, writing each default through its
// bound variable.
func registerFlags() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default: search for .sort-imports.yaml upward from PATH)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Diagnostic output format: text or json")
	rootCmd.PersistentFlags().IntVar(&jobs, "jobs", 4, "Number of unit files to lint concurrently")
	rootCmd.PersistentFlags().BoolVar(&ignoreCase, "ignore-case", false, "Compare names case-insensitively")
	rootCmd.PersistentFlags().BoolVar(&ignoreDeclarationSort, "ignore-declaration-sort", false, "Skip the member audit of each declaration")
	rootCmd.PersistentFlags().BoolVar(&ignoreMemberSort, "ignore-member-sort", false, "Skip member order checks within multi-name declarations")
	rootCmd.PersistentFlags().StringSliceVar(&memberSyntaxSortOrder, "member-syntax-sort-order", []string{}, "Comma-separated statement kind order (e.g., none,all,multiple,single)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need a path argument
	if showVersion {
		return nil
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get())
		return nil
	}

	path := args[0]
	logger := newLogger(logLevel, os.Stderr)

	printer, err := diag.NewPrinter(outputFormat, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	raw, err := loadRawOptions(path, logger)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, &raw)
	opts := sortimports.ResolveOptions(raw)

	collector := diag.NewCollector()
	runner := lint.NewRunner(sortimports.New(opts), collector, jobs, logger)
	lintErr := runner.LintPath(path)

	// A unit that failed to decode must not suppress findings already
	// collected from the units that linted.
	diags := collector.Diagnostics()
	if err := printer.Print(diags); err != nil {
		return err
	}
	if lintErr != nil {
		return lintErr
	}

	if len(diags) > 0 {
		return &ExitError{
			Code:    ExitCodeProblems,
			Message: fmt.Sprintf(errors.ErrMsgProblemsFound, len(diags)),
		}
	}
	return nil
}

// loadRawOptions reads the rule options from the config file. An explicit
// --config path must load; discovery is best effort, so an unreadable start
// path or a missing config file just means defaults and any real path error
// surfaces from linting instead.
func loadRawOptions(path string, logger *slog.Logger) (sortimports.RawOptions, error) {
	name := configPath
	if name == "" {
		discovered, err := config.Discover(path)
		if err != nil {
			logger.Debug("config discovery skipped", "error", err)
		} else {
			name = discovered
		}
	}
	if name == "" {
		return sortimports.RawOptions{}, nil
	}

	logger.Debug("using config file", "path", name)
	f, err := config.Load(name)
	if err != nil {
		return sortimports.RawOptions{}, fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}
	return f.RuleOptions(), nil
}

// applyFlagOverrides lets explicitly set CLI flags win over config file
// values.
func applyFlagOverrides(cmd *cobra.Command, raw *sortimports.RawOptions) {
	flags := cmd.Flags()
	if flags.Changed("ignore-case") {
		raw.IgnoreCase = ignoreCase
	}
	if flags.Changed("ignore-declaration-sort") {
		raw.IgnoreDeclarationSort = ignoreDeclarationSort
	}
	if flags.Changed("ignore-member-sort") {
		raw.IgnoreMemberSort = ignoreMemberSort
	}
	if flags.Changed("member-syntax-sort-order") {
		raw.MemberSyntaxSortOrder = memberSyntaxSortOrder
	}
}

func Execute(v string) error {
	if v != "" {
		version.Version = v
	}
	return rootCmd.Execute()
}
