package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/config"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/logging"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/writers"
	"github.com/felixgeelhaar/cxxcodes/pkg/exitcode"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version information set at build time
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

// Global flags
var (
	cfgFile    string
	outputFlag string
	verbosity  string
	noColor    bool
	jsonOutput bool
	logLevel   string
)

// rootCmd is the base command for cxxcodes
var rootCmd = &cobra.Command{
	Use:   "cxxcodes",
	Short: "cxxcodes - Normalize cppcheck findings to CXX-W diagnostic codes",
	Long: `cxxcodes reads cppcheck XML reports (format version 2) and re-expresses
every finding under a stable internal diagnostic code (CXX-Wnnnn).

Checker ids and MISRA C 2012 rule ids (misra-c2012-X.Y) share one code table.
Findings whose rule id has no code are surfaced, suppressed or rejected
according to the unmapped policy.

Examples:
  cxxcodes normalize report.xml        # Normalize a report
  cppcheck --xml . 2>&1 | cxxcodes normalize
  cxxcodes normalize --policy fail     # Reject unknown rule ids
  cxxcodes lookup missingReturn        # Map a single rule id
  cxxcodes codes                       # List the code table`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Configure colors
		if noColor {
			color.NoColor = true
		}
		return nil
	},
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "cxxcodes %s\n", version)
		fmt.Fprintf(out, "  Commit:  %s\n", commit)
		fmt.Fprintf(out, "  Built:   %s\n", buildDate)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: .cxxcodes/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output file (default: stdout)")
	rootCmd.PersistentFlags().StringVarP(&verbosity, "verbosity", "v", "", "verbosity level (quiet, normal, verbose)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	// Add version command
	rootCmd.AddCommand(versionCmd)
}

// reportedError is an error that has already been written through a
// ResultWriter and must not be printed again.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return execute(ctx, os.Stderr)
}

func execute(ctx context.Context, stderr io.Writer) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return exitcode.Success
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return exitcode.FromError(err)
}

// exitCodeHelp renders the exit code table appended to command help.
func exitCodeHelp() string {
	var b strings.Builder
	b.WriteString("\n\nExit codes:")
	for _, code := range []int{exitcode.Success, exitcode.Unmapped, exitcode.Error} {
		fmt.Fprintf(&b, "\n  %d  %s", code, exitcode.Description(code))
	}
	return b.String()
}

// loadConfig loads the configuration from file and CLI overrides
func loadConfig(extra *config.CLIOverrides) (*config.Config, error) {
	loader := config.NewLoader()
	overrides := buildOverrides(extra)

	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = loader.LoadFromFileWithOverrides(cfgFile, overrides)
	} else {
		cfg, err = loader.LoadWithOverrides(overrides)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// buildOverrides collects the global flags that were set, merged with
// command specific overrides.
func buildOverrides(extra *config.CLIOverrides) *config.CLIOverrides {
	o := &config.CLIOverrides{}
	if extra != nil {
		*o = *extra
	}

	if jsonOutput {
		format := string(ports.OutputFormatJSON)
		o.Format = &format
	}
	if verbosity != "" {
		v := verbosity
		o.Verbosity = &v
	}
	if noColor {
		nc := true
		o.NoColor = &nc
	}
	if logLevel != "" {
		lvl := logLevel
		o.LogLevel = &lvl
	}
	return o
}

// createWriter creates the appropriate writer based on config. With tee set,
// a quiet console summary is written alongside the --output file. The
// returned close function is never nil.
func createWriter(cmd *cobra.Command, cfg *config.Config, tee bool) (ports.ResultWriter, func() error, error) {
	factory := writers.NewFactoryWithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	outputConfig := cfg.ToOutputConfig()

	if outputFlag != "" {
		w, closer, err := factory.CreateToFile(outputFlag, outputConfig)
		if err != nil {
			return nil, nil, err
		}
		if !tee {
			return w, closer.Close, nil
		}

		summary := factory.CreateConsole(ports.OutputConfig{
			Format:    ports.OutputFormatConsole,
			Verbosity: ports.VerbosityQuiet,
			Color:     outputConfig.Color,
		})
		return ports.NewMultiWriter(w, summary), closer.Close, nil
	}

	w, err := factory.Create(outputConfig)
	if err != nil {
		return nil, nil, err
	}
	return w, func() error { return nil }, nil
}

// newLogger builds the stderr logger for a command.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.ToLoggingOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// reportFailure writes err through w and marks it as reported.
func reportFailure(w ports.ResultWriter, err error) error {
	_ = w.WriteError(err)
	_ = w.Flush()
	return &reportedError{err: err}
}
