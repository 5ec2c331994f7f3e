package main

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
	"github.com/felixgeelhaar/cxxcodes/internal/application/usecases"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/config"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/engines"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/metrics"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/reportio"
	"github.com/felixgeelhaar/cxxcodes/pkg/pathutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	engineFlag      string
	policyFlag      string
	metricsTextfile string
)

// normalizeCmd normalizes an analyzer report
var normalizeCmd = &cobra.Command{
	Use:   "normalize [report]",
	Short: "Normalize a cppcheck XML report to CXX-W codes",
	Long: `Parse a cppcheck XML report and print every finding under its
internal CXX-W diagnostic code.

The report is read from the given file, or from standard input when the
argument is omitted or "-". Gzip and zstd compressed reports are detected
automatically.

Unmapped policies:
  surface   keep unmapped findings and show their raw rule id (default)
  suppress  drop unmapped findings and count them
  fail      reject the report when any rule id is unmapped (exit 1)

Examples:
  cxxcodes normalize report.xml
  cxxcodes normalize report.xml.gz --json
  cppcheck --xml --enable=all src 2>&1 | cxxcodes normalize -
  cxxcodes normalize report.xml --policy fail --metrics-textfile cxx.prom
  cxxcodes normalize report.xml --json -o findings.json   # summary on stdout` + exitCodeHelp(),
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVar(&engineFlag, "engine", string(ports.EngineCppcheck), "report format")
	normalizeCmd.Flags().StringVar(&policyFlag, "policy", "", "unmapped rule policy (surface, suppress, fail)")
	normalizeCmd.Flags().StringVar(&metricsTextfile, "metrics-textfile", "", "write Prometheus counters to this file")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	path := pathutil.Stdin
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := loadConfig(normalizeOverrides())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	writer, closeWriter, err := createWriter(cmd, cfg, true)
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}
	defer func() { _ = closeWriter() }()

	recorder := metrics.NewRecorder()
	run := normalizeRun{
		engine:   ports.EngineID(engineFlag),
		path:     path,
		policy:   cfg.GetUnmappedPolicy(),
		loader:   reportio.NewLoader(reportio.WithStdin(cmd.InOrStdin())),
		registry: engines.NewDefaultRegistry(),
		writer:   writer,
		metrics:  recorder,
		logger:   logger,
	}
	runErr := run.execute(cmd.Context())

	if cfg.Metrics.Textfile != "" {
		if err := recorder.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Warn("failed to write metrics textfile",
				zap.String("path", cfg.Metrics.Textfile),
				zap.Error(err),
			)
		}
	}
	return runErr
}

func normalizeOverrides() *config.CLIOverrides {
	o := &config.CLIOverrides{}
	if policyFlag != "" {
		p := policyFlag
		o.Policy = &p
	}
	if metricsTextfile != "" {
		m := metricsTextfile
		o.MetricsTextfile = &m
	}
	return o
}

// normalizeRun holds everything one normalize invocation needs.
type normalizeRun struct {
	engine   ports.EngineID
	path     string
	policy   diagnostic.UnmappedPolicy
	loader   *reportio.Loader
	registry ports.EngineRegistry
	writer   ports.ResultWriter
	metrics  ports.MetricsRecorder
	logger   *zap.Logger
}

func (r normalizeRun) execute(ctx context.Context) error {
	data, err := r.loader.Load(r.path)
	if err != nil {
		return reportFailure(r.writer, fmt.Errorf("failed to read report: %w", err))
	}

	uc := usecases.NewNormalizeReportUseCase(r.registry,
		usecases.WithMetrics(r.metrics),
		usecases.WithLogger(r.logger),
	)
	result, err := uc.Execute(ctx, usecases.NormalizeReportInput{
		Engine: r.engine,
		Data:   data,
		Source: r.path,
		Policy: r.policy,
	})
	if err != nil {
		return reportFailure(r.writer, err)
	}

	if err := r.writer.WriteResult(result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return r.writer.Flush()
}
