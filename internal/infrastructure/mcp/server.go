package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
	"github.com/felixgeelhaar/cxxcodes/internal/application/usecases"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagcode"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/config"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/engines"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/reportio"
	"github.com/felixgeelhaar/cxxcodes/pkg/pathutil"
	"github.com/felixgeelhaar/mcp-go"
	"go.uber.org/zap"
)

// Server wraps the MCP server with rule normalization tools.
type Server struct {
	mcpServer *mcp.Server
	config    *config.Config
	registry  ports.EngineRegistry
	codes     ports.RuleNormalizer
	loader    *reportio.Loader
	baseDir   string
	normalize *usecases.NormalizeReportUseCase
	logger    *zap.Logger
}

// Option configures the server.
type Option func(*serverDeps)

type serverDeps struct {
	registry ports.EngineRegistry
	metrics  ports.MetricsRecorder
	logger   *zap.Logger
	baseDir  string
}

// WithRegistry replaces the default engine registry.
func WithRegistry(r ports.EngineRegistry) Option {
	return func(d *serverDeps) { d.registry = r }
}

// WithMetrics records normalization counters.
func WithMetrics(m ports.MetricsRecorder) Option {
	return func(d *serverDeps) { d.metrics = m }
}

// WithLogger sets the logger. It must not write to stdout when serving stdio.
func WithLogger(l *zap.Logger) Option {
	return func(d *serverDeps) { d.logger = l }
}

// WithBaseDir confines report paths to dir instead of the working directory.
func WithBaseDir(dir string) Option {
	return func(d *serverDeps) { d.baseDir = dir }
}

// NewServer creates a new cxxcodes MCP server.
func NewServer(cfg *config.Config, version string, opts ...Option) *Server {
	if version == "" {
		version = "dev"
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	deps := serverDeps{
		registry: engines.NewDefaultRegistry(),
		metrics:  ports.NopMetrics{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&deps)
	}

	srv := mcp.NewServer(mcp.ServerInfo{
		Name:    "cxxcodes",
		Version: version,
		Capabilities: mcp.Capabilities{
			Tools:     true,
			Resources: true,
		},
	})

	s := &Server{
		mcpServer: srv,
		config:    cfg,
		registry:  deps.registry,
		codes:     diagcode.NewNormalizer(),
		loader:    reportio.NewLoader(reportio.WithStdin(strings.NewReader(""))),
		baseDir:   deps.baseDir,
		logger:    deps.logger,
		normalize: usecases.NewNormalizeReportUseCase(deps.registry,
			usecases.WithMetrics(deps.metrics),
			usecases.WithLogger(deps.logger),
		),
	}

	s.registerTools()
	s.registerResources()

	return s
}

// ServeStdio starts the MCP server with stdio transport.
func (s *Server) ServeStdio(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}

// ServeHTTP starts the MCP server with HTTP transport.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	return mcp.ServeHTTP(ctx, s.mcpServer, addr,
		mcp.WithReadTimeout(60*time.Second),
		mcp.WithWriteTimeout(60*time.Second),
	)
}

// registerTools registers all cxxcodes MCP tools.
func (s *Server) registerTools() {
	s.mcpServer.Tool("cxx_normalize_rule").
		Description("Map cppcheck rule ids (checker ids or misra-c2012-X.Y) to internal CXX-W diagnostic codes.").
		Handler(s.handleNormalizeRule)

	s.mcpServer.Tool("cxx_normalize_report").
		Description("Parse a cppcheck XML report and return every finding under its internal diagnostic code.").
		Handler(s.handleNormalizeReport)
}

// registerResources registers all cxxcodes MCP resources.
func (s *Server) registerResources() {
	s.mcpServer.Resource("cxx://codes").
		Name("Codes").
		Description("The complete rule id to diagnostic code table, ordered by code.").
		MimeType("application/json").
		Handler(s.handleCodesResource)

	s.mcpServer.Resource("cxx://config").
		Name("Configuration").
		Description("Current cxxcodes configuration.").
		MimeType("application/json").
		Handler(s.handleConfigResource)

	s.mcpServer.Resource("cxx://engines").
		Name("Engines").
		Description("Analyzers whose reports can be normalized.").
		MimeType("application/json").
		Handler(s.handleEnginesResource)
}

// NormalizeRuleInput defines the input for rule id lookups.
type NormalizeRuleInput struct {
	RuleIDs []string `json:"rule_ids" jsonschema:"description=cppcheck rule ids to look up, e.g. missingReturn or misra-c2012-2.3"`
}

// NormalizeRuleResult lists lookups in input order.
type NormalizeRuleResult struct {
	Results  []ports.LookupResult `json:"results"`
	Unmapped int                  `json:"unmapped"`
}

func (s *Server) handleNormalizeRule(_ context.Context, input NormalizeRuleInput) (*NormalizeRuleResult, error) {
	if len(input.RuleIDs) == 0 {
		return nil, errors.New("rule_ids is required")
	}

	results := ports.Lookup(s.codes, input.RuleIDs...)
	unmapped := 0
	for _, r := range results {
		if !r.Mapped {
			unmapped++
		}
	}
	return &NormalizeRuleResult{Results: results, Unmapped: unmapped}, nil
}

// NormalizeReportInput defines the input for report normalization.
type NormalizeReportInput struct {
	Report         string `json:"report,omitempty" jsonschema:"description=cppcheck XML report text (--xml --xml-version=2)"`
	Path           string `json:"path,omitempty" jsonschema:"description=Path to a cppcheck XML report; gzip and zstd are accepted"`
	UnmappedPolicy string `json:"unmapped_policy,omitempty" jsonschema:"description=What to do with unmapped rule ids: surface, suppress or fail"`
}

// NormalizeReportResult is a normalized report, possibly truncated.
type NormalizeReportResult struct {
	RunID       string                  `json:"run_id"`
	Status      string                  `json:"status"`
	ToolVersion string                  `json:"tool_version,omitempty"`
	TotalCount  int                     `json:"total_count"`
	ShownCount  int                     `json:"shown_count"`
	Truncated   bool                    `json:"truncated"`
	Suppressed  int                     `json:"suppressed"`
	Unmapped    []string                `json:"unmapped,omitempty"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics"`
}

func (s *Server) handleNormalizeReport(ctx context.Context, input NormalizeReportInput) (*NormalizeReportResult, error) {
	var (
		data   []byte
		source string
		err    error
	)
	switch {
	case input.Report != "" && input.Path != "":
		return nil, errors.New("provide either report or path, not both")
	case input.Report != "":
		data = []byte(input.Report)
		source = "inline"
	case input.Path != "":
		var path string
		path, err = s.resolveReportPath(input.Path)
		if err != nil {
			return nil, err
		}
		data, err = s.loader.Load(path)
		if err != nil {
			return nil, err
		}
		source = input.Path
	default:
		return nil, errors.New("report or path is required")
	}

	policy := s.config.GetUnmappedPolicy()
	if input.UnmappedPolicy != "" {
		policy, err = diagnostic.ParseUnmappedPolicy(input.UnmappedPolicy)
		if err != nil {
			return nil, err
		}
	}

	s.logger.Debug("normalize_report tool called",
		zap.String("source", source),
		zap.String("policy", policy.String()),
	)
	result, err := s.normalize.Execute(ctx, usecases.NormalizeReportInput{
		Engine: ports.EngineCppcheck,
		Data:   data,
		Source: source,
		Policy: policy,
	})
	if err != nil {
		return nil, err
	}

	return s.buildReportResult(result), nil
}

// resolveReportPath confines a tool-supplied path to the base directory.
// Standard input carries the stdio transport and is never read.
func (s *Server) resolveReportPath(path string) (string, error) {
	if pathutil.IsStdin(path) {
		return "", errors.New("path \"-\" is not supported: standard input carries the MCP session")
	}
	base := s.baseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		base = wd
	}
	return pathutil.ValidatePathInDir(path, base)
}

// buildReportResult applies the configured response cap.
func (s *Server) buildReportResult(r *diagnostic.Result) *NormalizeReportResult {
	diags := r.Diagnostics
	limit := s.config.GetMaxDiagnostics()
	truncated := limit > 0 && len(diags) > limit
	if truncated {
		diags = diags[:limit]
	}
	if diags == nil {
		diags = []diagnostic.Diagnostic{}
	}

	status := "ok"
	if r.HasUnmapped() {
		status = "unmapped"
	}

	return &NormalizeReportResult{
		RunID:       r.RunID,
		Status:      status,
		ToolVersion: r.ToolVersion,
		TotalCount:  r.Total(),
		ShownCount:  len(diags),
		Truncated:   truncated,
		Suppressed:  r.Suppressed,
		Unmapped:    r.Unmapped,
		Diagnostics: diags,
	}
}

// codesResourceData represents the code table for JSON marshaling.
type codesResourceData struct {
	Namespace string           `json:"namespace"`
	Count     int              `json:"count"`
	Codes     []diagcode.Entry `json:"codes"`
}

func (s *Server) handleCodesResource(_ context.Context, uri string, _ map[string]string) (*mcp.ResourceContent, error) {
	entries := diagcode.Entries()
	return jsonResource(uri, codesResourceData{
		Namespace: diagcode.Namespace,
		Count:     len(entries),
		Codes:     entries,
	})
}

func (s *Server) handleConfigResource(_ context.Context, uri string, _ map[string]string) (*mcp.ResourceContent, error) {
	return jsonResource(uri, s.config)
}

// enginesResourceData represents the engines resource structure for JSON marshaling.
type enginesResourceData struct {
	Engines []string `json:"engines"`
}

func (s *Server) handleEnginesResource(_ context.Context, uri string, _ map[string]string) (*mcp.ResourceContent, error) {
	ids := s.registry.IDs()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, string(id))
	}
	return jsonResource(uri, enginesResourceData{Engines: names})
}

func jsonResource(uri string, data any) (*mcp.ResourceContent, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", uri, err)
	}

	return &mcp.ResourceContent{
		URI:      uri,
		MimeType: "application/json",
		Text:     string(jsonBytes),
	}, nil
}
