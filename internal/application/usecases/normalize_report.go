package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/report"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnknownEngine is returned when no engine is registered for the requested id.
var ErrUnknownEngine = errors.New("unknown engine")

// NormalizeReportInput contains the input for the NormalizeReport use case.
type NormalizeReportInput struct {
	Engine ports.EngineID // defaults to cppcheck
	Data   []byte
	Source string // file name or "-" for stdin; informational only
	Policy diagnostic.UnmappedPolicy
}

// NormalizeReportUseCase parses one analyzer report and re-expresses
// every finding under internal diagnostic codes.
type NormalizeReportUseCase struct {
	registry ports.EngineRegistry
	metrics  ports.MetricsRecorder
	logger   *zap.Logger
}

// NormalizeReportOption configures the use case.
type NormalizeReportOption func(*NormalizeReportUseCase)

// WithMetrics records counters through m.
func WithMetrics(m ports.MetricsRecorder) NormalizeReportOption {
	return func(uc *NormalizeReportUseCase) {
		if m != nil {
			uc.metrics = m
		}
	}
}

// WithLogger logs through l.
func WithLogger(l *zap.Logger) NormalizeReportOption {
	return func(uc *NormalizeReportUseCase) {
		if l != nil {
			uc.logger = l
		}
	}
}

// NewNormalizeReportUseCase creates a new NormalizeReport use case.
func NewNormalizeReportUseCase(registry ports.EngineRegistry, opts ...NormalizeReportOption) *NormalizeReportUseCase {
	uc := &NormalizeReportUseCase{
		registry: registry,
		metrics:  ports.NopMetrics{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute parses and normalizes the report.
//
// A malformed report is rejected as a whole. Under PolicyFail any unmapped
// rule id rejects the batch with a *diagnostic.UnmappedError.
func (uc *NormalizeReportUseCase) Execute(ctx context.Context, input NormalizeReportInput) (*diagnostic.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	engineID := input.Engine
	if engineID == "" {
		engineID = ports.EngineCppcheck
	}
	engine, ok := uc.registry.Get(engineID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, engineID)
	}

	policy := input.Policy
	if policy == "" {
		policy = diagnostic.PolicySurface
	}
	if !policy.IsValid() {
		return nil, fmt.Errorf("invalid unmapped policy %q", policy)
	}

	runID := uuid.NewString()
	log := uc.logger.With(
		zap.String("run_id", runID),
		zap.String("engine", string(engineID)),
		zap.String("source", input.Source),
	)

	rep, err := engine.Parse(input.Data)
	if err != nil {
		uc.metrics.ReportRejected(engineID)
		log.Warn("report rejected", zap.Error(err))
		return nil, fmt.Errorf("parse %s report: %w", engineID, err)
	}
	uc.metrics.ReportParsed(engineID, rep.Len())
	log.Debug("report parsed",
		zap.Int("findings", rep.Len()),
		zap.Int("rule_ids", len(rep.RuleIDs())),
		zap.String("format_version", rep.FormatVersion()),
		zap.String("tool_version", rep.ToolVersion()),
	)

	result := &diagnostic.Result{
		RunID:       runID,
		Source:      input.Source,
		ToolVersion: rep.ToolVersion(),
		Policy:      policy,
		Diagnostics: make([]diagnostic.Diagnostic, 0, rep.Len()),
	}

	seen := make(map[string]struct{})
	for i, f := range rep.Findings() {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		d := engine.Normalize(f)
		family := engine.RuleFamily(f.RuleID())
		uc.metrics.FindingNormalized(engineID, family, d.Mapped)

		if !d.Mapped {
			if _, dup := seen[d.RuleID]; !dup {
				seen[d.RuleID] = struct{}{}
				result.Unmapped = append(result.Unmapped, d.RuleID)
			}
			if policy == diagnostic.PolicySuppress {
				uc.metrics.FindingSuppressed(engineID, family)
				result.Suppressed++
				continue
			}
		}
		result.Diagnostics = append(result.Diagnostics, d)
	}

	if policy == diagnostic.PolicyFail && result.HasUnmapped() {
		log.Warn("unmapped rule ids", zap.Strings("rule_ids", result.Unmapped))
		return nil, &diagnostic.UnmappedError{RuleIDs: result.Unmapped}
	}

	log.Info("report normalized",
		zap.Int("diagnostics", len(result.Diagnostics)),
		zap.Int("unmapped", len(result.Unmapped)),
		zap.Int("suppressed", result.Suppressed),
	)
	return result, nil
}

// IsMalformed reports whether err came from a report that could not be parsed.
func IsMalformed(err error) bool {
	return report.IsMalformed(err)
}
