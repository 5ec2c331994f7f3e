package ports

// MetricsRecorder receives counters from report normalization.
type MetricsRecorder interface {
	// ReportParsed records a report that parsed successfully.
	ReportParsed(engine EngineID, findings int)

	// ReportRejected records a malformed report.
	ReportRejected(engine EngineID)

	// FindingNormalized records one finding and whether its rule id was mapped.
	FindingNormalized(engine EngineID, family string, mapped bool)

	// FindingSuppressed records a finding dropped by the unmapped policy.
	FindingSuppressed(engine EngineID, family string)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) ReportParsed(EngineID, int)               {}
func (NopMetrics) ReportRejected(EngineID)                  {}
func (NopMetrics) FindingNormalized(EngineID, string, bool) {}
func (NopMetrics) FindingSuppressed(EngineID, string)       {}

var _ MetricsRecorder = NopMetrics{}
