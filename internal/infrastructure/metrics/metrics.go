// Package metrics records normalization counters in a Prometheus registry.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cxxcodes"

// Recorder implements ports.MetricsRecorder on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	reports    *prometheus.CounterVec
	findings   *prometheus.CounterVec
	normalized *prometheus.CounterVec
	suppressed *prometheus.CounterVec
}

// NewRecorder creates a recorder with a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Reports processed, by engine and outcome.",
		}, []string{"engine", "status"}),
		findings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_findings_total",
			Help:      "Findings read from parsed reports.",
		}, []string{"engine"}),
		normalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "findings_normalized_total",
			Help:      "Findings normalized, by rule family and whether a code was found.",
		}, []string{"engine", "family", "mapped"}),
		suppressed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "findings_suppressed_total",
			Help:      "Unmapped findings dropped by the suppress policy.",
		}, []string{"engine", "family"}),
	}
	r.registry.MustRegister(r.reports, r.findings, r.normalized, r.suppressed)
	return r
}

// ReportParsed records a report that parsed successfully.
func (r *Recorder) ReportParsed(engine ports.EngineID, findings int) {
	r.reports.WithLabelValues(string(engine), "parsed").Inc()
	r.findings.WithLabelValues(string(engine)).Add(float64(findings))
}

// ReportRejected records a malformed report.
func (r *Recorder) ReportRejected(engine ports.EngineID) {
	r.reports.WithLabelValues(string(engine), "rejected").Inc()
}

// FindingNormalized records one normalized finding.
func (r *Recorder) FindingNormalized(engine ports.EngineID, family string, mapped bool) {
	r.normalized.WithLabelValues(string(engine), family, strconv.FormatBool(mapped)).Inc()
}

// FindingSuppressed records a finding dropped by the unmapped policy.
func (r *Recorder) FindingSuppressed(engine ports.EngineID, family string) {
	r.suppressed.WithLabelValues(string(engine), family).Inc()
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics in the text exposition format, suitable
// for the node_exporter textfile collector. The write is atomic.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

var _ ports.MetricsRecorder = (*Recorder)(nil)
