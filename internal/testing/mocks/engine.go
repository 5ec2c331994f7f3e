// Package mocks provides mock implementations for testing.
package mocks

import (
	"sort"
	"sync"

	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/report"
)

// MockEngine is a configurable mock implementation of ports.Engine.
type MockEngine struct {
	IDValue     ports.EngineID
	ParseFunc   func(data []byte) (*report.Report, error)
	Codes       map[string]string
	FamilyValue string
	ParseCalls  int
}

// NewMockEngine creates a new mock engine that parses to an empty report
// and maps no rule ids.
func NewMockEngine(id ports.EngineID) *MockEngine {
	return &MockEngine{
		IDValue:     id,
		Codes:       map[string]string{},
		FamilyValue: "mock",
	}
}

// ID returns the engine ID.
func (m *MockEngine) ID() ports.EngineID {
	return m.IDValue
}

// Parse returns the configured report.
func (m *MockEngine) Parse(data []byte) (*report.Report, error) {
	m.ParseCalls++
	if m.ParseFunc != nil {
		return m.ParseFunc(data)
	}
	return report.NewReport(nil), nil
}

// Normalize maps the finding through Codes.
func (m *MockEngine) Normalize(f report.Finding) diagnostic.Diagnostic {
	code, ok := m.Codes[f.RuleID()]
	return diagnostic.Diagnostic{
		Code:      code,
		RuleID:    f.RuleID(),
		Mapped:    ok,
		Severity:  f.Severity(),
		Message:   f.Message(),
		Locations: f.Locations(),
	}
}

// RuleFamily returns FamilyValue for every rule id.
func (m *MockEngine) RuleFamily(string) string {
	return m.FamilyValue
}

// WithFindings configures the mock to return a report holding findings.
func (m *MockEngine) WithFindings(findings ...report.Finding) *MockEngine {
	m.ParseFunc = func([]byte) (*report.Report, error) {
		return report.NewReport(findings, report.WithFormatVersion("2"), report.WithToolVersion("mock")), nil
	}
	return m
}

// WithCodes configures the rule id to code mapping.
func (m *MockEngine) WithCodes(codes map[string]string) *MockEngine {
	m.Codes = codes
	return m
}

// WithError configures the mock to fail parsing.
func (m *MockEngine) WithError(err error) *MockEngine {
	m.ParseFunc = func([]byte) (*report.Report, error) {
		return nil, err
	}
	return m
}

// MockRegistry is a mock implementation of ports.EngineRegistry.
type MockRegistry struct {
	engines map[ports.EngineID]ports.Engine
}

// NewMockRegistry creates a new mock registry.
func NewMockRegistry(engines ...ports.Engine) *MockRegistry {
	r := &MockRegistry{
		engines: make(map[ports.EngineID]ports.Engine),
	}
	for _, e := range engines {
		r.Register(e)
	}
	return r
}

// Register adds an engine to the registry.
func (r *MockRegistry) Register(engine ports.Engine) {
	r.engines[engine.ID()] = engine
}

// Get returns an engine by ID.
func (r *MockRegistry) Get(id ports.EngineID) (ports.Engine, bool) {
	e, ok := r.engines[id]
	return e, ok
}

// IDs returns the registered ids, sorted.
func (r *MockRegistry) IDs() []ports.EngineID {
	ids := make([]ports.EngineID, 0, len(r.engines))
	for id := range r.engines {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MockMetrics records every call for later assertions.
type MockMetrics struct {
	mu         sync.Mutex
	Parsed     int
	Findings   int
	Rejected   int
	Mapped     int
	Unmapped   int
	Suppressed int
	Families   map[string]int
}

// NewMockMetrics creates an empty recorder.
func NewMockMetrics() *MockMetrics {
	return &MockMetrics{Families: make(map[string]int)}
}

func (m *MockMetrics) ReportParsed(_ ports.EngineID, findings int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Parsed++
	m.Findings += findings
}

func (m *MockMetrics) ReportRejected(ports.EngineID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rejected++
}

func (m *MockMetrics) FindingNormalized(_ ports.EngineID, family string, mapped bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Families[family]++
	if mapped {
		m.Mapped++
	} else {
		m.Unmapped++
	}
}

func (m *MockMetrics) FindingSuppressed(ports.EngineID, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Suppressed++
}

var (
	_ ports.Engine          = (*MockEngine)(nil)
	_ ports.EngineRegistry  = (*MockRegistry)(nil)
	_ ports.MetricsRecorder = (*MockMetrics)(nil)
)
