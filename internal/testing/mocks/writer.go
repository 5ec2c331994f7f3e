package mocks

import (
	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagcode"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
)

// MockWriter captures everything written to it.
type MockWriter struct {
	Results    []*diagnostic.Result
	Lookups    [][]ports.LookupResult
	Codes      [][]diagcode.Entry
	Errors     []error
	FlushCalls int

	// Err, when set, is returned from every write.
	Err error
}

// NewMockWriter creates an empty writer.
func NewMockWriter() *MockWriter {
	return &MockWriter{}
}

func (m *MockWriter) WriteResult(r *diagnostic.Result) error {
	m.Results = append(m.Results, r)
	return m.Err
}

func (m *MockWriter) WriteLookups(results []ports.LookupResult) error {
	m.Lookups = append(m.Lookups, results)
	return m.Err
}

func (m *MockWriter) WriteCodes(entries []diagcode.Entry) error {
	m.Codes = append(m.Codes, entries)
	return m.Err
}

func (m *MockWriter) WriteError(err error) error {
	m.Errors = append(m.Errors, err)
	return m.Err
}

func (m *MockWriter) Flush() error {
	m.FlushCalls++
	return nil
}

var _ ports.ResultWriter = (*MockWriter)(nil)
