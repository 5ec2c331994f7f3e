package ports

import (
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagcode"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
)

// ResultWriter defines the interface for writing normalization output.
type ResultWriter interface {
	// WriteResult writes a normalized report.
	WriteResult(r *diagnostic.Result) error

	// WriteLookups writes the outcome of individual rule id lookups.
	WriteLookups(results []LookupResult) error

	// WriteCodes writes the code table.
	WriteCodes(entries []diagcode.Entry) error

	// WriteError writes error messages.
	WriteError(err error) error

	// Flush ensures all output is written.
	Flush() error
}

// WriterFactory creates writers based on configuration.
type WriterFactory interface {
	// Create returns a writer for the configured format.
	Create(config OutputConfig) (ResultWriter, error)
}

// MultiWriter writes to multiple destinations.
type MultiWriter struct {
	writers []ResultWriter
}

// NewMultiWriter creates a writer that writes to all provided writers.
func NewMultiWriter(writers ...ResultWriter) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteResult writes to all writers.
func (m *MultiWriter) WriteResult(r *diagnostic.Result) error {
	for _, w := range m.writers {
		if err := w.WriteResult(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteLookups writes to all writers.
func (m *MultiWriter) WriteLookups(results []LookupResult) error {
	for _, w := range m.writers {
		if err := w.WriteLookups(results); err != nil {
			return err
		}
	}
	return nil
}

// WriteCodes writes to all writers.
func (m *MultiWriter) WriteCodes(entries []diagcode.Entry) error {
	for _, w := range m.writers {
		if err := w.WriteCodes(entries); err != nil {
			return err
		}
	}
	return nil
}

// WriteError writes to all writers.
func (m *MultiWriter) WriteError(err error) error {
	for _, w := range m.writers {
		if writeErr := w.WriteError(err); writeErr != nil {
			return writeErr
		}
	}
	return nil
}

// Flush flushes all writers.
func (m *MultiWriter) Flush() error {
	for _, w := range m.writers {
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

var _ ResultWriter = (*MultiWriter)(nil)
