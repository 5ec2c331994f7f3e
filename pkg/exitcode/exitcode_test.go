package exitcode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/report"
	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil returns success", nil, Success},
		{"unmapped returns unmapped", &diagnostic.UnmappedError{RuleIDs: []string{"x"}}, Unmapped},
		{"wrapped unmapped returns unmapped", fmt.Errorf("normalize: %w", diagnostic.ErrUnmappedRule), Unmapped},
		{"malformed returns error", &report.MalformedReportError{Index: -1, Reason: "empty document"}, Error},
		{"other returns error", errors.New("boom"), Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromError(tt.err))
		})
	}
}

func TestDescription(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{Success, "All findings normalized"},
		{Unmapped, "Unmapped rule ids rejected by policy"},
		{Error, "Tool, configuration or input error"},
		{99, "Unknown exit code"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Description(tt.code))
		})
	}
}
