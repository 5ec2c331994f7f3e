package writers

import (
	"bytes"
	"errors"
	"testing"

	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagcode"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *diagnostic.Result {
	return &diagnostic.Result{
		RunID:       "run-1",
		Source:      "cppcheck.xml",
		ToolVersion: "2.13.0",
		Policy:      diagnostic.PolicySurface,
		Diagnostics: []diagnostic.Diagnostic{
			{
				Code:      "CXX-W3551",
				RuleID:    "missingReturn",
				Mapped:    true,
				Severity:  "error",
				Message:   "missing return",
				Detail:    "Found an exit path with missing return statement",
				CWE:       "758",
				Locations: []report.Location{report.NewLocation("a.c", 4, 5), report.NewLocation("a.h", 1, 1)},
			},
			{
				RuleID:   "futureChecker",
				Severity: "style",
				Message:  "something new",
			},
		},
		Unmapped:   []string{"futureChecker"},
		Suppressed: 0,
	}
}

func TestNewConsoleWriter(t *testing.T) {
	w := NewConsoleWriter()

	assert.NotNil(t, w)
	assert.NotNil(t, w.out)
	assert.NotNil(t, w.err)
	assert.True(t, w.color)
	assert.Equal(t, ports.VerbosityNormal, w.verbosity)
}

func TestNewConsoleWriter_WithOptions(t *testing.T) {
	var buf bytes.Buffer
	var errBuf bytes.Buffer

	w := NewConsoleWriter(
		WithOutput(&buf),
		WithErrorOutput(&errBuf),
		WithColor(false),
		WithVerbosity(ports.VerbosityVerbose),
	)

	assert.Equal(t, &buf, w.out)
	assert.Equal(t, &errBuf, w.err)
	assert.False(t, w.color)
	assert.Equal(t, ports.VerbosityVerbose, w.verbosity)
}

func TestConsoleWriter_SetColor(t *testing.T) {
	w := NewConsoleWriter()

	w.SetColor(false)
	assert.False(t, w.color)
	assert.Equal(t, "x", w.red("x"))

	w.SetColor(true)
	assert.True(t, w.color)
}

func TestConsoleWriter_SetVerbosity(t *testing.T) {
	w := NewConsoleWriter()

	w.SetVerbosity(ports.VerbosityQuiet)
	assert.Equal(t, ports.VerbosityQuiet, w.verbosity)
}

func TestConsoleWriter_WriteResult(t *testing.T) {
	var buf bytes.Buffer
	w := NewConsoleWriter(WithOutput(&buf), WithColor(false))

	err := w.WriteResult(sampleResult())
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "a.c:4:5: error CXX-W3551 missing return [missingReturn]")
	assert.Contains(t, output, "<no location>: style futureChecker something new")
	assert.Contains(t, output, "Findings: 2 (mapped: 1, unmapped: 1, suppressed: 0)")
	assert.Contains(t, output, "Unmapped rule ids: futureChecker")
	assert.NotContains(t, output, "Detail:")
	assert.NotContains(t, output, "Run ID")
}

func TestConsoleWriter_WriteResult_Verbose(t *testing.T) {
	var buf bytes.Buffer
	w := NewConsoleWriter(WithOutput(&buf), WithColor(false), WithVerbosity(ports.VerbosityVerbose))

	require.NoError(t, w.WriteResult(sampleResult()))

	output := buf.String()
	assert.Contains(t, output, "Detail: Found an exit path")
	assert.Contains(t, output, "CWE: CWE-758")
	assert.Contains(t, output, "Also: a.h:1:1")
	assert.Contains(t, output, "Run ID: run-1")
	assert.Contains(t, output, "Source: cppcheck.xml")
	assert.Contains(t, output, "Analyzer: cppcheck 2.13.0")
	assert.Contains(t, output, "Unmapped policy: surface")
	assert.Contains(t, output, "CXX-W3551")
}

func TestConsoleWriter_WriteResult_Quiet(t *testing.T) {
	var buf bytes.Buffer
	w := NewConsoleWriter(WithOutput(&buf), WithColor(false), WithVerbosity(ports.VerbosityQuiet))

	require.NoError(t, w.WriteResult(sampleResult()))

	output := buf.String()
	assert.NotContains(t, output, "missing return")
	assert.Contains(t, output, "Summary")
}

func TestConsoleWriter_WriteResult_Empty(t *testing.T) {
	var buf bytes.Buffer
	w := NewConsoleWriter(WithOutput(&buf), WithColor(false))

	require.NoError(t, w.WriteResult(&diagnostic.Result{Policy: diagnostic.PolicySurface}))

	output := buf.String()
	assert.Contains(t, output, "Findings: 0")
	assert.NotContains(t, output, "Unmapped rule ids")
}

func TestConsoleWriter_WriteLookups(t *testing.T) {
	var buf bytes.Buffer
	w := NewConsoleWriter(WithOutput(&buf), WithColor(false))

	err := w.WriteLookups([]ports.LookupResult{
		{RuleID: "missingReturn", Code: "CXX-W3551", Mapped: true},
		{RuleID: "nope"},
	})
	require.NoError(t, err)

	assert.Equal(t, "missingReturn\tCXX-W3551\nnope\t(unmapped)\n", buf.String())
}

func TestConsoleWriter_WriteCodes(t *testing.T) {
	var buf bytes.Buffer
	w := NewConsoleWriter(WithOutput(&buf), WithColor(false))

	err := w.WriteCodes([]diagcode.Entry{
		{RuleID: "misra-c2012-1.1", Code: "CXX-W3001"},
		{RuleID: "misra-c2012-1.2", Code: "CXX-W3002"},
	})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "CODE")
	assert.Contains(t, output, "CXX-W3001    misra-c2012-1.1")
	assert.Contains(t, output, "2 codes")
}

func TestConsoleWriter_WriteCodes_Quiet(t *testing.T) {
	var buf bytes.Buffer
	w := NewConsoleWriter(WithOutput(&buf), WithColor(false), WithVerbosity(ports.VerbosityQuiet))

	require.NoError(t, w.WriteCodes([]diagcode.Entry{{RuleID: "a", Code: "CXX-W3001"}}))

	assert.Equal(t, "CXX-W3001    a\n", buf.String())
}

func TestConsoleWriter_WriteError(t *testing.T) {
	var errBuf bytes.Buffer
	w := NewConsoleWriter(WithErrorOutput(&errBuf), WithColor(false))

	err := w.WriteError(errors.New("malformed report: empty document"))
	require.NoError(t, err)

	assert.Equal(t, "ERROR: malformed report: empty document\n", errBuf.String())
}

func TestConsoleWriter_Flush(t *testing.T) {
	w := NewConsoleWriter()

	assert.NoError(t, w.Flush())
}

func TestConsoleWriter_SeverityString(t *testing.T) {
	w := NewConsoleWriter(WithColor(false))

	for _, sev := range []string{"error", "warning", "style", "performance", "portability", "information", "debug", ""} {
		assert.Equal(t, sev, w.severityString(sev))
	}
}
