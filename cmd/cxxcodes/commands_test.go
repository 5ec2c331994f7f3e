package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagcode"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/engines"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/reportio"
	"github.com/felixgeelhaar/cxxcodes/internal/testing/mocks"
	"github.com/felixgeelhaar/cxxcodes/pkg/exitcode"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleReport = `<?xml version="1.0" encoding="UTF-8"?>
<results version="2">
    <cppcheck version="2.13.0"/>
    <errors>
        <error id="missingReturn" severity="error" msg="missing return" verbose="missing return" cwe="758" file0="a.c">
            <location file="a.c" line="4" column="5"/>
        </error>
        <error id="misra-c2012-2.3" severity="style" msg="misra violation">
            <location file="b.c" line="7" column="2"/>
        </error>
        <error id="brandNewChecker" severity="warning" msg="new"/>
    </errors>
</results>`

func writeReport(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestNormalizeCommand(t *testing.T) {
	assert.Equal(t, "normalize [report]", normalizeCmd.Use)
	assert.NotNil(t, normalizeCmd.Flags().Lookup("policy"))
	assert.NotNil(t, normalizeCmd.Flags().Lookup("engine"))
	assert.NotNil(t, normalizeCmd.Flags().Lookup("metrics-textfile"))
}

func TestNormalize_File(t *testing.T) {
	path := writeReport(t, "report.xml", []byte(sampleReport))

	code, out, _ := runCLI(t, "", "normalize", path, "--no-color")

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, out, "a.c:4:5:")
	assert.Contains(t, out, "CXX-W3551 missing return [missingReturn]")
	assert.Contains(t, out, "CXX-W3007 misra violation [misra-c2012-2.3]")
	assert.Contains(t, out, "<no location>")
	assert.Contains(t, out, "brandNewChecker new")
	assert.Contains(t, out, "Findings: 3 (mapped: 2, unmapped: 1, suppressed: 0)")
}

func TestNormalize_Stdin(t *testing.T) {
	code, out, _ := runCLI(t, sampleReport, "normalize", "--no-color")

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, out, "CXX-W3551")
}

func TestNormalize_GzipFile(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(sampleReport))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	path := writeReport(t, "report.xml.gz", buf.Bytes())

	code, out, _ := runCLI(t, "", "normalize", path, "--no-color")

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, out, "CXX-W3551")
}

func TestNormalize_JSON(t *testing.T) {
	path := writeReport(t, "report.xml", []byte(sampleReport))

	code, out, _ := runCLI(t, "", "normalize", path, "--json")
	require.Equal(t, exitcode.Success, code)

	var doc struct {
		ToolVersion string `json:"tool_version"`
		Diagnostics []struct {
			Code   string `json:"code"`
			RuleID string `json:"rule_id"`
			Mapped bool   `json:"mapped"`
		} `json:"diagnostics"`
		Summary struct {
			Total    int `json:"total"`
			Mapped   int `json:"mapped"`
			Unmapped int `json:"unmapped"`
		} `json:"summary"`
		UnmappedRuleIDs []string `json:"unmapped_rule_ids"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "2.13.0", doc.ToolVersion)
	require.Len(t, doc.Diagnostics, 3)
	assert.Equal(t, "CXX-W3551", doc.Diagnostics[0].Code)
	assert.False(t, doc.Diagnostics[2].Mapped)
	assert.Equal(t, 3, doc.Summary.Total)
	assert.Equal(t, 2, doc.Summary.Mapped)
	assert.Equal(t, []string{"brandNewChecker"}, doc.UnmappedRuleIDs)
}

func TestNormalize_PolicySuppress(t *testing.T) {
	path := writeReport(t, "report.xml", []byte(sampleReport))

	code, out, _ := runCLI(t, "", "normalize", path, "--no-color", "--policy", "suppress")

	assert.Equal(t, exitcode.Success, code)
	assert.NotContains(t, out, "brandNewChecker new")
	assert.Contains(t, out, "suppressed: 1")
}

func TestNormalize_PolicyFail(t *testing.T) {
	path := writeReport(t, "report.xml", []byte(sampleReport))

	code, out, errOut := runCLI(t, "", "normalize", path, "--no-color", "--policy", "fail")

	assert.Equal(t, exitcode.Unmapped, code)
	assert.NotContains(t, out, "CXX-W3551")
	assert.Contains(t, errOut, "ERROR:")
	assert.Contains(t, errOut, "brandNewChecker")
	assert.NotContains(t, errOut, "Error:")
}

func TestNormalize_Malformed(t *testing.T) {
	path := writeReport(t, "report.xml", []byte(`<results><errors><error id="x" severity="error" msg="m"><location file="a.c" line="-1" column="1"/></error></errors></results>`))

	code, _, errOut := runCLI(t, "", "normalize", path, "--no-color")

	assert.Equal(t, exitcode.Error, code)
	assert.Contains(t, errOut, "ERROR:")
	assert.Contains(t, errOut, "line")
}

func TestNormalize_MissingFile(t *testing.T) {
	code, _, errOut := runCLI(t, "", "normalize", filepath.Join(t.TempDir(), "none.xml"), "--no-color")

	assert.Equal(t, exitcode.Error, code)
	assert.Contains(t, errOut, "failed to read report")
}

func TestNormalize_InvalidPolicy(t *testing.T) {
	code, _, errOut := runCLI(t, sampleReport, "normalize", "--policy", "ignore")

	assert.Equal(t, exitcode.Error, code)
	assert.Contains(t, errOut, "unmapped.policy")
}

func TestNormalize_UnknownEngine(t *testing.T) {
	code, _, errOut := runCLI(t, sampleReport, "normalize", "--engine", "pclint", "--no-color")

	assert.Equal(t, exitcode.Error, code)
	assert.Contains(t, errOut, "unknown engine")
}

func TestNormalize_OutputFile(t *testing.T) {
	path := writeReport(t, "report.xml", []byte(sampleReport))
	outPath := filepath.Join(t.TempDir(), "out.json")

	code, out, _ := runCLI(t, "", "normalize", path, "--json", "--no-color", "-o", outPath)

	require.Equal(t, exitcode.Success, code)
	assert.Contains(t, out, "Findings: 3")
	assert.NotContains(t, out, "missing return")
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CXX-W3551")
	assert.NotContains(t, string(data), "Findings:")
}

func TestLookup_OutputFileOnly(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "lookup.txt")

	code, out, _ := runCLI(t, "", "lookup", "missingReturn", "--no-color", "-o", outPath)

	require.Equal(t, exitcode.Success, code)
	assert.Empty(t, out)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CXX-W3551")
}

func TestCommandHelp_ListsExitCodes(t *testing.T) {
	for _, cmd := range []*cobra.Command{normalizeCmd, lookupCmd} {
		assert.Contains(t, cmd.Long, "Exit codes:")
		assert.Contains(t, cmd.Long, "1  "+exitcode.Description(exitcode.Unmapped))
		assert.Contains(t, cmd.Long, "2  "+exitcode.Description(exitcode.Error))
	}
}

func TestNormalize_MetricsTextfile(t *testing.T) {
	path := writeReport(t, "report.xml", []byte(sampleReport))
	promPath := filepath.Join(t.TempDir(), "cxx.prom")

	code, _, _ := runCLI(t, "", "normalize", path, "--no-color", "--metrics-textfile", promPath)

	require.Equal(t, exitcode.Success, code)
	data, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cxxcodes_reports_total")
	assert.Contains(t, string(data), "cxxcodes_findings_normalized_total")
}

func TestNormalizeRun_Execute(t *testing.T) {
	w := mocks.NewMockWriter()
	metrics := mocks.NewMockMetrics()
	run := normalizeRun{
		engine:   "cppcheck",
		path:     "-",
		policy:   diagnostic.PolicySurface,
		loader:   reportio.NewLoader(reportio.WithStdin(bytes.NewBufferString(sampleReport))),
		registry: engines.NewDefaultRegistry(),
		writer:   w,
		metrics:  metrics,
		logger:   zap.NewNop(),
	}

	require.NoError(t, run.execute(context.Background()))

	require.Len(t, w.Results, 1)
	assert.Equal(t, "-", w.Results[0].Source)
	assert.Equal(t, 3, w.Results[0].Total())
	assert.Equal(t, 1, metrics.Parsed)
	assert.Equal(t, 1, w.FlushCalls)
}

func TestLookupCommand(t *testing.T) {
	assert.Equal(t, "lookup <rule-id>...", lookupCmd.Use)

	code, out, _ := runCLI(t, "", "lookup", "missingReturn", "misra-c2012-5.8", "nope", "--no-color")

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, out, "missingReturn\tCXX-W3551")
	assert.Contains(t, out, "misra-c2012-5.8\tCXX-W3023")
	assert.Contains(t, out, "nope\t(unmapped)")
}

func TestLookupCommand_RequiresArgs(t *testing.T) {
	code, _, _ := runCLI(t, "", "lookup")

	assert.Equal(t, exitcode.Error, code)
}

func TestLookupCommand_PolicyFail(t *testing.T) {
	code, _, errOut := runCLI(t, "", "lookup", "missingReturn", "nope", "--policy", "fail", "--no-color")

	assert.Equal(t, exitcode.Unmapped, code)
	assert.Contains(t, errOut, "nope")
}

func TestLookupRules(t *testing.T) {
	n := diagcode.NewNormalizer()
	ids := []string{"missingReturn", "nope", "misra-c2012-2.3"}

	surfaced, err := lookupRules(n, diagnostic.PolicySurface, ids)
	require.NoError(t, err)
	assert.Len(t, surfaced, 3)

	suppressed, err := lookupRules(n, diagnostic.PolicySuppress, ids)
	require.NoError(t, err)
	require.Len(t, suppressed, 2)
	assert.Equal(t, "missingReturn", suppressed[0].RuleID)
	assert.Equal(t, "misra-c2012-2.3", suppressed[1].RuleID)

	_, err = lookupRules(n, diagnostic.PolicyFail, ids)
	assert.ErrorIs(t, err, diagnostic.ErrUnmappedRule)

	all, err := lookupRules(n, diagnostic.PolicyFail, []string{"missingReturn"})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCodesCommand(t *testing.T) {
	code, out, _ := runCLI(t, "", "codes", "--json")
	require.Equal(t, exitcode.Success, code)

	var doc struct {
		Namespace string `json:"namespace"`
		Count     int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "CXX", doc.Namespace)
	assert.Equal(t, diagcode.Len(), doc.Count)
}

func TestFilterCodes(t *testing.T) {
	entries := diagcode.Entries()

	assert.Len(t, filterCodes(entries, "", false), len(entries))

	misra := filterCodes(entries, "", true)
	assert.NotEmpty(t, misra)
	assert.Less(t, len(misra), len(entries))
	for _, e := range misra {
		assert.Contains(t, e.RuleID, "misra-c2012-")
	}

	byRule := filterCodes(entries, "missingReturn", false)
	require.Len(t, byRule, 1)
	assert.Equal(t, "CXX-W3551", byRule[0].Code)

	byCode := filterCodes(entries, "CXX-W3551", false)
	require.Len(t, byCode, 1)
	assert.Equal(t, "missingReturn", byCode[0].RuleID)

	assert.Empty(t, filterCodes(entries, "zzz-no-such-rule", false))
}

func TestMCPCommand(t *testing.T) {
	assert.Equal(t, "mcp", mcpCmd.Use)
	assert.Equal(t, "serve", mcpServeCmd.Use)

	transport := mcpServeCmd.Flags().Lookup("transport")
	require.NotNil(t, transport)
	assert.Equal(t, "t", transport.Shorthand)
	assert.Equal(t, "stdio", transport.DefValue)
	assert.NotNil(t, mcpServeCmd.Flags().Lookup("http-addr"))
}

func TestMCPCommand_UnsupportedTransport(t *testing.T) {
	code, _, errOut := runCLI(t, "", "mcp", "serve", "--transport", "grpc")

	assert.Equal(t, exitcode.Error, code)
	assert.Contains(t, errOut, "unsupported transport")
}

func TestInitCommand(t *testing.T) {
	assert.Equal(t, "init", initCmd.Use)
	force := initCmd.Flags().Lookup("force")
	require.NotNil(t, force)
	assert.Equal(t, "f", force.Shorthand)
}

func TestRunInit(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	code, out, _ := runCLI(t, "", "init", "--no-color")
	require.Equal(t, exitcode.Success, code)
	assert.Contains(t, out, "Created .cxxcodes/config.yaml")

	_, err = os.Stat(filepath.Join(tmpDir, ".cxxcodes", "config.yaml"))
	require.NoError(t, err)

	code, _, errOut := runCLI(t, "", "init")
	assert.Equal(t, exitcode.Error, code)
	assert.Contains(t, errOut, "already exists")

	code, _, _ = runCLI(t, "", "init", "--force")
	assert.Equal(t, exitcode.Success, code)
}

func TestRunInit_WarnsAboutShadowedConfig(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	require.NoError(t, os.WriteFile("cxxcodes.yaml", []byte("version: \"1\"\n"), 0600))

	code, out, _ := runCLI(t, "", "init", "--no-color")

	require.Equal(t, exitcode.Success, code)
	assert.Contains(t, out, "cxxcodes.yaml is ignored while .cxxcodes/config.yaml exists")
}
