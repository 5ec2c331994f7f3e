package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/config"
	"github.com/felixgeelhaar/cxxcodes/pkg/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every package flag variable; cobra keeps parsed
// values between executions of the shared command tree.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		cfgFile, outputFlag, verbosity, logLevel = "", "", "", ""
		noColor, jsonOutput = false, false
		engineFlag, policyFlag, metricsTextfile = "cppcheck", "", ""
		lookupPolicy = ""
		codesMISRA = false
		initForce = false
		mcpTransport, mcpHTTPAddr = "stdio", ":8080"
	}
	reset()
	t.Cleanup(reset)
}

// runCLI executes the command tree with args and returns the exit code,
// stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	resetFlags(t)

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(bytes.NewBufferString(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	code := execute(context.Background(), &errOut)
	return code, out.String(), errOut.String()
}

func TestRootCommand(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "cxxcodes", rootCmd.Use)
	assert.Contains(t, rootCmd.Short, "CXX-W")
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	for _, name := range []string{"config", "output", "verbosity", "no-color", "json", "log-level"} {
		assert.NotNil(t, flags.Lookup(name), name)
	}
	assert.Equal(t, "c", flags.Lookup("config").Shorthand)
	assert.Equal(t, "o", flags.Lookup("output").Shorthand)
	assert.Equal(t, "v", flags.Lookup("verbosity").Shorthand)
}

func TestSubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"version", "normalize", "lookup", "codes", "mcp", "init"} {
		assert.True(t, names[name], name)
	}
}

func TestVersionCommand(t *testing.T) {
	code, out, _ := runCLI(t, "", "version")

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, out, "cxxcodes dev")
	assert.Contains(t, out, "Commit:")
}

func TestExecute_UnknownCommand(t *testing.T) {
	code, _, errOut := runCLI(t, "", "bogus")

	assert.Equal(t, exitcode.Error, code)
	assert.Contains(t, errOut, "Error:")
}

func TestBuildOverrides(t *testing.T) {
	resetFlags(t)
	jsonOutput = true
	noColor = true
	verbosity = "verbose"
	logLevel = "debug"

	policy := "fail"
	o := buildOverrides(&config.CLIOverrides{Policy: &policy})

	require.NotNil(t, o.Format)
	assert.Equal(t, "json", *o.Format)
	require.NotNil(t, o.NoColor)
	assert.True(t, *o.NoColor)
	require.NotNil(t, o.Verbosity)
	assert.Equal(t, "verbose", *o.Verbosity)
	require.NotNil(t, o.LogLevel)
	assert.Equal(t, "debug", *o.LogLevel)
	require.NotNil(t, o.Policy)
	assert.Equal(t, "fail", *o.Policy)
}

func TestBuildOverrides_NothingSet(t *testing.T) {
	resetFlags(t)

	o := buildOverrides(nil)

	assert.Nil(t, o.Format)
	assert.Nil(t, o.Verbosity)
	assert.Nil(t, o.NoColor)
	assert.Nil(t, o.LogLevel)
	assert.Nil(t, o.Policy)
}

func TestLoadConfig_InvalidOverride(t *testing.T) {
	resetFlags(t)
	logLevel = "loud"

	_, err := loadConfig(nil)

	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	resetFlags(t)
	cfgFile = "does-not-exist.yaml"

	_, err := loadConfig(nil)

	assert.Error(t, err)
}
