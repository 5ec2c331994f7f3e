package main

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagcode"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/engines/cppcheck"
	"github.com/spf13/cobra"
)

var codesMISRA bool

// codesCmd lists the code table
var codesCmd = &cobra.Command{
	Use:   "codes [filter]",
	Short: "List the CXX-W code table",
	Long: `List every known rule id and its CXX-W code, ordered by code.

An optional filter keeps entries whose rule id or code contains it.

Examples:
  cxxcodes codes
  cxxcodes codes Null
  cxxcodes codes --misra --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCodes,
}

func init() {
	codesCmd.Flags().BoolVar(&codesMISRA, "misra", false, "only list MISRA C 2012 rules")
	rootCmd.AddCommand(codesCmd)
}

func runCodes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}

	writer, closeWriter, err := createWriter(cmd, cfg, false)
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}
	defer func() { _ = closeWriter() }()

	filter := ""
	if len(args) > 0 {
		filter = args[0]
	}
	if err := writer.WriteCodes(filterCodes(diagcode.Entries(), filter, codesMISRA)); err != nil {
		return fmt.Errorf("failed to write codes: %w", err)
	}
	return writer.Flush()
}

// filterCodes keeps entries matching filter and, when misraOnly is set,
// only MISRA rules.
func filterCodes(entries []diagcode.Entry, filter string, misraOnly bool) []diagcode.Entry {
	out := make([]diagcode.Entry, 0, len(entries))
	for _, e := range entries {
		if misraOnly && cppcheck.RuleFamily(e.RuleID) != cppcheck.FamilyMISRA {
			continue
		}
		if filter != "" && !strings.Contains(e.RuleID, filter) && !strings.Contains(e.Code, filter) {
			continue
		}
		out = append(out, e)
	}
	return out
}
