package main

import (
	"fmt"

	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagcode"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var lookupPolicy string

// lookupCmd maps rule ids without a report
var lookupCmd = &cobra.Command{
	Use:   "lookup <rule-id>...",
	Short: "Map rule ids to CXX-W codes",
	Long: `Map one or more cppcheck rule ids to internal CXX-W diagnostic codes.

Rule ids are matched exactly and case-sensitively.

Examples:
  cxxcodes lookup missingReturn
  cxxcodes lookup misra-c2012-2.3 misra-c2012-5.8 --json
  cxxcodes lookup someNewChecker --policy fail   # exit 1 when unmapped` + exitCodeHelp(),
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupPolicy, "policy", "", "unmapped rule policy (surface, suppress, fail)")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	overrides := &config.CLIOverrides{}
	if lookupPolicy != "" {
		p := lookupPolicy
		overrides.Policy = &p
	}
	cfg, err := loadConfig(overrides)
	if err != nil {
		return err
	}

	writer, closeWriter, err := createWriter(cmd, cfg, false)
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}
	defer func() { _ = closeWriter() }()

	results, err := lookupRules(diagcode.NewNormalizer(), cfg.GetUnmappedPolicy(), args)
	if err != nil {
		return reportFailure(writer, err)
	}
	if err := writer.WriteLookups(results); err != nil {
		return fmt.Errorf("failed to write lookups: %w", err)
	}
	return writer.Flush()
}

// lookupRules normalizes ruleIDs and applies the unmapped policy to the
// outcome.
func lookupRules(n ports.RuleNormalizer, policy diagnostic.UnmappedPolicy, ruleIDs []string) ([]ports.LookupResult, error) {
	results := ports.Lookup(n, ruleIDs...)

	var unmapped []string
	kept := results[:0:0]
	for _, r := range results {
		if r.Mapped {
			kept = append(kept, r)
			continue
		}
		unmapped = append(unmapped, r.RuleID)
		if policy != diagnostic.PolicySuppress {
			kept = append(kept, r)
		}
	}

	if policy == diagnostic.PolicyFail && len(unmapped) > 0 {
		return nil, &diagnostic.UnmappedError{RuleIDs: unmapped}
	}
	return kept, nil
}
