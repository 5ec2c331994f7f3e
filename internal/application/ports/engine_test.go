package ports

import (
	"testing"

	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagcode"
	"github.com/stretchr/testify/assert"
)

func TestLookup_KeepsOrder(t *testing.T) {
	results := Lookup(diagcode.NewNormalizer(), "missingReturn", "not-a-real-rule", "misra-c2012-2.3")

	assert.Equal(t, []LookupResult{
		{RuleID: "missingReturn", Code: "CXX-W3551", Mapped: true},
		{RuleID: "not-a-real-rule"},
		{RuleID: "misra-c2012-2.3", Code: "CXX-W3007", Mapped: true},
	}, results)
}

func TestLookup_NoIDs(t *testing.T) {
	assert.Empty(t, Lookup(diagcode.NewNormalizer()))
}

func TestEngineCppcheck(t *testing.T) {
	assert.Equal(t, EngineID("cppcheck"), EngineCppcheck)
}
