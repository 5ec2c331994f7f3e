package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnmappedRule is returned when the fail policy meets a rule id without a code.
var ErrUnmappedRule = errors.New("unmapped rule id")

// UnmappedPolicy decides what happens to findings whose rule id has no code.
type UnmappedPolicy string

const (
	// PolicySurface keeps the finding and shows its raw rule id.
	PolicySurface UnmappedPolicy = "surface"

	// PolicySuppress drops the finding and only counts it.
	PolicySuppress UnmappedPolicy = "suppress"

	// PolicyFail rejects the whole batch.
	PolicyFail UnmappedPolicy = "fail"
)

// String returns the policy name.
func (p UnmappedPolicy) String() string { return string(p) }

// IsValid returns true for a known policy.
func (p UnmappedPolicy) IsValid() bool {
	switch p {
	case PolicySurface, PolicySuppress, PolicyFail:
		return true
	default:
		return false
	}
}

// ParseUnmappedPolicy parses a policy name, case-insensitively.
// An empty string selects PolicySurface.
func ParseUnmappedPolicy(s string) (UnmappedPolicy, error) {
	if strings.TrimSpace(s) == "" {
		return PolicySurface, nil
	}
	p := UnmappedPolicy(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("unknown unmapped policy %q (want surface, suppress or fail)", s)
	}
	return p, nil
}

// UnmappedError lists the rule ids that had no code under the fail policy.
type UnmappedError struct {
	RuleIDs []string
}

// Error implements error.
func (e *UnmappedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnmappedRule.Error(), strings.Join(e.RuleIDs, ", "))
}

// Is reports whether target is ErrUnmappedRule.
func (e *UnmappedError) Is(target error) bool {
	return target == ErrUnmappedRule
}
