// Package diagcode maps cppcheck rule identifiers to the stable CXX diagnostic namespace.
//
// The mapping is a static table shipped with each release. It is never derived
// from report content, so a given table version always yields the same codes.
// Rule ids without an entry are unmapped, which is a normal result: the analyzer
// grows new checkers faster than the table is curated.
package diagcode

import (
	"sort"
	"strings"
)

// Namespace is the prefix shared by every internal code.
const Namespace = "CXX"

// codePrefix is the lexical prefix of a warning code, followed by four digits.
const codePrefix = Namespace + "-W"

// Entry pairs a rule id with its internal code.
type Entry struct {
	RuleID string `json:"rule_id"`
	Code   string `json:"code"`
}

// Normalize returns the internal code for a rule id.
// The second result is false when the rule id has no entry.
func Normalize(ruleID string) (string, bool) {
	code, ok := codes[ruleID]
	return code, ok
}

// Lookup returns the table entry for a rule id.
func Lookup(ruleID string) (Entry, bool) {
	code, ok := codes[ruleID]
	if !ok {
		return Entry{}, false
	}
	return Entry{RuleID: ruleID, Code: code}, true
}

// Len returns the number of mapped rule ids.
func Len() int { return len(codes) }

// Entries returns every table entry ordered by code.
func Entries() []Entry {
	entries := make([]Entry, 0, len(codes))
	for ruleID, code := range codes {
		entries = append(entries, Entry{RuleID: ruleID, Code: code})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})
	return entries
}

// IsCode reports whether s follows the internal code convention: CXX-W and four digits.
func IsCode(s string) bool {
	digits, ok := strings.CutPrefix(s, codePrefix)
	if !ok || len(digits) != 4 {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Normalizer exposes Normalize behind a value so callers can accept an interface.
type Normalizer struct{}

// NewNormalizer returns a normalizer backed by the built-in table.
func NewNormalizer() Normalizer { return Normalizer{} }

// Normalize returns the internal code for a rule id.
func (Normalizer) Normalize(ruleID string) (string, bool) {
	return Normalize(ruleID)
}
