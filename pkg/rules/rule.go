// Package rules defines the rule contract external rule packages
// implement: a Rule is invoked with a parsed tree, its dialect, and a
// config, and returns the fixes and violations it found.
package rules

import (
	"sort"

	"github.com/tentacle-scylla/scql/pkg/dialect"
	"github.com/tentacle-scylla/scql/pkg/fix"
	"github.com/tentacle-scylla/scql/pkg/segment"
	"github.com/tentacle-scylla/scql/pkg/types"
)

// Config carries rule-specific settings, keyed by rule code. Rule internals
// are out of scope; this is just the carrier the contract specifies.
type Config map[string]any

// Rule evaluates a parsed tree and proposes fixes. A rule that finds a
// violation it cannot safely fix returns the Violation with no matching
// LintFix.
type Rule interface {
	Code() string
	Description() string
	Eval(tree *segment.Segment, d *dialect.Dialect, cfg Config) ([]fix.LintFix, []types.Violation)
}

// Run evaluates every rule against tree and returns the combined fixes and
// violations, the latter sorted by source offset for display.
func Run(rules []Rule, tree *segment.Segment, d *dialect.Dialect, cfg Config) ([]fix.LintFix, []types.Violation) {
	var allFixes []fix.LintFix
	var allViolations []types.Violation

	for _, r := range rules {
		fixes, violations := r.Eval(tree, d, cfg)
		allFixes = append(allFixes, fixes...)
		allViolations = append(allViolations, violations...)
	}

	sort.Stable(types.ViolationsBySourceOffset(allViolations))
	return allFixes, allViolations
}
