package rules

import (
	"testing"

	"github.com/tentacle-scylla/scql/pkg/dialect"
	"github.com/tentacle-scylla/scql/pkg/fix"
	"github.com/tentacle-scylla/scql/pkg/segment"
	"github.com/tentacle-scylla/scql/pkg/token"
	"github.com/tentacle-scylla/scql/pkg/types"
)

type fakeRule struct {
	code       string
	violations []types.Violation
	fixes      []fix.LintFix
}

func (r fakeRule) Code() string        { return r.code }
func (r fakeRule) Description() string { return "fake rule for testing" }
func (r fakeRule) Eval(tree *segment.Segment, d *dialect.Dialect, cfg Config) ([]fix.LintFix, []types.Violation) {
	return r.fixes, r.violations
}

func TestRunAggregatesAndSortsAcrossRules(t *testing.T) {
	a := fakeRule{code: "A1", violations: []types.Violation{
		{Code: "A1", SourceSlice: token.Range{Start: 10, End: 12}},
	}}
	b := fakeRule{code: "B1", violations: []types.Violation{
		{Code: "B1", SourceSlice: token.Range{Start: 2, End: 4}},
	}}

	fixes, violations := Run([]Rule{a, b}, nil, nil, nil)

	if len(fixes) != 0 {
		t.Fatalf("got %d fixes, want 0", len(fixes))
	}
	if len(violations) != 2 {
		t.Fatalf("got %d violations, want 2", len(violations))
	}
	if violations[0].Code != "B1" || violations[1].Code != "A1" {
		t.Errorf("expected violations sorted by source offset, got %+v", violations)
	}
}

func TestRunWithNoRulesReturnsEmpty(t *testing.T) {
	fixes, violations := Run(nil, nil, nil, nil)
	if len(fixes) != 0 || len(violations) != 0 {
		t.Errorf("expected empty results for zero rules, got %d fixes, %d violations", len(fixes), len(violations))
	}
}
