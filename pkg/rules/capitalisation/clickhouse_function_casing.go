// Package capitalisation implements one rule, grounded on the original's
// ClickHouse function-casing rule: a worked example of the rule contract
// (tree in, LintFixes and Violations out), not a rule battery.
package capitalisation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tentacle-scylla/scql/pkg/dialect"
	"github.com/tentacle-scylla/scql/pkg/fix"
	"github.com/tentacle-scylla/scql/pkg/rules"
	"github.com/tentacle-scylla/scql/pkg/segment"
	"github.com/tentacle-scylla/scql/pkg/token"
	"github.com/tentacle-scylla/scql/pkg/types"
)

// clickhouseFunctionCasing maps a ClickHouse built-in's lowercase spelling
// to its canonical mixed-case form. Sorted by key; update by appending in
// order.
var clickhouseFunctionCasing = map[string]string{
	"tointervalday":         "toIntervalDay",
	"tointervalhour":        "toIntervalHour",
	"tointervalmicrosecond": "toIntervalMicrosecond",
	"tointervalmillisecond": "toIntervalMillisecond",
	"tointervalminute":      "toIntervalMinute",
	"tointervalmonth":       "toIntervalMonth",
	"tointervalnanosecond":  "toIntervalNanosecond",
	"tointervalquarter":     "toIntervalQuarter",
	"tointervalsecond":      "toIntervalSecond",
	"tointervalweek":        "toIntervalWeek",
	"tointervalyear":        "toIntervalYear",
	"toyyyymmdd":            "toYYYYMMDD",
}

// canonicalName returns the canonical mixed-case spelling of name if it is
// a known ClickHouse built-in, or "" if name isn't in the table.
func canonicalName(name string) string {
	return clickhouseFunctionCasing[strings.ToLower(name)]
}

// Rule reports and fixes ClickHouse built-in function calls whose spelling
// doesn't match the canonical mixed case (e.g. `tointervalminute(...)`
// should read `toIntervalMinute(...)`).
type Rule struct{}

func (Rule) Code() string { return "CP05" }

func (Rule) Description() string {
	return "ClickHouse built-in function names should use their canonical casing"
}

func (Rule) Eval(tree *segment.Segment, d *dialect.Dialect, cfg rules.Config) ([]fix.LintFix, []types.Violation) {
	var fixes []fix.LintFix
	var violations []types.Violation

	tree.RecursiveCrawl(token.NewKindSet(token.FunctionName), func(name *segment.Segment) {
		leaves := name.Leaves()
		if len(leaves) == 0 {
			return
		}
		leaf := leaves[0]
		canonical := canonicalName(leaf.Raw)
		if canonical == "" || canonical == leaf.Raw {
			return
		}

		srcRange := leaf.SourceRange()
		violations = append(violations, types.Violation{
			Code:        "CP05",
			Description: fmt.Sprintf("%q should be written %q", leaf.Raw, canonical),
			SourceSlice: srcRange,
		})
		fixes = append(fixes, fix.LintFix{
			EditType: fix.Replace,
			Anchor:   leaf.Id,
			Edit:     []*segment.Segment{{Kind: leaf.Kind, Raw: canonical}},
		})
	})

	sort.Stable(types.ViolationsBySourceOffset(violations))
	return fixes, violations
}
