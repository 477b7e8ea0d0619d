// Package lint ties the pipeline together: parse a (templated) SQL
// source, run the registered rule battery against the resulting tree, and
// optionally apply the fixes the rules proposed.
package lint

import (
	"sync"

	"github.com/tentacle-scylla/scql/pkg/dialect"
	"github.com/tentacle-scylla/scql/pkg/dialect/dialects"
	"github.com/tentacle-scylla/scql/pkg/fix"
	"github.com/tentacle-scylla/scql/pkg/parser"
	"github.com/tentacle-scylla/scql/pkg/rules"
	"github.com/tentacle-scylla/scql/pkg/rules/capitalisation"
	"github.com/tentacle-scylla/scql/pkg/segment"
	"github.com/tentacle-scylla/scql/pkg/templatefile"
	"github.com/tentacle-scylla/scql/pkg/types"
)

var defaultDialect struct {
	sync.Once
	d *dialect.Dialect
}

// DefaultDialect returns the dialect Check/Analyze/Fix use when the caller
// doesn't pick one: ScyllaDB's CQL, built once and frozen for concurrent
// reuse across calls.
func DefaultDialect() *dialect.Dialect {
	defaultDialect.Do(func() {
		defaultDialect.d = dialects.NewScyllaDB().Freeze()
	})
	return defaultDialect.d
}

// DefaultRules is the rule battery Check/Analyze/Fix run. Rule internals
// are out of scope for this engine; capitalisation.Rule exercises the
// contract end to end.
func DefaultRules() []rules.Rule {
	return []rules.Rule{capitalisation.Rule{}}
}

// Result is the outcome of linting one input against DefaultDialect with
// DefaultRules.
type Result struct {
	Input      string
	Tree       *segment.Segment
	Errors     types.Errors
	Violations []types.Violation
	Fixes      []fix.LintFix
}

// IsValid reports whether the input has no lex/parse errors.
func (r *Result) IsValid() bool {
	return !r.Errors.HasErrors()
}

// Analyze parses input and runs DefaultRules against the tree, without
// applying any fixes.
func Analyze(input string) *Result {
	d := DefaultDialect()
	tf := templatefile.NewLiteral(input)

	parsed, err := parser.Parse(d, tf)
	if err != nil {
		panic(err) // missing FileSegment grammar is a programmer error, not bad input
	}

	fixes, violations := rules.Run(DefaultRules(), parsed.Tree, d, nil)
	for i := range violations {
		violations[i].Line, violations[i].LinePos = types.LineCol(input, violations[i].SourceSlice.Start)
	}

	return &Result{
		Input:      input,
		Tree:       parsed.Tree,
		Errors:     parsed.Errors,
		Violations: violations,
		Fixes:      fixes,
	}
}

// Check parses input and returns any lex/parse errors. It does not run
// rules; use Analyze for violations as well.
func Check(input string) types.Errors {
	d := DefaultDialect()
	tf := templatefile.NewLiteral(input)
	parsed, err := parser.Parse(d, tf)
	if err != nil {
		panic(err)
	}
	return parsed.Errors
}

// CheckMultiple is Check for input containing several semicolon-separated
// statements. The grammar already parses a whole file's statements in one
// pass (FileSegment is a Delimited list of StatementSegment), so this is
// just Check under the name multi-statement call sites expect.
func CheckMultiple(input string) types.Errors {
	return Check(input)
}

// IsValid reports whether input has no lex/parse errors.
func IsValid(input string) bool {
	return !Check(input).HasErrors()
}

// Fix parses input, runs DefaultRules, and applies the resulting fixes,
// returning the corrected source alongside any errors (parse errors, fix
// conflicts, or template-protection rejections) encountered along the way.
func Fix(input string) (string, types.Errors) {
	d := DefaultDialect()
	tf := templatefile.NewLiteral(input)

	parsed, err := parser.Parse(d, tf)
	if err != nil {
		panic(err)
	}

	fixes, _ := rules.Run(DefaultRules(), parsed.Tree, d, nil)
	fixedSource, _, fixErrs := fix.Apply(parsed.Tree, tf, fixes)

	allErrs := append(types.Errors{}, parsed.Errors...)
	allErrs = append(allErrs, fixErrs...)
	return fixedSource, allErrs
}
