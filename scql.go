// Package scql provides templated-aware SQL lexing, parsing, linting, and
// auto-fixing.
//
// This is a convenience package that re-exports the main types and
// functions from the sub-packages. For more control, import the
// sub-packages directly:
//
//   - github.com/tentacle-scylla/scql/pkg/parser       - Parsing into a segment tree
//   - github.com/tentacle-scylla/scql/pkg/lint          - Running the rule battery
//   - github.com/tentacle-scylla/scql/pkg/fix           - Applying LintFixes to source
//   - github.com/tentacle-scylla/scql/pkg/types         - Common types (Error, Violation)
//   - github.com/tentacle-scylla/scql/pkg/templatefile  - Templated-source tracking
//   - github.com/tentacle-scylla/scql/pkg/dialect       - Dialect grammar registration
package scql

import (
	"github.com/tentacle-scylla/scql/pkg/dialect"
	"github.com/tentacle-scylla/scql/pkg/fix"
	"github.com/tentacle-scylla/scql/pkg/lint"
	"github.com/tentacle-scylla/scql/pkg/segment"
	"github.com/tentacle-scylla/scql/pkg/templatefile"
	"github.com/tentacle-scylla/scql/pkg/types"
)

// Re-export types
type (
	// Error represents a lex, parse, or fix-application error with position information.
	Error = types.Error

	// Errors is a collection of Error pointers.
	Errors = types.Errors

	// Violation is a rule finding tied to a source position.
	Violation = types.Violation

	// Result is the outcome of analyzing one input: its tree, any
	// errors, the violations its rules found, and the fixes proposed.
	Result = lint.Result

	// Dialect holds a frozen grammar registry for one SQL dialect.
	Dialect = dialect.Dialect

	// Segment is a node or leaf in a parsed tree.
	Segment = segment.Segment

	// TemplatedFile tracks the mapping between the original source and
	// its templated (rendered) text.
	TemplatedFile = templatefile.TemplatedFile

	// LintFix is a proposed edit anchored to a segment.
	LintFix = fix.LintFix

	// FixPatch is a resolved, source-space edit produced by applying
	// LintFixes.
	FixPatch = fix.FixPatch
)

// DefaultDialect returns the dialect Check/Analyze/Fix use when the caller
// doesn't pick one.
func DefaultDialect() *Dialect {
	return lint.DefaultDialect()
}

// Check parses input and returns any lex/parse errors, without running
// rules.
func Check(input string) Errors {
	return lint.Check(input)
}

// CheckMultiple validates a whole file containing several
// semicolon-separated statements.
func CheckMultiple(input string) Errors {
	return lint.CheckMultiple(input)
}

// IsValid reports whether input has no lex/parse errors.
func IsValid(input string) bool {
	return lint.IsValid(input)
}

// Analyze parses input and runs the default rule battery against the
// resulting tree, without applying any fixes.
func Analyze(input string) *Result {
	return lint.Analyze(input)
}

// Fix parses input, runs the default rule battery, and applies the
// resulting fixes, returning the corrected source.
func Fix(input string) (string, Errors) {
	return lint.Fix(input)
}
