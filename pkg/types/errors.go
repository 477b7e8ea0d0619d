package types

import (
	"fmt"
	"strings"

	"github.com/tentacle-scylla/scql/pkg/token"
)

// Kind classifies an Error by which stage of the pipeline raised it.
type Kind int

const (
	// LexError is an unlexable character at some offset.
	LexError Kind = iota
	// ParseError is a grammar failure to consume all tokens at the root.
	ParseError
	// FixConflict is two fixes targeting the same anchor with incompatible
	// edits.
	FixConflict
	// TemplateProtection is a patch whose source slice lies inside a
	// non-literal templated slice, and was therefore suppressed.
	TemplateProtection
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "lex_error"
	case ParseError:
		return "parse_error"
	case FixConflict:
		return "fix_conflict"
	case TemplateProtection:
		return "template_protection"
	default:
		return "error"
	}
}

// Error represents a parsing or validation error with position information
type Error struct {
	Kind Kind

	Line            int    // 1-based line number
	Column          int    // 0-based column number
	Message         string // raw diagnostic message
	FriendlyMessage string // User-friendly error message (shown in UI)
	Query           string // The original query (or portion) that caused the error
	Suggestion      string // Optional suggestion for fixing the error

	SourceSlice token.Range // byte range into the original source
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.FriendlyMessage
	if msg == "" {
		msg = e.Message
	}
	if e.Suggestion != "" {
		return fmt.Sprintf("line %d:%d: %s (suggestion: %s)", e.Line, e.Column, msg, e.Suggestion)
	}
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, msg)
}

// DisplayMessage returns the best message to show to users
// (FriendlyMessage if available, otherwise raw Message)
func (e *Error) DisplayMessage() string {
	if e.FriendlyMessage != "" {
		return e.FriendlyMessage
	}
	return e.Message
}

// Position returns a string representation of the error position
func (e *Error) Position() string {
	return fmt.Sprintf("%d:%d", e.Line, e.Column)
}

// Errors is a collection of Error pointers
type Errors []*Error

// Error implements the error interface for the collection
func (e Errors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d errors:\n", len(e)))
	for i, err := range e {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// HasErrors returns true if there are any errors
func (e Errors) HasErrors() bool {
	return len(e) > 0
}

// First returns the first error or nil if empty
func (e Errors) First() *Error {
	if len(e) == 0 {
		return nil
	}
	return e[0]
}

// ByLine returns all errors at a specific line
func (e Errors) ByLine(line int) Errors {
	var result Errors
	for _, err := range e {
		if err.Line == line {
			result = append(result, err)
		}
	}
	return result
}

// LineCol converts a byte offset in s into a 1-based line and 0-based
// column.
func LineCol(s string, offset int) (line, col int) {
	if offset > len(s) {
		offset = len(s)
	}
	line = 1
	lastNewline := -1
	for i := 0; i < offset; i++ {
		if s[i] == '\n' {
			line++
			lastNewline = i
		}
	}
	return line, offset - lastNewline - 1
}

// Violation is the rule-facing diagnostic: what a Rule reports about a
// segment tree. Violations are ordered by source
// offset for display; a rule may mark a violation unfixable by returning
// no fixes alongside it.
type Violation struct {
	Code        string
	Description string
	Line        int
	LinePos     int
	SourceSlice token.Range
}

// ViolationsBySourceOffset sorts violations by their source slice start,
// ascending, for stable display order.
type ViolationsBySourceOffset []Violation

func (v ViolationsBySourceOffset) Len() int      { return len(v) }
func (v ViolationsBySourceOffset) Swap(i, j int) { v[i], v[j] = v[j], v[i] }
func (v ViolationsBySourceOffset) Less(i, j int) bool {
	return v[i].SourceSlice.Start < v[j].SourceSlice.Start
}
