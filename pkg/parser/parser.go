// Package parser drives one parse: lex, match the dialect's FileSegment
// grammar against the token stream, build the segment tree, and assert
// the tree accounts for every byte of the templated string.
package parser

import (
	"fmt"

	"github.com/tentacle-scylla/scql/pkg/dialect"
	"github.com/tentacle-scylla/scql/pkg/grammar"
	"github.com/tentacle-scylla/scql/pkg/segment"
	"github.com/tentacle-scylla/scql/pkg/templatefile"
	"github.com/tentacle-scylla/scql/pkg/token"
	"github.com/tentacle-scylla/scql/pkg/types"
)

// Result is the outcome of parsing one templated file.
type Result struct {
	Tree   *segment.Segment
	Tables *segment.Tables
	Tokens []token.Token
	Errors types.Errors
}

// Parse lexes tf against d and matches d's FileSegment grammar, returning
// the resulting tree. Lex errors and parse (Unparsable) diagnostics are
// both collected into Result.Errors; a non-nil error return means the
// dialect itself is missing its root grammar, which is a programmer error,
// not a bad-input condition.
func Parse(d *dialect.Dialect, tf *templatefile.TemplatedFile) (*Result, error) {
	root, ok := d.RootGrammar()
	if !ok {
		return nil, fmt.Errorf("dialect %q: no FileSegment grammar registered", d.Name)
	}

	lx := d.Lexer()
	tokens, errs := lx.Lex(tf)

	ctx := grammar.NewParseContext(d)
	result, err := root.MatchSegments(tokens, 0, ctx)
	if err != nil {
		return nil, fmt.Errorf("dialect %q: matching FileSegment: %w", d.Name, err)
	}

	// The grammar may stop short of EOF on malformed input (Delimited
	// simply stops once neither a statement nor its separator matches).
	// Treat anything left over as one trailing Unparsable span so the
	// tree still accounts for the whole token stream.
	if result.Span.End < len(tokens)-1 {
		result.Matched = append(result.Matched, grammar.MatchedSpan{
			Range:   grammar.Span{Start: result.Span.End, End: len(tokens) - 1},
			Matched: grammar.Node(token.Unparsable),
		})
	}

	tables := segment.NewTables()
	children := segment.Build(tables, tokens, grammar.MatchResult{
		Ok:      true,
		Span:    grammar.Span{Start: 0, End: len(tokens)},
		Matched: result.Matched,
	})
	tree := &segment.Segment{Id: tables.NextId(), Kind: token.File, Children: children}

	assertComplete(tree, tf)

	errs = append(errs, unparsableDiagnostics(d, tree, tf)...)

	return &Result{Tree: tree, Tables: tables, Tokens: tokens, Errors: errs}, nil
}

// assertComplete panics if the tree's concatenated raw text doesn't
// exactly reproduce the templated string: every byte the lexer consumed
// must appear exactly once in the tree, in order.
// This is a parser-internal invariant, never a user-facing error.
func assertComplete(tree *segment.Segment, tf *templatefile.TemplatedFile) {
	got := tree.RawText()
	want := tf.TemplatedStr()
	if got != want {
		panic(fmt.Sprintf("parser: match assertion failed: tree text (%d bytes) does not reconstruct templated input (%d bytes)", len(got), len(want)))
	}
}

// unparsableDiagnostics turns every Unparsable node in the tree into a
// ParseError, with a friendly message and (when the leading token looks
// like a misspelled keyword) a suggestion.
func unparsableDiagnostics(d *dialect.Dialect, tree *segment.Segment, tf *templatefile.TemplatedFile) types.Errors {
	var out types.Errors
	candidates := keywordCandidates(d)
	source := tf.SourceStr()

	tree.RecursiveCrawl(token.NewKindSet(token.Unparsable), func(s *segment.Segment) {
		leaves := s.Leaves()
		raw := s.RawText()
		friendly := fmt.Sprintf("unparsable input near %q", firstWord(leaves))
		suggestion := ""
		if w := firstWord(leaves); w != "" {
			if s := suggestKeyword(w, candidates); s != "" {
				suggestion = fmt.Sprintf("did you mean %q?", s)
			}
		}
		srcRange := s.SourceRange()
		line, col := types.LineCol(source, srcRange.Start)
		out = append(out, &types.Error{
			Kind:            types.ParseError,
			Line:            line,
			Column:          col,
			Message:         fmt.Sprintf("unparsable input: %q", raw),
			FriendlyMessage: friendly,
			Query:           raw,
			Suggestion:      suggestion,
			SourceSlice:     srcRange,
		})
	})
	return out
}

func firstWord(leaves []*segment.Segment) string {
	for _, l := range leaves {
		if l.Kind.IsCode() {
			return l.Raw
		}
	}
	return ""
}

func keywordCandidates(d *dialect.Dialect) []string {
	var out []string
	for kw := range d.Keywords("reserved_keywords") {
		out = append(out, kw)
	}
	for kw := range d.Keywords("unreserved_keywords") {
		out = append(out, kw)
	}
	return out
}
