// Package lexer implements the pattern-driven tokenizer: an ordered
// list of Matchers is scanned at each cursor position in templated space,
// and every emitted token carries dual (source, templated) spans derived
// from the owning TemplatedFile.
package lexer

import (
	"regexp"
	"strings"

	"github.com/tentacle-scylla/scql/pkg/templatefile"
	"github.com/tentacle-scylla/scql/pkg/token"
	"github.com/tentacle-scylla/scql/pkg/types"
)

// Matcher is a single lexeme recognizer. Exactly one of Literal or
// Pattern is set. Pattern matchers may additionally carry a Subdivider
// that splits a single lexeme into multiple tokens (e.g. breaking a
// multi-line block comment into words so later grammar stages can inspect
// its contents), and TrimPostSubdivide to emit the whitespace between
// subdivisions as its own Whitespace tokens rather than folding it into
// neighboring pieces.
type Matcher struct {
	Name    string
	Kind    token.SyntaxKind
	Literal string
	Pattern *regexp.Regexp

	Subdivider        *Matcher
	TrimPostSubdivide bool
}

// match returns the raw matched text at the start of s, or "" if this
// matcher does not match there.
func (m Matcher) match(s string) string {
	if m.Literal != "" {
		if strings.HasPrefix(s, m.Literal) {
			return m.Literal
		}
		return ""
	}
	loc := m.Pattern.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// Lexer is a dialect-supplied ordered list of Matchers. Ordering is
// authoritative: the dialect writer puts more specific patterns earlier.
type Lexer struct {
	Matchers []Matcher
}

// New builds a Lexer from an ordered matcher list.
func New(matchers []Matcher) *Lexer {
	return &Lexer{Matchers: matchers}
}

// Lex tokenizes tf.TemplatedStr() start to finish. It never aborts: an
// unlexable character becomes a single Unlexable token of length 1 plus a
// LexError diagnostic, and lexing continues from the next byte.
func (l *Lexer) Lex(tf *templatefile.TemplatedFile) ([]token.Token, types.Errors) {
	templated := tf.TemplatedStr()
	var tokens []token.Token
	var errs types.Errors

	cursor := 0
	for cursor < len(templated) {
		raw, kind, ok := l.matchAt(templated[cursor:])
		if !ok {
			line, col := types.LineCol(templated, cursor)
			srcOff, _ := tf.SourceOffsetFor(cursor)
			errs = append(errs, &types.Error{
				Kind:        types.LexError,
				Line:        line,
				Column:      col,
				Message:     "unlexable character",
				SourceSlice: token.Range{Start: srcOff, End: srcOff + 1},
			})
			tokens = append(tokens, l.emitSingle(tf, cursor, cursor+1, token.Unlexable))
			cursor++
			continue
		}

		raw = l.clipToSliceBoundary(tf, cursor, raw)

		matcher := l.matcherFor(raw, kind)
		if matcher != nil && matcher.Subdivider != nil {
			subTokens := l.subdivide(tf, cursor, raw, *matcher)
			tokens = append(tokens, subTokens...)
		} else {
			tokens = append(tokens, l.emitSingle(tf, cursor, cursor+len(raw), kind))
		}
		cursor += len(raw)
	}

	tokens = append(tokens, token.Token{
		Kind: token.EndOfFile,
		Raw:  "",
		Span: token.Span{
			Source:    token.Range{Start: len(tf.SourceStr()), End: len(tf.SourceStr())},
			Templated: token.Range{Start: len(templated), End: len(templated)},
		},
	})
	return tokens, errs
}

// matchAt scans the matcher list in order and returns the first match.
func (l *Lexer) matchAt(s string) (raw string, kind token.SyntaxKind, ok bool) {
	for _, m := range l.Matchers {
		if raw := m.match(s); raw != "" {
			return raw, m.Kind, true
		}
	}
	return "", token.Unknown, false
}

func (l *Lexer) matcherFor(raw string, kind token.SyntaxKind) *Matcher {
	for i := range l.Matchers {
		if l.Matchers[i].Kind == kind {
			return &l.Matchers[i]
		}
	}
	return nil
}

// clipToSliceBoundary shortens raw so the token it produces never
// straddles a TemplatedFile slice boundary: a token must be split at
// slice boundaries first.
func (l *Lexer) clipToSliceBoundary(tf *templatefile.TemplatedFile, cursor int, raw string) string {
	idx, err := tf.FindSliceAt(cursor)
	if err != nil {
		return raw
	}
	sliceEnd := tf.TemplatedRange(idx).End
	if cursor+len(raw) > sliceEnd && sliceEnd > cursor {
		return raw[:sliceEnd-cursor]
	}
	return raw
}

// emitSingle produces one token spanning templated [start,end), with its
// source span computed via the owning TemplatedFile: atomic for a
// non-literal slice, proportional for a literal one.
func (l *Lexer) emitSingle(tf *templatefile.TemplatedFile, start, end int, kind token.SyntaxKind) token.Token {
	raw := tf.TemplatedStr()[start:end]
	src := sourceSpanFor(tf, start, end)
	return token.Token{
		Kind: kind,
		Raw:  raw,
		Span: token.Span{Source: src, Templated: token.Range{Start: start, End: end}},
	}
}

func sourceSpanFor(tf *templatefile.TemplatedFile, start, end int) token.Range {
	idx, err := tf.FindSliceAt(start)
	if err != nil {
		return token.Range{}
	}
	slice, _ := tf.SliceAtOrNil(idx)
	if !slice.Type.IsLiteral() {
		return slice.SourceRange
	}
	startOff, _ := tf.SourceOffsetFor(start)
	endOff, _ := tf.SourceOffsetFor(end)
	return token.Range{Start: startOff, End: endOff}
}

// subdivide splits one matched lexeme into several tokens using the
// matcher's Subdivider, optionally emitting the gaps between subdivisions
// as their own Whitespace tokens.
func (l *Lexer) subdivide(tf *templatefile.TemplatedFile, base int, raw string, m Matcher) []token.Token {
	var out []token.Token
	pos := 0
	for pos < len(raw) {
		loc := m.Subdivider.Pattern.FindStringIndex(raw[pos:])
		if loc == nil {
			out = append(out, l.emitSingle(tf, base+pos, base+len(raw), m.Subdivider.Kind))
			break
		}
		divStart, divEnd := pos+loc[0], pos+loc[1]
		if divStart > pos {
			out = append(out, l.emitSingle(tf, base+pos, base+divStart, m.Subdivider.Kind))
		}
		if m.TrimPostSubdivide {
			out = append(out, l.emitSingle(tf, base+divStart, base+divEnd, token.Whitespace))
		} else {
			out = append(out, l.emitSingle(tf, base+divStart, base+divEnd, m.Subdivider.Kind))
		}
		pos = divEnd
	}
	return out
}
