package token

import "fmt"

// Range is a half-open byte interval [Start, End) into some string.
type Range struct {
	Start int
	End   int
}

// Len returns the width of the range.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range has zero width.
func (r Range) Empty() bool { return r.Start == r.End }

func (r Range) String() string { return fmt.Sprintf("%d..%d", r.Start, r.End) }

// Span is the dual (source, templated) position of a Token or Segment.
type Span struct {
	Source    Range
	Templated Range
}

// Token is a lexeme with a SyntaxKind and dual spans. A token's raw text
// equals the substring of the templated string at Span.Templated.
type Token struct {
	Kind SyntaxKind
	Raw  string
	Span Span
}

// IsCode reports whether this token counts as code.
func (t Token) IsCode() bool { return t.Kind.IsCode() }
