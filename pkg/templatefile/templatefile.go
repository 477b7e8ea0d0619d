// Package templatefile implements the bi-directional mapping between raw
// source bytes and the post-template-expansion ("templated") string that
// the rest of the pipeline operates on. It is the boundary between an
// external templater (Jinja/dbt, or nothing at all) and the lexer.
package templatefile

import (
	"fmt"

	"github.com/tentacle-scylla/scql/pkg/token"
)

// SliceType tags one slice of the templated string with the kind of
// template construct it originated from.
type SliceType string

const (
	Literal    SliceType = "literal"
	Templated  SliceType = "templated"
	BlockStart SliceType = "block_start"
	BlockEnd   SliceType = "block_end"
	BlockMid   SliceType = "block_mid"
	Comment    SliceType = "comment"
	Escaped    SliceType = "escaped"
)

// IsLiteral reports whether slices of this type are byte-identical between
// source and templated space.
func (t SliceType) IsLiteral() bool { return t == Literal }

// Slice is one entry of a TemplatedFile's slice table: a contiguous
// templated-space range together with its source-space origin.
type Slice struct {
	Type           SliceType
	SourceRange    token.Range
	TemplatedRange token.Range
}

// TemplatedFile represents a single input after template expansion.
type TemplatedFile struct {
	sourceStr    string
	templatedStr string
	slices       []Slice
}

// New validates slices and constructs a TemplatedFile. Slices must cover
// templatedStr contiguously with no gaps or overlaps, and literal slices
// must be monotonic (and byte-identical to the source) within their own
// coordinate system; templated slices may be non-monotonic in source
// coordinates (a template may reorder or collapse content).
func New(sourceStr, templatedStr string, slices []Slice) (*TemplatedFile, error) {
	cursor := 0
	lastLiteralSource := -1
	for i, s := range slices {
		if s.TemplatedRange.Start != cursor {
			return nil, fmt.Errorf("templatefile: slice %d starts at %d, expected %d (gap or overlap)", i, s.TemplatedRange.Start, cursor)
		}
		if s.TemplatedRange.End < s.TemplatedRange.Start {
			return nil, fmt.Errorf("templatefile: slice %d has inverted templated range %s", i, s.TemplatedRange)
		}
		if s.TemplatedRange.End > len(templatedStr) {
			return nil, fmt.Errorf("templatefile: slice %d templated range %s exceeds templated_str length %d", i, s.TemplatedRange, len(templatedStr))
		}
		if s.SourceRange.End > len(sourceStr) {
			return nil, fmt.Errorf("templatefile: slice %d source range %s exceeds source_str length %d", i, s.SourceRange, len(sourceStr))
		}

		if s.Type.IsLiteral() {
			if s.SourceRange.Len() != s.TemplatedRange.Len() {
				return nil, fmt.Errorf("templatefile: literal slice %d has mismatched source/templated lengths", i)
			}
			if sourceStr[s.SourceRange.Start:s.SourceRange.End] != templatedStr[s.TemplatedRange.Start:s.TemplatedRange.End] {
				return nil, fmt.Errorf("templatefile: literal slice %d is not byte-identical between source and templated", i)
			}
			if s.SourceRange.Start < lastLiteralSource {
				return nil, fmt.Errorf("templatefile: literal slice %d is non-monotonic in source coordinates", i)
			}
			lastLiteralSource = s.SourceRange.Start
		}

		cursor = s.TemplatedRange.End
	}
	if cursor != len(templatedStr) {
		return nil, fmt.Errorf("templatefile: slices cover [0,%d) but templated_str has length %d", cursor, len(templatedStr))
	}

	return &TemplatedFile{sourceStr: sourceStr, templatedStr: templatedStr, slices: slices}, nil
}

// NewLiteral builds the no-op TemplatedFile for a templater-free input:
// source_str == templated_str with a single literal slice over the whole
// string.
func NewLiteral(source string) *TemplatedFile {
	tf, err := New(source, source, []Slice{{
		Type:           Literal,
		SourceRange:    token.Range{Start: 0, End: len(source)},
		TemplatedRange: token.Range{Start: 0, End: len(source)},
	}})
	if err != nil {
		// A single whole-string literal slice can never fail validation.
		panic(err)
	}
	return tf
}

// SourceStr returns the original, pre-expansion text.
func (t *TemplatedFile) SourceStr() string { return t.sourceStr }

// TemplatedStr returns the expanded text the lexer/parser operate on.
func (t *TemplatedFile) TemplatedStr() string { return t.templatedStr }

// Slices returns the ordered slice table.
func (t *TemplatedFile) Slices() []Slice { return t.slices }

// SourceRange returns the source-space range of the i-th slice.
func (t *TemplatedFile) SourceRange(i int) token.Range { return t.slices[i].SourceRange }

// TemplatedRange returns the templated-space range of the i-th slice.
func (t *TemplatedFile) TemplatedRange(i int) token.Range { return t.slices[i].TemplatedRange }

// SourceOnlySlices returns literal slices whose source range is non-empty
// but whose templated range is empty (e.g. comments the templater
// stripped). The fix applier re-emits these untouched.
func (t *TemplatedFile) SourceOnlySlices() []Slice {
	var out []Slice
	for _, s := range t.slices {
		if s.Type.IsLiteral() && !s.SourceRange.Empty() && s.TemplatedRange.Empty() {
			out = append(out, s)
		}
	}
	return out
}

// FindSliceAt returns the index of the slice containing templatedOffset.
// It errors if the offset is out of range.
func (t *TemplatedFile) FindSliceAt(templatedOffset int) (int, error) {
	if templatedOffset < 0 || templatedOffset > len(t.templatedStr) {
		return -1, fmt.Errorf("templatefile: offset %d out of range [0,%d]", templatedOffset, len(t.templatedStr))
	}
	for i, s := range t.slices {
		if templatedOffset < s.TemplatedRange.End || (templatedOffset == s.TemplatedRange.End && i == len(t.slices)-1) {
			return i, nil
		}
	}
	if len(t.slices) > 0 {
		return len(t.slices) - 1, nil
	}
	return -1, fmt.Errorf("templatefile: no slices")
}

// SourceOffsetFor projects a templated-space offset into source space. For
// a templated slice the source range is treated as atomic and indivisible:
// any offset inside it maps to the start of the slice's source range.
func (t *TemplatedFile) SourceOffsetFor(templatedOffset int) (int, error) {
	idx, err := t.FindSliceAt(templatedOffset)
	if err != nil {
		return 0, err
	}
	s := t.slices[idx]
	if !s.Type.IsLiteral() {
		return s.SourceRange.Start, nil
	}
	delta := templatedOffset - s.TemplatedRange.Start
	return s.SourceRange.Start + delta, nil
}

// RangesOverlap reports whether two half-open ranges share any bytes.
// Ported from the original's small slice_helpers module.
func RangesOverlap(a, b token.Range) bool {
	return a.Start < b.End && b.Start < a.End
}

// RangeAdjacent reports whether b starts exactly where a ends (or vice
// versa), with no gap and no overlap.
func RangeAdjacent(a, b token.Range) bool {
	return a.End == b.Start || b.End == a.Start
}

// RangeContains reports whether outer fully contains inner.
func RangeContains(outer, inner token.Range) bool {
	return outer.Start <= inner.Start && inner.End <= outer.End
}

// SliceAtOrNil returns the slice at index i, or the zero Slice and false
// if i is out of range.
func (t *TemplatedFile) SliceAtOrNil(i int) (Slice, bool) {
	if i < 0 || i >= len(t.slices) {
		return Slice{}, false
	}
	return t.slices[i], true
}
