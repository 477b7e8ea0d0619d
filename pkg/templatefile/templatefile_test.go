package templatefile

import (
	"testing"

	"github.com/tentacle-scylla/scql/pkg/token"
)

func TestNewLiteralRoundTrips(t *testing.T) {
	tf := NewLiteral("select 1;")
	if tf.SourceStr() != tf.TemplatedStr() {
		if tf.SourceStr() != "select 1;" || tf.TemplatedStr() != "select 1;" {
			t.Fatalf("expected source and templated text to match input")
		}
	}
	if len(tf.Slices()) != 1 || tf.Slices()[0].Type != Literal {
		t.Fatalf("expected a single literal slice, got %+v", tf.Slices())
	}
}

func TestNewRejectsGapInTemplatedCoverage(t *testing.T) {
	_, err := New("ab", "ab", []Slice{
		{Type: Literal, SourceRange: token.Range{Start: 0, End: 1}, TemplatedRange: token.Range{Start: 0, End: 1}},
		{Type: Literal, SourceRange: token.Range{Start: 1, End: 2}, TemplatedRange: token.Range{Start: 1, End: 2}},
	})
	if err != nil {
		t.Fatalf("contiguous slices should validate, got %v", err)
	}

	_, err = New("ab", "ab", []Slice{
		{Type: Literal, SourceRange: token.Range{Start: 0, End: 1}, TemplatedRange: token.Range{Start: 0, End: 1}},
	})
	if err == nil {
		t.Fatal("expected an error for a slice table that doesn't cover the whole templated string")
	}
}

func TestNewRejectsLiteralMismatch(t *testing.T) {
	_, err := New("abc", "xyz", []Slice{
		{Type: Literal, SourceRange: token.Range{Start: 0, End: 3}, TemplatedRange: token.Range{Start: 0, End: 3}},
	})
	if err == nil {
		t.Fatal("expected an error: literal slice claims byte-identity that doesn't hold")
	}
}

func TestFindSliceAtAndSourceOffsetFor(t *testing.T) {
	// source: "{{ x }}SELECT 1"  templated: "valSELECT 1"
	tf, err := New("{{ x }}SELECT 1", "valSELECT 1", []Slice{
		{Type: Templated, SourceRange: token.Range{Start: 0, End: 7}, TemplatedRange: token.Range{Start: 0, End: 3}},
		{Type: Literal, SourceRange: token.Range{Start: 7, End: 15}, TemplatedRange: token.Range{Start: 3, End: 11}},
	})
	if err != nil {
		t.Fatalf("unexpected error building TemplatedFile: %v", err)
	}

	idx, err := tf.FindSliceAt(0)
	if err != nil || idx != 0 {
		t.Fatalf("FindSliceAt(0) = %d, %v; want 0, nil", idx, err)
	}
	idx, err = tf.FindSliceAt(5)
	if err != nil || idx != 1 {
		t.Fatalf("FindSliceAt(5) = %d, %v; want 1, nil", idx, err)
	}

	off, err := tf.SourceOffsetFor(1)
	if err != nil || off != 0 {
		t.Fatalf("templated offset inside templated slice should map to slice source start, got %d, %v", off, err)
	}
	off, err = tf.SourceOffsetFor(4)
	if err != nil || off != 8 {
		t.Fatalf("literal slice offset should translate by delta, got %d, %v", off, err)
	}

	if _, err := tf.FindSliceAt(-1); err == nil {
		t.Fatal("expected error for negative offset")
	}
	if _, err := tf.FindSliceAt(999); err == nil {
		t.Fatal("expected error for out-of-range offset")
	}
}

func TestRangeHelpers(t *testing.T) {
	a := token.Range{Start: 0, End: 5}
	b := token.Range{Start: 3, End: 8}
	c := token.Range{Start: 5, End: 10}

	if !RangesOverlap(a, b) {
		t.Error("a and b should overlap")
	}
	if RangesOverlap(a, c) {
		t.Error("a and c are adjacent, not overlapping")
	}
	if !RangeAdjacent(a, c) {
		t.Error("a and c should be adjacent")
	}
	if !RangeContains(token.Range{Start: 0, End: 10}, b) {
		t.Error("expected outer range to contain b")
	}
	if RangeContains(a, b) {
		t.Error("a does not fully contain b")
	}
}

func TestSourceOnlySlices(t *testing.T) {
	tf, err := New("-- comment\nSELECT 1", "SELECT 1", []Slice{
		{Type: Comment, SourceRange: token.Range{Start: 0, End: 11}, TemplatedRange: token.Range{Start: 0, End: 0}},
		{Type: Literal, SourceRange: token.Range{Start: 11, End: 19}, TemplatedRange: token.Range{Start: 0, End: 8}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := tf.SourceOnlySlices()
	if len(out) != 0 {
		t.Fatalf("comment slice isn't a literal, shouldn't appear in SourceOnlySlices, got %+v", out)
	}
}

func TestSliceAtOrNil(t *testing.T) {
	tf := NewLiteral("x")
	if _, ok := tf.SliceAtOrNil(0); !ok {
		t.Error("expected slice 0 to exist")
	}
	if _, ok := tf.SliceAtOrNil(5); ok {
		t.Error("expected out-of-range index to report false")
	}
}
