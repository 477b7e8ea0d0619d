package segment

import (
	"testing"

	"github.com/tentacle-scylla/scql/pkg/token"
)

func leaf(tables *Tables, kind token.SyntaxKind, raw string, start int) *Segment {
	r := token.Range{Start: start, End: start + len(raw)}
	return &Segment{
		Id:   tables.NextId(),
		Kind: kind,
		Raw:  raw,
		Span: token.Span{Source: r, Templated: r},
	}
}

func TestIsLeaf(t *testing.T) {
	tables := NewTables()
	l := leaf(tables, token.Word, "select", 0)
	if !l.IsLeaf() {
		t.Error("segment with nil Children should be a leaf")
	}

	node := &Segment{Id: tables.NextId(), Kind: token.SelectStatement, Children: []*Segment{l}}
	if node.IsLeaf() {
		t.Error("segment with Children should not be a leaf")
	}
}

func TestIsCode(t *testing.T) {
	tables := NewTables()
	ws := leaf(tables, token.Whitespace, " ", 0)
	if ws.IsCode() {
		t.Error("whitespace leaf should not be code")
	}

	word := leaf(tables, token.Word, "select", 1)
	node := &Segment{Id: tables.NextId(), Kind: token.SelectStatement, Children: []*Segment{ws, word}}
	if !node.IsCode() {
		t.Error("node containing a code leaf should itself count as code")
	}

	allNonCode := &Segment{Id: tables.NextId(), Kind: token.Unparsable, Children: []*Segment{ws}}
	if allNonCode.IsCode() {
		t.Error("node whose children are all non-code should not count as code")
	}
}

func TestRawTextConcatenatesChildren(t *testing.T) {
	tables := NewTables()
	a := leaf(tables, token.Word, "SELECT", 0)
	ws := leaf(tables, token.Whitespace, " ", 6)
	b := leaf(tables, token.Star, "*", 7)
	node := &Segment{Id: tables.NextId(), Kind: token.SelectClause, Children: []*Segment{a, ws, b}}

	if got := node.RawText(); got != "SELECT *" {
		t.Errorf("RawText() = %q, want %q", got, "SELECT *")
	}
}

func TestSourceRangeOfNodeSpansChildren(t *testing.T) {
	tables := NewTables()
	a := leaf(tables, token.Word, "SELECT", 0)
	ws := leaf(tables, token.Whitespace, " ", 6)
	b := leaf(tables, token.Star, "*", 7)
	node := &Segment{Id: tables.NextId(), Kind: token.SelectClause, Children: []*Segment{a, ws, b}}

	r := node.SourceRange()
	if r.Start != 0 || r.End != 8 {
		t.Errorf("SourceRange() = %v, want [0,8)", r)
	}
}

func TestSourceRangeOfEmptyNode(t *testing.T) {
	tables := NewTables()
	node := &Segment{Id: tables.NextId(), Kind: token.Unparsable, Children: []*Segment{}}
	if r := node.SourceRange(); r != (token.Range{}) {
		t.Errorf("SourceRange() of childless node = %v, want zero value", r)
	}
}

func TestRecursiveCrawlVisitsNestedMatches(t *testing.T) {
	tables := NewTables()
	inner := leaf(tables, token.NakedIdentifier, "tointervalminute", 0)
	fnName := &Segment{Id: tables.NextId(), Kind: token.FunctionName, Children: []*Segment{inner}}
	outer := &Segment{Id: tables.NextId(), Kind: token.FunctionCall, Children: []*Segment{fnName}}
	tree := &Segment{Id: tables.NextId(), Kind: token.File, Children: []*Segment{outer}}

	var hits []token.SyntaxKind
	tree.RecursiveCrawl(token.NewKindSet(token.FunctionName, token.FunctionCall), func(s *Segment) {
		hits = append(hits, s.Kind)
	})

	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2: %v", len(hits), hits)
	}
	if hits[0] != token.FunctionCall || hits[1] != token.FunctionName {
		t.Errorf("expected document-order hits [FunctionCall, FunctionName], got %v", hits)
	}
}

func TestLeavesFlattensTree(t *testing.T) {
	tables := NewTables()
	a := leaf(tables, token.Word, "SELECT", 0)
	ws := leaf(tables, token.Whitespace, " ", 6)
	inner := &Segment{Id: tables.NextId(), Kind: token.SelectClause, Children: []*Segment{a, ws}}
	tree := &Segment{Id: tables.NextId(), Kind: token.File, Children: []*Segment{inner}}

	leaves := tree.Leaves()
	if len(leaves) != 2 || leaves[0].Raw != "SELECT" || leaves[1].Raw != " " {
		t.Errorf("Leaves() = %+v, want [SELECT, ' ']", leaves)
	}
}

func TestNewTablesStartsAtOne(t *testing.T) {
	tables := NewTables()
	if id := tables.NextId(); id != 1 {
		t.Errorf("first id = %d, want 1 (0 is reserved)", id)
	}
	if id := tables.NextId(); id != 2 {
		t.Errorf("second id = %d, want 2", id)
	}
}
