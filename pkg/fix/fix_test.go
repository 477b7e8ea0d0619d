package fix

import (
	"testing"

	"github.com/tentacle-scylla/scql/pkg/segment"
	"github.com/tentacle-scylla/scql/pkg/templatefile"
	"github.com/tentacle-scylla/scql/pkg/token"
)

// leaf builds a one-token leaf Segment spanning [start,end) identically
// in source and templated space (as if parsed from a literal, untemplated
// file).
func leaf(tables *segment.Tables, kind token.SyntaxKind, raw string, start int) *segment.Segment {
	r := token.Range{Start: start, End: start + len(raw)}
	return &segment.Segment{
		Id:   tables.NextId(),
		Kind: kind,
		Raw:  raw,
		Span: token.Span{Source: r, Templated: r},
	}
}

func buildTree(tables *segment.Tables, leaves ...*segment.Segment) *segment.Segment {
	return &segment.Segment{Id: tables.NextId(), Kind: token.File, Children: leaves}
}

func TestApplyReplace(t *testing.T) {
	tables := segment.NewTables()
	kw := leaf(tables, token.Keyword, "selec", 0)
	sp := leaf(tables, token.Whitespace, " ", 5)
	star := leaf(tables, token.Star, "*", 6)
	tree := buildTree(tables, kw, sp, star)

	tf := templatefile.NewLiteral("selec *")

	replacement := []*segment.Segment{{Id: tables.NextId(), Kind: token.Keyword, Raw: "SELECT"}}
	fixes := []LintFix{{EditType: Replace, Anchor: kw.Id, Edit: replacement}}

	fixed, patches, errs := Apply(tree, tf, fixes)
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if fixed != "SELECT *" {
		t.Fatalf("fixed = %q, want %q", fixed, "SELECT *")
	}
	if len(patches) != 1 {
		t.Fatalf("got %d patches, want 1", len(patches))
	}
	if patches[0].SourceSlice != (token.Range{Start: 0, End: 5}) {
		t.Errorf("source slice = %v", patches[0].SourceSlice)
	}
}

func TestApplyCreateBeforeAndAfter(t *testing.T) {
	tables := segment.NewTables()
	star := leaf(tables, token.Star, "*", 0)
	tree := buildTree(tables, star)
	tf := templatefile.NewLiteral("*")

	before := []*segment.Segment{{Id: tables.NextId(), Kind: token.Whitespace, Raw: " "}}
	after := []*segment.Segment{{Id: tables.NextId(), Kind: token.Whitespace, Raw: " "}}
	fixes := []LintFix{
		{EditType: CreateBefore, Anchor: star.Id, Edit: before},
		{EditType: CreateAfter, Anchor: star.Id, Edit: after},
	}

	fixed, patches, errs := Apply(tree, tf, fixes)
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if fixed != " * " {
		t.Fatalf("fixed = %q, want %q", fixed, " * ")
	}
	if len(patches) != 2 {
		t.Fatalf("got %d patches, want 2", len(patches))
	}
}

func TestApplyDelete(t *testing.T) {
	tables := segment.NewTables()
	kw := leaf(tables, token.Keyword, "DISTINCT", 0)
	sp := leaf(tables, token.Whitespace, " ", 8)
	star := leaf(tables, token.Star, "*", 9)
	tree := buildTree(tables, kw, sp, star)
	tf := templatefile.NewLiteral("DISTINCT *")

	fixes := []LintFix{
		{EditType: Delete, Anchor: kw.Id},
		{EditType: Delete, Anchor: sp.Id},
	}

	fixed, _, errs := Apply(tree, tf, fixes)
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if fixed != "*" {
		t.Fatalf("fixed = %q, want %q", fixed, "*")
	}
}

func TestApplyConflictingFixesOnSameAnchor(t *testing.T) {
	tables := segment.NewTables()
	kw := leaf(tables, token.Keyword, "select", 0)
	tree := buildTree(tables, kw)
	tf := templatefile.NewLiteral("select")

	fixes := []LintFix{
		{EditType: Replace, Anchor: kw.Id, Edit: []*segment.Segment{{Kind: token.Keyword, Raw: "SELECT"}}},
		{EditType: Delete, Anchor: kw.Id},
	}

	_, _, errs := Apply(tree, tf, fixes)
	if !errs.HasErrors() {
		t.Fatal("expected a fix conflict error")
	}
	found := false
	for _, e := range errs {
		if e.Kind.String() == "fix_conflict" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a fix_conflict error, got %v", errs)
	}
}

func TestApplyRejectsEditInsideTemplatedRegion(t *testing.T) {
	tables := segment.NewTables()
	// A templated slice occupies templated [0,4) ("abcd") mapping from a
	// single {{ expr }} in source space; a fix anchored to a token fully
	// inside it must be rejected rather than silently misplaced.
	src := "{{ expr }}"
	templated := "abcd"
	tf, err := templatefile.New(src, templated, []templatefile.Slice{
		{
			Type:           templatefile.Templated,
			SourceRange:    token.Range{Start: 0, End: len(src)},
			TemplatedRange: token.Range{Start: 0, End: len(templated)},
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	word := &segment.Segment{
		Id:   tables.NextId(),
		Kind: token.Word,
		Raw:  "abcd",
		Span: token.Span{
			Source:    token.Range{Start: 0, End: len(src)},
			Templated: token.Range{Start: 0, End: len(templated)},
		},
	}
	tree := buildTree(tables, word)

	fixes := []LintFix{{EditType: Replace, Anchor: word.Id, Edit: []*segment.Segment{{Kind: token.Word, Raw: "xyz"}}}}

	fixed, patches, errs := Apply(tree, tf, fixes)
	if fixed != src {
		t.Errorf("fixed = %q, want source left untouched %q", fixed, src)
	}
	if len(patches) != 0 {
		t.Errorf("expected no surviving patches, got %d", len(patches))
	}
	found := false
	for _, e := range errs {
		if e.Kind.String() == "template_protection" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a template_protection error, got %v", errs)
	}
}

func TestApplyNoFixesIsIdentity(t *testing.T) {
	tables := segment.NewTables()
	kw := leaf(tables, token.Keyword, "SELECT", 0)
	tree := buildTree(tables, kw)
	tf := templatefile.NewLiteral("SELECT")

	fixed, _, errs := Apply(tree, tf, nil)
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if fixed != "SELECT" {
		t.Fatalf("fixed = %q, want input unchanged when there are no fixes", fixed)
	}
}

func TestApplySourceFix(t *testing.T) {
	tables := segment.NewTables()
	kw := leaf(tables, token.Keyword, "select", 0)
	tree := buildTree(tables, kw)
	tf := templatefile.NewLiteral("select")

	fixes := []LintFix{{
		EditType: CreateBefore,
		Anchor:   kw.Id,
		Edit:     nil,
		SourceFixes: []SourceFix{{
			SourceSlice: token.Range{Start: 0, End: 0},
			EditRaw:     "-- fixed\n",
		}},
	}}

	fixed, _, errs := Apply(tree, tf, fixes)
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := "-- fixed\nselect"
	if fixed != want {
		t.Fatalf("fixed = %q, want %q", fixed, want)
	}
}
