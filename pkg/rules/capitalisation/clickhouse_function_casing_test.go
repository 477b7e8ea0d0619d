package capitalisation

import (
	"testing"

	"github.com/tentacle-scylla/scql/pkg/fix"
	"github.com/tentacle-scylla/scql/pkg/segment"
	"github.com/tentacle-scylla/scql/pkg/templatefile"
	"github.com/tentacle-scylla/scql/pkg/token"
)

// functionCallTree builds a minimal FunctionCall node around a single
// miscased identifier, standing in for what the parser would have
// produced for "<name>()".
func functionCallTree(tables *segment.Tables, name string) (*segment.Segment, *segment.Segment) {
	r := token.Range{Start: 0, End: len(name)}
	ident := &segment.Segment{
		Id:   tables.NextId(),
		Kind: token.NakedIdentifier,
		Raw:  name,
		Span: token.Span{Source: r, Templated: r},
	}
	fnName := &segment.Segment{
		Id:       tables.NextId(),
		Kind:     token.FunctionName,
		Children: []*segment.Segment{ident},
	}
	call := &segment.Segment{
		Id:       tables.NextId(),
		Kind:     token.FunctionCall,
		Children: []*segment.Segment{fnName},
	}
	tree := &segment.Segment{Id: tables.NextId(), Kind: token.File, Children: []*segment.Segment{call}}
	return tree, ident
}

func TestEvalFlagsMiscasedBuiltin(t *testing.T) {
	tables := segment.NewTables()
	tree, ident := functionCallTree(tables, "tointervalminute")

	var r Rule
	fixes, violations := r.Eval(tree, nil, nil)

	if len(violations) != 1 {
		t.Fatalf("got %d violations, want 1", len(violations))
	}
	if len(fixes) != 1 {
		t.Fatalf("got %d fixes, want 1", len(fixes))
	}
	if fixes[0].Anchor != ident.Id {
		t.Errorf("fix anchor = %d, want %d", fixes[0].Anchor, ident.Id)
	}
	if fixes[0].Edit[0].Raw != "toIntervalMinute" {
		t.Errorf("fix replacement = %q, want %q", fixes[0].Edit[0].Raw, "toIntervalMinute")
	}
}

func TestEvalIgnoresCorrectlyCasedBuiltin(t *testing.T) {
	tables := segment.NewTables()
	tree, _ := functionCallTree(tables, "toIntervalMinute")

	var r Rule
	fixes, violations := r.Eval(tree, nil, nil)

	if len(violations) != 0 || len(fixes) != 0 {
		t.Fatalf("got %d violations / %d fixes, want 0/0", len(violations), len(fixes))
	}
}

func TestEvalIgnoresUnknownFunction(t *testing.T) {
	tables := segment.NewTables()
	tree, _ := functionCallTree(tables, "sum")

	var r Rule
	fixes, violations := r.Eval(tree, nil, nil)

	if len(violations) != 0 || len(fixes) != 0 {
		t.Fatalf("got %d violations / %d fixes, want 0/0", len(violations), len(fixes))
	}
}

func TestEvalFixAppliesCleanly(t *testing.T) {
	tables := segment.NewTables()
	tree, _ := functionCallTree(tables, "tointervalminute")

	var r Rule
	fixes, _ := r.Eval(tree, nil, nil)

	tf := templatefile.NewLiteral("tointervalminute")
	fixed, _, errs := fix.Apply(tree, tf, fixes)
	if errs.HasErrors() {
		t.Fatalf("unexpected errors applying fix: %v", errs)
	}
	if fixed != "toIntervalMinute" {
		t.Fatalf("fixed = %q, want %q", fixed, "toIntervalMinute")
	}
}
