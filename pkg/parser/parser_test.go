package parser

import (
	"testing"

	"github.com/tentacle-scylla/scql/pkg/dialect"
	"github.com/tentacle-scylla/scql/pkg/dialect/dialects"
	"github.com/tentacle-scylla/scql/pkg/templatefile"
	"github.com/tentacle-scylla/scql/pkg/token"
)

func testDialect() *dialect.Dialect {
	return dialects.NewScyllaDB()
}

func TestParseValidSelectHasNoErrors(t *testing.T) {
	d := testDialect().Freeze()
	tf := templatefile.NewLiteral("SELECT * FROM users;")

	result, err := Parse(d, tf)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if result.Errors.HasErrors() {
		t.Fatalf("expected no parse errors, got %v", result.Errors)
	}
	if result.Tree.Kind != token.File {
		t.Errorf("root segment kind = %v, want File", result.Tree.Kind)
	}
}

func TestParseReconstructsInputExactly(t *testing.T) {
	d := testDialect().Freeze()
	input := "SELECT  *\nFROM users;"
	tf := templatefile.NewLiteral(input)

	result, err := Parse(d, tf)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := result.Tree.RawText(); got != input {
		t.Errorf("tree RawText() = %q, want %q", got, input)
	}
}

func TestParseMalformedInputReportsUnparsable(t *testing.T) {
	d := testDialect().Freeze()
	tf := templatefile.NewLiteral("SELEC * FROM users;")

	result, err := Parse(d, tf)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !result.Errors.HasErrors() {
		t.Fatal("expected a parse error for a misspelled keyword")
	}
}
